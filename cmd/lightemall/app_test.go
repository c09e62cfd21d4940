package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lightwire/core"
	"github.com/katalvlaran/lightwire/game"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(80, 24)

	g := game.New()
	_, err := g.Generate(6, 5, 31)
	require.NoError(t, err)
	return newApp(s, g, &chime{})
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestApp_Quit(t *testing.T) {
	a := newTestApp(t)
	assert.False(t, a.handle(key('q')))
	assert.False(t, a.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, a.handle(key('z')))
}

func TestApp_CursorAndRotate(t *testing.T) {
	a := newTestApp(t)
	require.True(t, a.handle(key('a')))
	assert.Equal(t, core.Position{}, a.cursor, "cursor clamps at the edge")

	a.handle(key('d'))
	a.handle(key('s'))
	assert.Equal(t, core.Position{Row: 1, Col: 1}, a.cursor)

	a.handle(key(' '))
	assert.Equal(t, 1, a.game.QueryState().RotationCount)
}

func TestApp_MouseRotatesOnPress(t *testing.T) {
	a := newTestApp(t)
	x, y := boardX+3*cellWidth, boardY+2

	a.handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	a.handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)) // held
	assert.Equal(t, 1, a.game.QueryState().RotationCount)
	assert.Equal(t, core.Position{Row: 2, Col: 3}, a.cursor)

	a.handle(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	a.handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 2, a.game.QueryState().RotationCount)

	// Outside the board, including the column just left of it.
	for _, p := range [][2]int{{70, 20}, {boardX - 1, boardY}, {boardX - 1, boardY + 2}} {
		a.handle(tcell.NewEventMouse(p[0], p[1], tcell.ButtonNone, tcell.ModNone))
		a.handle(tcell.NewEventMouse(p[0], p[1], tcell.Button1, tcell.ModNone))
	}
	assert.Equal(t, 2, a.game.QueryState().RotationCount)
	assert.Equal(t, core.Position{Row: 2, Col: 3}, a.cursor)
}

func TestApp_ResetAndTick(t *testing.T) {
	a := newTestApp(t)
	seed := a.game.Seed()
	a.handle(key('r'))
	assert.NotEqual(t, seed, a.game.Seed())
	assert.Equal(t, game.Generated, a.game.Phase())

	if a.game.IsSolved() {
		t.Skip("fresh board already solved")
	}
	a.handle(tcell.NewEventInterrupt(nil))
	a.handle(tcell.NewEventInterrupt(nil))
	assert.Equal(t, 2, a.game.QueryState().Ticks)
}
