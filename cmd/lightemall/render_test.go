package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lightwire/core"
	"github.com/katalvlaran/lightwire/game"
)

func TestGlyph(t *testing.T) {
	assert.Equal(t, '·', glyph(core.Tile{}))
	assert.Equal(t, '─', glyph(core.Tile{Left: true, Right: true}))
	assert.Equal(t, '│', glyph(core.Tile{Top: true, Bottom: true}))
	assert.Equal(t, '┌', glyph(core.Tile{Right: true, Bottom: true}))
	assert.Equal(t, '┘', glyph(core.Tile{Left: true, Top: true}))
	assert.Equal(t, '┤', glyph(core.Tile{Left: true, Top: true, Bottom: true}))
	assert.Equal(t, '┼', glyph(core.Tile{Left: true, Right: true, Top: true, Bottom: true}))
	assert.Equal(t, '╷', glyph(core.Tile{Bottom: true}))
}

func TestTileStyle_Falloff(t *testing.T) {
	assert.Equal(t, styleUnpowered, tileStyle(core.Tile{Distance: 3}))
	assert.Equal(t,
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 0)),
		tileStyle(core.Tile{Powered: true, Distance: 0}))
	assert.Equal(t,
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255-40, 0)),
		tileStyle(core.Tile{Powered: true, Distance: 5}))
	assert.Equal(t,
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)),
		tileStyle(core.Tile{Powered: true, Distance: 400}))
}

func TestCellAt(t *testing.T) {
	row, col, ok := cellAt(boardX, boardY)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	row, col, ok = cellAt(boardX+2*cellWidth+1, boardY+3)
	require.True(t, ok)
	assert.Equal(t, 3, row)
	assert.Equal(t, 2, col)

	// Integer division would fold these onto row or column 0.
	for _, p := range [][2]int{{boardX - 1, boardY}, {0, boardY + 1}, {boardX, boardY - 1}} {
		_, _, ok = cellAt(p[0], p[1])
		assert.False(t, ok, "point %v", p)
	}
}

func TestDraw_SourceAndStatus(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(80, 20)

	g := game.New()
	_, err := g.Generate(4, 3, 5)
	require.NoError(t, err)
	st := g.QueryState()
	draw(s, st, core.Position{Row: 1, Col: 1})

	r, _, _, _ := s.GetContent(boardX, boardY)
	assert.Equal(t, sourceRune, r)

	t11, _ := st.At(1, 1)
	r, _, _, _ = s.GetContent(boardX+cellWidth, boardY+1)
	assert.Equal(t, glyph(t11), r)

	r, _, _, _ = s.GetContent(boardX, boardY+st.Rows+1)
	assert.Equal(t, 'S', r)
}
