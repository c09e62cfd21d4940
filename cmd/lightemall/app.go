package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lightwire/core"
	"github.com/katalvlaran/lightwire/game"
)

type app struct {
	screen tcell.Screen
	game   *game.Game
	chime  *chime

	cursor    core.Position
	buttons   tcell.ButtonMask
	wasSolved bool
}

func newApp(s tcell.Screen, g *game.Game, c *chime) *app {
	return &app{screen: s, game: g, chime: c, wasSolved: g.IsSolved()}
}

// run draws until the player quits. tick drives the game clock through
// interrupt events so that all game calls stay on this goroutine.
func (a *app) run(tick time.Duration) {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		t := time.NewTicker(tick)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.handle(ev) {
			return
		}
		a.draw()
	}
}

// handle applies one event and reports false when the app should exit.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.apply(keyCommand(ev))
	case *tcell.EventMouse:
		a.click(ev)
	case *tcell.EventInterrupt:
		a.game.Tick()
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) apply(c command) bool {
	switch c.kind {
	case cmdQuit:
		return false
	case cmdReset:
		if _, err := a.game.Reset(); err != nil {
			log.WithError(err).Warn("reset failed")
		}
		a.wasSolved = a.game.IsSolved()
	case cmdMoveSource:
		a.game.MoveSource(c.dir)
	case cmdMoveCursor:
		a.moveCursor(c.dir)
	case cmdRotate:
		a.rotate(a.cursor.Row, a.cursor.Col)
	}
	a.checkSolved()
	return true
}

func (a *app) moveCursor(d core.Direction) {
	st := a.game.QueryState()
	dr, dc := d.Offset()
	row, col := a.cursor.Row+dr, a.cursor.Col+dc
	if row >= 0 && row < st.Rows && col >= 0 && col < st.Cols {
		a.cursor = core.Position{Row: row, Col: col}
	}
}

// click rotates the tile under the pointer on the press edge of button 1.
func (a *app) click(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = ev.Buttons()
	if !pressed {
		return
	}
	row, col, ok := cellAt(ev.Position())
	if ok && a.rotate(row, col) {
		a.cursor = core.Position{Row: row, Col: col}
	}
	a.checkSolved()
}

func (a *app) rotate(row, col int) bool {
	if _, err := a.game.RotateTile(row, col); err != nil {
		log.WithError(err).WithFields(logrus.Fields{"row": row, "col": col}).Debug("rotate rejected")
		return false
	}
	return true
}

func (a *app) checkSolved() {
	solved := a.game.IsSolved()
	if solved && !a.wasSolved {
		a.chime.play()
	}
	a.wasSolved = solved
}

func (a *app) draw() {
	draw(a.screen, a.game.QueryState(), a.cursor)
}
