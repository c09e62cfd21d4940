package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lightwire/core"
)

type commandKind int

const (
	cmdNone commandKind = iota
	cmdQuit
	cmdReset
	cmdMoveSource // arrows, hjkl
	cmdMoveCursor // wasd
	cmdRotate     // space, enter
)

type command struct {
	kind commandKind
	dir  core.Direction
}

var runeCommands = map[rune]command{
	'q': {kind: cmdQuit},
	'r': {kind: cmdReset},
	'h': {kind: cmdMoveSource, dir: core.Left},
	'j': {kind: cmdMoveSource, dir: core.Bottom},
	'k': {kind: cmdMoveSource, dir: core.Top},
	'l': {kind: cmdMoveSource, dir: core.Right},
	'a': {kind: cmdMoveCursor, dir: core.Left},
	's': {kind: cmdMoveCursor, dir: core.Bottom},
	'w': {kind: cmdMoveCursor, dir: core.Top},
	'd': {kind: cmdMoveCursor, dir: core.Right},
	' ': {kind: cmdRotate},
}

// keyCommand maps a key press to a command; unbound keys yield cmdNone.
func keyCommand(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command{kind: cmdQuit}
	case tcell.KeyLeft:
		return command{kind: cmdMoveSource, dir: core.Left}
	case tcell.KeyRight:
		return command{kind: cmdMoveSource, dir: core.Right}
	case tcell.KeyUp:
		return command{kind: cmdMoveSource, dir: core.Top}
	case tcell.KeyDown:
		return command{kind: cmdMoveSource, dir: core.Bottom}
	case tcell.KeyEnter:
		return command{kind: cmdRotate}
	case tcell.KeyRune:
		if c, ok := runeCommands[ev.Rune()]; ok {
			return c
		}
	}
	return command{kind: cmdNone}
}
