package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lightwire/core"
	"github.com/katalvlaran/lightwire/game"
)

const (
	boardX     = 2 // screen column of tile (0,0)
	boardY     = 1 // screen row of tile (0,0)
	cellWidth  = 2 // glyph plus a horizontal joiner
	sourceRune = '★'
)

// glyphs is indexed by connector mask: left=1, right=2, top=4, bottom=8.
var glyphs = [16]rune{
	'·', '╴', '╶', '─',
	'╵', '┘', '└', '┴',
	'╷', '┐', '┌', '┬',
	'│', '┤', '├', '┼',
}

var (
	styleUnpowered = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWin       = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

func connectorMask(t core.Tile) int {
	m := 0
	if t.Left {
		m |= 1
	}
	if t.Right {
		m |= 2
	}
	if t.Top {
		m |= 4
	}
	if t.Bottom {
		m |= 8
	}
	return m
}

func glyph(t core.Tile) rune {
	return glyphs[connectorMask(t)]
}

// tileStyle shades powered wires from yellow toward red as distance grows.
func tileStyle(t core.Tile) tcell.Style {
	if !t.Powered {
		return styleUnpowered
	}
	green := 255 - min(255, t.Distance*8)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, int32(green), 0))
}

// cellAt converts a screen position to tile coordinates. Points above or
// left of the board report false; the game range-checks the far edges.
func cellAt(x, y int) (row, col int, ok bool) {
	if x < boardX || y < boardY {
		return 0, 0, false
	}
	return y - boardY, (x - boardX) / cellWidth, true
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// draw renders the board, the cursor and the status line.
func draw(s tcell.Screen, st game.State, cursor core.Position) {
	s.Clear()

	for row := 0; row < st.Rows; row++ {
		for col := 0; col < st.Cols; col++ {
			t, _ := st.At(row, col)
			style := tileStyle(t)
			r := glyph(t)
			if t.Source {
				r = sourceRune
			}
			if (core.Position{Row: row, Col: col}) == cursor {
				style = style.Reverse(true)
			}
			x, y := boardX+col*cellWidth, boardY+row
			s.SetContent(x, y, r, nil, style)

			joiner := ' '
			if t.Right {
				joiner = '─'
			}
			s.SetContent(x+1, y, joiner, nil, tileStyle(t))
		}
	}

	statusY := boardY + st.Rows + 1
	drawText(s, boardX, statusY, styleStatus, fmt.Sprintf(
		"Score: %d  Time: %ds  Moves: %d  Rotations: %d  Radius: %d",
		st.Score, st.Ticks, st.MoveCount, st.RotationCount, st.Radius))
	if st.Solved {
		drawText(s, boardX, statusY+1, styleWin,
			fmt.Sprintf("All wires lit in %d actions! Press r for a new board.", st.Score))
	} else {
		drawText(s, boardX, statusY+1, styleStatus,
			"arrows/hjkl: move source  click/space: rotate  wasd: cursor  r: reset  q: quit")
	}

	s.Show()
}
