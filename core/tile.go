package core

// Has reports whether t carries a connector on side d.
func (t *Tile) Has(d Direction) bool {
	switch d {
	case Left:
		return t.Left
	case Right:
		return t.Right
	case Top:
		return t.Top
	case Bottom:
		return t.Bottom
	}
	return false
}

// Set turns the connector on side d on or off.
func (t *Tile) Set(d Direction, on bool) {
	switch d {
	case Left:
		t.Left = on
	case Right:
		t.Right = on
	case Top:
		t.Top = on
	case Bottom:
		t.Bottom = on
	}
}

// Rotate applies one cyclic step to the connectors:
// left←bottom, bottom←right, right←top, top←left.
// Four steps restore the original flags.
func (t *Tile) Rotate() {
	t.Left, t.Bottom, t.Right, t.Top = t.Bottom, t.Right, t.Top, t.Left
}

// RotateN applies k rotation steps (k mod 4; negative k counts backwards).
func (t *Tile) RotateN(k int) {
	k %= 4
	if k < 0 {
		k += 4
	}
	for i := 0; i < k; i++ {
		t.Rotate()
	}
}

// ConnectorCount returns how many sides carry a connector. Rotation preserves it.
func (t *Tile) ConnectorCount() int {
	n := 0
	for _, d := range Directions {
		if t.Has(d) {
			n++
		}
	}
	return n
}

// Row returns the tile's row.
func (t *Tile) Row() int { return t.row }

// Col returns the tile's column.
func (t *Tile) Col() int { return t.col }

// Position returns the tile's grid coordinates.
func (t *Tile) Position() Position {
	return Position{Row: t.row, Col: t.col}
}
