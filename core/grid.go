package core

import "fmt"

// NewGrid allocates a rows×cols grid of unconnected tiles.
// Every tile starts with Distance == Unreached and no flags set.
// Returns ErrEmptyGrid if rows < 1 or cols < 1.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
	for idx := range g.tiles {
		g.tiles[idx] = Tile{
			row:      idx / cols,
			col:      idx % cols,
			Distance: Unreached,
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of tiles, rows×cols.
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to its row-major index. The caller guarantees InBounds.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// Tile returns the live tile at idx. The caller guarantees 0 ≤ idx < Len().
func (g *Grid) Tile(idx int) *Tile {
	return &g.tiles[idx]
}

// At returns the live tile at (row, col), or ErrOutOfRange.
func (g *Grid) At(row, col int) (*Tile, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return &g.tiles[g.Index(row, col)], nil
}

// Neighbor returns the index of the tile adjacent to idx in direction d,
// and false when that step would leave the grid.
// Complexity: O(1).
func (g *Grid) Neighbor(idx int, d Direction) (int, bool) {
	row, col := g.Coordinate(idx)
	dr, dc := d.Offset()
	nr, nc := row+dr, col+dc
	if !g.InBounds(nr, nc) {
		return 0, false
	}
	return g.Index(nr, nc), true
}

// Conducts reports whether power can flow from idx through side d.
// That requires a connector on side d of idx, an in-grid neighbour, and the
// reciprocal connector on the neighbour. A one-sided flag never conducts.
// Returns the neighbour index on success.
func (g *Grid) Conducts(idx int, d Direction) (int, bool) {
	if !g.tiles[idx].Has(d) {
		return 0, false
	}
	nbr, ok := g.Neighbor(idx, d)
	if !ok || !g.tiles[nbr].Has(d.Opposite()) {
		return 0, false
	}
	return nbr, true
}

// ResetDistances sets every tile's Distance to Unreached.
func (g *Grid) ResetDistances() {
	for i := range g.tiles {
		g.tiles[i].Distance = Unreached
	}
}

// ClearPower sets every tile's Powered flag to false.
func (g *Grid) ClearPower() {
	for i := range g.tiles {
		g.tiles[i].Powered = false
	}
}

// ClearConnectors removes every connector from every tile.
func (g *Grid) ClearConnectors() {
	for i := range g.tiles {
		t := &g.tiles[i]
		t.Left, t.Right, t.Top, t.Bottom = false, false, false, false
	}
}

// Source returns the index of the first tile flagged as source, or -1.
func (g *Grid) Source() int {
	for i := range g.tiles {
		if g.tiles[i].Source {
			return i
		}
	}
	return -1
}

// ConnectorEdges counts reciprocal connector pairs, i.e. the edges of the
// graph that power can traverse. Each pair is counted once by probing only
// Right and Bottom.
// Complexity: O(rows×cols).
func (g *Grid) ConnectorEdges() int {
	n := 0
	for i := range g.tiles {
		if _, ok := g.Conducts(i, Right); ok {
			n++
		}
		if _, ok := g.Conducts(i, Bottom); ok {
			n++
		}
	}
	return n
}

// Tiles returns a copy of all tiles in row-major order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, tiles: g.Tiles()}
}
