// Package core defines the Direction enumeration, the Tile cell type, the
// Grid arena and the sentinel errors shared by all lightwire packages.
//
// Errors:
//
//	ErrEmptyGrid        - grid dimensions below 1×1.
//	ErrOutOfRange       - row/col or index outside the grid.
//	ErrUnknownDirection - direction token not recognised.
package core

import "errors"

// Sentinel errors for core grid operations.
var (
	// ErrEmptyGrid indicates a grid with fewer than one row or one column.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")

	// ErrOutOfRange indicates tile coordinates or an index outside the grid.
	ErrOutOfRange = errors.New("core: tile coordinates out of range")

	// ErrUnknownDirection indicates a direction token that is not one of
	// left, right, top (up) or bottom (down).
	ErrUnknownDirection = errors.New("core: unknown direction")
)

// Unreached is the Distance sentinel of a tile not yet discovered by a BFS pass.
const Unreached = -1

// Position is a (Row, Col) pair on the grid.
type Position struct {
	Row, Col int
}

// Tile is a single grid cell.
//
// The coordinates are assigned by NewGrid and read through Row, Col and
// Position. The connector flags are written by maze generation and
// afterwards permuted only by Rotate. Powered, Source and Distance are owned
// by the power and bfs packages.
type Tile struct {
	row, col int

	// Connector flags: the tile has a wire leaving through that side.
	Left, Right, Top, Bottom bool

	// Powered reports whether power reaches this tile within the radius.
	Powered bool

	// Source marks the power station. Exactly one tile is the source on a
	// generated board.
	Source bool

	// Distance is the BFS distance of the last traversal, or Unreached.
	Distance int
}

// Grid is a fixed rows×cols matrix of Tiles stored row-major.
// Its dimensions never change after NewGrid.
type Grid struct {
	rows, cols int
	tiles      []Tile
}
