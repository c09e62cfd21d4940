package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four sides of a tile.
// The iota order is also the order in which BFS probes neighbours.
type Direction int

const (
	// Left is the west side (col-1).
	Left Direction = iota
	// Right is the east side (col+1).
	Right
	// Top is the north side (row-1).
	Top
	// Bottom is the south side (row+1).
	Bottom
)

// Directions lists all directions in probe order.
var Directions = [4]Direction{Left, Right, Top, Bottom}

var (
	opposites = [4]Direction{Right, Left, Bottom, Top}
	// offsets holds {dRow, dCol} per direction.
	offsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	names   = [4]string{"left", "right", "top", "bottom"}
)

// Valid reports whether d is one of the four enumerated directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Bottom
}

// Opposite returns the side facing d on the neighbouring tile.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Offset returns the row and column deltas of a step in direction d.
func (d Direction) Offset() (dRow, dCol int) {
	return offsets[d][0], offsets[d][1]
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return names[d]
}

// ParseDirection maps a movement token to a Direction.
// Accepted (case-insensitive): left, right, top, up, bottom, down.
// Any other token yields ErrUnknownDirection.
func ParseDirection(token string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "top", "up":
		return Top, nil
	case "bottom", "down":
		return Bottom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, token)
	}
}
