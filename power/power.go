// Package power simulates power flow from the source tile across a core.Grid.
//
// Propagate clears every powered flag, then runs a reciprocity BFS from the
// source. A tile is powered iff its BFS distance is ≤ radius. Tiles beyond
// the radius are still traversed, so tiles further along the same wire keep
// their true distances, but they are not marked powered.
//
// Every call rewrites every tile's Distance field; nothing from an earlier
// pass is read.
//
// Complexity: O(rows×cols) time and memory per call.
package power

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lightwire/bfs"
	"github.com/katalvlaran/lightwire/core"
)

// ErrNegativeRadius indicates a radius below zero.
var ErrNegativeRadius = errors.New("power: radius must be non-negative")

// Propagate recomputes Powered and Distance for every tile of g from the
// source tile at index source, bounded by radius.
// The source itself always ends with Powered == true and Distance == 0.
// Returns bfs.ErrGridNil, bfs.ErrStartOutOfRange or ErrNegativeRadius.
func Propagate(g *core.Grid, source, radius int) error {
	if radius < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	if g == nil {
		return bfs.ErrGridNil
	}
	g.ClearPower()

	_, err := bfs.BFS(g, source, bfs.WithOnEnqueue(func(idx, depth int) {
		if depth <= radius {
			g.Tile(idx).Powered = true
		}
	}))
	if err != nil {
		return fmt.Errorf("power: propagate: %w", err)
	}

	return nil
}

// IsFullyPowered reports whether every tile of g is powered.
func IsFullyPowered(g *core.Grid) bool {
	for i := 0; i < g.Len(); i++ {
		if !g.Tile(i).Powered {
			return false
		}
	}
	return true
}

// PoweredCount returns how many tiles of g are powered.
func PoweredCount(g *core.Grid) int {
	n := 0
	for i := 0; i < g.Len(); i++ {
		if g.Tile(i).Powered {
			n++
		}
	}
	return n
}
