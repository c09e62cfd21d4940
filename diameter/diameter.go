// Package diameter measures the connector graph with a double BFS sweep.
//
// FarthestFrom runs one reciprocity BFS and returns the first-discovered tile
// at maximum distance. Diameter runs it twice: the farthest tile from the
// source, then the farthest tile from that one. On a tree the distance of the
// second sweep's farthest tile is the exact diameter.
//
// Radius derives the power radius from a diameter: diameter/2 + 1. The game
// computes it once per generation, on the unscrambled board, and keeps it
// until the next generation.
package diameter

import (
	"fmt"

	"github.com/katalvlaran/lightwire/bfs"
	"github.com/katalvlaran/lightwire/core"
)

// FarthestFrom resets every tile's Distance, runs a reciprocity BFS from
// start and returns the tile with the maximum finite distance. Ties go to
// the tile discovered first.
func FarthestFrom(g *core.Grid, start int) (int, error) {
	res, err := bfs.BFS(g, start)
	if err != nil {
		return 0, fmt.Errorf("diameter: farthest from %d: %w", start, err)
	}
	return res.Farthest, nil
}

// Diameter returns the longest shortest-path distance of the component that
// contains source, using two FarthestFrom sweeps. Exact when that component
// is a tree. After the call, tile distances are those of the second sweep.
func Diameter(g *core.Grid, source int) (int, error) {
	far, err := FarthestFrom(g, source)
	if err != nil {
		return 0, err
	}
	res, err := bfs.BFS(g, far)
	if err != nil {
		return 0, fmt.Errorf("diameter: second sweep from %d: %w", far, err)
	}

	return res.MaxDistance, nil
}

// Radius returns diameter/2 + 1 (integer division).
func Radius(diameter int) int {
	return diameter/2 + 1
}
