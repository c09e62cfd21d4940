// Package dfs defines the vertex colours and sentinel errors used by the
// connector-graph checks.
package dfs

import "errors"

// Vertex colours for depth-first search.
const (
	White = iota // White: the tile has not been visited yet.
	Gray         // Gray: the tile is on the current DFS stack.
	Black        // Black: the tile and all its descendants have been fully explored.
)

var (
	// ErrGridNil is returned when a nil *core.Grid is passed.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrCycleDetected indicates the connector graph contains a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrDisconnected indicates some tile cannot be reached from tile 0.
	ErrDisconnected = errors.New("dfs: connector graph is disconnected")
)

// frame is one explicit-stack entry: a tile, the tile it was entered from
// (-1 for a root), and the next direction to probe.
type frame struct {
	idx    int
	parent int
	next   int
}
