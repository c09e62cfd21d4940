package maze

import (
	"errors"

	"github.com/katalvlaran/lightwire/prim_kruskal"
)

// MaxWeight is the exclusive upper bound of candidate edge weights.
const MaxWeight = 1000

// ErrNotAdjacent indicates a tree edge whose endpoints are not grid neighbours.
var ErrNotAdjacent = errors.New("maze: edge endpoints are not grid-adjacent")

// ErrNilGrid indicates a nil *core.Grid.
var ErrNilGrid = errors.New("maze: grid is nil")

// Edge is a weighted candidate connector between two tile indices.
type Edge = prim_kruskal.Edge

// CandidateCount returns rows·(cols−1) + cols·(rows−1), the number of
// edges EnumerateCandidateEdges produces.
func CandidateCount(rows, cols int) int {
	return rows*(cols-1) + cols*(rows-1)
}
