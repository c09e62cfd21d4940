package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lightwire/core"
	"github.com/katalvlaran/lightwire/prim_kruskal"
)

// EnumerateCandidateEdges returns every 4-neighbour pair of g exactly once,
// each with an independent weight uniform in [0, MaxWeight).
//
// Order (and therefore RNG consumption) is fixed: row-major over tiles, and
// per tile the right neighbour before the bottom neighbour. No diagonals,
// no duplicates.
//
// Complexity: O(rows×cols).
func EnumerateCandidateEdges(g *core.Grid, rng *rand.Rand) []Edge {
	rows, cols := g.Rows(), g.Cols()
	edges := make([]Edge, 0, CandidateCount(rows, cols))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := g.Index(row, col)
			if col < cols-1 {
				edges = append(edges, Edge{From: idx, To: g.Index(row, col+1), Weight: rng.Intn(MaxWeight)})
			}
			if row < rows-1 {
				edges = append(edges, Edge{From: idx, To: g.Index(row+1, col), Weight: rng.Intn(MaxWeight)})
			}
		}
	}

	return edges
}

// BuildSpanningTree selects n−1 of the candidate edges forming a spanning tree
// over n tiles. Kruskal is the default; pass prim_kruskal.WithMethod(MethodPrim)
// (and optionally WithRoot) for Prim's algorithm.
// The candidate slice is not modified.
func BuildSpanningTree(n int, edges []Edge, opts ...prim_kruskal.Option) ([]Edge, error) {
	o := prim_kruskal.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	tree, _, err := prim_kruskal.Compute(n, edges, o)
	if err != nil {
		return nil, fmt.Errorf("maze: spanning tree: %w", err)
	}

	return tree, nil
}

// ApplyConnectors sets the matching connector pair on both endpoints of every
// tree edge: Right/Left for horizontal pairs, Bottom/Top for vertical pairs.
// Endpoint order does not matter. Every edge is validated before any tile is
// written, so on ErrNotAdjacent (or core.ErrOutOfRange) g is unchanged.
func ApplyConnectors(g *core.Grid, tree []Edge) error {
	if g == nil {
		return ErrNilGrid
	}
	dirs := make([]core.Direction, len(tree))
	for i, e := range tree {
		d, err := directionBetween(g, e.From, e.To)
		if err != nil {
			return err
		}
		dirs[i] = d
	}
	for i, e := range tree {
		g.Tile(e.From).Set(dirs[i], true)
		g.Tile(e.To).Set(dirs[i].Opposite(), true)
	}

	return nil
}

// directionBetween returns the side of from that faces to.
func directionBetween(g *core.Grid, from, to int) (core.Direction, error) {
	if from < 0 || from >= g.Len() || to < 0 || to >= g.Len() {
		return 0, fmt.Errorf("%w: edge %d-%d", core.ErrOutOfRange, from, to)
	}
	for _, d := range core.Directions {
		if nbr, ok := g.Neighbor(from, d); ok && nbr == to {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %d-%d", ErrNotAdjacent, from, to)
}

// RandomizeRotations gives every tile, in row-major order, rng.Intn(4)
// rotation steps. Connector counts are preserved.
func RandomizeRotations(g *core.Grid, rng *rand.Rand) {
	for idx := 0; idx < g.Len(); idx++ {
		g.Tile(idx).RotateN(rng.Intn(4))
	}
}

// Generate clears every connector of g, then enumerates candidates, builds the
// spanning tree and applies its connectors. Rotation noise is NOT applied; the
// caller runs RandomizeRotations once it has measured the solved board.
// Returns the accepted tree edges.
func Generate(g *core.Grid, rng *rand.Rand, opts ...prim_kruskal.Option) ([]Edge, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	g.ClearConnectors()
	candidates := EnumerateCandidateEdges(g, rng)
	tree, err := BuildSpanningTree(g.Len(), candidates, opts...)
	if err != nil {
		return nil, err
	}
	if err := ApplyConnectors(g, tree); err != nil {
		return nil, err
	}

	return tree, nil
}
