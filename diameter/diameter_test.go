package diameter_test

import (
	"testing"

	"github.com/katalvlaran/lightwire/bfs"
	"github.com/katalvlaran/lightwire/core"
	"github.com/katalvlaran/lightwire/diameter"
	"github.com/katalvlaran/lightwire/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// link sets the reciprocal connector pair between idx and its neighbour in d.
func link(t *testing.T, g *core.Grid, idx int, d core.Direction) {
	t.Helper()
	nbr, ok := g.Neighbor(idx, d)
	require.True(t, ok)
	g.Tile(idx).Set(d, true)
	g.Tile(nbr).Set(d.Opposite(), true)
}

// TestDiameter_LinearChain: a k-tile chain has diameter k−1 from any start.
func TestDiameter_LinearChain(t *testing.T) {
	for _, k := range []int{1, 2, 3, 8, 25} {
		g, err := core.NewGrid(1, k)
		require.NoError(t, err)
		for i := 0; i < k-1; i++ {
			link(t, g, i, core.Right)
		}
		for _, start := range []int{0, k / 2, k - 1} {
			d, err := diameter.Diameter(g, start)
			require.NoError(t, err)
			assert.Equal(t, k-1, d, "k=%d start=%d", k, start)
		}
	}
}

// TestDiameter_VerticalSnake: a chain that bends through every tile of a 3×3 grid.
func TestDiameter_VerticalSnake(t *testing.T) {
	g, err := core.NewGrid(3, 3)
	require.NoError(t, err)
	// 0→3→6→7→4→1→2→5→8
	link(t, g, 0, core.Bottom)
	link(t, g, 3, core.Bottom)
	link(t, g, 6, core.Right)
	link(t, g, 7, core.Top)
	link(t, g, 4, core.Top)
	link(t, g, 1, core.Right)
	link(t, g, 2, core.Bottom)
	link(t, g, 5, core.Bottom)

	d, err := diameter.Diameter(g, 4)
	require.NoError(t, err)
	assert.Equal(t, 8, d)
	assert.Equal(t, 5, diameter.Radius(d))
}

// TestFarthestFrom_TieBreak: at equal distance the first-discovered tile wins.
func TestFarthestFrom_TieBreak(t *testing.T) {
	g, err := core.NewGrid(1, 5)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		link(t, g, i, core.Right)
	}
	// from the centre, 0 and 4 are both at distance 2; Left is probed first
	far, err := diameter.FarthestFrom(g, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, far)
}

// TestDiameter_Star: branches of length 1, 2 and 3 around the centre of a 1-wide cross.
func TestDiameter_Star(t *testing.T) {
	g, err := core.NewGrid(7, 7)
	require.NoError(t, err)
	centre := g.Index(3, 3)
	// west arm length 1, east arm length 2, north arm length 3
	link(t, g, centre, core.Left)
	link(t, g, centre, core.Right)
	link(t, g, g.Index(3, 4), core.Right)
	link(t, g, centre, core.Top)
	link(t, g, g.Index(2, 3), core.Top)
	link(t, g, g.Index(1, 3), core.Top)

	d, err := diameter.Diameter(g, centre)
	require.NoError(t, err)
	assert.Equal(t, 5, d, "north tip to east tip")
}

// TestDiameter_GeneratedTree cross-checks the double sweep against a
// brute-force all-pairs BFS on generated spanning trees.
func TestDiameter_GeneratedTree(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := core.NewGrid(5, 6)
		require.NoError(t, err)
		_, err = maze.Generate(g, maze.NewRand(seed))
		require.NoError(t, err)

		want := 0
		for start := 0; start < g.Len(); start++ {
			res, err := bfs.BFS(g, start)
			require.NoError(t, err)
			if res.MaxDistance > want {
				want = res.MaxDistance
			}
		}

		got, err := diameter.Diameter(g, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got, "seed %d", seed)
	}
}

// TestRadius checks integer division.
func TestRadius(t *testing.T) {
	for d, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 2, 8: 5, 9: 5} {
		assert.Equal(t, want, diameter.Radius(d), "diameter %d", d)
	}
}

// TestDiameter_Errors propagates BFS input errors.
func TestDiameter_Errors(t *testing.T) {
	_, err := diameter.Diameter(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	g, err := core.NewGrid(1, 1)
	require.NoError(t, err)
	_, err = diameter.FarthestFrom(g, 1)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)
}
