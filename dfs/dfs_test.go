package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lightwire/core"
	"github.com/katalvlaran/lightwire/dfs"
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

// TestNilGrid rejects nil input everywhere.
func TestNilGrid(t *testing.T) {
	_, _, err := dfs.DetectCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGridNil)
	_, err = dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGridNil)
	assert.ErrorIs(t, dfs.ValidateTree(nil), dfs.ErrGridNil)
}

// TestDetectCycle_Square finds the 4-cycle on a fully wired 2×2 grid.
func TestDetectCycle_Square(t *testing.T) {
	g, err := core.NewGrid(2, 2)
	require.NoError(t, err)
	link(t, g, 0, core.Right)
	link(t, g, 0, core.Bottom)
	link(t, g, 1, core.Bottom)
	link(t, g, 2, core.Right)

	found, cycle, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, cycle, 5)
	assert.Equal(t, cycle[0], cycle[4])
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, cycle[:4])

	assert.ErrorIs(t, dfs.ValidateTree(g), dfs.ErrCycleDetected)
}

// TestDetectCycle_Tree reports no cycle on an L-shaped spanning tree.
func TestDetectCycle_Tree(t *testing.T) {
	g, err := core.NewGrid(2, 2)
	require.NoError(t, err)
	link(t, g, 0, core.Right)
	link(t, g, 0, core.Bottom)
	link(t, g, 2, core.Right)

	found, cycle, err := dfs.DetectCycle(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cycle)
	assert.NoError(t, dfs.ValidateTree(g))
}

// TestComponents counts isolated tiles and ignores one-sided flags.
func TestComponents(t *testing.T) {
	g, err := core.NewGrid(1, 4)
	require.NoError(t, err)

	n, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	link(t, g, 0, core.Right)
	g.Tile(2).Right = true // one-sided: tile 3 has no Left
	n, err = dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.ErrorIs(t, dfs.ValidateTree(g), dfs.ErrDisconnected)
}

// TestValidateTree_SingleTile: one tile is a trivial spanning tree.
func TestValidateTree_SingleTile(t *testing.T) {
	g, err := core.NewGrid(1, 1)
	require.NoError(t, err)
	assert.NoError(t, dfs.ValidateTree(g))
}
