package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lightwire/bfs"
	"github.com/katalvlaran/lightwire/core"
)

// ExampleBFS_Elbow walks an L-shaped wire on a 2×2 grid:
//
//	0 ── 1
//	     │
//	2    3
//
// Tile 2 carries no connectors and is never reached.
func ExampleBFS_elbow() {
	g, _ := core.NewGrid(2, 2)
	g.Tile(0).Right = true
	g.Tile(1).Left = true
	g.Tile(1).Bottom = true
	g.Tile(3).Top = true

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order, res.Farthest, res.MaxDistance)
	dist := make([]int, 0, g.Len())
	for _, tile := range g.Tiles() {
		dist = append(dist, tile.Distance)
	}
	fmt.Println(dist)
	// Output:
	// [0 1 3] 3 2
	// [0 1 -1 2]
}
