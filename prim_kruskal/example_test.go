package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/lightwire/prim_kruskal"
)

// ExampleKruskal_Square runs Kruskal on a 2×2 grid (vertices 0..3):
//
//	0 ─5─ 1
//	│     │
//	1     4
//	│     │
//	2 ─2─ 3
//
// The heaviest edge 0–1 is left out.
func ExampleKruskal_square() {
	edges := []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 4},
		{From: 2, To: 3, Weight: 2},
	}
	tree, total, err := prim_kruskal.Kruskal(4, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range tree {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 7, Edges: 0-2 2-3 1-3
}

// ExamplePrim_Square grows the same tree from vertex 1.
func ExamplePrim_square() {
	edges := []prim_kruskal.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 4},
		{From: 2, To: 3, Weight: 2},
	}
	tree, total, _ := prim_kruskal.Prim(4, edges, 1)
	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range tree {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 7, Edges: 1-3 3-2 2-0
}
