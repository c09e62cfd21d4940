// Package core provides the tile arena that every lightwire algorithm works on.
//
// A Grid stores rows×cols Tiles in one row-major slice and addresses them by
// index (row*cols + col). Tiles carry four connector flags (Left, Right, Top,
// Bottom), a powered flag, a source flag and a BFS distance scratch field.
//
// Why an arena?
//
//   - Edges, union-find and BFS all operate over plain int indices, so no
//     collaborator retains a pointer alias into another's structure.
//   - Neighbour lookups derive only from grid adjacency, so traversal never
//     constructs out-of-range coordinates.
//
// Directions form a closed four-value enumeration with precomputed opposite
// and row/col offset tables:
//
//	        Top
//	         │
//	Left ────┼──── Right
//	         │
//	       Bottom
//
// Two adjacent tiles conduct only when both carry a connector facing each
// other (connector reciprocity); see Grid.Conducts.
//
// Rotation is a fixed cyclic permutation of the connector flags:
//
//	new_left = old_bottom, new_bottom = old_right,
//	new_right = old_top,   new_top = old_left
//
// Concurrency: Grid is not goroutine-safe. It is owned by a single caller
// (normally game.Game) and mutated synchronously.
package core
