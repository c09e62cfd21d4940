// Package bfs provides breadth-first search over a core.Grid's connector graph.
//
// What
//
//   - Explore tiles in non-decreasing distance (edge count) from a start tile.
//   - An edge is followed only under connector reciprocity: the current tile
//     has a connector facing the neighbour AND the neighbour has the
//     reciprocal connector facing back (core.Grid.Conducts).
//   - Each tile is assigned a distance at most once; first discovery wins.
//   - Writes the result into the tiles' Distance fields (after resetting all
//     of them to core.Unreached) and also returns a Result:
//   - Order: visit sequence of tile indices
//   - Farthest: first-discovered tile at the maximum distance
//   - MaxDistance: that maximum distance
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a tile is discovered and its distance assigned)
//   - OnVisit   (when a tile is dequeued; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbours are probed in core.Directions order (Left, Right, Top, Bottom),
//	so the visit sequence, and with it every tie-break, is reproducible.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)   (four probes per tile)
//   - Memory: O(N)   (queue and Order)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithOnEnqueue(func(idx, depth int) { /* ... */ }),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrStartOutOfRange  if start is not a tile index of the grid.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
