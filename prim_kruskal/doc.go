// Package prim_kruskal computes minimum spanning trees over index-addressed
// vertex sets: Kruskal's algorithm on a disjoint-set (UnionFind), and Prim's
// algorithm on a min-heap.
//
// Vertices are the integers 0..n-1 (for lightwire, tile indices of a
// core.Grid). Edges are plain values {From, To, Weight}; nothing in this
// package holds pointers into the caller's structures.
//
// Algorithms Provided
//
//   - Kruskal(n, edges) ([]Edge, int64, error)
//
//   - Strategy: stable-sort all edges ascending by weight, then sweep. An edge is
//     accepted iff its endpoints lie in different UnionFind components; the
//     components are then merged. The sweep stops at n−1 accepted edges.
//
//   - Determinism: the stable sort keeps the caller's enumeration order for
//     equal weights, so a fixed seed always yields the same tree.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(n, edges, root) ([]Edge, int64, error)
//
//   - Strategy: grow one tree from root; a min-heap holds candidate edges
//     leaving the tree, ordered by weight and then by enumeration order.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// UnionFind
//
//	NewUnionFind(n) registers every vertex as its own root. Find is iterative
//	(no recursion, so stack depth is independent of grid size) and compresses
//	every node on the walked path onto the root. Union merges by rank.
//
// Both algorithms reject endpoints outside 0..n-1 with ErrEdgeEndpoint and
// report ErrDisconnected when fewer than n−1 edges can be accepted.
//
// Compute dispatches on MSTOptions.Method for callers that pick the
// algorithm at runtime (see maze.BuildSpanningTree).
package prim_kruskal
