// Package maze turns an empty core.Grid into a wiring puzzle.
//
// Generation is Kruskal's algorithm over the grid's 4-neighbour adjacency
// with random weights:
//
//  1. EnumerateCandidateEdges emits one edge per horizontally adjacent pair
//     and one per vertically adjacent pair, each weighted uniformly in
//     [0, MaxWeight). Count = rows·(cols−1) + cols·(rows−1).
//  2. BuildSpanningTree keeps exactly rows·cols−1 of them (a random
//     spanning tree; a rectangular grid is always connected).
//  3. ApplyConnectors writes the matching connector pair on both endpoints
//     of every tree edge. Rejected candidates leave tiles untouched.
//  4. RandomizeRotations scrambles the visible puzzle by giving every tile
//     0–3 independent rotation steps. Connector counts are preserved.
//
// Determinism
//
//	All randomness comes from the *rand.Rand passed in. NewRand(seed) builds
//	one with the package seed policy (0 ⇒ DefaultSeed), so a fixed seed
//	always yields the same board. *rand.Rand is not goroutine-safe.
package maze
