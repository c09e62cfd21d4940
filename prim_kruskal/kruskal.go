package prim_kruskal

import "sort"

// Kruskal computes a minimum spanning tree over the vertices 0..n-1.
//
// Error Conditions:
//   - ErrDisconnected : if n < 1, or fewer than n−1 edges can join distinct components.
//   - ErrEdgeEndpoint : if any edge references a vertex outside 0..n-1.
//
// Steps:
//  1. Validate n and every edge endpoint. n == 1 → trivial empty tree.
//  2. Copy the edges (the caller's slice is never reordered) and drop self-loops.
//  3. sort.SliceStable ascending by Weight; equal weights keep enumeration order.
//  4. Sweep: accept an edge iff UnionFind.Union merges two components.
//  5. Stop once n−1 edges are accepted. Fewer after the sweep → ErrDisconnected.
//
// The returned edges are in acceptance order, hence non-decreasing in weight.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	// 1. Validate vertex count and endpoints.
	if n < 1 {
		return nil, 0, ErrDisconnected
	}
	if err := validateEdges(n, edges); err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Filtered working copy.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		sorted = append(sorted, e)
	}

	// 3. Stable sort keeps tie-breaking reproducible under a fixed seed.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 4. Sweep.
	var (
		uf          = NewUnionFind(n)
		mst         = make([]Edge, 0, n-1)
		totalWeight int64
	)
	for _, e := range sorted {
		if !uf.Union(e.From, e.To) {
			continue // same component: would close a cycle
		}
		mst = append(mst, e)
		totalWeight += int64(e.Weight)
		// 5. A tree on n vertices has exactly n−1 edges.
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
