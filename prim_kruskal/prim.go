package prim_kruskal

import (
	"container/heap"
	"fmt"
)

// Prim computes a minimum spanning tree over 0..n-1 by growing outwards from root.
//
// Error Conditions:
//   - ErrDisconnected   : if n < 1, or root cannot reach every vertex.
//   - ErrEdgeEndpoint   : if any edge references a vertex outside 0..n-1.
//   - ErrRootOutOfRange : if root is outside 0..n-1.
//
// Steps:
//  1. Validate n, endpoints and root. n == 1 → trivial empty tree.
//  2. Build an index adjacency list; each undirected edge is listed at both endpoints.
//  3. Mark root visited and push its incident edges.
//  4. Pop the lightest edge (ties: lower enumeration position first). Skip it if its
//     far endpoint is already in the tree; otherwise accept it and push the new
//     vertex's incident edges.
//  5. Fewer than n−1 accepted edges → ErrDisconnected.
//
// Accepted edges are returned oriented From = tree side, To = newly added vertex.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(n int, edges []Edge, root int) ([]Edge, int64, error) {
	// 1. Validate.
	if n < 1 {
		return nil, 0, ErrDisconnected
	}
	if err := validateEdges(n, edges); err != nil {
		return nil, 0, err
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: %d with n=%d", ErrRootOutOfRange, root, n)
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Adjacency over edge positions.
	adj := make([][]int, n)
	for i, e := range edges {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], i)
		adj[e.To] = append(adj[e.To], i)
	}

	visited := make([]bool, n)
	mst := make([]Edge, 0, n-1)
	var totalWeight int64

	pq := &edgePQ{}
	heap.Init(pq)
	pushFrom := func(u int) {
		for _, pos := range adj[u] {
			e := edges[pos]
			v := e.To
			if v == u {
				v = e.From
			}
			if !visited[v] {
				heap.Push(pq, pqItem{from: u, to: v, weight: e.Weight, seq: pos})
			}
		}
	}

	// 3. Seed with root.
	visited[root] = true
	pushFrom(root)

	// 4. Grow.
	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(pqItem)
		if visited[it.to] {
			continue
		}
		visited[it.to] = true
		mst = append(mst, Edge{From: it.from, To: it.to, Weight: it.weight})
		totalWeight += int64(it.weight)
		pushFrom(it.to)
	}

	// 5. Coverage check.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// pqItem is a candidate edge leaving the tree; seq is its position in the input slice.
type pqItem struct {
	from, to int
	weight   int
	seq      int
}

// edgePQ implements heap.Interface for a min-heap ordered by (weight, seq).
type edgePQ []pqItem

// Len returns the number of items in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then by enumeration position so ties are deterministic.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new pqItem. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the last item. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
