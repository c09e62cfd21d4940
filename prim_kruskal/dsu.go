package prim_kruskal

// UnionFind is a disjoint-set forest over the vertices 0..n-1.
// It is built fresh for each spanning-tree computation and then discarded.
type UnionFind struct {
	parent []int
	rank   []int
}

// NewUnionFind registers every vertex 0..n-1 as the root of its own set.
// Complexity: O(n).
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Len returns the number of registered vertices.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Find returns the representative of x's set.
// Every node on the path from x to the root is re-pointed at the root.
// x must be in 0..Len()-1.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// second pass: flatten the walked path onto root
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing a and b, attaching the lower-rank root
// under the higher-rank one. Returns false, changing nothing, when a and b
// already share a root.
func (uf *UnionFind) Union(a, b int) bool {
	rootA := uf.Find(a)
	rootB := uf.Find(b)
	if rootA == rootB {
		return false
	}
	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}

	return true
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}
