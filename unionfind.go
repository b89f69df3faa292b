package hclust

// UnionFind implements a disjoint-set data structure with path compression,
// sized for dendrogram cluster IDs: original samples 0..n-1 plus merged
// clusters n..2n-2, so 2*n - 1 elements in total.
type UnionFind struct {
	parent []int
	size   []int
}

// NewUnionFind creates a UnionFind over n samples with room for the n-1
// synthetic cluster IDs a full merge sequence assigns.
func NewUnionFind(n int) *UnionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < n && i < total; i++ {
		size[i] = 1
	}
	return &UnionFind{parent: parent, size: size}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	// Walk to the root.
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Merge combines the sets containing a and b under the synthetic cluster ID
// c, which becomes the new root. c must be an unused ID in [n, 2n-2]; merge
// sequences produced by AverageLinkage use c = n + step. Returns the size of
// the merged set.
func (uf *UnionFind) Merge(a, b, c int) int {
	rootA := uf.Find(a)
	rootB := uf.Find(b)
	merged := uf.size[rootA]
	if rootB != rootA {
		merged += uf.size[rootB]
		uf.parent[rootB] = c
	}
	uf.parent[rootA] = c
	uf.size[c] = merged
	return merged
}
