package hclust

// ClustersGivenK derives the flat k-way partition for every achievable k by
// replaying the merge sequence through a union-find. The returned table has
// n+1 entries: index i holds the partition into i+1 clusters (so k clusters
// live at index k-1, obtained after applying exactly n-k merges), and the
// final entry is an empty sentinel for the unrepresentable k = n+1.
//
// Within an entry, each cluster lists its sample indices in ascending order
// and the clusters themselves are ordered by their minimum member, so equal
// inputs always render identically. n == 0 yields a table holding the single
// empty sentinel.
func ClustersGivenK(merges [][2]int, n int) [][][]int {
	table := make([][][]int, n+1)
	table[n] = [][]int{}
	if n == 0 {
		return table
	}

	uf := NewUnionFind(n)

	// Before any merge: n singletons, the k=n entry.
	table[n-1] = flatPartition(uf, n)

	for step, m := range merges {
		uf.Merge(m[0], m[1], n+step)
		// After step+1 merges there are n-(step+1) clusters.
		table[n-step-2] = flatPartition(uf, n)
	}

	return table
}

// flatPartition snapshots the union-find state as sorted member lists.
// Scanning samples in ascending order makes members ascending within each
// cluster and, by tracking first encounter, orders clusters by minimum member.
func flatPartition(uf *UnionFind, n int) [][]int {
	members := make(map[int][]int, n)
	roots := make([]int, 0, n)
	for i := 0; i < n; i++ {
		r := uf.Find(i)
		if _, seen := members[r]; !seen {
			roots = append(roots, r)
		}
		members[r] = append(members[r], i)
	}

	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		out = append(out, members[r])
	}
	return out
}
