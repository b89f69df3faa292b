package hclust

import "fmt"

// ClusterNode is one node of a dendrogram. Leaves carry a sample's display
// name and height 0; internal nodes carry the linkage distance at which their
// two children merged. By construction a node's height is never below its
// children's (average linkage produces non-decreasing merge heights).
type ClusterNode struct {
	Name     string
	Height   float64
	Children []*ClusterNode
}

// IsLeaf reports whether the node has no children.
func (c *ClusterNode) IsLeaf() bool { return len(c.Children) == 0 }

// Leaves returns the node's leaf descendants in left-to-right order.
// A leaf returns itself.
func (c *ClusterNode) Leaves() []*ClusterNode {
	if c.IsLeaf() {
		return []*ClusterNode{c}
	}
	var out []*ClusterNode
	for _, child := range c.Children {
		out = append(out, child.Leaves()...)
	}
	return out
}

// sampleLabel returns the display label for sample i: labels[i] when
// provided, otherwise "Sample {i}".
func sampleLabel(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return fmt.Sprintf("Sample %d", i)
}

// BuildTree replays a merge sequence into a nested dendrogram and returns
// the root. merges and heights are parallel slices as produced by
// AverageLinkage for n samples; labels may be nil or length n. Each merge's
// children keep the left/right order the merge recorded. Returns nil when
// n == 0; for n == 1 the root is the single sample's leaf.
func BuildTree(merges [][2]int, heights []float64, n int, labels []string) *ClusterNode {
	if n <= 0 {
		return nil
	}

	// Live nodes indexed by cluster id: samples 0..n-1, merged n..2n-2.
	nodes := make([]*ClusterNode, 2*n-1)
	for i := 0; i < n; i++ {
		nodes[i] = &ClusterNode{Name: sampleLabel(labels, i)}
	}

	for step, m := range merges {
		nodes[n+step] = &ClusterNode{
			Height:   heights[step],
			Children: []*ClusterNode{nodes[m[0]], nodes[m[1]]},
		}
	}

	return nodes[n-1+len(merges)]
}

// LeafOrder returns the permutation of sample indices visited by a
// depth-first, left-to-right traversal of the merge tree. Members of every
// cluster appear contiguously, so a dendrogram drawn in this order has no
// crossing branches.
func LeafOrder(merges [][2]int, n int) []int {
	order := make([]int, 0, n)
	if n <= 0 {
		return order
	}

	root := n - 1 + len(merges)
	stack := []int{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id < n {
			order = append(order, id)
			continue
		}
		m := merges[id-n]
		// Push right first so the left child is visited first.
		stack = append(stack, m[1], m[0])
	}

	return order
}
