package hclust

import (
	"fmt"
	"strings"
)

// RenderTree draws a dendrogram as an indented ASCII diagram, one node per
// line, with ├── and └── connectors. Leaves show their name; internal nodes
// show their merge height to 2 decimal places (prefixed by their name when
// one is set, as can happen for parsed trees):
//
//	5.50
//	├── 1.00
//	│   ├── Sample 0
//	│   └── Sample 1
//	└── Sample 2
//
// A nil tree renders as the empty string.
func RenderTree(root *ClusterNode) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(nodeLabel(root))
	sb.WriteByte('\n')
	renderChildren(&sb, root, "")
	return sb.String()
}

func renderChildren(sb *strings.Builder, node *ClusterNode, prefix string) {
	for i, child := range node.Children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(node.Children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(nodeLabel(child))
		sb.WriteByte('\n')
		renderChildren(sb, child, childPrefix)
	}
}

func nodeLabel(node *ClusterNode) string {
	if node.IsLeaf() {
		return node.Name
	}
	if node.Name != "" {
		return fmt.Sprintf("%s %.2f", node.Name, node.Height)
	}
	return fmt.Sprintf("%.2f", node.Height)
}
