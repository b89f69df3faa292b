package hclust

import (
	"fmt"
	"strconv"
	"strings"
)

// Newick serializes a dendrogram to Newick bracket notation, terminated by
// ";". Leaves render as their name; internal nodes render their children in
// order followed by the merge height to 4 decimal places:
//
//	(Sample 0,Sample 1)1.5000;
//
// Internal node names are not emitted. A nil tree renders as ";".
func Newick(root *ClusterNode) string {
	var sb strings.Builder
	if root != nil {
		writeNewick(&sb, root)
	}
	sb.WriteByte(';')
	return sb.String()
}

func writeNewick(sb *strings.Builder, node *ClusterNode) {
	if node.IsLeaf() {
		sb.WriteString(node.Name)
		return
	}
	sb.WriteByte('(')
	for i, child := range node.Children {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeNewick(sb, child)
	}
	sb.WriteByte(')')
	fmt.Fprintf(sb, "%.4f", node.Height)
}

// ParseNewick parses Newick bracket notation into a tree. It accepts the
// Newick output above plus optional internal-node names and ":height"
// branch-length suffixes on any node:
//
//	(A:0.1,B:0.2)Root:0.3;
//
// A bare number after ")" is read as the node's height (matching Newick's
// output); anything else there is the node's name. Unset names default to ""
// and unset heights to 0. The trailing ";" is optional.
func ParseNewick(s string) (*ClusterNode, error) {
	p := &newickParser{s: strings.TrimSpace(s)}
	node, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if p.peek() == ';' {
		p.pos++
	}
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("hclust: trailing input at offset %d: %q", p.pos, p.s[p.pos:])
	}
	return node, nil
}

type newickParser struct {
	s   string
	pos int
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (p *newickParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

// token consumes and returns the run of bytes up to the next structural
// character. Names may contain spaces ("Sample 0").
func (p *newickParser) token() string {
	start := p.pos
	for p.pos < len(p.s) && !strings.ContainsRune("(),:;", rune(p.s[p.pos])) {
		p.pos++
	}
	return p.s[start:p.pos]
}

func (p *newickParser) parseNode() (*ClusterNode, error) {
	node := &ClusterNode{}

	if p.peek() == '(' {
		p.pos++
		for {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
			if p.peek() != ',' {
				break
			}
			p.pos++
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("hclust: unbalanced '(' at offset %d", p.pos)
		}
		p.pos++

		if tok := p.token(); tok != "" {
			if h, err := strconv.ParseFloat(tok, 64); err == nil {
				node.Height = h
			} else {
				node.Name = tok
			}
		}
	} else {
		node.Name = p.token()
	}

	if p.peek() == ':' {
		p.pos++
		tok := p.token()
		h, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("hclust: bad branch length %q at offset %d", tok, p.pos)
		}
		node.Height = h
	}

	return node, nil
}
