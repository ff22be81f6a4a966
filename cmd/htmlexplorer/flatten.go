package main

import (
	"strconv"
	"strings"

	"github.com/zetsuboii/html-parser/pkg/types"
)

// row is one visible line in the tree pane.
type row struct {
	node  *types.Node
	depth int
}

// flattenVisible produces the visible rows of the tree in document order.
// Children of collapsed elements are skipped. The walk uses an explicit
// stack so adversarially deep documents cannot grow the call stack.
func flattenVisible(f *types.Forest, expanded map[*types.Node]bool) []row {
	type frame struct {
		node  *types.Node
		depth int
	}
	var rows []row
	var stack []frame
	for i := len(f.Roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{f.Roots[i], 0})
	}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rows = append(rows, row{node: fr.node, depth: fr.depth})
		if !expanded[fr.node] {
			continue
		}
		for i := len(fr.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{fr.node.Children[i], fr.depth + 1})
		}
	}
	return rows
}

// parentMap records each node's parent so paths can be built without
// re-walking the forest. Built once per parse.
func parentMap(f *types.Forest) map[*types.Node]*types.Node {
	parents := make(map[*types.Node]*types.Node)
	var stack []*types.Node
	stack = append(stack, f.Roots...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range n.Children {
			parents[c] = n
			stack = append(stack, c)
		}
	}
	return parents
}

// hasChildren reports whether the row can be expanded.
func hasChildren(n *types.Node) bool {
	return n != nil && len(n.Children) > 0
}

// nodePath renders a breadcrumb like "html > body > div[2]" for the given
// node. Elements carry a 1-based index among same-tag siblings when the
// tag is not unique at that level; text nodes render as #text.
func nodePath(f *types.Forest, parents map[*types.Node]*types.Node, n *types.Node) string {
	var parts []string
	for n != nil {
		parts = append(parts, pathSegment(f, parents, n))
		n = parents[n]
	}
	// Reverse into document order.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " > ")
}

func pathSegment(f *types.Forest, parents map[*types.Node]*types.Node, n *types.Node) string {
	if n.Kind == types.TextNode {
		return "#text"
	}
	tag := f.Tag(n)
	if tag == "" {
		tag = "<anonymous>"
	}

	siblings := f.Roots
	if p := parents[n]; p != nil {
		siblings = p.Children
	}
	same, index := 0, 0
	for _, s := range siblings {
		if s.Kind != types.ElementNode {
			continue
		}
		if strings.EqualFold(f.Tag(s), tag) {
			same++
			if s == n {
				index = same
			}
		}
	}
	if same > 1 {
		return tag + "[" + strconv.Itoa(index) + "]"
	}
	return tag
}

// rowLabel renders the tree line for a node: the tag with up to two
// attributes for elements, a quoted preview for text runs.
func rowLabel(f *types.Forest, n *types.Node) string {
	if n.Kind == types.TextNode {
		return "#text " + strconv.Quote(truncate(collapseSpace(f.Text(n.Span)), 40))
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(f.Tag(n))
	for i, a := range n.Attrs {
		if i == 2 {
			b.WriteString(" …")
			break
		}
		b.WriteByte(' ')
		b.WriteString(f.Text(a.Name))
		if a.HasValue() {
			b.WriteString(`="`)
			b.WriteString(truncate(f.Text(a.Value), 24))
			b.WriteByte('"')
		}
	}
	if n.SelfClosing {
		b.WriteString("/>")
	} else {
		b.WriteByte('>')
	}
	return b.String()
}

// collapseSpace squeezes runs of whitespace to single spaces for one-line
// previews.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
