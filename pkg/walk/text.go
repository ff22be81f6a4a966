package walk

import (
	"strings"

	"github.com/zetsuboii/html-parser/pkg/types"
)

// TextSpans returns the spans of every text run under n in source order.
// The spans borrow from the forest's buffer; nothing is copied.
func TextSpans(n *types.Node) []types.Span {
	var out []types.Span
	_ = WalkNode(n, func(c *types.Node, _ int) error {
		if c.Kind == types.TextNode {
			out = append(out, c.Span)
		}
		return nil
	})
	return out
}

// InnerText concatenates every text run under n. This allocates once for
// the result; use TextSpans when borrowed views are enough.
func InnerText(f *types.Forest, n *types.Node) string {
	spans := TextSpans(n)
	if len(spans) == 0 {
		return ""
	}
	total := 0
	for _, s := range spans {
		total += s.Len()
	}
	var sb strings.Builder
	sb.Grow(total)
	for _, s := range spans {
		sb.Write(f.Bytes(s))
	}
	return sb.String()
}

// Text concatenates every text run in the forest in source order.
func Text(f *types.Forest) string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	_ = Walk(f, func(n *types.Node, _ int) error {
		if n.Kind == types.TextNode {
			sb.Write(f.Bytes(n.Span))
		}
		return nil
	})
	return sb.String()
}
