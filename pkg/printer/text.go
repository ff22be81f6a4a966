package printer

import (
	"fmt"
	"strings"

	"github.com/zetsuboii/html-parser/pkg/types"
	"github.com/zetsuboii/html-parser/pkg/walk"
)

// printForestText prints all roots in human-readable text format.
func (p *Printer) printForestText() error {
	return walk.Walk(p.forest, p.textVisitor())
}

// printSubtreeText prints one subtree in human-readable text format.
func (p *Printer) printSubtreeText(n *types.Node) error {
	return walk.WalkNode(n, p.textVisitor())
}

// textVisitor renders one line per node, indented by depth.
func (p *Printer) textVisitor() walk.VisitFunc {
	return func(n *types.Node, depth int) error {
		if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
			return walk.ErrSkipChildren
		}

		indent := strings.Repeat(" ", depth*p.opts.IndentSize)
		switch n.Kind {
		case types.TextNode:
			if p.opts.ShowText {
				p.printTextRun(n, indent)
			}
		case types.ElementNode:
			p.printElementLine(n, indent)
		}
		return nil
	}
}

// printElementLine prints an element header like:
//
//	[a] href="/home" span=[0:24)
func (p *Printer) printElementLine(n *types.Node, indent string) {
	name := p.forest.Tag(n)
	if n.SelfClosing {
		fmt.Fprintf(p.writer, "%s[%s/]", indent, name)
	} else {
		fmt.Fprintf(p.writer, "%s[%s]", indent, name)
	}

	if p.opts.ShowAttrs {
		for _, a := range n.Attrs {
			if a.HasValue() {
				fmt.Fprintf(p.writer, " %s=%q", p.forest.Text(a.Name), p.forest.Text(a.Value))
			} else {
				fmt.Fprintf(p.writer, " %s", p.forest.Text(a.Name))
			}
		}
	}

	if p.opts.ShowSpans {
		fmt.Fprintf(p.writer, " span=%s", n.Span)
	}

	fmt.Fprintln(p.writer)
}

// printTextRun prints a quoted text run, truncated to MaxTextBytes.
func (p *Printer) printTextRun(n *types.Node, indent string) {
	data := p.forest.Bytes(n.Span)
	maxBytes := p.opts.MaxTextBytes
	if maxBytes == 0 {
		maxBytes = len(data)
	}
	displayLen := min(len(data), maxBytes)
	truncated := ""
	if len(data) > maxBytes {
		truncated = fmt.Sprintf(" (truncated, %d total bytes)", len(data))
	}

	fmt.Fprintf(p.writer, "%s%q%s", indent, data[:displayLen], truncated)
	if p.opts.ShowSpans {
		fmt.Fprintf(p.writer, " span=%s", n.Span)
	}
	fmt.Fprintln(p.writer)
}
