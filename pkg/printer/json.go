package printer

import (
	"encoding/json"
	"fmt"

	"github.com/zetsuboii/html-parser/pkg/types"
)

// jsonForest represents a whole parse result in JSON format.
type jsonForest struct {
	Roots       []jsonNode `json:"roots"`
	SourceBytes int        `json:"source_bytes"`
}

// jsonNode represents one node in JSON format.
type jsonNode struct {
	Kind        string     `json:"kind"`
	Tag         string     `json:"tag,omitempty"`
	Attrs       []jsonAttr `json:"attrs,omitempty"`
	Text        string     `json:"text,omitempty"`
	SelfClosing bool       `json:"self_closing,omitempty"`
	Span        *jsonSpan  `json:"span,omitempty"`
	Children    []jsonNode `json:"children,omitempty"`
}

// jsonAttr represents one attribute. Value is absent for boolean attributes
// and present but empty for explicit empty values, mirroring the parsed
// distinction.
type jsonAttr struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// jsonSpan represents a source byte range.
type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// printForestJSON prints all roots as one JSON document.
func (p *Printer) printForestJSON() error {
	doc := jsonForest{
		Roots:       p.buildChildren(p.forest.Roots, 0),
		SourceBytes: len(p.forest.Src),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printNodeJSON prints one subtree as a JSON object.
func (p *Printer) printNodeJSON(n *types.Node) error {
	data, err := json.MarshalIndent(p.buildNode(n, 0), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// buildChildren converts a node list to DTOs, applying depth and text filters.
func (p *Printer) buildChildren(nodes []*types.Node, depth int) []jsonNode {
	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		return nil
	}
	out := make([]jsonNode, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == types.TextNode && !p.opts.ShowText {
			continue
		}
		out = append(out, p.buildNode(n, depth))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// buildNode converts one node to its DTO.
func (p *Printer) buildNode(n *types.Node, depth int) jsonNode {
	jn := jsonNode{Kind: n.Kind.String()}
	if p.opts.ShowSpans {
		jn.Span = &jsonSpan{Start: n.Span.Start, End: n.Span.End}
	}

	switch n.Kind {
	case types.TextNode:
		jn.Text = p.forest.Text(n.Span)
	case types.ElementNode:
		jn.Tag = p.forest.Tag(n)
		jn.SelfClosing = n.SelfClosing
		if p.opts.ShowAttrs && len(n.Attrs) > 0 {
			jn.Attrs = make([]jsonAttr, 0, len(n.Attrs))
			for _, a := range n.Attrs {
				ja := jsonAttr{Name: p.forest.Text(a.Name)}
				if a.HasValue() {
					v := p.forest.Text(a.Value)
					ja.Value = &v
				}
				jn.Attrs = append(jn.Attrs, ja)
			}
		}
		jn.Children = p.buildChildren(n.Children, depth+1)
	}
	return jn
}
