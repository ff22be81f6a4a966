package walk

import "github.com/zetsuboii/html-parser/pkg/types"

// Selector matches element nodes by tag name and required attributes.
// The zero Selector matches every element.
type Selector struct {
	// Tag is the element name to match, compared case-insensitively.
	// Empty matches any element.
	Tag string

	// Attrs maps required attribute names to required values. An empty
	// value requires only that the attribute is present, which is how
	// boolean attributes are matched. Names fold ASCII case; values
	// compare exactly.
	Attrs map[string]string
}

// Match reports whether n is an element matching the selector.
func (s Selector) Match(f *types.Forest, n *types.Node) bool {
	if n == nil || n.Kind != types.ElementNode {
		return false
	}
	if s.Tag != "" && !n.TagIs(f.Src, s.Tag) {
		return false
	}
	for name, want := range s.Attrs {
		got, ok := f.AttrValue(n, name)
		if !ok {
			return false
		}
		if want != "" && got != want {
			return false
		}
	}
	return true
}

// Find returns the first element in source order matching the selector.
func Find(f *types.Forest, sel Selector) (*types.Node, bool) {
	var found *types.Node
	_ = Walk(f, func(n *types.Node, _ int) error {
		if sel.Match(f, n) {
			found = n
			return ErrStopWalk
		}
		return nil
	})
	return found, found != nil
}

// FindAll returns every element in source order matching the selector.
func FindAll(f *types.Forest, sel Selector) []*types.Node {
	var out []*types.Node
	_ = Walk(f, func(n *types.Node, _ int) error {
		if sel.Match(f, n) {
			out = append(out, n)
		}
		return nil
	})
	return out
}
