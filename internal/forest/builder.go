// Package forest folds the scanner's token stream into the output tree,
// reconciling nesting with an explicit stack of in-progress nodes.
package forest

import (
	"github.com/zetsuboii/html-parser/internal/scan"
	"github.com/zetsuboii/html-parser/pkg/types"
)

// Build parses src into a Forest according to opts. It drives the scanner
// token by token; any fatal scan error aborts the build and no partial
// Forest is returned.
func Build(src []byte, opts types.Options) (*types.Forest, error) {
	voids := opts.VoidElements
	if voids == nil {
		voids = types.DefaultVoidElements()
	}
	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = types.DefaultMaxDepth
	}
	b := &builder{
		src:      src,
		sc:       scan.New(src),
		voids:    voids,
		maxDepth: maxDepth,
	}
	return b.run()
}

type builder struct {
	src      []byte
	sc       *scan.Scanner
	voids    map[string]bool
	maxDepth int

	stack   []*types.Node // in-progress elements, innermost last
	roots   []*types.Node
	scratch []byte // reused lowercase buffer for void lookups
}

func (b *builder) run() (*types.Forest, error) {
	for {
		tok, err := b.sc.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case scan.KindText:
			b.attach(&types.Node{Kind: types.TextNode, Span: tok.Span})
		case scan.KindTagOpen:
			if err := b.open(tok); err != nil {
				return nil, err
			}
		case scan.KindTagClose:
			b.close(tok)
		case scan.KindEOF:
			// Tags still open at end of input close implicitly; a
			// truncated document yields the nodes parsed so far.
			b.closeAll(tok.Span.Start)
			return &types.Forest{Roots: b.roots, Src: b.src}, nil
		}
	}
}

// attach appends a completed node to the innermost open element, or to the
// roots when nothing is open.
func (b *builder) attach(n *types.Node) {
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		top.Children = append(top.Children, n)
		return
	}
	b.roots = append(b.roots, n)
}

// open handles a TagOpen token. Self-closing tags and configured void
// elements complete immediately; <br> and <br/> produce identical nodes.
func (b *builder) open(tok scan.Token) error {
	n := &types.Node{
		Kind:        types.ElementNode,
		Tag:         tok.Name,
		Attrs:       tok.Attrs,
		SelfClosing: tok.SelfClosing,
		Span:        tok.Span,
	}
	if tok.SelfClosing || b.isVoid(tok.Name) {
		n.SelfClosing = true
		b.attach(n)
		return nil
	}
	if len(b.stack) >= b.maxDepth {
		return &types.Error{
			Kind:   types.ErrKindLimit,
			Msg:    "opening element",
			Offset: tok.Span.Start,
			Err:    types.ErrTooDeep,
		}
	}
	b.stack = append(b.stack, n)
	return nil
}

// close handles a TagClose token: pop the nearest case-insensitive match,
// auto-closing anything opened above it. A close with no match anywhere on
// the stack is a stray and is ignored.
func (b *builder) close(tok scan.Token) {
	match := -1
	for i := len(b.stack) - 1; i >= 0; i-- {
		if spanFoldEquals(b.src, b.stack[i].Tag, tok.Name) {
			match = i
			break
		}
	}
	if match < 0 {
		return
	}
	// Intervening unclosed elements end where the close construct begins;
	// the matched element spans through the close construct itself.
	for len(b.stack)-1 > match {
		b.pop(tok.Span.Start)
	}
	b.pop(tok.Span.End)
}

// pop removes the innermost open element, stamps its end offset, and
// attaches it to its parent.
func (b *builder) pop(end int) {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	n.Span.End = end
	b.attach(n)
}

func (b *builder) closeAll(end int) {
	for len(b.stack) > 0 {
		b.pop(end)
	}
}

// isVoid reports whether the tag name is in the configured void set. The
// lookup folds to lowercase in a reused scratch buffer, so steady-state
// parsing does not allocate here.
func (b *builder) isVoid(name types.Span) bool {
	if len(b.voids) == 0 {
		return false
	}
	nb := name.Bytes(b.src)
	if len(nb) == 0 {
		return false
	}
	b.scratch = b.scratch[:0]
	for _, c := range nb {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.scratch = append(b.scratch, c)
	}
	return b.voids[string(b.scratch)]
}

// spanFoldEquals compares two name spans from the same buffer
// case-insensitively without allocating.
func spanFoldEquals(src []byte, a, b types.Span) bool {
	ab, bb := a.Bytes(src), b.Bytes(src)
	if len(ab) != len(bb) {
		return false
	}
	for i := 0; i < len(ab); i++ {
		ca, cb := ab[i], bb[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
