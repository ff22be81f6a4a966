package forest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zetsuboii/html-parser/pkg/types"
)

func build(t *testing.T, src string, opts types.Options) *types.Forest {
	t.Helper()
	f, err := Build([]byte(src), opts)
	require.NoError(t, err)
	require.NotNil(t, f)
	return f
}

// assertWellNested checks the containment invariant over a whole subtree.
func assertWellNested(t *testing.T, n *types.Node) {
	t.Helper()
	for _, c := range n.Children {
		require.True(t, n.Span.Contains(c.Span),
			"child span %s escapes parent span %s", c.Span, n.Span)
		assertWellNested(t, c)
	}
}

// -----------------------------------------------------------------------------
// Basic assembly
// -----------------------------------------------------------------------------

func TestBuild_SimpleNesting(t *testing.T) {
	f := build(t, `<a><b>text</b></a>`, types.Options{})

	require.Equal(t, 1, f.Len())
	a := f.Roots[0]
	require.Equal(t, "a", f.Tag(a))
	require.Equal(t, types.Span{Start: 0, End: 18}, a.Span)

	require.Len(t, a.Children, 1)
	b := a.Children[0]
	require.Equal(t, "b", f.Tag(b))
	require.Equal(t, types.Span{Start: 3, End: 14}, b.Span)

	require.Len(t, b.Children, 1)
	text := b.Children[0]
	require.Equal(t, types.TextNode, text.Kind)
	require.Equal(t, "text", f.Text(text.Span))

	assertWellNested(t, a)
}

func TestBuild_MultipleRoots(t *testing.T) {
	f := build(t, `<a/><b/>`, types.Options{})

	require.Equal(t, 2, f.Len())
	require.Equal(t, "a", f.Tag(f.Roots[0]))
	require.Equal(t, "b", f.Tag(f.Roots[1]))
}

func TestBuild_TopLevelText(t *testing.T) {
	f := build(t, `x<a></a>y`, types.Options{})

	require.Equal(t, 3, f.Len())
	require.Equal(t, types.TextNode, f.Roots[0].Kind)
	require.Equal(t, "x", f.Text(f.Roots[0].Span))
	require.Equal(t, types.ElementNode, f.Roots[1].Kind)
	require.Equal(t, types.TextNode, f.Roots[2].Kind)
	require.Equal(t, "y", f.Text(f.Roots[2].Span))
}

func TestBuild_EmptyInput(t *testing.T) {
	f := build(t, "", types.Options{})
	require.Equal(t, 0, f.Len())
}

func TestBuild_SrcAliasesInput(t *testing.T) {
	src := []byte(`<a></a>`)
	f, err := Build(src, types.Options{})
	require.NoError(t, err)
	require.Equal(t, &src[0], &f.Src[0], "forest must keep the caller's buffer, not a copy")
}

// -----------------------------------------------------------------------------
// Close reconciliation
// -----------------------------------------------------------------------------

func TestBuild_CaseInsensitiveClose(t *testing.T) {
	f := build(t, `<DIV>x</div>`, types.Options{})

	require.Equal(t, 1, f.Len())
	div := f.Roots[0]
	require.Equal(t, "DIV", f.Tag(div), "original casing is preserved")
	require.Len(t, div.Children, 1)
}

func TestBuild_StrayCloseIgnored(t *testing.T) {
	f := build(t, `<a></b></a>`, types.Options{})

	require.Equal(t, 1, f.Len())
	a := f.Roots[0]
	require.Equal(t, "a", f.Tag(a))
	require.Empty(t, a.Children)
	require.Equal(t, types.Span{Start: 0, End: 11}, a.Span)
}

func TestBuild_AutoCloseIntervening(t *testing.T) {
	f := build(t, `<a><b><c></a>`, types.Options{})

	require.Equal(t, 1, f.Len())
	a := f.Roots[0]
	require.Equal(t, "a", f.Tag(a))
	require.Len(t, a.Children, 1)
	b := a.Children[0]
	require.Equal(t, "b", f.Tag(b))
	require.Len(t, b.Children, 1)
	require.Equal(t, "c", f.Tag(b.Children[0]))

	// Auto-closed elements end where the close construct begins.
	require.Equal(t, 9, b.Span.End)
	require.Equal(t, 9, b.Children[0].Span.End)
	require.Equal(t, 13, a.Span.End)
	assertWellNested(t, a)
}

func TestBuild_ListItemsNestWithoutSiblingClose(t *testing.T) {
	// A bare <li> does not close the previous <li>; only a close tag or end
	// of input does. The second item therefore nests inside the first.
	f := build(t, `<ul><li>one<li>two</ul>`, types.Options{})

	ul := f.Roots[0]
	require.Equal(t, "ul", f.Tag(ul))
	require.Len(t, ul.Children, 1)

	outer := ul.Children[0]
	require.Equal(t, "li", f.Tag(outer))
	require.Len(t, outer.Children, 2)
	require.Equal(t, "one", f.Text(outer.Children[0].Span))

	inner := outer.Children[1]
	require.Equal(t, "li", f.Tag(inner))
	require.Equal(t, "two", f.Text(inner.Children[0].Span))
	assertWellNested(t, ul)
}

func TestBuild_AutoCloseAtEOF(t *testing.T) {
	f := build(t, `<a><b>text`, types.Options{})

	require.Equal(t, 1, f.Len())
	a := f.Roots[0]
	require.Equal(t, "a", f.Tag(a))
	require.Equal(t, types.Span{Start: 0, End: 10}, a.Span)

	b := a.Children[0]
	require.Equal(t, "b", f.Tag(b))
	require.Equal(t, types.Span{Start: 3, End: 10}, b.Span)
	require.Equal(t, "text", f.Text(b.Children[0].Span))
	assertWellNested(t, a)
}

// -----------------------------------------------------------------------------
// Void elements
// -----------------------------------------------------------------------------

func TestBuild_VoidEquivalence(t *testing.T) {
	slash, err := Build([]byte(`<br/>`), types.Options{})
	require.NoError(t, err)
	bare, err := Build([]byte(`<br>`), types.Options{})
	require.NoError(t, err)

	require.Equal(t, 1, slash.Len())
	require.Equal(t, 1, bare.Len())
	for _, n := range []*types.Node{slash.Roots[0], bare.Roots[0]} {
		require.True(t, n.SelfClosing)
		require.Empty(t, n.Children)
	}
}

func TestBuild_VoidDoesNotSwallowSiblings(t *testing.T) {
	f := build(t, `<div><img src=x>text</div>`, types.Options{})

	div := f.Roots[0]
	require.Len(t, div.Children, 2)
	require.Equal(t, "img", f.Tag(div.Children[0]))
	require.Empty(t, div.Children[0].Children)
	require.Equal(t, "text", f.Text(div.Children[1].Span))
}

func TestBuild_VoidCloseTagIsStray(t *testing.T) {
	f := build(t, `<div><br></br></div>`, types.Options{})

	div := f.Roots[0]
	require.Equal(t, "div", f.Tag(div))
	require.Len(t, div.Children, 1)
	require.Equal(t, "br", f.Tag(div.Children[0]))
}

func TestBuild_VoidLookupFoldsCase(t *testing.T) {
	f := build(t, `<BR><IMG>`, types.Options{})

	require.Equal(t, 2, f.Len())
	require.True(t, f.Roots[0].SelfClosing)
	require.True(t, f.Roots[1].SelfClosing)
}

func TestBuild_CustomVoidSet(t *testing.T) {
	opts := types.Options{VoidElements: map[string]bool{"icon": true}}
	f := build(t, `<icon><span></span>`, opts)

	require.Equal(t, 2, f.Len())
	require.Equal(t, "icon", f.Tag(f.Roots[0]))
	require.True(t, f.Roots[0].SelfClosing)
	require.Equal(t, "span", f.Tag(f.Roots[1]))
}

func TestBuild_DisabledVoidHandling(t *testing.T) {
	// An empty non-nil set turns the policy off: a bare <br> opens like any
	// other element and swallows what follows until auto-close.
	opts := types.Options{VoidElements: map[string]bool{}}
	f := build(t, `<br>x`, opts)

	require.Equal(t, 1, f.Len())
	br := f.Roots[0]
	require.False(t, br.SelfClosing)
	require.Len(t, br.Children, 1)
	require.Equal(t, "x", f.Text(br.Children[0].Span))
}

// -----------------------------------------------------------------------------
// Limits and errors
// -----------------------------------------------------------------------------

func TestBuild_DepthLimit(t *testing.T) {
	src := strings.Repeat("<a>", 5)
	_, err := Build([]byte(src), types.Options{MaxDepth: 4})

	require.ErrorIs(t, err, types.ErrTooDeep)
	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, types.ErrKindLimit, typed.Kind)
	require.Equal(t, 12, typed.Offset)
}

func TestBuild_DeepNestingWithinLimit(t *testing.T) {
	depth := 1000
	src := strings.Repeat("<d>", depth) + "x" + strings.Repeat("</d>", depth)
	f := build(t, src, types.Options{})

	n := f.Roots[0]
	for i := 1; i < depth; i++ {
		require.Len(t, n.Children, 1)
		n = n.Children[0]
	}
	require.Equal(t, "x", f.Text(n.Children[0].Span))
}

func TestBuild_ScanErrorAborts(t *testing.T) {
	f, err := Build([]byte(`<a b="x`), types.Options{})

	require.Nil(t, f, "no partial forest on fatal errors")
	require.ErrorIs(t, err, types.ErrUnterminatedQuote)
}
