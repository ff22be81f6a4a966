package types

import (
	"errors"
	"testing"
)

func TestSpan_Len(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		expected int
	}{
		{name: "zero span", span: Span{}, expected: 0},
		{name: "normal range", span: Span{Start: 2, End: 7}, expected: 5},
		{name: "empty range", span: Span{Start: 4, End: 4}, expected: 0},
		{name: "inverted range", span: Span{Start: 9, End: 3}, expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Len(); got != tt.expected {
				t.Errorf("Len() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestSpan_Bytes(t *testing.T) {
	src := []byte("<div class=\"x\">hello</div>")

	tests := []struct {
		name     string
		span     Span
		expected string
		wantNil  bool
	}{
		{name: "tag name", span: Span{Start: 1, End: 4}, expected: "div"},
		{name: "text run", span: Span{Start: 15, End: 20}, expected: "hello"},
		{name: "empty at position", span: Span{Start: 5, End: 5}, expected: ""},
		{name: "negative start", span: Span{Start: -1, End: 3}, wantNil: true},
		{name: "end past buffer", span: Span{Start: 0, End: 100}, wantNil: true},
		{name: "inverted", span: Span{Start: 10, End: 2}, wantNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.Bytes(src)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Bytes() = %q, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Bytes() = nil, want non-nil")
			}
			if string(got) != tt.expected {
				t.Errorf("Bytes() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSpan_BytesAliasesSource(t *testing.T) {
	src := []byte("abcdef")
	b := Span{Start: 1, End: 4}.Bytes(src)
	if &b[0] != &src[1] {
		t.Error("Bytes() copied instead of aliasing the source buffer")
	}
}

func TestSpan_Contains(t *testing.T) {
	parent := Span{Start: 0, End: 20}
	if !parent.Contains(Span{Start: 3, End: 10}) {
		t.Error("expected containment of inner span")
	}
	if parent.Contains(Span{Start: 3, End: 25}) {
		t.Error("expected no containment of overflowing span")
	}
}

func TestSpan_String(t *testing.T) {
	if got := (Span{Start: 12, End: 17}).String(); got != "[12:17)" {
		t.Errorf("String() = %q, want %q", got, "[12:17)")
	}
}

func TestAttribute_HasValue(t *testing.T) {
	bare := Attribute{Name: Span{Start: 5, End: 13}}
	if bare.HasValue() {
		t.Error("boolean attribute should not report a value")
	}
	// <a href=""> puts an empty value span at a non-zero position.
	emptyExplicit := Attribute{Name: Span{Start: 3, End: 7}, Value: Span{Start: 9, End: 9}}
	if !emptyExplicit.HasValue() {
		t.Error("explicit empty value should report a value")
	}
}

func TestNodeKind_String(t *testing.T) {
	if ElementNode.String() != "element" || TextNode.String() != "text" {
		t.Errorf("unexpected NodeKind strings: %s, %s", ElementNode, TextNode)
	}
	if NodeKind(9).String() != "unknown(9)" {
		t.Errorf("unexpected fallback: %s", NodeKind(9))
	}
}

func TestNode_TagIs(t *testing.T) {
	src := []byte("<DIV>")
	n := &Node{Kind: ElementNode, Tag: Span{Start: 1, End: 4}}

	if !n.TagIs(src, "div") {
		t.Error("TagIs should match case-insensitively")
	}
	if !n.TagIs(src, "DIV") {
		t.Error("TagIs should match same case")
	}
	if n.TagIs(src, "span") {
		t.Error("TagIs matched the wrong name")
	}

	text := &Node{Kind: TextNode, Span: Span{Start: 0, End: 5}}
	if text.TagIs(src, "div") {
		t.Error("text nodes have no tag")
	}
}

func TestNode_Attr(t *testing.T) {
	src := []byte(`<a id="x" ID="y" href="z">`)
	n := &Node{
		Kind: ElementNode,
		Tag:  Span{Start: 1, End: 2},
		Attrs: []Attribute{
			{Name: Span{Start: 3, End: 5}, Value: Span{Start: 7, End: 8}},    // id="x"
			{Name: Span{Start: 10, End: 12}, Value: Span{Start: 14, End: 15}}, // ID="y"
			{Name: Span{Start: 17, End: 21}, Value: Span{Start: 23, End: 24}}, // href="z"
		},
	}

	a, ok := n.Attr(src, "id")
	if !ok {
		t.Fatal("Attr did not find id")
	}
	if got := string(a.Value.Bytes(src)); got != "x" {
		t.Errorf("first duplicate should win, got value %q", got)
	}

	if _, ok := n.Attr(src, "missing"); ok {
		t.Error("Attr found a nonexistent attribute")
	}
}

func TestForest_Helpers(t *testing.T) {
	src := []byte(`<p class="note">hi</p>`)
	n := &Node{
		Kind: ElementNode,
		Tag:  Span{Start: 1, End: 2},
		Attrs: []Attribute{
			{Name: Span{Start: 3, End: 8}, Value: Span{Start: 10, End: 14}},
		},
		Span: Span{Start: 0, End: 22},
	}
	f := &Forest{Roots: []*Node{n}, Src: src}

	if f.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", f.Len())
	}
	if got := f.Tag(n); got != "p" {
		t.Errorf("Tag() = %q, want %q", got, "p")
	}
	if v, ok := f.AttrValue(n, "CLASS"); !ok || v != "note" {
		t.Errorf("AttrValue() = %q, %v; want %q, true", v, ok, "note")
	}
	if _, ok := f.AttrValue(n, "href"); ok {
		t.Error("AttrValue found a nonexistent attribute")
	}
	if got := f.Text(Span{Start: 16, End: 18}); got != "hi" {
		t.Errorf("Text() = %q, want %q", got, "hi")
	}

	var nilForest *Forest
	if nilForest.Len() != 0 {
		t.Error("nil forest should have length 0")
	}
	if nilForest.Bytes(Span{Start: 0, End: 1}) != nil {
		t.Error("nil forest should resolve nothing")
	}
}

func TestError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "sentinel without offset",
			err:      ErrUnterminatedQuote,
			expected: "unterminated quoted attribute value",
		},
		{
			name:     "wrapped with offset",
			err:      &Error{Kind: ErrKindSyntax, Msg: "scanning tag", Offset: 17, Err: ErrUnterminatedTag},
			expected: "scanning tag at offset 17: unterminated tag construct",
		},
		{
			name:     "zero offset is printed",
			err:      &Error{Kind: ErrKindSyntax, Msg: "scanning tag", Offset: 0, Err: ErrUnterminatedTag},
			expected: "scanning tag at offset 0: unterminated tag construct",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Errorf("nil error string = %q", nilErr.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	wrapped := &Error{Kind: ErrKindSyntax, Msg: "scanning attribute", Offset: 8, Err: ErrUnterminatedQuote}

	if !errors.Is(wrapped, ErrUnterminatedQuote) {
		t.Error("errors.Is should reach the sentinel through Unwrap")
	}
	var typed *Error
	if !errors.As(wrapped, &typed) {
		t.Fatal("errors.As failed")
	}
	if typed.Offset != 8 {
		t.Errorf("Offset = %d, want 8", typed.Offset)
	}
}

func TestDefaultVoidElements(t *testing.T) {
	m := DefaultVoidElements()
	for _, name := range []string{"br", "img", "meta", "hr", "input", "wbr"} {
		if !m[name] {
			t.Errorf("default void set is missing %q", name)
		}
	}
	if m["div"] {
		t.Error("div must not be void")
	}

	// Mutating one copy must not leak into the next.
	m["div"] = true
	if DefaultVoidElements()["div"] {
		t.Error("DefaultVoidElements must return a fresh map per call")
	}
}

func TestPosition(t *testing.T) {
	src := []byte("ab\ncde\nf")

	tests := []struct {
		name    string
		offset  int
		LineCol [2]int
	}{
		{name: "start", offset: 0, LineCol: [2]int{1, 1}},
		{name: "before first newline", offset: 2, LineCol: [2]int{1, 3}},
		{name: "start of second line", offset: 3, LineCol: [2]int{2, 1}},
		{name: "third line", offset: 7, LineCol: [2]int{3, 1}},
		{name: "clamped past end", offset: 100, LineCol: [2]int{3, 2}},
		{name: "clamped negative", offset: -5, LineCol: [2]int{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := Position(src, tt.offset)
			if line != tt.LineCol[0] || col != tt.LineCol[1] {
				t.Errorf("Position(%d) = %d:%d, want %d:%d",
					tt.offset, line, col, tt.LineCol[0], tt.LineCol[1])
			}
		})
	}
}
