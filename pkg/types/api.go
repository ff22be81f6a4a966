package types

import (
	"fmt"
	"strconv"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindSyntax   ErrKind = iota // input too malformed to tokenize (unterminated tag/quote)
	ErrKindLimit                   // a configured guard was exceeded (e.g., MaxDepth)
	ErrKindNotFound                // missing element/attribute in lookup helpers
	ErrKindIO                      // file loading or mapping failure
)

// Error is a typed error with an optional byte offset and underlying cause.
type Error struct {
	Kind   ErrKind
	Msg    string
	Offset int   // byte offset of the offending construct; -1 when not applicable
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Offset >= 0 {
		msg += " at offset " + strconv.Itoa(e.Offset)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by the parser. Concrete failures wrap one of
// these in a per-call *Error carrying the actual offset, so both
// errors.Is(err, types.ErrUnterminatedQuote) and kind switches work.
var (
	// ErrUnterminatedTag indicates a "<" with no matching ">" before end of input.
	ErrUnterminatedTag = &Error{Kind: ErrKindSyntax, Offset: -1, Msg: "unterminated tag construct"}
	// ErrUnterminatedQuote indicates a quoted attribute value with no closing quote.
	ErrUnterminatedQuote = &Error{Kind: ErrKindSyntax, Offset: -1, Msg: "unterminated quoted attribute value"}
	// ErrUnterminatedComment indicates a comment or declaration left open at end of input.
	ErrUnterminatedComment = &Error{Kind: ErrKindSyntax, Offset: -1, Msg: "unterminated comment or declaration"}
	// ErrTooDeep indicates element nesting beyond Options.MaxDepth.
	ErrTooDeep = &Error{Kind: ErrKindLimit, Offset: -1, Msg: "element nesting exceeds depth limit"}
	// ErrNotFound indicates a missing element or attribute in a lookup helper.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Offset: -1, Msg: "not found"}
)

// -----------------------------------------------------------------------------
// Spans & Attributes (borrowed views into the input buffer)
// -----------------------------------------------------------------------------

// Span is a half-open byte range [Start, End) into the input buffer a Forest
// was parsed from. It never owns or copies text. The zero Span doubles as the
// "absent" marker (no tag name on a text node, no value on a boolean
// attribute); an intentionally empty region elsewhere in the buffer compares
// non-zero because Start is non-zero.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsZero reports whether s is the zero (absent) span.
func (s Span) IsZero() bool { return s.Start == 0 && s.End == 0 }

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Bytes resolves the span against src without copying. It returns nil when
// the span does not lie within src, which is the defensive check against
// resolving a span from one buffer against another.
func (s Span) Bytes(src []byte) []byte {
	if s.Start < 0 || s.End < s.Start || s.End > len(src) {
		return nil
	}
	return src[s.Start:s.End]
}

// String renders the range for debugging, e.g. "[12:17)".
func (s Span) String() string {
	return "[" + strconv.Itoa(s.Start) + ":" + strconv.Itoa(s.End) + ")"
}

// Attribute is one name/value pair on an element, both borrowed from the
// input buffer. Value is the zero Span when the attribute had no "=value"
// part (a boolean attribute such as <input disabled>); an explicit empty
// value (a="") keeps a non-zero empty Span at the value position, so the two
// stay distinguishable.
type Attribute struct {
	Name  Span
	Value Span
}

// HasValue reports whether the attribute carried an explicit "=value" part.
func (a Attribute) HasValue() bool { return !a.Value.IsZero() }

// -----------------------------------------------------------------------------
// Nodes & Forests
// -----------------------------------------------------------------------------

// NodeKind distinguishes element nodes from text-bearing leaves.
type NodeKind uint8

const (
	ElementNode NodeKind = iota // a parsed tag with attributes and children
	TextNode                    // a raw text run between tags
)

// String implements the Stringer interface for NodeKind.
func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one parsed HTML element or text run. Nodes are created during a
// single parse call and never mutated afterward.
//
// For elements, Tag is the name span (original casing preserved; comparisons
// are case-insensitive), Attrs holds attributes in source order with
// duplicates preserved, and Children holds direct children in source order.
// For text nodes, Span is the text itself and Tag, Attrs, and Children are
// all zero.
//
// Span is the node's full source extent: from the "<" of the open construct
// through the end of the close construct, or through the auto-close boundary
// for tags closed implicitly. Every child's Span lies within its parent's.
type Node struct {
	Kind        NodeKind
	Tag         Span
	Attrs       []Attribute
	Children    []*Node
	SelfClosing bool
	Span        Span
}

// TagIs reports whether the node is an element named name, comparing
// case-insensitively against the tag span resolved from src.
func (n *Node) TagIs(src []byte, name string) bool {
	if n == nil || n.Kind != ElementNode {
		return false
	}
	return foldEquals(n.Tag.Bytes(src), name)
}

// Attr returns the first attribute with the given name (case-insensitive),
// which matches browser behavior for duplicates. Later duplicates remain
// addressable through the Attrs slice.
func (n *Node) Attr(src []byte, name string) (Attribute, bool) {
	if n == nil {
		return Attribute{}, false
	}
	for _, a := range n.Attrs {
		if foldEquals(a.Name.Bytes(src), name) {
			return a, true
		}
	}
	return Attribute{}, false
}

// Forest is the ordered sequence of root-level nodes produced by one parse
// call, together with the buffer every Span resolves against. Input may
// legally contain multiple top-level tags or intermixed top-level text, so
// the result is a sequence rather than a single tree.
//
// Src must outlive the Forest and must not be mutated while the Forest is in
// use; the parser itself never writes to it.
type Forest struct {
	Roots []*Node
	Src   []byte
}

// Len returns the number of root-level nodes.
func (f *Forest) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Roots)
}

// Bytes resolves a span against the forest's source buffer without copying.
func (f *Forest) Bytes(s Span) []byte {
	if f == nil {
		return nil
	}
	return s.Bytes(f.Src)
}

// Text resolves a span to a string. This is the one helper that copies;
// use Bytes when a borrowed view is enough.
func (f *Forest) Text(s Span) string { return string(f.Bytes(s)) }

// Tag returns a node's tag name as a string (allocates; names are short).
func (f *Forest) Tag(n *Node) string {
	if n == nil {
		return ""
	}
	return f.Text(n.Tag)
}

// AttrValue looks up an attribute by name on n and resolves its value.
// The second return is false when no such attribute exists; a boolean
// attribute yields ("", true).
func (f *Forest) AttrValue(n *Node, name string) (string, bool) {
	if f == nil {
		return "", false
	}
	a, ok := n.Attr(f.Src, name)
	if !ok {
		return "", false
	}
	return f.Text(a.Value), true
}

// foldEquals compares a borrowed byte view against an ASCII name without
// allocating. HTML tag and attribute names fold per ASCII rules.
func foldEquals(b []byte, name string) bool {
	if len(b) != len(name) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if lowerByte(b[i]) != lowerByte(name[i]) {
			return false
		}
	}
	return true
}

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// -----------------------------------------------------------------------------
// Parse Options
// -----------------------------------------------------------------------------

// DefaultMaxDepth is the nesting guard applied when Options.MaxDepth is zero.
const DefaultMaxDepth = 4096

// Options controls parsing behavior. The zero value selects all defaults.
type Options struct {
	// VoidElements is the set of element names treated as void (childless,
	// no closing tag) even when written without a trailing slash, so <br>
	// and <br/> parse identically. Keys must be lowercase. nil selects
	// DefaultVoidElements(); an empty non-nil map disables void handling,
	// making a bare <br> behave like any other open tag.
	VoidElements map[string]bool

	// MaxDepth guards against pathologically nested input. Parsing fails
	// with ErrTooDeep once more than MaxDepth elements are open at once.
	// Zero selects DefaultMaxDepth.
	MaxDepth int
}

// DefaultVoidElements returns the standard set of void element names. The
// set is the enumerated HTML5 list rather than inferred browser behavior;
// callers may copy and extend it. A fresh map is returned on every call so
// callers can mutate their copy safely.
func DefaultVoidElements() map[string]bool {
	return map[string]bool{
		"area":   true,
		"base":   true,
		"br":     true,
		"col":    true,
		"embed":  true,
		"hr":     true,
		"img":    true,
		"input":  true,
		"link":   true,
		"meta":   true,
		"param":  true,
		"source": true,
		"track":  true,
		"wbr":    true,
	}
}

// -----------------------------------------------------------------------------
// Offsets & Positions
// -----------------------------------------------------------------------------

// Position converts a byte offset into 1-based line and column numbers by
// scanning src up to the offset. It is intended for error display, where the
// cost of the scan does not matter; offsets outside src are clamped.
func Position(src []byte, offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	line, col = 1, 1
	for _, c := range src[:offset] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

var _ error = (*Error)(nil)
var _ fmt.Stringer = Span{}
var _ fmt.Stringer = NodeKind(0)
