package scan

import (
	"strconv"

	"github.com/zetsuboii/html-parser/pkg/types"
)

// Kind enumerates the token categories the scanner produces.
type Kind uint8

const (
	KindText     Kind = iota // a raw text run between tag constructs
	KindTagOpen              // <name ...> or <name .../>
	KindTagClose             // </name ...>
	KindEOF                  // end of input; emitted exactly once, then repeated
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTagOpen:
		return "tag-open"
	case KindTagClose:
		return "tag-close"
	case KindEOF:
		return "eof"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one structural event. All spans reference the scanner's input
// buffer; the token owns nothing.
//
// Span is the full extent of the construct: for tag tokens it covers "<"
// through ">", for text tokens it is the text itself, and for EOF it is the
// empty span at end of input.
type Token struct {
	Kind        Kind
	Name        types.Span        // tag name for open/close tokens; casing preserved
	Attrs       []types.Attribute // open-tag attributes in source order
	SelfClosing bool              // true for <name ... />
	Span        types.Span
}
