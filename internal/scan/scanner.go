package scan

import (
	"bytes"

	"github.com/zetsuboii/html-parser/pkg/types"
)

var (
	commentOpen  = []byte("<!--")
	commentClose = []byte("-->")
	piClose      = []byte("?>")
)

// Scanner is a lazy tokenizer over a single input buffer. It advances one
// read cursor and never backtracks across an emitted token. The zero value
// is not usable; construct with New.
//
// A Scanner is single-use and not safe for concurrent use. After a fatal
// error every subsequent Next returns the same error.
type Scanner struct {
	src []byte
	pos int
	err error
}

// New returns a scanner over src. The scanner borrows src and never writes
// to it; src must not be mutated while the scanner is in use.
func New(src []byte) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the current cursor offset, mostly for diagnostics.
func (s *Scanner) Pos() int { return s.pos }

// Next returns the next token. Comments, doctypes, and processing
// instructions are skipped silently. At end of input it returns a KindEOF
// token with a nil error, and keeps doing so on further calls.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	for {
		if s.pos >= len(s.src) {
			return Token{Kind: KindEOF, Span: types.Span{Start: s.pos, End: s.pos}}, nil
		}
		if s.src[s.pos] != '<' {
			return s.scanText(), nil
		}
		if s.pos+1 >= len(s.src) {
			return Token{}, s.fatal(types.ErrUnterminatedTag, "scanning tag", s.pos)
		}
		switch s.src[s.pos+1] {
		case '!':
			if err := s.skipDeclaration(); err != nil {
				return Token{}, err
			}
		case '?':
			if err := s.skipInstruction(); err != nil {
				return Token{}, err
			}
		case '/':
			return s.scanCloseTag()
		default:
			return s.scanOpenTag()
		}
	}
}

// scanText consumes a text run extending to the next '<' or end of input.
// Raw bytes are preserved as-is; there is no entity decoding.
func (s *Scanner) scanText() Token {
	start := s.pos
	if idx := bytes.IndexByte(s.src[s.pos:], '<'); idx < 0 {
		s.pos = len(s.src)
	} else {
		s.pos += idx
	}
	return Token{Kind: KindText, Span: types.Span{Start: start, End: s.pos}}
}

// scanOpenTag consumes "<name attrs...>" or "<name attrs.../>".
func (s *Scanner) scanOpenTag() (Token, error) {
	start := s.pos
	s.pos++ // consume '<'
	name := s.readName()
	attrs, selfClosing, err := s.scanAttrs(start, true)
	if err != nil {
		return Token{}, err
	}
	return Token{
		Kind:        KindTagOpen,
		Name:        name,
		Attrs:       attrs,
		SelfClosing: selfClosing,
		Span:        types.Span{Start: start, End: s.pos},
	}, nil
}

// scanCloseTag consumes "</name ...>". Attributes inside a close tag are
// tolerated and dropped, including quoted values containing '>'.
func (s *Scanner) scanCloseTag() (Token, error) {
	start := s.pos
	s.pos += 2 // consume "</"
	name := s.readName()
	if _, _, err := s.scanAttrs(start, false); err != nil {
		return Token{}, err
	}
	return Token{
		Kind: KindTagClose,
		Name: name,
		Span: types.Span{Start: start, End: s.pos},
	}, nil
}

// readName reads a tag name: everything up to the first whitespace, '/',
// or '>'. The span preserves original casing; it may be empty for
// degenerate input such as "<>".
func (s *Scanner) readName() types.Span {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isSpace(c) || c == '/' || c == '>' {
			break
		}
		s.pos++
	}
	return types.Span{Start: start, End: s.pos}
}

// readAttrName reads an attribute name: everything up to the first
// whitespace, '=', '/', or '>'.
func (s *Scanner) readAttrName() types.Span {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isSpace(c) || c == '=' || c == '/' || c == '>' {
			break
		}
		s.pos++
	}
	return types.Span{Start: start, End: s.pos}
}

// scanAttrs consumes the attribute region of a tag through the closing '>'
// and reports whether the tag ended with "/>". When collect is false the
// attributes are scanned for correctness but not retained (close tags).
// tagStart is the offset of the construct's '<', used in errors.
func (s *Scanner) scanAttrs(tagStart int, collect bool) ([]types.Attribute, bool, error) {
	var attrs []types.Attribute
	for {
		s.skipSpace()
		if s.pos >= len(s.src) {
			return nil, false, s.fatal(types.ErrUnterminatedTag, "scanning tag", tagStart)
		}
		switch c := s.src[s.pos]; c {
		case '>':
			s.pos++
			return attrs, false, nil
		case '/':
			s.pos++
			if s.pos < len(s.src) && s.src[s.pos] == '>' {
				s.pos++
				return attrs, true, nil
			}
			// stray slash inside the tag, skip it
			continue
		case '=':
			// value with no preceding name, skip the stray byte
			s.pos++
			continue
		}
		name := s.readAttrName()
		s.skipSpace()
		attr := types.Attribute{Name: name}
		if s.pos < len(s.src) && s.src[s.pos] == '=' {
			s.pos++
			s.skipSpace()
			val, err := s.readAttrValue(tagStart)
			if err != nil {
				return nil, false, err
			}
			attr.Value = val
		}
		if collect {
			attrs = append(attrs, attr)
		}
	}
}

// readAttrValue reads a quoted or unquoted attribute value. Quoted values
// may contain '>' and run to the matching quote; a missing closing quote is
// fatal. Unquoted values run to the first whitespace or '>' ('/' is value
// material, so <a href=x/> is not self-closing).
func (s *Scanner) readAttrValue(tagStart int) (types.Span, error) {
	if s.pos >= len(s.src) {
		return types.Span{}, s.fatal(types.ErrUnterminatedTag, "scanning tag", tagStart)
	}
	if q := s.src[s.pos]; q == '"' || q == '\'' {
		quoteAt := s.pos
		s.pos++
		idx := bytes.IndexByte(s.src[s.pos:], q)
		if idx < 0 {
			return types.Span{}, s.fatal(types.ErrUnterminatedQuote, "scanning attribute value", quoteAt)
		}
		val := types.Span{Start: s.pos, End: s.pos + idx}
		s.pos += idx + 1
		return val, nil
	}
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isSpace(c) || c == '>' {
			break
		}
		s.pos++
	}
	return types.Span{Start: start, End: s.pos}, nil
}

// skipDeclaration consumes "<!--...-->" comments and "<!...>" declarations
// (doctypes). Neither produces a token.
func (s *Scanner) skipDeclaration() error {
	start := s.pos
	if bytes.HasPrefix(s.src[s.pos:], commentOpen) {
		idx := bytes.Index(s.src[s.pos+len(commentOpen):], commentClose)
		if idx < 0 {
			return s.fatal(types.ErrUnterminatedComment, "scanning comment", start)
		}
		s.pos += len(commentOpen) + idx + len(commentClose)
		return nil
	}
	idx := bytes.IndexByte(s.src[s.pos+2:], '>')
	if idx < 0 {
		return s.fatal(types.ErrUnterminatedComment, "scanning declaration", start)
	}
	s.pos += 2 + idx + 1
	return nil
}

// skipInstruction consumes "<?...?>" processing instructions.
func (s *Scanner) skipInstruction() error {
	start := s.pos
	idx := bytes.Index(s.src[s.pos+2:], piClose)
	if idx < 0 {
		return s.fatal(types.ErrUnterminatedComment, "scanning processing instruction", start)
	}
	s.pos += 2 + idx + len(piClose)
	return nil
}

func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// fatal records and returns a typed error wrapping the given sentinel with
// the offset of the offending construct. The scanner is dead afterwards.
func (s *Scanner) fatal(sentinel *types.Error, msg string, off int) error {
	err := &types.Error{Kind: sentinel.Kind, Msg: msg, Offset: off, Err: sentinel}
	s.err = err
	return err
}

// isSpace reports HTML whitespace (space, tab, newline, form feed, carriage
// return). Multi-byte runes are never whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
