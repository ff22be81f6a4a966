package printer

import (
	"io"

	"github.com/zetsuboii/html-parser/pkg/types"
)

const (
	DefaultIndentSize   = 2
	DefaultMaxDepth     = 0
	DefaultMaxTextBytes = 64
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how deep the tree is rendered (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowAttrs includes attributes in output.
	// Default: true
	ShowAttrs bool

	// ShowText includes text runs in output.
	// Default: true
	ShowText bool

	// ShowSpans includes source byte ranges in output.
	// Default: false
	ShowSpans bool

	// MaxTextBytes limits how many bytes of a text run to display in text
	// format. Longer runs are truncated. Set to 0 for no limit.
	// Default: 64
	MaxTextBytes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:       FormatText,
		IndentSize:   DefaultIndentSize,
		MaxDepth:     DefaultMaxDepth,
		ShowAttrs:    true,
		ShowText:     true,
		ShowSpans:    false,
		MaxTextBytes: DefaultMaxTextBytes,
	}
}

// Printer handles formatted output of parsed forests.
type Printer struct {
	opts   Options
	writer io.Writer
	forest *types.Forest
}

// New creates a new Printer.
//
// The Forest supplies the nodes and the buffer spans resolve against, the
// Writer receives the output, and Options controls formatting behavior.
//
// Example:
//
//	f, _ := htmlparse.Parse(data)
//	p := printer.New(f, os.Stdout, printer.DefaultOptions())
//	p.Print()
func New(f *types.Forest, w io.Writer, opts Options) *Printer {
	return &Printer{
		forest: f,
		writer: w,
		opts:   opts,
	}
}

// Print prints every root of the forest.
func (p *Printer) Print() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printForestJSON()
	case FormatText:
		return p.printForestText()
	default:
		return p.printForestText()
	}
}

// PrintNode prints a single subtree.
//
// Example:
//
//	a, ok := walk.Find(f, walk.Selector{Tag: "a"})
//	if ok {
//	    p.PrintNode(a)
//	}
func (p *Printer) PrintNode(n *types.Node) error {
	if n == nil {
		return nil
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printNodeJSON(n)
	case FormatText:
		return p.printSubtreeText(n)
	default:
		return p.printSubtreeText(n)
	}
}
