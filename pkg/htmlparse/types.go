package htmlparse

import "github.com/zetsuboii/html-parser/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import
// pkg/htmlparse.

// Core types.
type (
	Span      = types.Span
	Attribute = types.Attribute
	Node      = types.Node
	NodeKind  = types.NodeKind
	Forest    = types.Forest
	Options   = types.Options
)

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Node kinds.
const (
	ElementNode = types.ElementNode
	TextNode    = types.TextNode
)

// Error kinds.
const (
	ErrKindSyntax   = types.ErrKindSyntax
	ErrKindLimit    = types.ErrKindLimit
	ErrKindNotFound = types.ErrKindNotFound
	ErrKindIO       = types.ErrKindIO
)

// Sentinel errors.
var (
	ErrUnterminatedTag     = types.ErrUnterminatedTag
	ErrUnterminatedQuote   = types.ErrUnterminatedQuote
	ErrUnterminatedComment = types.ErrUnterminatedComment
	ErrTooDeep             = types.ErrTooDeep
	ErrNotFound            = types.ErrNotFound
)

// DefaultMaxDepth is the nesting guard applied when Options.MaxDepth is zero.
const DefaultMaxDepth = types.DefaultMaxDepth

// DefaultVoidElements returns the standard void-element set.
var DefaultVoidElements = types.DefaultVoidElements
