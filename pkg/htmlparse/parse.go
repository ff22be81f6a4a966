package htmlparse

import (
	"github.com/zetsuboii/html-parser/internal/forest"
	"github.com/zetsuboii/html-parser/pkg/types"
)

// Parse parses src into a Forest with default options. The forest borrows
// from src; src must outlive it and must not be mutated while it is in use.
//
// Example:
//
//	f, err := htmlparse.Parse([]byte(`<p>hi</p>`))
//	if err != nil {
//	    log.Fatal(err)
//	}
func Parse(src []byte) (*types.Forest, error) {
	return forest.Build(src, types.Options{})
}

// ParseWithOptions is Parse with an explicit void-element set and limits.
//
// Example:
//
//	opts := htmlparse.Options{MaxDepth: 64}
//	f, err := htmlparse.ParseWithOptions(data, opts)
func ParseWithOptions(src []byte, opts types.Options) (*types.Forest, error) {
	return forest.Build(src, opts)
}

// ParseString parses HTML held in a string. The string is converted to a
// byte slice once and that slice becomes the forest's Src, so span
// resolution works exactly as with Parse.
func ParseString(s string) (*types.Forest, error) {
	return forest.Build([]byte(s), types.Options{})
}

// ParseStringWithOptions is ParseString with explicit options.
func ParseStringWithOptions(s string, opts types.Options) (*types.Forest, error) {
	return forest.Build([]byte(s), opts)
}
