// Package types defines the data model and error taxonomy for the
// html-parser module: spans, attributes, nodes, forests, parse options,
// and typed errors.
//
// Every piece of text the parser produces is a Span, a borrowed byte range
// into the caller-supplied input buffer. Nothing in this package owns or
// copies input text; the few helpers that do allocate (Forest.Text,
// Forest.Tag) say so explicitly.
//
// Design goals:
//   - Zero-copy output; explicit copying only where requested.
//   - Immutable results: a Forest is built once per parse and never mutated.
//   - Paranoid bounds checking; never panic on malformed input or spans.
//   - Typed errors with stable categories (syntax/limit/not-found/...).
//
// This package has no dependencies beyond the standard library.
package types
