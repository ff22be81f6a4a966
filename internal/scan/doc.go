// Package scan implements the lexical layer of the HTML parser: a lazy,
// forward-only tokenizer that turns a raw byte buffer into tag-open,
// tag-close, and text tokens on demand.
//
// The scanner is a single cursor over the input. It never backtracks across
// an emitted token, never copies text (all token payloads are spans into the
// input), and makes one O(n) pass regardless of how the caller interleaves
// Next calls. Comments, doctypes, and processing instructions are consumed
// silently; they produce no tokens.
//
// The scanner is purely lexical. Structural policy (void elements, nesting
// reconciliation) belongs to the tree builder on top of it.
package scan
