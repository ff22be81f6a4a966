/*
Package htmlparse parses a buffer of HTML markup into a forest of tag nodes.
It is the public entry point of the html-parser module.

Every string the parser produces is a span into the caller-supplied buffer:
parsing copies nothing, allocates only the node structures, and completes in
a single forward pass. The parser is tolerant in the way real-world HTML
demands: unquoted attributes, boolean attributes, self-closing and void
tags, stray close tags, and tags left open at end of input are all absorbed
without error.

# Quick Start

	src := []byte(`<ul><li>one<li>two</ul>`)
	f, err := htmlparse.Parse(src)
	if err != nil {
	    log.Fatal(err)
	}
	for _, root := range f.Roots {
	    fmt.Println(f.Tag(root))
	}

# Fatal Conditions

Only two classes of input abort a parse, both detected by the tokenizer: an
unterminated quoted attribute value, and a tag construct opened with "<"
that never reaches ">". Everything else is tolerated. On failure the caller
receives a typed *types.Error carrying the byte offset; there is never a
partial forest.

	_, err := htmlparse.Parse([]byte(`<a href="oops`))
	if errors.Is(err, htmlparse.ErrUnterminatedQuote) {
	    // report offset via errors.As on *htmlparse.Error
	}

# Buffer Lifetime

The returned Forest borrows from the input buffer: keep the buffer alive and
unmodified for as long as the forest is in use. OpenFile memory-maps a file
and hands back the unmap alongside the forest for the same reason.

# Options

The zero Options value selects the defaults: the standard HTML5 void-element
set and a nesting guard of DefaultMaxDepth. Both are configuration surfaces,
not guesses; see types.Options.
*/
package htmlparse
