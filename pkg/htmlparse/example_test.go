package htmlparse_test

import (
	"errors"
	"fmt"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
)

// Example shows basic parsing and span resolution.
func Example() {
	src := []byte(`<ul><li>First item<li>Second item</ul>`)

	f, err := htmlparse.Parse(src)
	if err != nil {
		fmt.Printf("Parse failed: %v\n", err)
		return
	}

	fmt.Println("roots:", f.Len())
	fmt.Println("root tag:", f.Tag(f.Roots[0]))
	// Output:
	// roots: 1
	// root tag: ul
}

// ExampleParse demonstrates reading attributes and text out of the buffer.
func ExampleParse() {
	f, err := htmlparse.Parse([]byte(`<a href="/home">Home</a>`))
	if err != nil {
		fmt.Printf("Parse failed: %v\n", err)
		return
	}

	a := f.Roots[0]
	href, _ := f.AttrValue(a, "href")
	fmt.Println(href)
	fmt.Println(f.Text(a.Children[0].Span))
	// Output:
	// /home
	// Home
}

// ExampleParseWithOptions demonstrates a custom void-element set.
func ExampleParseWithOptions() {
	opts := htmlparse.Options{
		VoidElements: map[string]bool{"sep": true},
	}

	f, err := htmlparse.ParseWithOptions([]byte(`<sep><p>x</p>`), opts)
	if err != nil {
		fmt.Printf("Parse failed: %v\n", err)
		return
	}

	fmt.Println(f.Len())
	fmt.Println(f.Roots[0].SelfClosing)
	// Output:
	// 2
	// true
}

// ExampleParse_errorHandling demonstrates branching on typed parse errors.
func ExampleParse_errorHandling() {
	_, err := htmlparse.Parse([]byte(`<a href="broken`))

	if errors.Is(err, htmlparse.ErrUnterminatedQuote) {
		fmt.Println("unterminated quote")
	}
	var perr *htmlparse.Error
	if errors.As(err, &perr) {
		fmt.Println("offset:", perr.Offset)
	}
	// Output:
	// unterminated quote
	// offset: 8
}

// ExampleOpenFile demonstrates parsing a memory-mapped file.
func ExampleOpenFile() {
	f, done, err := htmlparse.OpenFile("page.html", htmlparse.Options{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer done()

	fmt.Println("roots:", f.Len())
}
