package testutil

// Test fixture paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// FixtureSimple is a minimal well-formed page.
	FixtureSimple = "testdata/simple.html"

	// FixtureBlog is a larger page with a doctype, comments, void elements,
	// and nested lists.
	FixtureBlog = "testdata/blog.html"

	// FixtureMalformed exercises the tolerant recovery paths: unclosed
	// elements, stray closes, and mismatched casing.
	FixtureMalformed = "testdata/malformed.html"

	// FixtureBroken fails to parse with an unterminated quote.
	FixtureBroken = "testdata/broken.html"
)
