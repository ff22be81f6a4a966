package walk

import (
	"strings"
	"testing"
)

// TestCollect tests aggregate statistics over a small document.
func TestCollect(t *testing.T) {
	f := mustParse(t, `<div id="d"><p>one</p><p>two<br></p></div>`)

	s := Collect(f)

	if s.Nodes != 6 {
		t.Errorf("Expected 6 nodes, got %d", s.Nodes)
	}
	if s.Elements != 4 {
		t.Errorf("Expected 4 elements, got %d", s.Elements)
	}
	if s.TextNodes != 2 {
		t.Errorf("Expected 2 text nodes, got %d", s.TextNodes)
	}
	if s.Attributes != 1 {
		t.Errorf("Expected 1 attribute, got %d", s.Attributes)
	}
	if s.TextBytes != 6 {
		t.Errorf("Expected 6 text bytes, got %d", s.TextBytes)
	}
	if s.MaxDepth != 3 {
		t.Errorf("Expected max depth 3, got %d", s.MaxDepth)
	}
	if s.Roots != 1 {
		t.Errorf("Expected 1 root, got %d", s.Roots)
	}

	wantTags := map[string]int{"div": 1, "p": 2, "br": 1}
	for tag, count := range wantTags {
		if s.ByTag[tag] != count {
			t.Errorf("Expected %d %q elements, got %d", count, tag, s.ByTag[tag])
		}
	}
	if len(s.ByTag) != len(wantTags) {
		t.Errorf("Unexpected extra tags in %v", s.ByTag)
	}
}

// TestCollect_Empty tests statistics for an empty forest.
func TestCollect_Empty(t *testing.T) {
	f := mustParse(t, ``)

	s := Collect(f)
	if s.Nodes != 0 || s.MaxDepth != 0 || s.Roots != 0 {
		t.Errorf("Expected zeroed stats, got %+v", s)
	}
}

// TestStats_String tests the human-readable summary.
func TestStats_String(t *testing.T) {
	f := mustParse(t, `<div><p>x</p><p>y</p></div>`)

	out := Collect(f).String()
	for _, want := range []string{
		"Total: 5 nodes",
		"Elements: 3",
		"Text: 2 runs",
		"p: 2",
		"div: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, out)
		}
	}
}
