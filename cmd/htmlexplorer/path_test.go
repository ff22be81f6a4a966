package main

import (
	"strings"
	"testing"
)

// TestNodePath_SiblingIndices verifies breadcrumb paths number repeated tags.
func TestNodePath_SiblingIndices(t *testing.T) {
	m, err := newModelFromSource(`<html><body><div><p>one</p><p>two</p><span>x</span></div></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	nodes := m.allNodes()
	var paths []string
	for _, n := range nodes {
		paths = append(paths, nodePath(m.forest, m.parents, n))
	}

	want := []string{
		"html",
		"html > body",
		"html > body > div",
		"html > body > div > p[1]",
		"html > body > div > p[1] > #text",
		"html > body > div > p[2]",
		"html > body > div > p[2] > #text",
		"html > body > div > span",
		"html > body > div > span > #text",
	}
	if len(paths) != len(want) {
		t.Fatalf("node count = %d, want %d (%v)", len(paths), len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

// TestRowLabel_Shapes checks element and text row rendering.
func TestRowLabel_Shapes(t *testing.T) {
	m, err := newModelFromSource(`<a href="/x" class="big" id="l" rel="next">  hello   world  </a><br/>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	a := m.forest.Roots[0]
	label := rowLabel(m.forest, a)
	if !strings.HasPrefix(label, `<a href="/x" class="big" …>`) {
		t.Errorf("element label = %q", label)
	}

	text := a.Children[0]
	if got := rowLabel(m.forest, text); got != `#text "hello world"` {
		t.Errorf("text label = %q", got)
	}

	br := m.forest.Roots[1]
	if got := rowLabel(m.forest, br); got != "<br/>" {
		t.Errorf("void label = %q", got)
	}
}
