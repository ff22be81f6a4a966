package walk

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zetsuboii/html-parser/pkg/types"
)

// Stats contains aggregate counts for one forest.
type Stats struct {
	Nodes      int // every node, elements and text
	Elements   int
	TextNodes  int
	Attributes int
	TextBytes  int // total bytes covered by text spans
	MaxDepth   int // deepest nesting level, 1-based; 0 for an empty forest
	Roots      int

	// ByTag counts elements per lowercased tag name.
	ByTag map[string]int
}

// Collect traverses the forest and returns aggregate statistics.
//
// Example:
//
//	stats := walk.Collect(f)
//	fmt.Printf("Total nodes: %d\n", stats.Nodes)
//	fmt.Printf("Elements: %d\n", stats.Elements)
func Collect(f *types.Forest) *Stats {
	s := &Stats{ByTag: make(map[string]int), Roots: f.Len()}
	_ = Walk(f, func(n *types.Node, depth int) error {
		s.Nodes++
		if depth+1 > s.MaxDepth {
			s.MaxDepth = depth + 1
		}
		switch n.Kind {
		case types.ElementNode:
			s.Elements++
			s.Attributes += len(n.Attrs)
			s.ByTag[strings.ToLower(f.Tag(n))]++
		case types.TextNode:
			s.TextNodes++
			s.TextBytes += n.Span.Len()
		}
		return nil
	})
	return s
}

// String returns a human-readable summary of the statistics.
func (s *Stats) String() string {
	tags := make([]string, 0, len(s.ByTag))
	for tag := range s.ByTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total: %d nodes (%d roots, max depth %d)\n", s.Nodes, s.Roots, s.MaxDepth)
	fmt.Fprintf(&sb, "Elements: %d (%d attributes)\n", s.Elements, s.Attributes)
	fmt.Fprintf(&sb, "Text: %d runs (%d bytes)", s.TextNodes, s.TextBytes)
	if len(tags) > 0 {
		sb.WriteString("\nBy Tag:")
		for _, tag := range tags {
			fmt.Fprintf(&sb, "\n  %s: %d", tag, s.ByTag[tag])
		}
	}
	return sb.String()
}
