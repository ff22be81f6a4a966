package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
	"github.com/zetsuboii/html-parser/pkg/walk"
)

// findTextPreview caps the inner-text preview attached to each match.
const findTextPreview = 48

var (
	findAll   bool
	findAttrs []string
	findCount bool
)

func init() {
	cmd := newFindCmd()
	cmd.Flags().BoolVar(&findAll, "all", false, "List every match instead of the first")
	cmd.Flags().StringArrayVar(&findAttrs, "attr", nil,
		"Require an attribute, as name=value or bare name (repeatable)")
	cmd.Flags().BoolVar(&findCount, "count", false, "Print only the number of matches")
	rootCmd.AddCommand(cmd)
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <file> <tag>",
		Short: "Find elements by tag name and attributes",
		Long: `The find command searches the document for elements matching a tag name,
optionally constrained by attributes. Tag names match case-insensitively
and "*" matches any element. Without --all only the first match in
document order is printed.

Example:
  htmlctl find page.html a
  htmlctl find page.html li --all
  htmlctl find page.html input --attr type=text --attr required
  htmlctl find page.html "*" --attr class=item --count`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
	return cmd
}

type matchJSON struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Span     spanJSON          `json:"span"`
	Children int               `json:"children"`
	Text     string            `json:"text,omitempty"`
}

type spanJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func runFind(args []string) error {
	path := args[0]
	tag := args[1]

	sel, err := buildSelector(tag, findAttrs)
	if err != nil {
		return err
	}

	f, done, err := loadForest(path)
	if err != nil {
		return err
	}
	defer done()

	matches := walk.FindAll(f, sel)
	if !findAll && !findCount && len(matches) > 1 {
		matches = matches[:1]
	}

	if findCount {
		if jsonOut {
			return printJSON(map[string]interface{}{"count": len(matches)})
		}
		printInfo("%d\n", len(matches))
		return nil
	}

	if len(matches) == 0 {
		return fmt.Errorf("no element matching <%s>: %w", tag, htmlparse.ErrNotFound)
	}

	// Handle JSON output
	if jsonOut {
		out := make([]matchJSON, 0, len(matches))
		for _, n := range matches {
			out = append(out, matchJSON{
				Tag:      f.Tag(n),
				Attrs:    attrMap(f, n),
				Span:     spanJSON{Start: n.Span.Start, End: n.Span.End},
				Children: len(n.Children),
				Text:     truncateText(walk.InnerText(f, n), findTextPreview),
			})
		}
		return printJSON(out)
	}

	// Text output
	if !findAll {
		printInfo("%s\n", nodeSummary(f, matches[0]))
		return nil
	}

	printInfo("\nSearching for <%s> in %s...\n\n", tag, path)
	for _, n := range matches {
		printInfo("  %s\n", nodeSummary(f, n))
	}
	printInfo("\nTotal: %d matches\n", len(matches))

	return nil
}

// buildSelector turns the tag argument and --attr filters into a selector.
// "*" selects any element.
func buildSelector(tag string, attrSpecs []string) (walk.Selector, error) {
	sel := walk.Selector{}
	if tag != "*" {
		sel.Tag = tag
	}
	if len(attrSpecs) > 0 {
		sel.Attrs = make(map[string]string, len(attrSpecs))
		for _, spec := range attrSpecs {
			name, value, _ := strings.Cut(spec, "=")
			if name == "" {
				return walk.Selector{}, fmt.Errorf("invalid attribute filter %q", spec)
			}
			sel.Attrs[name] = value
		}
	}
	return sel, nil
}

// nodeSummary renders one element as a single line: tag, attributes, source
// span, child count, and a short text preview.
func nodeSummary(f *htmlparse.Forest, n *htmlparse.Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s]", f.Tag(n))
	for _, a := range n.Attrs {
		if a.HasValue() {
			fmt.Fprintf(&sb, " %s=%q", f.Text(a.Name), f.Text(a.Value))
		} else {
			fmt.Fprintf(&sb, " %s", f.Text(a.Name))
		}
	}
	fmt.Fprintf(&sb, " span=%s children=%d", n.Span, len(n.Children))
	if text := truncateText(walk.InnerText(f, n), findTextPreview); text != "" {
		fmt.Fprintf(&sb, " %q", text)
	}
	return sb.String()
}

// attrMap flattens a node's attributes for JSON output. The first occurrence
// of a duplicated name wins, matching lookup behavior; boolean attributes map
// to the empty string.
func attrMap(f *htmlparse.Forest, n *htmlparse.Node) map[string]string {
	if len(n.Attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		name := f.Text(a.Name)
		if _, ok := out[name]; ok {
			continue
		}
		if a.HasValue() {
			out[name] = f.Text(a.Value)
		} else {
			out[name] = ""
		}
	}
	return out
}

// truncateText clips s to limit bytes, marking the cut with an ellipsis.
func truncateText(s string, limit int) string {
	if limit > 0 && len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
