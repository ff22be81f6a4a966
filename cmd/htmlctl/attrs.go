package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
	"github.com/zetsuboii/html-parser/pkg/walk"
)

func init() {
	rootCmd.AddCommand(newAttrsCmd())
}

func newAttrsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attrs <file> <tag>",
		Short: "List attributes of the first matching element",
		Long: `The attrs command lists all attributes of the first element matching the
given tag name, in source order. Boolean attributes are listed without a
value.

Example:
  htmlctl attrs page.html img
  htmlctl attrs page.html input --json
  htmlctl attrs page.html meta`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttrs(args)
		},
	}
	return cmd
}

func runAttrs(args []string) error {
	path := args[0]
	tag := args[1]

	f, done, err := loadForest(path)
	if err != nil {
		return err
	}
	defer done()

	n, ok := walk.Find(f, walk.Selector{Tag: tag})
	if !ok {
		return fmt.Errorf("no element matching <%s>: %w", tag, htmlparse.ErrNotFound)
	}

	// Handle JSON output. Boolean attributes map to null so they stay
	// distinguishable from explicitly empty values.
	if jsonOut {
		result := make(map[string]interface{}, len(n.Attrs))
		for _, a := range n.Attrs {
			name := f.Text(a.Name)
			if _, exists := result[name]; exists {
				continue
			}
			if a.HasValue() {
				result[name] = f.Text(a.Value)
			} else {
				result[name] = nil
			}
		}
		return printJSON(result)
	}

	// Text output
	printInfo("\nAttributes of [%s]:\n", f.Tag(n))
	for _, a := range n.Attrs {
		if a.HasValue() {
			printInfo("  %s = %q\n", f.Text(a.Name), f.Text(a.Value))
		} else {
			printInfo("  %s\n", f.Text(a.Name))
		}
	}
	printInfo("\nTotal: %d attributes\n", len(n.Attrs))

	return nil
}
