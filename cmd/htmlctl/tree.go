package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zetsuboii/html-parser/pkg/printer"
)

var (
	treeDepth   int
	treeAttrs   bool
	treeText    bool
	treeSpans   bool
	treeCompact bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeAttrs, "attrs", true, "Show attributes")
	cmd.Flags().BoolVar(&treeText, "text", true, "Show text runs")
	cmd.Flags().BoolVar(&treeSpans, "spans", false, "Show source byte ranges")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Display the parsed document tree",
		Long: `The tree command parses an HTML document and prints its node tree.
Pass "-" to read from stdin.

Example:
  htmlctl tree page.html
  htmlctl tree page.html --depth 2 --spans
  htmlctl tree page.html --json
  curl -s https://example.com | htmlctl tree -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	f, done, err := loadForest(args[0])
	if err != nil {
		return err
	}
	defer done()

	// Configure printer options
	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.ShowAttrs = treeAttrs
	opts.ShowText = treeText
	opts.ShowSpans = treeSpans

	// Handle JSON output
	if jsonOut {
		opts.Format = printer.FormatJSON
		return printer.New(f, os.Stdout, opts).Print()
	}

	// Text output
	opts.Format = printer.FormatText

	// Adjust indentation for compact mode
	if treeCompact {
		opts.IndentSize = 1
	}

	if err := printer.New(f, os.Stdout, opts).Print(); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}

	return nil
}
