package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
	"github.com/zetsuboii/html-parser/pkg/walk"
)

var textTag string

func init() {
	cmd := newTextCmd()
	cmd.Flags().StringVar(&textTag, "tag", "", "Extract text from the first matching element only")
	rootCmd.AddCommand(cmd)
}

func newTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text <file>",
		Short: "Extract text content",
		Long: `The text command concatenates every text run in the document in source
order, with markup stripped. With --tag only the subtree of the first
matching element contributes.

Example:
  htmlctl text page.html
  htmlctl text page.html --tag title
  htmlctl text page.html --tag article
  htmlctl text page.html --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runText(args)
		},
	}
	return cmd
}

func runText(args []string) error {
	f, done, err := loadForest(args[0])
	if err != nil {
		return err
	}
	defer done()

	var out string
	if textTag != "" {
		n, ok := walk.Find(f, walk.Selector{Tag: textTag})
		if !ok {
			return fmt.Errorf("no element matching <%s>: %w", textTag, htmlparse.ErrNotFound)
		}
		out = walk.InnerText(f, n)
	} else {
		out = walk.Text(f)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"text":  out,
			"bytes": len(out),
		})
	}

	// Raw text output (pipeline-friendly)
	if _, err := io.WriteString(os.Stdout, out); err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(os.Stdout)
	}

	return nil
}
