package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
	"github.com/zetsuboii/html-parser/pkg/types"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check that a document parses",
		Long: `The check command parses a document and reports whether it tokenizes
cleanly. Recoverable sloppiness such as unclosed elements, stray closing
tags, or mismatched case still passes; only unterminated tag constructs
and quoted values fail, reported with their line and column.

Example:
  htmlctl check page.html
  htmlctl check page.html --json
  htmlctl check download.html --encoding windows-1252`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

func runCheck(args []string) error {
	path := args[0]

	printVerbose("Checking input: %s\n", path)

	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return err
	}
	data, err := readInput(path, enc)
	if err != nil {
		return err
	}

	f, parseErr := htmlparse.ParseWithOptions(data, parseOptions())

	// Prepare result
	result := map[string]interface{}{
		"file":  path,
		"valid": parseErr == nil,
	}

	if parseErr != nil {
		result["error"] = parseErr.Error()
		var perr *htmlparse.Error
		if errors.As(parseErr, &perr) && perr.Offset >= 0 {
			line, col := types.Position(data, perr.Offset)
			result["offset"] = perr.Offset
			result["line"] = line
			result["column"] = col
		}
	} else {
		result["roots"] = f.Len()
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(result)
	}

	// Text output
	printInfo("\nChecking %s...\n\n", path)

	if parseErr != nil {
		described := describeParseError(data, parseErr)
		printInfo("  ✗ Parse failed: %v\n", described)
		printInfo("\nResult: ✗ INVALID\n")
		return described
	}

	printInfo("  ✓ Tokenized cleanly\n")
	printInfo("  ✓ Tree constructed (%d roots)\n", f.Len())
	printInfo("\nResult: ✓ VALID\n")

	return nil
}
