package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	encodingName string
	maxDepth     int
)

var rootCmd = &cobra.Command{
	Use:   "htmlctl",
	Short: "Inspect and query HTML documents",
	Long: `htmlctl is a tool for parsing, inspecting, and querying HTML documents.
It builds a tolerant parse tree over the raw input bytes and exposes tree,
search, text extraction, and statistics commands on top of it.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&encodingName, "encoding", "utf-8", "Input encoding (utf-8, windows-1252, iso-8859-1, utf-16le, utf-16be)")
	rootCmd.PersistentFlags().
		IntVar(&maxDepth, "max-depth", 0, "Element nesting limit (0 = parser default)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
