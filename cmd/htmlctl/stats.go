package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
	"github.com/zetsuboii/html-parser/pkg/types"
	"github.com/zetsuboii/html-parser/pkg/walk"
)

var statsTag string

func init() {
	cmd := newStatsCmd()
	cmd.Flags().StringVar(&statsTag, "tag", "", "Stats for the subtree of the first matching element")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show detailed document statistics",
		Long: `The stats command shows detailed statistics about a document including
node counts, tag distribution, nesting depth, and text volume.

Example:
  htmlctl stats page.html
  htmlctl stats page.html --tag article
  htmlctl stats page.html --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

type DocStats struct {
	FilePath     string
	FileSize     int64
	LastModified time.Time
	SourceBytes  int

	Roots      int
	TotalNodes int
	Elements   int
	TextNodes  int
	Attributes int
	TextBytes  int
	MaxDepth   int

	Tags map[string]int

	MostCommonTag struct {
		Name  string
		Count int
	}

	LongestText struct {
		Start int
		End   int
		Bytes int
	}
}

func runStats(args []string) error {
	path := args[0]

	f, done, err := loadForest(path)
	if err != nil {
		return err
	}
	defer done()

	stats := DocStats{
		FilePath:    path,
		SourceBytes: len(f.Src),
	}

	// File info is best effort; stdin has none.
	if path != stdinPath {
		if fileInfo, err := os.Stat(path); err == nil {
			stats.FileSize = fileInfo.Size()
			stats.LastModified = fileInfo.ModTime()
		}
	} else {
		stats.FilePath = "(stdin)"
	}

	// Scope to a subtree if requested
	scope := f
	if statsTag != "" {
		n, ok := walk.Find(f, walk.Selector{Tag: statsTag})
		if !ok {
			return fmt.Errorf("no element matching <%s>: %w", statsTag, htmlparse.ErrNotFound)
		}
		scope = &types.Forest{Roots: []*types.Node{n}, Src: f.Src}
	}

	collected := walk.Collect(scope)
	stats.Roots = collected.Roots
	stats.TotalNodes = collected.Nodes
	stats.Elements = collected.Elements
	stats.TextNodes = collected.TextNodes
	stats.Attributes = collected.Attributes
	stats.TextBytes = collected.TextBytes
	stats.MaxDepth = collected.MaxDepth
	stats.Tags = collected.ByTag

	// Most common tag
	for name, count := range stats.Tags {
		if count > stats.MostCommonTag.Count ||
			(count == stats.MostCommonTag.Count && name < stats.MostCommonTag.Name) {
			stats.MostCommonTag.Name = name
			stats.MostCommonTag.Count = count
		}
	}

	// Longest text run
	var longest types.Span
	_ = walk.Walk(scope, func(n *types.Node, depth int) error {
		if n.Kind == types.TextNode && n.Span.Len() > longest.Len() {
			longest = n.Span
		}
		return nil
	})
	stats.LongestText.Start = longest.Start
	stats.LongestText.End = longest.End
	stats.LongestText.Bytes = longest.Len()

	// Output as JSON if requested
	if jsonOut {
		return printJSON(stats)
	}

	// Text output
	printInfo("\nDocument Statistics: %s\n", stats.FilePath)
	printInfo("%s\n\n", strings.Repeat("═", 40))

	// File information
	printInfo("File Information:\n")
	printInfo("  Path: %s\n", stats.FilePath)
	if stats.FileSize > 0 {
		printInfo("  Size: %s (%s bytes)\n", formatBytes(stats.FileSize), formatNumber(stats.FileSize))
		printInfo("  Last Modified: %s\n", stats.LastModified.Format("2006-01-02 15:04:05"))
	}
	printInfo("  Source Bytes: %s\n\n", formatNumber(int64(stats.SourceBytes)))

	// Structure
	printInfo("Structure:\n")
	printInfo("  Roots: %d\n", stats.Roots)
	printInfo("  Total Nodes: %s\n", formatNumber(int64(stats.TotalNodes)))
	printInfo("  Elements: %s\n", formatNumber(int64(stats.Elements)))
	printInfo("  Text Nodes: %s\n", formatNumber(int64(stats.TextNodes)))
	printInfo("  Attributes: %s\n", formatNumber(int64(stats.Attributes)))
	printInfo("  Text Bytes: %s\n", formatNumber(int64(stats.TextBytes)))
	printInfo("  Max Depth: %d levels\n\n", stats.MaxDepth)

	// Tag distribution
	if len(stats.Tags) > 0 {
		printInfo("Elements by Tag:\n")
		// Sort tags by count
		type tagCount struct {
			Tag   string
			Count int
		}
		var tags []tagCount
		for t, c := range stats.Tags {
			tags = append(tags, tagCount{t, c})
		}
		sort.Slice(tags, func(i, j int) bool {
			if tags[i].Count != tags[j].Count {
				return tags[i].Count > tags[j].Count
			}
			return tags[i].Tag < tags[j].Tag
		})

		for i, tc := range tags {
			if i >= 10 { // Only show first 10 tags
				break
			}
			percentage := float64(tc.Count) * 100.0 / float64(stats.Elements)
			printInfo("  %s: %s (%.1f%%)\n", tc.Tag, formatNumber(int64(tc.Count)), percentage)
		}
		if len(tags) > 10 {
			printInfo("  ... (%d more tags)\n", len(tags)-10)
		}
		printInfo("\n")
	}

	// Extremes
	if stats.MostCommonTag.Name != "" || stats.LongestText.Bytes > 0 {
		printInfo("Extremes:\n")
		if stats.MostCommonTag.Name != "" {
			printInfo("  Most Common Tag: %s (%d)\n", stats.MostCommonTag.Name, stats.MostCommonTag.Count)
		}
		if stats.LongestText.Bytes > 0 {
			printInfo("  Longest Text Run: %s at [%d:%d)\n",
				formatBytes(int64(stats.LongestText.Bytes)), stats.LongestText.Start, stats.LongestText.End)
		}
	}

	return nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	// Add commas
	var result strings.Builder
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}
