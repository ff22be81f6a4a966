package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Version information, set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	if args[0] == "--help" || args[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if args[0] == "--version" || args[0] == "-v" {
		fmt.Printf("htmlexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	htmlPath := args[0]

	if _, err := os.Stat(htmlPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", htmlPath)
		os.Exit(1)
	}

	m := NewModel(htmlPath)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	// Release the file mapping; cleanup is best effort.
	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing resources: %v\n", err)
		}
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: htmlexplorer <html-file>\n")
	fmt.Fprintf(os.Stderr, "Try 'htmlexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("htmlexplorer - Interactive TUI for HTML Documents")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  htmlexplorer <html-file>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI for exploring the parse tree of an")
	fmt.Println("  HTML document. The file is memory-mapped and parsed tolerantly; every")
	fmt.Println("  piece of text shown in the detail pane is a view into the mapped bytes.")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Split-pane layout (element tree + node detail)")
	fmt.Println("    - Keyboard navigation (vim-style keys supported)")
	fmt.Println("    - Expand/collapse elements")
	fmt.Println("    - Attribute, span, and text inspection")
	fmt.Println("    - Copy the selected node's path (c)")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Navigate up/down")
	fmt.Println("    →/l, Enter  Expand element / toggle")
	fmt.Println("    ←/h         Collapse element / go to parent")
	fmt.Println("    Tab         Switch between tree and detail panes")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  htmlexplorer index.html")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'htmlctl' command instead.")
}
