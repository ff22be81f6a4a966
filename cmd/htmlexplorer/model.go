package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
	"github.com/zetsuboii/html-parser/pkg/types"
)

// Pane represents which pane is focused.
type Pane int

const (
	TreePane Pane = iota
	DetailPane
)

// Model is the main application model.
type Model struct {
	htmlPath string
	forest   *types.Forest
	cleanup  func() error

	keys KeyMap

	// Tree state. rows is the flattened list of visible nodes, rebuilt
	// whenever expansion changes; parents and order are fixed per parse.
	expanded map[*types.Node]bool
	parents  map[*types.Node]*types.Node
	rows     []row
	cursor   int
	top      int // first visible row in the tree pane

	// Detail pane.
	detail viewport.Model

	focusedPane Pane
	width       int
	height      int

	showHelp      bool
	statusMessage string

	err error
}

// NewModel loads and parses the document at htmlPath and builds the model.
// A parse or mapping failure is stored on the model and rendered by View,
// so the program still starts and can be quit normally.
func NewModel(htmlPath string) Model {
	m := Model{
		htmlPath:    htmlPath,
		keys:        DefaultKeyMap(),
		expanded:    make(map[*types.Node]bool),
		focusedPane: TreePane,
		detail:      viewport.New(0, 0),
	}

	forest, cleanup, err := htmlparse.OpenFile(htmlPath, htmlparse.Options{})
	if err != nil {
		m.err = err
		return m
	}
	m.forest = forest
	m.cleanup = cleanup
	m.parents = parentMap(forest)

	// Start with the root elements expanded one level so the document
	// shape is visible immediately.
	for _, root := range forest.Roots {
		m.expanded[root] = true
	}
	m.rows = flattenVisible(forest, m.expanded)
	m.refreshDetail()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the file mapping. Called once when the TUI exits.
func (m *Model) Close() error {
	if m.cleanup == nil {
		return nil
	}
	cleanup := m.cleanup
	m.cleanup = nil
	return cleanup()
}

// current returns the row under the cursor, or nil when the tree is empty.
func (m *Model) current() *row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// Messages

type clearStatusMsg struct{}
