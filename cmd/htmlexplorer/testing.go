package main

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zetsuboii/html-parser/pkg/htmlparse"
	"github.com/zetsuboii/html-parser/pkg/types"
)

// newModelFromSource builds a model over an in-memory document instead of a
// mapped file. Used by tests so they do not need fixture files or a mmap.
func newModelFromSource(src string) (Model, error) {
	m := Model{
		htmlPath:    "<memory>",
		keys:        DefaultKeyMap(),
		expanded:    make(map[*types.Node]bool),
		focusedPane: TreePane,
		detail:      viewport.New(0, 0),
	}
	forest, err := htmlparse.ParseString(src)
	if err != nil {
		return m, err
	}
	m.forest = forest
	m.parents = parentMap(forest)
	for _, root := range forest.Roots {
		m.expanded[root] = true
	}
	m.rows = flattenVisible(forest, m.expanded)
	m.refreshDetail()
	return m, nil
}

// sendKey runs one key message through Update and returns the new model.
func sendKey(m Model, keyType tea.KeyType, runes ...rune) Model {
	msg := tea.KeyMsg{Type: keyType, Runes: runes}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// sendResize runs a window-size message through Update.
func sendResize(m Model, width, height int) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}
