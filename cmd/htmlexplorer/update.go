package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zetsuboii/html-parser/pkg/types"
)

// statusTimeout is how long transient status messages stay visible.
const statusTimeout = 2 * time.Second

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = max(m.width-m.width/2-4, 10)
		m.detail.Height = max(m.height-7, 5)
		m.ensureCursorVisible()
		m.refreshDetail()
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If help is showing, any of these dismiss it; other keys are ignored.
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	// Global keys
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = true
		return m, nil
	}
	if key.Matches(msg, m.keys.Tab) {
		if m.focusedPane == TreePane {
			m.focusedPane = DetailPane
		} else {
			m.focusedPane = TreePane
		}
		return m, nil
	}

	// When the detail pane is focused, navigation scrolls the viewport.
	if m.focusedPane == DetailPane {
		if key.Matches(msg, m.keys.Esc) {
			m.focusedPane = TreePane
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	return m.handleTreeKey(msg)
}

func (m Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil || len(m.rows) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.treeHeight())

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.treeHeight())

	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.rows))

	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows))

	case key.Matches(msg, m.keys.Enter):
		if r := m.current(); r != nil && hasChildren(r.node) {
			m.setExpanded(r.node, !m.expanded[r.node])
		}

	case key.Matches(msg, m.keys.Right):
		if r := m.current(); r != nil && hasChildren(r.node) {
			m.setExpanded(r.node, true)
		}

	case key.Matches(msg, m.keys.Left):
		r := m.current()
		if r == nil {
			break
		}
		if hasChildren(r.node) && m.expanded[r.node] {
			m.setExpanded(r.node, false)
		} else {
			m.goToParent()
		}

	case key.Matches(msg, m.keys.GoToParent):
		m.goToParent()

	case key.Matches(msg, m.keys.ExpandAll):
		for _, n := range m.allNodes() {
			if hasChildren(n) {
				m.expanded[n] = true
			}
		}
		m.rebuildRows()

	case key.Matches(msg, m.keys.CollapseAll):
		m.expanded = make(map[*types.Node]bool)
		m.rebuildRows()

	case key.Matches(msg, m.keys.Copy):
		if r := m.current(); r != nil {
			path := nodePath(m.forest, m.parents, r.node)
			if err := clipboard.WriteAll(path); err != nil {
				m.statusMessage = fmt.Sprintf("Copy failed: %v", err)
			} else {
				m.statusMessage = "Copied: " + path
			}
			return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
				return clearStatusMsg{}
			})
		}
	}

	return m, nil
}

// moveCursor shifts the cursor by delta, clamps it, and keeps it on screen.
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.ensureCursorVisible()
	m.refreshDetail()
}

// setExpanded changes one node's expansion and rebuilds the visible rows,
// keeping the cursor on the same node.
func (m *Model) setExpanded(n *types.Node, open bool) {
	if open {
		m.expanded[n] = true
	} else {
		delete(m.expanded, n)
	}
	m.rebuildRows()
}

func (m *Model) rebuildRows() {
	var keep *types.Node
	if r := m.current(); r != nil {
		keep = r.node
	}
	m.rows = flattenVisible(m.forest, m.expanded)
	m.cursor = 0
	for i := range m.rows {
		if m.rows[i].node == keep {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
	m.refreshDetail()
}

// goToParent moves the cursor to the current node's parent row.
func (m *Model) goToParent() {
	r := m.current()
	if r == nil {
		return
	}
	parent := m.parents[r.node]
	if parent == nil {
		return
	}
	for i := range m.rows {
		if m.rows[i].node == parent {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
	m.refreshDetail()
}

// allNodes returns every node in the forest in document order.
func (m *Model) allNodes() []*types.Node {
	if m.forest == nil {
		return nil
	}
	var all []*types.Node
	var stack []*types.Node
	for i := len(m.forest.Roots) - 1; i >= 0; i-- {
		stack = append(stack, m.forest.Roots[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		all = append(all, n)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return all
}

// ensureCursorVisible scrolls the tree window so the cursor stays on screen.
func (m *Model) ensureCursorVisible() {
	h := m.treeHeight()
	if h <= 0 {
		return
	}
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+h {
		m.top = m.cursor - h + 1
	}
	if m.top < 0 {
		m.top = 0
	}
}
