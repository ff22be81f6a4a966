package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/zetsuboii/html-parser/pkg/types"
	"github.com/zetsuboii/html-parser/pkg/walk"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		helpOverlay := overlay.New(
			newHelpViewModel(&m),
			newMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return helpOverlay.View()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderStatus(),
	)
}

// renderHeader renders the title bar with the file name and current path.
func (m Model) renderHeader() string {
	title := headerStyle.Render("HTML Explorer")
	file := pathStyle.Render("File: " + m.htmlPath)

	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", file)

	if r := m.current(); r != nil {
		header = lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			pathStyle.Render("Path: "+nodePath(m.forest, m.parents, r.node)),
		)
	}
	return header
}

// treeHeight is the number of rows the tree pane can show.
func (m Model) treeHeight() int {
	return max(m.height-7, 5)
}

// renderContent renders the split-pane content: tree left, detail right.
func (m Model) renderContent() string {
	treeWidth := m.width / 2
	detailWidth := m.width - treeWidth
	paneHeight := m.treeHeight()

	treeStyle, detailStyle := paneStyle, paneStyle
	if m.focusedPane == TreePane {
		treeStyle = activePaneStyle
	} else {
		detailStyle = activePaneStyle
	}

	tree := treeStyle.
		Width(max(treeWidth-2, 10)).
		Height(paneHeight).
		Render(m.renderTree(paneHeight))
	detail := detailStyle.
		Width(max(detailWidth-2, 10)).
		Height(paneHeight).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, tree, detail)
}

// renderTree renders the visible window of tree rows.
func (m Model) renderTree(height int) string {
	if len(m.rows) == 0 {
		return mutedStyle.Render("(empty document)")
	}

	var b strings.Builder
	end := min(m.top+height, len(m.rows))
	for i := m.top; i < end; i++ {
		r := m.rows[i]

		marker := "  "
		if hasChildren(r.node) {
			if m.expanded[r.node] {
				marker = "▼ "
			} else {
				marker = "▶ "
			}
		}

		line := strings.Repeat("  ", r.depth) + marker + rowLabel(m.forest, r.node)
		line = truncate(line, max(m.width/2-4, 10))

		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render(line))
		case r.node.Kind == types.TextNode:
			b.WriteString(textNodeStyle.Render(line))
		default:
			b.WriteString(line)
		}
		if i != end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// refreshDetail rebuilds the detail pane content for the selected node.
func (m *Model) refreshDetail() {
	r := m.current()
	if r == nil || m.forest == nil {
		m.detail.SetContent("")
		return
	}
	n := r.node
	f := m.forest

	var b strings.Builder
	line, col := types.Position(f.Src, n.Span.Start)

	b.WriteString(detailTitleStyle.Render("Node"))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Kind:   %s\n", n.Kind))
	if n.Kind == types.ElementNode {
		b.WriteString(fmt.Sprintf("Tag:    %s\n", f.Tag(n)))
	}
	b.WriteString(fmt.Sprintf("Span:   %s (line %d, col %d)\n", n.Span, line, col))
	if n.SelfClosing {
		b.WriteString("Self-closing\n")
	}
	b.WriteString(fmt.Sprintf("Children: %d\n", len(n.Children)))

	if len(n.Attrs) > 0 {
		b.WriteByte('\n')
		b.WriteString(detailTitleStyle.Render("Attributes"))
		b.WriteByte('\n')
		for _, a := range n.Attrs {
			if a.HasValue() {
				b.WriteString(fmt.Sprintf("%s = %q\n", f.Text(a.Name), f.Text(a.Value)))
			} else {
				b.WriteString(fmt.Sprintf("%s (boolean)\n", f.Text(a.Name)))
			}
		}
	}

	if text := collapseSpace(walk.InnerText(f, n)); text != "" {
		b.WriteByte('\n')
		b.WriteString(detailTitleStyle.Render("Text"))
		b.WriteByte('\n')
		b.WriteString(truncate(text, 500))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(detailTitleStyle.Render("Source"))
	b.WriteByte('\n')
	b.WriteString(truncate(f.Text(n.Span), 800))

	m.detail.SetContent(b.String())
	m.detail.GotoTop()
}

// renderStatus renders the bottom status bar.
func (m Model) renderStatus() string {
	if m.statusMessage != "" {
		return statusStyle.Width(m.width).Render(m.statusMessage)
	}

	pos := ""
	if len(m.rows) > 0 {
		pos = fmt.Sprintf("%s/%s nodes",
			statusCountStyle.Render(fmt.Sprint(m.cursor+1)),
			statusCountStyle.Render(fmt.Sprint(len(m.rows))),
		)
	}
	help := helpHintStyle.Render("? help · tab switch pane · c copy path · q quit")
	return statusStyle.Width(m.width).Render(pos + "  " + help)
}

// renderHelp renders the content of the help overlay.
func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	section := func(title string, entries [][2]string) {
		b.WriteString(modalTitleStyle.Render(title))
		b.WriteByte('\n')
		for _, e := range entries {
			b.WriteString(helpKeyStyle.Render(e[0]))
			b.WriteString("  ")
			b.WriteString(helpDescStyle.Render(e[1]))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	section("Navigation", [][2]string{
		{"↑/↓ or k/j", "Move cursor up/down"},
		{"←/→ or h/l", "Collapse/Expand element"},
		{"Home or g", "Go to top"},
		{"End or G", "Go to bottom"},
		{"Tab", "Switch between tree and detail"},
		{"p", "Go to parent element"},
	})
	section("Tree", [][2]string{
		{"Enter", "Toggle expansion"},
		{"E", "Expand all elements"},
		{"C", "Collapse all elements"},
	})
	section("Commands", [][2]string{
		{"c", "Copy node path to clipboard"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	})

	b.WriteString(mutedStyle.Render("Press esc or ? to close"))
	return modalStyle.Render(b.String())
}
