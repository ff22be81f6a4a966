package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// mainViewModel wraps the main UI so it can serve as the overlay background.
type mainViewModel struct {
	model *Model
}

func newMainViewModel(m *Model) *mainViewModel {
	return &mainViewModel{model: m}
}

func (m *mainViewModel) Init() tea.Cmd { return nil }

func (m *mainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Updates are handled by the parent Model; this only provides View.
	return m, nil
}

func (m *mainViewModel) View() string {
	return m.model.renderMain()
}

// helpViewModel wraps the help content as the overlay foreground.
type helpViewModel struct {
	model *Model
}

func newHelpViewModel(m *Model) *helpViewModel {
	return &helpViewModel{model: m}
}

func (h *helpViewModel) Init() tea.Cmd { return nil }

func (h *helpViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

func (h *helpViewModel) View() string {
	return h.model.renderHelp()
}
