package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle = "🍲 Recipe Finder"

	// bordered header row, bordered search row, footer
	chromeHeight = 7
	// button, gaps, input frame and prompt
	searchRowReserve = 20
)

// View renders the widget.
func (m Model) View() string {
	s := m.root.Styles()

	title := s.Title.Render(appTitle)
	toggle := m.toggle.View(s)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Repeat(" ", gap), toggle)

	searchRow := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(s), " ", m.button.View(s))

	sections := []string{header, searchRow, m.viewport.View(), m.footer()}
	return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) footer() string {
	s := m.root.Styles()
	help := "tab focus • enter search • ctrl+t theme • ↑/↓ scroll • esc quit"
	if m.searching() {
		return m.spinner.View() + " " + s.Muted.Render(help)
	}
	return s.Muted.Render(help)
}
