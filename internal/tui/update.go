package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	wasSearching := m.searching()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		quit, cmd := m.handleKeyPress(msg)
		if quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case searchDoneMsg:
		if msg.apply != nil {
			msg.apply()
		}

	case spinner.TickMsg:
		if !m.searching() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		cmds = append(cmds, m.input.Update(msg))
	}

	cmds = append(cmds, m.scheduler.drain()...)
	if !wasSearching && m.searching() {
		cmds = append(cmds, m.spinner.Tick)
	}
	m.refresh()

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "esc":
		return true, nil
	case "tab":
		return false, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return false, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+t":
		m.toggle.Click()
		return false, nil
	case "pgup", "pgdown", "up", "down":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return false, cmd
	}

	switch m.focus {
	case focusSearch:
		return m.activate(key, m.button.Click)
	case focusToggle:
		return m.activate(key, m.toggle.Click)
	default:
		return false, m.input.Update(msg)
	}
}

// activate handles keys while a button has focus.
func (m *Model) activate(key string, click func()) (bool, tea.Cmd) {
	switch key {
	case "enter", " ":
		click()
	case "q":
		return true, nil
	}
	return false, nil
}
