package tui

import tea "github.com/charmbracelet/bubbletea"

// searchDoneMsg carries a finished lookup back onto the update loop.
type searchDoneMsg struct {
	apply func()
}

// focusTarget identifies which control receives key input.
type focusTarget int

const (
	focusInput focusTarget = iota
	focusSearch
	focusToggle
	focusCount
)

// teaScheduler turns scheduled work into commands. Update drains it after
// every message so the work runs on Bubble Tea's command goroutines.
type teaScheduler struct {
	pending []tea.Cmd
}

// Go implements search.Scheduler.
func (s *teaScheduler) Go(work func() func()) {
	s.pending = append(s.pending, func() tea.Msg {
		return searchDoneMsg{apply: work()}
	})
}

func (s *teaScheduler) drain() []tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return cmds
}
