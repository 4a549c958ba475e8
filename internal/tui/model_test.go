package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/mealfinder/internal/components"
	"github.com/alexisbeaulieu97/mealfinder/internal/mealdb"
	"github.com/alexisbeaulieu97/mealfinder/internal/prefs"
	"github.com/alexisbeaulieu97/mealfinder/internal/search"
	"github.com/alexisbeaulieu97/mealfinder/internal/theme"
)

type stubSource struct {
	mu    sync.Mutex
	calls []string
	meals map[string][]mealdb.Meal
}

func (s *stubSource) Search(_ context.Context, term string) ([]mealdb.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, term)
	return s.meals[term], nil
}

func (s *stubSource) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func newTestModel(t *testing.T, store prefs.Store, source search.Source) Model {
	t.Helper()
	return New(Options{Store: store, Source: source, DiscardStale: true})
}

// collect runs cmd and any batched children, skipping commands that block
// on timers longer than the cutoff.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(150 * time.Millisecond):
		return nil
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// settle feeds finished searches back into the model.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		if done, ok := msg.(searchDoneMsg); ok {
			m, _ = update(t, m, done)
		}
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNew_AppliesDefaultTheme(t *testing.T) {
	store := prefs.NewMemoryStore()
	m := newTestModel(t, store, &stubSource{})

	assert.Equal(t, theme.Light, m.Theme())
	stored, ok, err := store.Get(theme.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", stored)
	assert.Equal(t, "☀️", m.toggle.Icon())
}

func TestNew_RestoresSavedTheme(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(theme.StorageKey, "dark"))

	m := newTestModel(t, store, &stubSource{})
	assert.Equal(t, theme.Dark, m.Theme())
	assert.Equal(t, "🌙", m.toggle.Icon())
}

func TestUpdate_CtrlTTogglesTheme(t *testing.T) {
	store := prefs.NewMemoryStore()
	m := newTestModel(t, store, &stubSource{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, theme.Dark, m.Theme())
	stored, _, _ := store.Get(theme.StorageKey)
	assert.Equal(t, "dark", stored)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, theme.Light, m.Theme())
}

func TestUpdate_EnterSearches(t *testing.T) {
	source := &stubSource{meals: map[string][]mealdb.Meal{
		"Chicken": {{Name: "Chicken Curry", Thumbnail: "url1", Source: "http://x"}},
	}}
	m := newTestModel(t, prefs.NewMemoryStore(), source)

	m = typeText(t, m, "Chicken")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	msg, ok := m.Results().Message()
	require.True(t, ok)
	assert.Equal(t, search.SearchingText, msg.Text)
	assert.Contains(t, m.View(), search.SearchingText)

	m = settle(t, m, cmd)

	assert.Equal(t, []string{"Chicken"}, source.Calls())
	cards := m.Results().Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "Chicken Curry", cards[0].Title)
	assert.Equal(t, "http://x", cards[0].Link.Href)
	assert.Contains(t, m.View(), "Chicken Curry")
}

func TestUpdate_EmptyInputShowsPrompt(t *testing.T) {
	source := &stubSource{}
	m := newTestModel(t, prefs.NewMemoryStore(), source)

	m = typeText(t, m, "   ")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, source.Calls())
	msg, ok := m.Results().Message()
	require.True(t, ok)
	assert.Equal(t, search.EmptyInputText, msg.Text)
}

func TestUpdate_TabCyclesFocus(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryStore(), &stubSource{})
	assert.Equal(t, focusInput, m.focus)
	assert.True(t, m.input.Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusSearch, m.focus)
	assert.True(t, m.button.Focused())
	assert.False(t, m.input.Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusToggle, m.focus)
	assert.True(t, m.toggle.Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusInput, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusToggle, m.focus)
}

func TestUpdate_EnterOnToggle(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryStore(), &stubSource{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, focusToggle, m.focus)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, theme.Dark, m.Theme())
	assert.Contains(t, m.View(), "Switch to light theme")
}

func TestUpdate_ClickSearchButton(t *testing.T) {
	source := &stubSource{meals: map[string][]mealdb.Meal{"Beef": {}}}
	m := newTestModel(t, prefs.NewMemoryStore(), source)

	m = typeText(t, m, "Beef")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = settle(t, m, cmd)

	assert.Equal(t, []string{"Beef"}, source.Calls())
	assert.Empty(t, m.Results().Cards())
	_, ok := m.Results().Message()
	assert.False(t, ok)
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryStore(), &stubSource{})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_QTypesIntoInput(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryStore(), &stubSource{})
	m = typeText(t, m, "q")
	assert.Equal(t, "q", m.input.Value())
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryStore(), &stubSource{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.viewport.Width)
	assert.Equal(t, 40-chromeHeight, m.viewport.Height)
}

func TestView_ShowsChrome(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryStore(), &stubSource{})
	view := m.View()

	assert.Contains(t, view, appTitle)
	assert.Contains(t, view, "Search")
	assert.Contains(t, view, "☀️")
	assert.Contains(t, view, "esc quit")
}

func TestScheduler_Drain(t *testing.T) {
	s := &teaScheduler{}
	applied := false
	s.Go(func() func() { return func() { applied = true } })

	cmds := s.drain()
	require.Len(t, cmds, 1)
	assert.Empty(t, s.drain())

	msg, ok := cmds[0]().(searchDoneMsg)
	require.True(t, ok)
	msg.apply()
	assert.True(t, applied)
}

func TestResultsUseStableID(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryStore(), &stubSource{})
	assert.Equal(t, components.ResultsID, m.Results().ID())
}
