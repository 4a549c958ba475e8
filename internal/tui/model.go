// Package tui hosts the recipe search widget in a Bubble Tea program.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/mealfinder/internal/components"
	"github.com/alexisbeaulieu97/mealfinder/internal/logger"
	"github.com/alexisbeaulieu97/mealfinder/internal/prefs"
	"github.com/alexisbeaulieu97/mealfinder/internal/search"
	"github.com/alexisbeaulieu97/mealfinder/internal/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures the TUI host.
type Options struct {
	Context      context.Context
	Store        prefs.Store
	Source       search.Source
	Logger       *logger.Logger
	DiscardStale bool
	Hyperlinks   bool
}

// Model is the Bubble Tea model for the search widget.
type Model struct {
	// Widgets
	root    *components.Root
	input   *components.TextInput
	button  *components.Button
	toggle  *components.ThemeToggle
	results *components.Results

	// Behaviour
	themes     *theme.Manager
	controller *search.Controller
	scheduler  *teaScheduler

	// Component state
	viewport viewport.Model
	spinner  spinner.Model
	focus    focusTarget
	revision uint64

	// Dimensions
	width  int
	height int
}

// New builds the widget, applies the saved theme and wires every handler.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	root := components.NewRoot()
	root.SetHyperlinks(opts.Hyperlinks)

	m := Model{
		root:      root,
		input:     components.NewTextInput(components.SearchInputID, components.SearchPlaceholder),
		button:    components.NewButton(components.SearchButtonID, "Search"),
		toggle:    components.NewThemeToggle(),
		results:   components.NewResults(),
		scheduler: &teaScheduler{},
		viewport:  viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:     defaultWidth,
		height:    defaultHeight,
	}

	themes := theme.NewManager(root, m.toggle, opts.Store, opts.Logger)
	themes.Init()
	m.toggle.OnClick(func(components.ClickEvent) { themes.Toggle() })
	m.themes = themes

	fetcher := search.NewFetcher(search.FetcherOptions{
		Source:       opts.Source,
		Container:    m.results,
		Scheduler:    m.scheduler,
		Logger:       opts.Logger,
		DiscardStale: opts.DiscardStale,
	})
	m.controller = search.NewController(ctx, m.input, m.button, m.results, fetcher)

	s := spinner.New()
	s.Spinner = spinner.Dot
	m.spinner = s

	m.input.Focus()
	m.layout()
	m.refresh()

	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.themes.Current()
}

// Results exposes the results container.
func (m Model) Results() *components.Results {
	return m.results
}

// searching reports whether the placeholder is showing.
func (m Model) searching() bool {
	msg, ok := m.results.Message()
	return ok && msg.Text == search.SearchingText
}

// setFocus moves focus to target and returns the input's blink command
// when it gains focus.
func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	m.input.Blur()
	m.button.Blur()
	m.toggle.Blur()

	switch target {
	case focusSearch:
		m.button.Focus()
	case focusToggle:
		m.toggle.Focus()
	default:
		return m.input.Focus()
	}
	return nil
}

// layout sizes the input and viewport to the terminal.
func (m *Model) layout() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chromeHeight, 3)
	m.input.SetWidth(m.width - searchRowReserve)
}

// refresh re-renders the results into the viewport when they changed.
func (m *Model) refresh() {
	m.viewport.SetContent(m.results.View(m.root.Styles(), m.width-1))
	if rev := m.results.Revision(); rev != m.revision {
		m.revision = rev
		m.viewport.GotoTop()
	}
}
