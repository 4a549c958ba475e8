package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/mealfinder/internal/theme"
)

// ThemeToggle is the button that switches between light and dark.
type ThemeToggle struct {
	*Button

	mu    sync.RWMutex
	icon  string
	label string
}

// NewThemeToggle creates the toggle with an empty icon until a theme is set.
func NewThemeToggle() *ThemeToggle {
	return &ThemeToggle{Button: NewButton(ThemeToggleID, "")}
}

// SetIcon replaces the visible glyph.
func (t *ThemeToggle) SetIcon(icon string) {
	t.mu.Lock()
	t.icon = icon
	t.mu.Unlock()
}

// SetLabel replaces the accessibility label.
func (t *ThemeToggle) SetLabel(label string) {
	t.mu.Lock()
	t.label = label
	t.mu.Unlock()
}

// Icon returns the visible glyph.
func (t *ThemeToggle) Icon() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.icon
}

// Label returns the accessibility label.
func (t *ThemeToggle) Label() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.label
}

// View renders the icon, and the label as a hint while focused.
func (t *ThemeToggle) View(s Styles) string {
	if t.Focused() {
		return lipgloss.JoinHorizontal(lipgloss.Center, s.Muted.Render(t.Label()+" "), s.ToggleFocus.Render(t.Icon()))
	}
	return s.Toggle.Render(t.Icon())
}

var _ theme.Control = (*ThemeToggle)(nil)
