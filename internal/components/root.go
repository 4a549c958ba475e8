package components

import (
	"sync"

	"github.com/alexisbeaulieu97/mealfinder/internal/theme"
)

// ThemeAttribute is the name of the root attribute carrying the theme.
const ThemeAttribute = "data-theme"

// Root is the top-level surface. It holds the theme attribute and the
// styles every child renders with.
type Root struct {
	mu         sync.RWMutex
	theme      theme.Theme
	styles     Styles
	hyperlinks bool
}

// NewRoot returns a root showing the light theme until one is applied.
func NewRoot() *Root {
	return &Root{
		theme:  theme.Light,
		styles: NewStyles(LightPalette()),
	}
}

// SetTheme sets the theme attribute and swaps the palette.
func (r *Root) SetTheme(t theme.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = t
	r.styles = NewStyles(PaletteFor(t))
	r.styles.Hyperlinks = r.hyperlinks
}

// Theme returns the current theme attribute.
func (r *Root) Theme() theme.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

// Attribute reads a root attribute. Only ThemeAttribute is defined.
func (r *Root) Attribute(name string) string {
	if name != ThemeAttribute {
		return ""
	}
	return r.Theme().String()
}

// SetHyperlinks toggles OSC 8 hyperlinks in rendered cards.
func (r *Root) SetHyperlinks(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hyperlinks = enabled
	r.styles.Hyperlinks = enabled
}

// Styles returns the styles for the current theme.
func (r *Root) Styles() Styles {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.styles
}

var _ theme.Surface = (*Root)(nil)
