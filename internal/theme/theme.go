// Package theme manages the persisted light/dark display mode.
package theme

// Theme is the two-valued display mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the preference key the theme is persisted under.
const StorageKey = "theme"

// Parse maps a stored string onto a Theme. Unknown values report false.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// Opposite returns the other theme. Anything that is not Dark flips to Dark.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon is the toggle glyph shown while t is active.
func (t Theme) Icon() string {
	if t == Dark {
		return "🌙"
	}
	return "☀️"
}

// ToggleLabel is the accessibility label of the toggle while t is active.
func (t Theme) ToggleLabel() string {
	if t == Dark {
		return "Switch to light theme"
	}
	return "Switch to dark theme"
}

func (t Theme) String() string {
	return string(t)
}
