package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/mealfinder/internal/theme"
)

// ColourSet groups the shades used for a semantic colour slot.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Danger  ColourSet
	Info    ColourSet
	Neutral ColourSet
}

// LightPalette is applied while the root carries the light theme.
func LightPalette() Palette {
	return Palette{
		Primary: ColourSet{Base: "#3b82f6", OnBase: "#f8fafc", Muted: "#2563eb"},
		Surface: ColourSet{Base: "#f9fafb", OnBase: "#111827", Muted: "#e2e8f0"},
		Danger:  ColourSet{Base: "#ef4444", OnBase: "#7f1d1d", Muted: "#fee2e2"},
		Info:    ColourSet{Base: "#06b6d4", OnBase: "#083344", Muted: "#cffafe"},
		Neutral: ColourSet{Base: "#64748b", OnBase: "#f1f5f9", Muted: "#475569"},
	}
}

// DarkPalette is applied while the root carries the dark theme.
func DarkPalette() Palette {
	return Palette{
		Primary: ColourSet{Base: "#60a5fa", OnBase: "#0b1120", Muted: "#1d4ed8"},
		Surface: ColourSet{Base: "#111827", OnBase: "#f9fafb", Muted: "#1f2937"},
		Danger:  ColourSet{Base: "#f87171", OnBase: "#fecaca", Muted: "#450a0a"},
		Info:    ColourSet{Base: "#22d3ee", OnBase: "#cffafe", Muted: "#083344"},
		Neutral: ColourSet{Base: "#94a3b8", OnBase: "#0f172a", Muted: "#334155"},
	}
}

// PaletteFor maps a theme onto its palette. Anything but Dark is light.
func PaletteFor(t theme.Theme) Palette {
	if t == theme.Dark {
		return DarkPalette()
	}
	return LightPalette()
}

// Styles holds the rendered styles derived from one palette.
type Styles struct {
	Palette Palette

	App        lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style

	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	Toggle      lipgloss.Style
	ToggleFocus lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Link      lipgloss.Style
	Badge     lipgloss.Style

	AlertInfo  lipgloss.Style
	AlertError lipgloss.Style

	// Hyperlinks enables OSC 8 links in rendered cards.
	Hyperlinks bool
}

// NewStyles builds the component styles for p.
func NewStyles(p Palette) Styles {
	button := lipgloss.NewStyle().
		Foreground(p.Primary.OnBase).
		Background(p.Primary.Base).
		Bold(true).
		Padding(0, 2)

	toggle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Neutral.Base).
		Padding(0, 1)

	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Neutral.Base).
		Padding(0, 1)

	alert := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		Padding(0, 1)

	return Styles{
		Palette: p,

		App:        lipgloss.NewStyle().Foreground(p.Surface.OnBase),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base),
		Muted:      lipgloss.NewStyle().Foreground(p.Neutral.Base),
		Input:      input,
		InputFocus: input.BorderForeground(p.Primary.Base),

		Button:      button,
		ButtonFocus: button.Background(p.Primary.Muted).Underline(true),
		Toggle:      toggle,
		ToggleFocus: toggle.BorderForeground(p.Primary.Base),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Neutral.Muted).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Surface.OnBase),
		Link:      lipgloss.NewStyle().Foreground(p.Primary.Base).Underline(true),
		Badge:     lipgloss.NewStyle().Foreground(p.Neutral.Base).Italic(true),

		AlertInfo:  alert.BorderForeground(p.Info.Base).Foreground(p.Info.OnBase),
		AlertError: alert.BorderForeground(p.Danger.Base).Foreground(p.Danger.Base).Bold(true),
	}
}
