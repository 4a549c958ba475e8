package theme

import (
	"github.com/alexisbeaulieu97/mealfinder/internal/logger"
	"github.com/alexisbeaulieu97/mealfinder/internal/prefs"
)

// Surface carries the root theme attribute that styling reads from.
type Surface interface {
	SetTheme(Theme)
	Theme() Theme
}

// Control is the toggle element whose icon and label follow the theme.
type Control interface {
	SetIcon(string)
	SetLabel(string)
}

// Manager applies, persists and toggles the theme.
type Manager struct {
	surface Surface
	control Control
	store   prefs.Store
	log     *logger.Logger
}

// NewManager wires a Manager to its collaborators. log may be nil.
func NewManager(surface Surface, control Control, store prefs.Store, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		surface: surface,
		control: control,
		store:   store,
		log:     log.With("component", "theme"),
	}
}

// Init applies the persisted theme, or Light when none is stored.
func (m *Manager) Init() Theme {
	initial := Light

	raw, ok, err := m.store.Get(StorageKey)
	switch {
	case err != nil:
		m.log.Warn(err, "reading saved theme failed, using default")
	case ok:
		if parsed, valid := Parse(raw); valid {
			initial = parsed
		} else {
			m.log.With("value", raw).Warn(nil, "ignoring unknown saved theme")
		}
	}

	m.Set(initial)
	return initial
}

// Set applies t to the surface, persists it and updates the toggle.
// Storage failures are logged and otherwise ignored.
func (m *Manager) Set(t Theme) {
	m.surface.SetTheme(t)

	if err := m.store.Set(StorageKey, t.String()); err != nil {
		m.log.With("theme", t.String()).Warn(err, "saving theme failed")
	}

	m.control.SetIcon(t.Icon())
	m.control.SetLabel(t.ToggleLabel())
}

// Toggle flips the theme currently on the surface.
func (m *Manager) Toggle() Theme {
	next := m.surface.Theme().Opposite()
	m.Set(next)
	return next
}

// Current returns the theme currently on the surface.
func (m *Manager) Current() Theme {
	return m.surface.Theme()
}
