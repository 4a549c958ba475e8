package components

import "sync"

// Button is a focusable control that dispatches click events.
type Button struct {
	id    string
	label string

	mu       sync.Mutex
	focused  bool
	handlers []ClickHandler
}

// NewButton creates a button with the given element id and label.
func NewButton(id, label string) *Button {
	return &Button{id: id, label: label}
}

// ID returns the element id.
func (b *Button) ID() string {
	return b.id
}

// Label returns the visible label.
func (b *Button) Label() string {
	return b.label
}

// OnClick registers h to run on every click, in registration order.
func (b *Button) OnClick(h ClickHandler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.handlers = append(b.handlers, h)
	b.mu.Unlock()
}

// Click activates the button as if the user had clicked it.
func (b *Button) Click() {
	b.mu.Lock()
	handlers := append([]ClickHandler(nil), b.handlers...)
	b.mu.Unlock()

	event := ClickEvent{Target: b.id}
	for _, h := range handlers {
		h(event)
	}
}

// Focus marks the button as focused.
func (b *Button) Focus() {
	b.mu.Lock()
	b.focused = true
	b.mu.Unlock()
}

// Blur clears focus.
func (b *Button) Blur() {
	b.mu.Lock()
	b.focused = false
	b.mu.Unlock()
}

// Focused reports whether the button has focus.
func (b *Button) Focused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.focused
}

// View renders the button.
func (b *Button) View(s Styles) string {
	if b.Focused() {
		return s.ButtonFocus.Render(b.label)
	}
	return s.Button.Render(b.label)
}
