package components

import (
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchPlaceholder is shown while the search input is empty.
const SearchPlaceholder = "Search for a recipe (e.g., Chicken)"

// TextInput is a single-line text field that dispatches key events.
type TextInput struct {
	id    string
	model textinput.Model

	mu       sync.Mutex
	handlers []KeyHandler
}

// NewTextInput creates an input with the given element id and placeholder.
func NewTextInput(id, placeholder string) *TextInput {
	model := textinput.New()
	model.Placeholder = placeholder
	model.Prompt = "🔍 "
	model.CharLimit = 0 // unlimited
	return &TextInput{id: id, model: model}
}

// ID returns the element id.
func (i *TextInput) ID() string {
	return i.id
}

// Value returns the raw text, untrimmed.
func (i *TextInput) Value() string {
	return i.model.Value()
}

// SetValue replaces the text.
func (i *TextInput) SetValue(v string) {
	i.model.SetValue(v)
}

// SetWidth sets the visible width of the text area.
func (i *TextInput) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	i.model.Width = w
}

// Focus gives the input focus and returns the cursor blink command.
func (i *TextInput) Focus() tea.Cmd {
	return i.model.Focus()
}

// Blur clears focus.
func (i *TextInput) Blur() {
	i.model.Blur()
}

// Focused reports whether the input has focus.
func (i *TextInput) Focused() bool {
	return i.model.Focused()
}

// OnKeyPress registers h to run on every key press, in registration order.
func (i *TextInput) OnKeyPress(h KeyHandler) {
	if h == nil {
		return
	}
	i.mu.Lock()
	i.handlers = append(i.handlers, h)
	i.mu.Unlock()
}

// Press dispatches a key event for key without editing the text.
func (i *TextInput) Press(key string) {
	i.mu.Lock()
	handlers := append([]KeyHandler(nil), i.handlers...)
	i.mu.Unlock()

	event := KeyEvent{Target: i.id, Key: key}
	for _, h := range handlers {
		h(event)
	}
}

// Update edits the text for key messages and then dispatches the key event.
func (i *TextInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok {
		i.Press(key.String())
	}
	return cmd
}

// View renders the input with its border.
func (i *TextInput) View(s Styles) string {
	style := s.Input
	if i.Focused() {
		style = s.InputFocus
	}
	return style.Render(i.model.View())
}
