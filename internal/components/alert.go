package components

// MessageKind distinguishes informational from error messages.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageError
)

func (k MessageKind) String() string {
	if k == MessageError {
		return "error"
	}
	return "info"
}

// Message is a single status line shown in the results container.
type Message struct {
	Kind MessageKind
	Text string
}

// InfoMessage builds an informational message.
func InfoMessage(text string) Message {
	return Message{Kind: MessageInfo, Text: text}
}

// ErrorMessage builds an error message.
func ErrorMessage(text string) Message {
	return Message{Kind: MessageError, Text: text}
}

// RenderAlert renders m in the alert style for its kind, wrapped to width.
func RenderAlert(m Message, s Styles, width int) string {
	style := s.AlertInfo
	if m.Kind == MessageError {
		style = s.AlertError
	}
	text := m.Text
	if width > 4 {
		text = wrapText(text, width-3)
	}
	return style.Render(text)
}
