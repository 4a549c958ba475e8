package components

// Element identifiers of the widget.
const (
	SearchInputID  = "searchInput"
	SearchButtonID = "searchBtn"
	ResultsID      = "recipeResults"
	ThemeToggleID  = "themeToggle"
)

// EnterKey is the key name that submits a search from the input.
const EnterKey = "enter"

// ClickEvent is delivered to click handlers.
type ClickEvent struct {
	Target string
}

// KeyEvent is delivered to key handlers. Key uses Bubble Tea key names.
type KeyEvent struct {
	Target string
	Key    string
}

// ClickHandler reacts to a click.
type ClickHandler func(ClickEvent)

// KeyHandler reacts to a key press.
type KeyHandler func(KeyEvent)
