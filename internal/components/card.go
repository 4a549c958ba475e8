package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Link attributes of the card's recipe link.
const (
	LinkTarget = "_blank"
	LinkRel    = "noopener noreferrer"
	LinkText   = "View Full Recipe"
)

// Link is the outbound recipe link on a card.
type Link struct {
	Href   string
	Target string
	Rel    string
	Text   string
}

// NewLink builds a recipe link for href with the fixed attributes.
func NewLink(href string) Link {
	return Link{Href: href, Target: LinkTarget, Rel: LinkRel, Text: LinkText}
}

// Card is the rendered form of one recipe.
type Card struct {
	Title    string
	ImageURL string
	ImageAlt string
	Link     Link
	Category string
	Area     string
}

const minCardWidth = 20

// RenderCard draws c as a bordered block no wider than width.
func RenderCard(c Card, s Styles, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	inner := width - horizontalFrameWidth(s.Card)
	if inner < 1 {
		inner = 1
	}

	var lines []string
	if c.Title != "" {
		lines = append(lines, s.CardTitle.Render(wrapText(c.Title, inner)))
	}

	if meta := metaLine(c); meta != "" {
		lines = append(lines, s.Badge.Render(meta))
	}

	image := "🖼  " + c.ImageAlt
	if c.ImageAlt == "" {
		image = "🖼"
	}
	lines = append(lines, s.Muted.Render(hyperlink(c.ImageURL, ansi.Truncate(image, inner, "…"), s.Hyperlinks)))

	label := c.Link.Text + " ↗"
	lines = append(lines, hyperlink(c.Link.Href, s.Link.Render(label), s.Hyperlinks))
	if c.Link.Href != "" && c.Link.Href != "#" {
		lines = append(lines, s.Muted.Render(ansi.Truncate(c.Link.Href, inner, "…")))
	}

	return s.Card.Width(width - borderWidth(s.Card)).Render(strings.Join(lines, "\n"))
}

func metaLine(c Card) string {
	switch {
	case c.Category != "" && c.Area != "":
		return c.Category + " · " + c.Area
	case c.Category != "":
		return c.Category
	default:
		return c.Area
	}
}

// hyperlink wraps text in an OSC 8 link when enabled and url is navigable.
func hyperlink(url, text string, enabled bool) string {
	if !enabled || url == "" || url == "#" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

// wrapText wraps text to maxWidth columns, breaking words longer than a line.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		if utf8.RuneCountInString(word) > maxWidth {
			wordRunes := []rune(word)
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			for len(wordRunes) > maxWidth {
				lines = append(lines, string(wordRunes[:maxWidth]))
				wordRunes = wordRunes[maxWidth:]
			}
			if len(wordRunes) > 0 {
				currentLine = string(wordRunes)
			}
			continue
		}

		testLine := currentLine
		if currentLine != "" {
			testLine += " "
		}
		testLine += word

		if utf8.RuneCountInString(testLine) <= maxWidth {
			currentLine = testLine
		} else {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n")
}

// horizontalFrameWidth sums left and right border and padding sizes.
func horizontalFrameWidth(style lipgloss.Style) int {
	return borderWidth(style) + style.GetPaddingLeft() + style.GetPaddingRight()
}

func borderWidth(style lipgloss.Style) int {
	width := style.GetBorderLeftSize() + style.GetBorderRightSize()
	if width < 0 {
		return 0
	}
	return width
}
