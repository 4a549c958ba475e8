// Package search wires the search input, trigger and results container to
// the recipe source.
package search

import (
	"context"

	"github.com/alexisbeaulieu97/mealfinder/internal/components"
	"github.com/alexisbeaulieu97/mealfinder/internal/mealdb"
)

// Status texts shown in the results container.
const (
	SearchingText  = "Searching for recipes..."
	ErrorText      = "Sorry, an error occurred while fetching data. Please try again later."
	NoResultsText  = "No recipes found for that search. Try another keyword!"
	EmptyInputText = `Please enter a search term (e.g., "Chicken") before clicking search.`
)

// Container is the results area that messages and cards are written to.
type Container interface {
	Clear()
	ShowMessage(components.Message)
	Append(components.Card)
}

// Source looks recipes up by term. A nil result means no matches.
type Source interface {
	Search(ctx context.Context, term string) ([]mealdb.Meal, error)
}

// Input is the text field the search term is read from.
type Input interface {
	Value() string
	OnKeyPress(components.KeyHandler)
}

// Trigger is the control that starts a search.
type Trigger interface {
	OnClick(components.ClickHandler)
	Click()
}

// Scheduler runs work off the UI loop. The function work returns is applied
// back on the UI loop.
type Scheduler interface {
	Go(work func() func())
}

// Inline runs work and its continuation immediately on the calling goroutine.
type Inline struct{}

// Go implements Scheduler.
func (Inline) Go(work func() func()) {
	if apply := work(); apply != nil {
		apply()
	}
}

var (
	_ Container = (*components.Results)(nil)
	_ Input     = (*components.TextInput)(nil)
	_ Trigger   = (*components.Button)(nil)
	_ Source    = (*mealdb.Client)(nil)
)
