package search

import (
	"github.com/alexisbeaulieu97/mealfinder/internal/components"
	"github.com/alexisbeaulieu97/mealfinder/internal/mealdb"
)

// Renderer turns a result array into cards.
type Renderer struct {
	container Container
}

// NewRenderer returns a Renderer writing to container.
func NewRenderer(container Container) *Renderer {
	return &Renderer{container: container}
}

// Display replaces the container content with one card per meal, in order.
// A nil slice shows the no-results message instead.
func (r *Renderer) Display(meals []mealdb.Meal) {
	r.container.Clear()

	if meals == nil {
		r.container.ShowMessage(components.InfoMessage(NoResultsText))
		return
	}

	for _, meal := range meals {
		r.container.Append(CardFor(meal))
	}
}

// CardFor builds the card for one meal. The link prefers the source page,
// then the video, then "#".
func CardFor(meal mealdb.Meal) components.Card {
	return components.Card{
		Title:    meal.Name.String(),
		ImageURL: meal.Thumbnail.String(),
		ImageAlt: meal.Name.String(),
		Link:     components.NewLink(linkFor(meal)),
		Category: meal.Category.String(),
		Area:     meal.Area.String(),
	}
}

func linkFor(meal mealdb.Meal) string {
	if meal.Source != "" {
		return meal.Source.String()
	}
	if meal.Youtube != "" {
		return meal.Youtube.String()
	}
	return "#"
}
