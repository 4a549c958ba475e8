package search

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/mealfinder/internal/components"
)

// Controller reads the input on trigger clicks and starts searches.
type Controller struct {
	ctx       context.Context
	input     Input
	trigger   Trigger
	container Container
	fetcher   *Fetcher
}

// NewController registers the click and key handlers and returns the
// controller. ctx bounds every search it starts.
func NewController(ctx context.Context, input Input, trigger Trigger, container Container, fetcher *Fetcher) *Controller {
	c := &Controller{
		ctx:       ctx,
		input:     input,
		trigger:   trigger,
		container: container,
		fetcher:   fetcher,
	}

	trigger.OnClick(func(components.ClickEvent) { c.Submit() })
	input.OnKeyPress(func(e components.KeyEvent) {
		if e.Key == components.EnterKey {
			c.trigger.Click()
		}
	})

	return c
}

// Submit runs one search for the trimmed input value, or shows the prompt
// when it is empty.
func (c *Controller) Submit() {
	term := strings.TrimSpace(c.input.Value())
	if term == "" {
		c.container.ShowMessage(components.InfoMessage(EmptyInputText))
		return
	}
	c.fetcher.Fetch(c.ctx, term)
}
