package components

import (
	"strings"
	"sync"
)

// Results is the container that holds either status messages or cards.
type Results struct {
	id string

	mu       sync.RWMutex
	message  *Message
	cards    []Card
	revision uint64
}

// NewResults creates an empty results container.
func NewResults() *Results {
	return &Results{id: ResultsID}
}

// ID returns the element id.
func (r *Results) ID() string {
	return r.id
}

// Clear removes every message and card.
func (r *Results) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.message = nil
	r.cards = nil
	r.revision++
}

// ShowMessage replaces the container content with m.
func (r *Results) ShowMessage(m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards = nil
	r.message = &m
	r.revision++
}

// Append adds a card after the existing ones.
func (r *Results) Append(c Card) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards = append(r.cards, c)
	r.revision++
}

// Message returns the displayed message, if any.
func (r *Results) Message() (Message, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.message == nil {
		return Message{}, false
	}
	return *r.message, true
}

// Cards returns a copy of the displayed cards in order.
func (r *Results) Cards() []Card {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Card(nil), r.cards...)
}

// Revision increases on every mutation.
func (r *Results) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

// View renders the container content at width columns.
func (r *Results) View(s Styles, width int) string {
	r.mu.RLock()
	message := r.message
	cards := append([]Card(nil), r.cards...)
	r.mu.RUnlock()

	var blocks []string
	if message != nil {
		blocks = append(blocks, RenderAlert(*message, s, width))
	}
	for _, c := range cards {
		blocks = append(blocks, RenderCard(c, s, width))
	}
	return strings.Join(blocks, "\n")
}
