package search

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/mealfinder/internal/components"
	"github.com/alexisbeaulieu97/mealfinder/internal/logger"
	apperrors "github.com/alexisbeaulieu97/mealfinder/pkg/errors"
)

// FetcherOptions configures a Fetcher.
type FetcherOptions struct {
	Source    Source
	Container Container
	Scheduler Scheduler
	Logger    *logger.Logger
	// DiscardStale drops completions that belong to a superseded search.
	DiscardStale bool
}

// Fetcher runs searches against a Source and reports into a Container.
type Fetcher struct {
	source       Source
	container    Container
	renderer     *Renderer
	scheduler    Scheduler
	log          *logger.Logger
	discardStale bool

	mu     sync.Mutex
	latest uint64
}

// NewFetcher builds a Fetcher. A nil Scheduler runs inline.
func NewFetcher(opts FetcherOptions) *Fetcher {
	sched := opts.Scheduler
	if sched == nil {
		sched = Inline{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Fetcher{
		source:       opts.Source,
		container:    opts.Container,
		renderer:     NewRenderer(opts.Container),
		scheduler:    sched,
		log:          log.With("component", "search"),
		discardStale: opts.DiscardStale,
	}
}

// Fetch shows the searching placeholder and schedules the lookup for term.
// Failures are reported in the container and never returned.
func (f *Fetcher) Fetch(ctx context.Context, term string) {
	f.container.ShowMessage(components.InfoMessage(SearchingText))

	seq := f.next()
	log := f.log.WithFields(map[string]any{
		"request_id": uuid.NewString(),
		"term":       term,
	})
	log.Debug("search started")

	f.scheduler.Go(func() func() {
		meals, err := f.source.Search(ctx, term)

		return func() {
			if f.discardStale && !f.isLatest(seq) {
				log.Debug("discarding superseded search result")
				return
			}
			if err != nil {
				f.report(log, err)
				return
			}
			log.With("count", len(meals)).Debug("search finished")
			f.renderer.Display(meals)
		}
	})
}

func (f *Fetcher) report(log *logger.Logger, err error) {
	var statusErr *apperrors.StatusError
	if errors.As(err, &statusErr) {
		log = log.With("status", statusErr.StatusCode)
	}
	log.Error(err, "search failed")
	f.container.ShowMessage(components.ErrorMessage(ErrorText))
}

func (f *Fetcher) next() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest++
	return f.latest
}

func (f *Fetcher) isLatest(seq uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return seq == f.latest
}
