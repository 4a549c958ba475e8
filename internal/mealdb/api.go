package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/alexisbeaulieu97/mealfinder/internal/logger"
	apperrors "github.com/alexisbeaulieu97/mealfinder/pkg/errors"
)

// Client queries TheMealDB search endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// Options configures a Client.
type Options struct {
	// BaseURL is the full search endpoint, without query string.
	BaseURL string
	// Timeout bounds a whole request. Zero leaves it to the transport.
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("mealdb: base url is required")
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("mealdb: invalid base url: %w", err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL: opts.BaseURL,
		http:    hc,
		log:     log.With("component", "mealdb"),
	}, nil
}

// SearchURL returns the request URL for term with the term query-encoded.
func (c *Client) SearchURL(term string) string {
	u, _ := url.Parse(c.baseURL)
	q := u.Query()
	q.Set("s", term)
	u.RawQuery = q.Encode()
	return u.String()
}

// Search performs one GET for term and returns the meals array. A nil slice
// means the API reported no matches.
func (c *Client) Search(ctx context.Context, term string) ([]Meal, error) {
	target := c.SearchURL(term)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperrors.NewFetchError(target, err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.With("url", target).Debug("requesting recipes")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError(target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, apperrors.NewStatusError(target, resp.StatusCode)
	}

	var body SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.NewDecodeError(target, err)
	}

	return body.Meals, nil
}
