// Package mealdb is a small client for TheMealDB JSON API. Records are
// returned in their raw strX form for the recipe normalizer.
package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/atinyakov/fridgebook/internal/recipe"
)

const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Source is stored on recipes imported from TheMealDB.
const Source = "themealdb"

var ErrNotFound = errors.New("meal not found")

// StatusError is returned for unexpected HTTP status codes.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mealdb: unexpected status %d", e.Code)
}

func (e *StatusError) retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

type Client struct {
	baseURL    string
	http       *http.Client
	logger     *zap.Logger
	maxTries   uint
	fanOut     int
	newBackOff func() backoff.BackOff
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

func WithMaxTries(n uint) Option {
	return func(cl *Client) { cl.maxTries = n }
}

// WithFanOut bounds the number of concurrent requests made by RandomN.
func WithFanOut(n int) Option {
	return func(cl *Client) { cl.fanOut = n }
}

func WithBackOff(f func() backoff.BackOff) Option {
	return func(cl *Client) { cl.newBackOff = f }
}

func New(baseURL string, logger *zap.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
		maxTries: 3,
		fanOut:   4,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type mealsResponse struct {
	Meals []recipe.Raw `json:"meals"`
}

// LookupByID returns the meal with the given TheMealDB id.
func (c *Client) LookupByID(ctx context.Context, id string) (recipe.Raw, error) {
	meals, err := c.get(ctx, "lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	return meals[0], nil
}

func (c *Client) Random(ctx context.Context) (recipe.Raw, error) {
	meals, err := c.get(ctx, "random.php", nil)
	if err != nil {
		return nil, err
	}
	return meals[0], nil
}

// Search returns meals whose name matches query.
func (c *Client) Search(ctx context.Context, query string) ([]recipe.Raw, error) {
	return c.get(ctx, "search.php", url.Values{"s": {query}})
}

// RandomN fetches n random meals concurrently. Individual failures are
// logged and skipped; an error is returned only when nothing could be
// fetched.
func (c *Client) RandomN(ctx context.Context, n int) ([]recipe.Raw, error) {
	if n <= 0 {
		return []recipe.Raw{}, nil
	}

	results := make([]recipe.Raw, n)
	var (
		mu      sync.Mutex
		lastErr error
	)

	var grp errgroup.Group
	grp.SetLimit(c.fanOut)
	for i := range n {
		grp.Go(func() error {
			meal, err := c.Random(ctx)
			if err != nil {
				c.logger.Warn("random meal fetch failed", zap.Int("slot", i), zap.Error(err))
				mu.Lock()
				lastErr = err
				mu.Unlock()
				return nil
			}
			results[i] = meal
			return nil
		})
	}
	_ = grp.Wait()

	meals := make([]recipe.Raw, 0, n)
	for _, m := range results {
		if m != nil {
			meals = append(meals, m)
		}
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("mealdb: no random meals fetched: %w", lastErr)
	}
	return meals, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values) ([]recipe.Raw, error) {
	u := c.baseURL + "/" + endpoint
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	op := func() ([]recipe.Raw, error) {
		return c.fetch(ctx, u)
	}

	meals, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.maxTries),
	)
	if err != nil {
		return nil, err
	}
	return meals, nil
}

func (c *Client) fetch(ctx context.Context, u string) ([]recipe.Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		c.logger.Debug("mealdb request failed", zap.String("url", u), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		serr := &StatusError{Code: resp.StatusCode}
		if serr.retryable() {
			c.logger.Debug("mealdb retryable status", zap.String("url", u), zap.Int("status", resp.StatusCode))
			return nil, serr
		}
		return nil, backoff.Permanent(serr)
	}

	var body mealsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("mealdb: decoding response: %w", err))
	}
	if len(body.Meals) == 0 {
		return nil, backoff.Permanent(ErrNotFound)
	}
	return body.Meals, nil
}
