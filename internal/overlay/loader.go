package overlay

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/quakemap/internal/observability"
)

// Loader fetches a feed once and fills a group with its rendered features.
// There is no retry: a failed load leaves the group empty.
type Loader struct {
	client    *http.Client
	metrics   *observability.Metrics
	clock     clockwork.Clock
	userAgent string
}

// Option customizes a Loader.
type Option func(*Loader)

// WithClock replaces the time source used for durations and load stamps.
func WithClock(c clockwork.Clock) Option {
	return func(l *Loader) { l.clock = c }
}

// WithUserAgent sets the User-Agent header of feed requests.
func WithUserAgent(ua string) Option {
	return func(l *Loader) { l.userAgent = ua }
}

// NewLoader creates a loader using client for all requests.
func NewLoader(client *http.Client, metrics *observability.Metrics, opts ...Option) *Loader {
	l := &Loader{
		client:  client,
		metrics: metrics,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches url, renders the body and fills g. It blocks until the feed
// has been processed or ctx is done.
func (l *Loader) Load(ctx context.Context, g *Group, url string, render RenderFunc) error {
	start := l.clock.Now()
	l.metrics.OverlayReady.WithLabelValues(g.ID()).Set(0)

	err := l.load(ctx, g, url, render)
	l.metrics.OverlayFetchDuration.WithLabelValues(g.ID()).Observe(l.clock.Since(start).Seconds())

	switch {
	case err == nil:
		l.metrics.OverlayFetches.WithLabelValues(g.ID(), "success").Inc()
		l.metrics.OverlayFeatures.WithLabelValues(g.ID()).Set(float64(g.Len()))
		l.metrics.OverlayReady.WithLabelValues(g.ID()).Set(1)
		log.Info().
			Str("overlay", g.ID()).
			Int("features", g.Len()).
			Dur("duration", l.clock.Since(start)).
			Msg("Overlay loaded")

	case ctx.Err() != nil:
		l.metrics.OverlayFetches.WithLabelValues(g.ID(), "cancelled").Inc()
		log.Debug().
			Str("overlay", g.ID()).
			Str("url", url).
			Msg("Overlay load cancelled")

	default:
		l.metrics.OverlayFetches.WithLabelValues(g.ID(), "error").Inc()
		log.Error().
			Err(err).
			Str("overlay", g.ID()).
			Str("url", url).
			Msg("Failed to load overlay")
	}

	return err
}

func (l *Loader) load(ctx context.Context, g *Group, url string, render RenderFunc) error {
	body, err := l.fetch(ctx, url)
	if err != nil {
		return err
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = body.Close() }()

	fc, err := render(body)
	if err != nil {
		return fmt.Errorf("render %s: %w", g.ID(), err)
	}

	return g.Fill(fc, l.clock.Now())
}

func (l *Loader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")
	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	log.Debug().Str("url", url).Msg("Fetching feed")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %w", url, &StatusError{Code: resp.StatusCode})
	}

	return resp.Body, nil
}

// StatusError reports a non-200 feed response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d", e.Code)
}
