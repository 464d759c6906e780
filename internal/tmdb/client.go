// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

// Package tmdb is the client for the external metadata provider
// (themoviedb.org). It resolves poster URLs and extended details for
// catalog movies.
//
// Provider failures never propagate into core results: every lookup
// degrades to the placeholder URL or absent details. Lookups are memoized
// by external ID for the process lifetime; with a small catalog the
// unbounded memo is a deliberate choice, not an oversight. A circuit
// breaker keeps a slow or rate-limiting provider from tying up request
// handlers.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/Nikhil0-3/MovieMatch/internal/cache"
	"github.com/Nikhil0-3/MovieMatch/internal/metrics"
)

// PlaceholderPosterURL is returned whenever a poster cannot be resolved.
const PlaceholderPosterURL = "https://via.placeholder.com/500x750?text=Poster+Not+Available"

const (
	defaultBaseURL   = "https://api.themoviedb.org/3"
	defaultImageBase = "https://image.tmdb.org/t/p/w500"
	breakerName      = "tmdb-api"
)

// Config holds TMDB client settings.
type Config struct {
	// Enabled turns the client on. When disabled every lookup returns the
	// placeholder immediately.
	Enabled bool `koanf:"enabled"`

	// APIKey authenticates against the TMDB v3 API.
	APIKey string `koanf:"api_key"`

	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string `koanf:"base_url"`

	// ImageBaseURL is the prefix for poster paths.
	ImageBaseURL string `koanf:"image_base_url"`

	// Timeout bounds a single metadata round trip.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig returns the default TMDB client configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		BaseURL:      defaultBaseURL,
		ImageBaseURL: defaultImageBase,
		Timeout:      10 * time.Second,
	}
}

// Details is the extended metadata TMDB returns for one movie.
type Details struct {
	Overview  string   `json:"overview"`
	Runtime   int      `json:"runtime"`
	Genres    []string `json:"genres"`
	PosterURL string   `json:"poster_url"`
}

// movieDoc is the wire shape of the TMDB movie endpoint.
type movieDoc struct {
	Overview   string `json:"overview"`
	Runtime    int    `json:"runtime"`
	PosterPath string `json:"poster_path"`
	Genres     []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

// Client resolves posters and details with memoization and a circuit
// breaker. It is safe for concurrent use.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger

	// memo holds resolved documents keyed by external ID, for the process
	// lifetime (zero TTL = no expiry).
	memo *cache.Cache

	cb *gobreaker.CircuitBreaker[*movieDoc]
}

// NewClient creates a TMDB client.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = defaultImageBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	componentLogger := logger.With().Str("component", "tmdb").Logger()
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[*movieDoc](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			componentLogger.Info().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: componentLogger,
		memo:   cache.New(0),
		cb:     cb,
	}
}

// PosterURL resolves the poster for the given external ID. It never
// fails: unresolvable posters yield PlaceholderPosterURL.
func (c *Client) PosterURL(ctx context.Context, tmdbID int64) string {
	doc, ok := c.lookup(ctx, tmdbID)
	if !ok || doc.PosterPath == "" {
		metrics.PosterFallbacks.Inc()
		return PlaceholderPosterURL
	}
	return c.cfg.ImageBaseURL + doc.PosterPath
}

// FullDetails resolves extended metadata for the given external ID.
// The boolean is false when the provider could not be reached; callers
// render the catalog's own data in that case.
func (c *Client) FullDetails(ctx context.Context, tmdbID int64) (Details, bool) {
	doc, ok := c.lookup(ctx, tmdbID)
	if !ok {
		return Details{PosterURL: PlaceholderPosterURL}, false
	}

	d := Details{
		Overview:  doc.Overview,
		Runtime:   doc.Runtime,
		PosterURL: PlaceholderPosterURL,
	}
	if doc.PosterPath != "" {
		d.PosterURL = c.cfg.ImageBaseURL + doc.PosterPath
	}
	for _, g := range doc.Genres {
		d.Genres = append(d.Genres, g.Name)
	}
	return d, true
}

// lookup fetches the movie document, serving repeats from the memo.
func (c *Client) lookup(ctx context.Context, tmdbID int64) (*movieDoc, bool) {
	if !c.cfg.Enabled || c.cfg.APIKey == "" {
		return nil, false
	}

	key := fmt.Sprintf("movie:%d", tmdbID)
	if cached, ok := c.memo.Get(key); ok {
		metrics.PosterCacheHits.Inc()
		return cached.(*movieDoc), true
	}
	metrics.PosterCacheMisses.Inc()

	doc, err := c.cb.Execute(func() (*movieDoc, error) {
		return c.fetch(ctx, tmdbID)
	})
	if err != nil {
		outcome := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, outcome).Inc()
		c.logger.Warn().Err(err).Int64("tmdb_id", tmdbID).Msg("metadata lookup failed")
		return nil, false
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	c.memo.Set(key, doc)
	return doc, true
}

// fetch performs one metadata round trip.
func (c *Client) fetch(ctx context.Context, tmdbID int64) (*movieDoc, error) {
	url := fmt.Sprintf("%s/movie/%d?api_key=%s&language=en-US", c.cfg.BaseURL, tmdbID, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("tmdb status %d for movie %d", resp.StatusCode, tmdbID)
	}

	var doc movieDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode tmdb response: %w", err)
	}
	return &doc, nil
}

// CacheStats exposes memo statistics for diagnostics.
func (c *Client) CacheStats() cache.Stats {
	return c.memo.GetStats()
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
