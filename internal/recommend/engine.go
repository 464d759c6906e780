// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

// Package recommend coordinates the catalog store, the similarity matrix,
// and the query engine behind a single facade for the HTTP layer.
//
// The engine holds only read-only state after construction and is safe
// for concurrent use without locking; the one mutable structure, the
// recommendation memo, is a thread-safe cache.
package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nikhil0-3/MovieMatch/internal/cache"
	"github.com/Nikhil0-3/MovieMatch/internal/catalog"
	"github.com/Nikhil0-3/MovieMatch/internal/metrics"
	"github.com/Nikhil0-3/MovieMatch/internal/query"
	"github.com/Nikhil0-3/MovieMatch/internal/similarity"
)

// Engine answers recommendation and catalog queries.
type Engine struct {
	config *Config
	logger zerolog.Logger

	store  *catalog.Store
	matrix *similarity.Matrix
	facets *catalog.Facets

	// memo caches Recommend results keyed by (seed id, k).
	memo *cache.Cache
}

// NewEngine builds an engine over a loaded store and matrix. The matrix
// dimension must already match the store length; similarity.Load enforces
// that, so the check here only guards hand-built inputs.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, store *catalog.Store, matrix *similarity.Matrix, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if matrix.Size() != store.Len() {
		return nil, fmt.Errorf("matrix size %d does not match catalog size %d", matrix.Size(), store.Len())
	}

	e := &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		store:  store,
		matrix: matrix,
		facets: catalog.BuildFacets(store),
	}
	if cfg.CacheEnabled {
		e.memo = cache.New(cfg.CacheTTL)
	}
	return e, nil
}

// Recommend returns the k movies most similar to the movie with the given
// title, excluding the seed itself, in descending similarity order with
// ID-ascending tie-break. A zero k uses the configured default; k is
// capped at the configured maximum. An unknown title fails with
// catalog.ErrNotFound.
func (e *Engine) Recommend(ctx context.Context, title string, k int) ([]catalog.Movie, error) {
	seed, err := e.store.GetByTitle(title)
	if err != nil {
		return nil, err
	}
	return e.RecommendByID(ctx, seed.ID, k)
}

// RecommendByID is Recommend seeded by catalog ID instead of title.
func (e *Engine) RecommendByID(_ context.Context, id, k int) ([]catalog.Movie, error) {
	start := time.Now()
	k = e.clampK(k)

	memoKey := cache.GenerateKey("rec", [2]int{id, k})
	if e.memo != nil {
		if cached, ok := e.memo.Get(memoKey); ok {
			return cached.([]catalog.Movie), nil
		}
	}

	ids, err := e.matrix.Neighbors(id, k)
	if err != nil {
		// The matrix and catalog are dimension-matched, so an invalid row
		// is equivalently an invalid catalog ID.
		return nil, fmt.Errorf("id %d: %w", id, catalog.ErrNotFound)
	}

	movies := make([]catalog.Movie, len(ids))
	for i, nid := range ids {
		m, err := e.store.GetByID(nid)
		if err != nil {
			return nil, fmt.Errorf("neighbor %d: %w", nid, err)
		}
		movies[i] = m
	}

	if e.memo != nil {
		e.memo.Set(memoKey, movies)
	}

	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	e.logger.Debug().
		Int("seed", id).
		Int("k", k).
		Int("returned", len(movies)).
		Msg("recommendation computed")

	return movies, nil
}

// Filter returns the movies matching spec, deterministically ordered.
func (e *Engine) Filter(spec query.Spec) []catalog.Movie {
	start := time.Now()
	movies := query.Run(e.store, spec)
	metrics.QueryDuration.WithLabelValues("filter").Observe(time.Since(start).Seconds())
	metrics.QueryResults.WithLabelValues("filter").Observe(float64(len(movies)))
	return movies
}

// Top returns the first n movies of the catalog sorted by key descending.
// A zero n uses the configured default.
func (e *Engine) Top(n int, key query.SortKey) []catalog.Movie {
	if n <= 0 {
		n = e.config.TopDefaultN
	}
	start := time.Now()
	movies := query.Top(e.store, n, key)
	metrics.QueryDuration.WithLabelValues("top").Observe(time.Since(start).Seconds())
	metrics.QueryResults.WithLabelValues("top").Observe(float64(len(movies)))
	return movies
}

// GetByID looks up a movie by catalog ID.
func (e *Engine) GetByID(id int) (catalog.Movie, error) {
	return e.store.GetByID(id)
}

// GetByTitle looks up a movie by title, first match winning on duplicate
// titles.
func (e *Engine) GetByTitle(title string) (catalog.Movie, error) {
	return e.store.GetByTitle(title)
}

// Titles returns every catalog title in insertion order.
func (e *Engine) Titles() []string {
	return e.store.Titles()
}

// Facets returns the facet index derived at construction.
func (e *Engine) Facets() *catalog.Facets {
	return e.facets
}

// CatalogSize returns the number of movies in the catalog.
func (e *Engine) CatalogSize() int {
	return e.store.Len()
}

// clampK applies the default and maximum neighbor counts.
func (e *Engine) clampK(k int) int {
	if k <= 0 {
		k = e.config.DefaultK
	}
	if k > e.config.MaxK {
		k = e.config.MaxK
	}
	return k
}
