// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Nikhil0-3/MovieMatch/internal/catalog"
	"github.com/Nikhil0-3/MovieMatch/internal/config"
	"github.com/Nikhil0-3/MovieMatch/internal/logging"
	"github.com/Nikhil0-3/MovieMatch/internal/pagination"
	"github.com/Nikhil0-3/MovieMatch/internal/query"
	"github.com/Nikhil0-3/MovieMatch/internal/recommend"
	"github.com/Nikhil0-3/MovieMatch/internal/tmdb"
)

// Handlers holds the HTTP handler set and its dependencies.
type Handlers struct {
	cfg       *config.Config
	engine    *recommend.Engine
	posters   *tmdb.Client
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandlers creates the handler set.
func NewHandlers(cfg *config.Config, engine *recommend.Engine, posters *tmdb.Client) *Handlers {
	return &Handlers{
		cfg:       cfg,
		engine:    engine,
		posters:   posters,
		logger:    logging.With().Str("component", "api").Logger(),
		startTime: time.Now(),
	}
}

// specFromQuery builds a filter spec from list endpoint query params.
func specFromQuery(r *http.Request) query.Spec {
	q := r.URL.Query()
	return query.Spec{
		Genre:     q.Get("genre"),
		Actor:     q.Get("actor"),
		Director:  q.Get("director"),
		YearMin:   getIntParam(r, "year_min", 0),
		YearMax:   getIntParam(r, "year_max", 0),
		MinRating: getFloatParam(r, "min_rating", 0),
		Sort:      query.ParseSortKey(q.Get("sort")),
	}
}

// handleListMovies serves GET /api/v1/movies: the filtered, sorted,
// paginated catalog listing. With no filter params it is the full
// catalog ordered by popularity.
func (h *Handlers) handleListMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := pagination.ParseQueryParams(r, h.cfg.API.DefaultPageSize, h.cfg.API.MaxPageSize)
	spec := specFromQuery(r)

	req := listMoviesRequest{
		Page:      params.Page,
		PageSize:  params.PageSize,
		YearMin:   spec.YearMin,
		YearMax:   spec.YearMax,
		MinRating: spec.MinRating,
		Sort:      string(spec.Sort),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	// Paginate before resolving posters: provider round trips are
	// bounded by the page size, never the result set size.
	movies := h.engine.Filter(spec)
	page, err := pagination.Paginate(movies, params.Page, params.PageSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PAGE", err.Error(), nil)
		return
	}

	respondData(w, http.StatusOK, summarizePage(r.Context(), h.posters, page), start)
}

// handleTopMovies serves GET /api/v1/movies/top: the highest-ranked
// movies by the requested sort key, weighted rating by default.
func (h *Handlers) handleTopMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	n := getIntParam(r, "n", h.cfg.Recommend.TopDefaultN)
	sort := r.URL.Query().Get("sort")
	if sort == "" {
		sort = string(query.SortWeightedRating)
	}

	req := topMoviesRequest{N: n, Sort: sort}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	params := pagination.ParseQueryParams(r, h.cfg.API.DefaultPageSize, h.cfg.API.MaxPageSize)
	movies := h.engine.Top(n, query.ParseSortKey(sort))
	page, err := pagination.Paginate(movies, params.Page, params.PageSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PAGE", err.Error(), nil)
		return
	}

	respondData(w, http.StatusOK, summarizePage(r.Context(), h.posters, page), start)
}

// handleGetMovie serves GET /api/v1/movies/{id}: full details for one
// movie, enriched with live TMDB metadata when the provider is up.
func (h *Handlers) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "movie id must be an integer", nil)
		return
	}

	movie, err := h.engine.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "MOVIE_NOT_FOUND", "no movie with that id", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load movie", err)
		return
	}

	respondData(w, http.StatusOK, detail(r.Context(), h.posters, movie), start)
}

// handleMovieRecommendations serves GET /api/v1/movies/{id}/recommendations.
func (h *Handlers) handleMovieRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "movie id must be an integer", nil)
		return
	}

	k := getIntParam(r, "k", h.cfg.Recommend.DefaultK)
	if apiErr := validateRequest(&recommendRequest{K: k}); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	movies, err := h.engine.RecommendByID(r.Context(), id, k)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "MOVIE_NOT_FOUND", "no movie with that id", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "recommendation failed", err)
		return
	}

	respondData(w, http.StatusOK, summarizeAll(r.Context(), h.posters, movies), start)
}

// handleRecommendations serves GET /api/v1/recommendations?title=...,
// the title-keyed variant used by the search box.
func (h *Handlers) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title := r.URL.Query().Get("title")
	if title == "" {
		respondError(w, http.StatusBadRequest, "MISSING_TITLE", "title query parameter is required", nil)
		return
	}

	k := getIntParam(r, "k", h.cfg.Recommend.DefaultK)
	if apiErr := validateRequest(&recommendRequest{K: k}); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	movies, err := h.engine.Recommend(r.Context(), title, k)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.logger.Debug().Str("title", sanitizeLogValue(title)).Msg("Recommendation title not in catalog")
			respondError(w, http.StatusNotFound, "MOVIE_NOT_FOUND", "no movie with that title", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "recommendation failed", err)
		return
	}

	respondData(w, http.StatusOK, summarizeAll(r.Context(), h.posters, movies), start)
}

// handleTitles serves GET /api/v1/titles: every catalog title in
// insertion order, for search autocompletion.
func (h *Handlers) handleTitles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondData(w, http.StatusOK, h.engine.Titles(), start)
}

// handleFacets serves GET /api/v1/facets: the distinct filterable
// values used to populate filter dropdowns.
func (h *Handlers) handleFacets(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondData(w, http.StatusOK, h.engine.Facets(), start)
}

// handleHealth serves GET /api/v1/health.
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	posterCache := h.posters.CacheStats()
	respondData(w, http.StatusOK, map[string]interface{}{
		"status":         "healthy",
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
		"catalog_size":   h.engine.CatalogSize(),
		"poster_cache": map[string]interface{}{
			"hits":   posterCache.Hits,
			"misses": posterCache.Misses,
		},
	}, start)
}
