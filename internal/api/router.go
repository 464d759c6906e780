// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

// Package api provides the HTTP surface of MovieMatch using the Chi
// router: catalog browsing, faceted filtering, and recommendations.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nikhil0-3/MovieMatch/internal/config"
	"github.com/Nikhil0-3/MovieMatch/internal/middleware"
	"github.com/Nikhil0-3/MovieMatch/internal/recommend"
	"github.com/Nikhil0-3/MovieMatch/internal/tmdb"
)

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	cfg      *config.Config
	handlers *Handlers
}

// NewRouter creates the router with its full handler set.
func NewRouter(cfg *config.Config, engine *recommend.Engine, posters *tmdb.Client) *Router {
	return &Router{
		cfg:      cfg,
		handlers: NewHandlers(cfg, engine, posters),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.Security.CORSOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health endpoint with permissive rate limiting for monitors.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, router.cfg.Security.RateLimitWindow))
		r.Get("/", router.handlers.handleHealth)
	})

	// Data endpoints. Read-only over immutable stores, so a single
	// rate-limit tier covers them all.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(router.cfg.Security.RateLimitReqs, router.cfg.Security.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/movies", router.handlers.handleListMovies)
		r.Get("/movies/top", router.handlers.handleTopMovies)
		r.Get("/movies/{id}", router.handlers.handleGetMovie)
		r.Get("/movies/{id}/recommendations", router.handlers.handleMovieRecommendations)
		r.Get("/recommendations", router.handlers.handleRecommendations)
		r.Get("/titles", router.handlers.handleTitles)
		r.Get("/facets", router.handlers.handleFacets)
	})

	// Prometheus metrics endpoint, outside the API rate limits.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
