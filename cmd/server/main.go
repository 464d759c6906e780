// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

// Package main is the entry point for the MovieMatch server.
//
// MovieMatch serves a precomputed movie catalog with content-based
// recommendations and faceted browsing over a REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and
//     config files (Koanf v2)
//  2. Catalog: Load the movie snapshot and similarity matrix from disk;
//     both are immutable for the process lifetime
//  3. Recommendation engine: Wire the catalog, similarity index, and
//     facet index together with the result memo cache
//  4. TMDB client: Poster and metadata enrichment with a circuit
//     breaker; optional, the API degrades to placeholder posters
//  5. HTTP server: REST API with Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, CATALOG_SNAPSHOT_PATH,
//     TMDB_API_KEY, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits up to 10 seconds for in-flight
// requests to complete.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nikhil0-3/MovieMatch/internal/api"
	"github.com/Nikhil0-3/MovieMatch/internal/catalog"
	"github.com/Nikhil0-3/MovieMatch/internal/config"
	"github.com/Nikhil0-3/MovieMatch/internal/logging"
	"github.com/Nikhil0-3/MovieMatch/internal/recommend"
	"github.com/Nikhil0-3/MovieMatch/internal/similarity"
	"github.com/Nikhil0-3/MovieMatch/internal/tmdb"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("snapshot", cfg.Catalog.SnapshotPath).
		Str("similarity", cfg.Catalog.SimilarityPath).
		Msg("Loading catalog")

	store, err := catalog.LoadSnapshot(cfg.Catalog.SnapshotPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog snapshot")
	}

	matrix, err := similarity.Load(cfg.Catalog.SimilarityPath, store.Len())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load similarity matrix")
	}

	engine, err := recommend.NewEngine(&cfg.Recommend, store, matrix, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	posters := tmdb.NewClient(cfg.TMDB, logging.Logger())

	logging.Info().
		Int("catalog_size", store.Len()).
		Int("title_collisions", store.TitleCollisions()).
		Bool("tmdb_enabled", cfg.TMDB.Enabled).
		Msg("Catalog loaded")

	router := api.NewRouter(cfg, engine, posters)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logging.Info().Msg("Server stopped")
}
