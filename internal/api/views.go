// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package api

import (
	"context"

	"github.com/Nikhil0-3/MovieMatch/internal/catalog"
	"github.com/Nikhil0-3/MovieMatch/internal/pagination"
	"github.com/Nikhil0-3/MovieMatch/internal/tmdb"
)

// movieSummary is the list-view projection of a movie: enough to render
// a card in a grid, nothing more.
type movieSummary struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Year           int      `json:"year,omitempty"`
	Genres         []string `json:"genres,omitempty"`
	Rating         float64  `json:"rating"`
	Popularity     float64  `json:"popularity"`
	WeightedRating float64  `json:"weighted_rating"`
	PosterURL      string   `json:"poster_url"`
}

// movieDetail is the full projection served by the detail endpoint.
// Overview and Runtime prefer live TMDB metadata when the provider is
// reachable and fall back to the catalog snapshot otherwise.
type movieDetail struct {
	movieSummary

	TMDBID      int64    `json:"tmdb_id,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Cast        []string `json:"cast,omitempty"`
	Directors   []string `json:"directors,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	Runtime     int      `json:"runtime,omitempty"`
}

// summarize projects a catalog movie into its list view, resolving the
// poster through the TMDB client. Poster resolution never fails; the
// client substitutes a placeholder on any provider error.
func summarize(ctx context.Context, posters *tmdb.Client, m catalog.Movie) movieSummary {
	return movieSummary{
		ID:             m.ID,
		Title:          m.Title,
		Year:           m.Year,
		Genres:         m.Genres,
		Rating:         m.Rating,
		Popularity:     m.Popularity,
		WeightedRating: m.WeightedRating,
		PosterURL:      posters.PosterURL(ctx, m.TMDBID),
	}
}

// summarizeAll projects a slice of movies for list responses.
func summarizeAll(ctx context.Context, posters *tmdb.Client, movies []catalog.Movie) []movieSummary {
	out := make([]movieSummary, len(movies))
	for i, m := range movies {
		out[i] = summarize(ctx, posters, m)
	}
	return out
}

// summarizePage projects an already-paginated page of movies, so poster
// lookups are bounded by the page size rather than the result set.
func summarizePage(ctx context.Context, posters *tmdb.Client, page pagination.Page[catalog.Movie]) pagination.Page[movieSummary] {
	return pagination.Page[movieSummary]{
		Items:      summarizeAll(ctx, posters, page.Items),
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}

// detail projects a catalog movie into the detail view, layering TMDB
// metadata over the snapshot data when available.
func detail(ctx context.Context, posters *tmdb.Client, m catalog.Movie) movieDetail {
	d := movieDetail{
		movieSummary: summarize(ctx, posters, m),
		TMDBID:       m.TMDBID,
		ReleaseDate:  m.ReleaseDate,
		Cast:         m.DisplayCast(),
		Directors:    m.Directors,
		Overview:     m.Overview,
		Runtime:      m.Runtime,
	}

	if live, ok := posters.FullDetails(ctx, m.TMDBID); ok {
		if live.Overview != "" {
			d.Overview = live.Overview
		}
		if live.Runtime > 0 {
			d.Runtime = live.Runtime
		}
		if len(live.Genres) > 0 {
			d.Genres = live.Genres
		}
		d.PosterURL = live.PosterURL
	}
	return d
}
