// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package api

// Request parameter structs. Each struct carries validate tags checked
// by validateRequest before the handler touches the engine, so malformed
// input fails with VALIDATION_ERROR instead of surfacing deeper.

// listMoviesRequest covers GET /api/v1/movies.
type listMoviesRequest struct {
	Page      int     `validate:"min=1"`
	PageSize  int     `validate:"min=1,max=500"`
	YearMin   int     `validate:"min=0,max=3000"`
	YearMax   int     `validate:"min=0,max=3000"`
	MinRating float64 `validate:"min=0,max=10"`
	Sort      string  `validate:"omitempty,oneof=popularity year rating weighted_rating"`
}

// topMoviesRequest covers GET /api/v1/movies/top.
type topMoviesRequest struct {
	N    int    `validate:"min=1,max=500"`
	Sort string `validate:"omitempty,oneof=popularity year rating weighted_rating"`
}

// recommendRequest covers the two recommendation endpoints.
type recommendRequest struct {
	K int `validate:"min=1,max=50"`
}
