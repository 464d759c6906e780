// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package query

import (
	"sort"

	"github.com/Nikhil0-3/MovieMatch/internal/catalog"
)

// Run returns the movies matching every active predicate of spec, sorted
// by spec.Sort descending with ID-ascending tie-break. Predicates are
// applied conjunctively: genre membership, actor membership, director
// membership, year range (inclusive both ends), minimum rating
// (inclusive). An empty result is valid, not an error.
func Run(store *catalog.Store, spec Spec) []catalog.Movie {
	// The zero spec is the identity filter; skip the predicate scan and
	// sort the whole catalog directly.
	if spec.IsZero() {
		matched := store.All()
		sortMovies(matched, spec.Sort)
		return matched
	}

	matched := make([]catalog.Movie, 0, store.Len())
	for _, m := range store.All() {
		if matches(m, spec) {
			matched = append(matched, m)
		}
	}
	sortMovies(matched, spec.Sort)
	return matched
}

// Top returns the first n movies of the whole catalog ordered by key.
// It is the no-filter specialization of Run, not a separate code path:
// an n larger than the catalog returns every movie.
func Top(store *catalog.Store, n int, key SortKey) []catalog.Movie {
	movies := Run(store, Spec{Sort: key})
	if n >= 0 && len(movies) > n {
		movies = movies[:n]
	}
	return movies
}

// matches applies every active predicate. A missing or empty field on the
// movie fails the corresponding predicate rather than erroring; this makes
// the membership test total over arbitrary catalog rows.
func matches(m catalog.Movie, spec Spec) bool {
	if spec.Genre != "" && !m.HasGenre(spec.Genre) {
		return false
	}
	if spec.Actor != "" && !m.HasActor(spec.Actor) {
		return false
	}
	if spec.Director != "" && !m.HasDirector(spec.Director) {
		return false
	}
	if spec.YearMin != 0 && (m.Year == 0 || m.Year < spec.YearMin) {
		return false
	}
	if spec.YearMax != 0 && (m.Year == 0 || m.Year > spec.YearMax) {
		return false
	}
	if spec.MinRating > 0 && m.Rating < spec.MinRating {
		return false
	}
	return true
}

// sortMovies orders movies in place by key descending, ID ascending on
// equal keys.
func sortMovies(movies []catalog.Movie, key SortKey) {
	sort.Slice(movies, func(i, j int) bool {
		a, b := sortValue(movies[i], key), sortValue(movies[j], key)
		if a != b {
			return a > b
		}
		return movies[i].ID < movies[j].ID
	})
}

// sortValue extracts the numeric sort field for key.
func sortValue(m catalog.Movie, key SortKey) float64 {
	switch key {
	case SortYear:
		return float64(m.Year)
	case SortRating:
		return m.Rating
	case SortWeightedRating:
		return m.WeightedRating
	default:
		return m.Popularity
	}
}
