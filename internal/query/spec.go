// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

// Package query implements the catalog filter engine: conjunctive facet
// predicates over the movie store with a deterministic sort order.
package query

// SortKey selects the numeric field used to order query results.
// All sorts are descending with catalog-ID-ascending tie-break, so
// repeated queries with identical inputs return identical orderings.
type SortKey string

const (
	// SortPopularity orders by the popularity score (the default).
	SortPopularity SortKey = "popularity"
	// SortYear orders by release year.
	SortYear SortKey = "year"
	// SortRating orders by vote average.
	SortRating SortKey = "rating"
	// SortWeightedRating orders by the precomputed weighted rating.
	SortWeightedRating SortKey = "weighted_rating"
)

// ParseSortKey maps a wire value to a SortKey, falling back to
// SortPopularity for empty or unknown values.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortYear, SortRating, SortWeightedRating:
		return SortKey(s)
	default:
		return SortPopularity
	}
}

// Spec is a filter specification. The zero value of each field means "no
// constraint on that dimension"; the zero Spec therefore matches the whole
// catalog, which is exactly the "top movies" behavior before truncation.
type Spec struct {
	// Genre, Actor and Director are facet equality filters tested against
	// the movie's respective list attribute. A movie whose list is absent
	// or empty fails the predicate (it is excluded, never an error).
	Genre    string `json:"genre,omitempty"`
	Actor    string `json:"actor,omitempty"`
	Director string `json:"director,omitempty"`

	// YearMin and YearMax bound the release year, both ends inclusive.
	// Zero leaves the respective end open. Movies with an unknown year
	// fail any active year constraint.
	YearMin int `json:"year_min,omitempty"`
	YearMax int `json:"year_max,omitempty"`

	// MinRating is the inclusive minimum vote average. Zero means no
	// constraint.
	MinRating float64 `json:"min_rating,omitempty"`

	// Sort selects the ordering; empty means SortPopularity.
	Sort SortKey `json:"sort,omitempty"`
}

// IsZero reports whether the spec carries no constraints and no explicit
// sort, i.e. it is the identity filter.
func (s Spec) IsZero() bool {
	return s == Spec{}
}
