// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package catalog

// DisplayCastSize is the number of cast members shown on detail views.
const DisplayCastSize = 5

// Movie is a row in the catalog store.
type Movie struct {
	// ID is the stable row index assigned at load time. It is the join key
	// into the similarity matrix and must never change after load.
	ID int `json:"id"`

	// TMDBID is the opaque identifier for the external metadata provider.
	TMDBID int64 `json:"tmdb_id"`

	// Title is the human-facing lookup key. When two movies share a title,
	// lookup by title resolves to the first one in catalog order.
	Title string `json:"title"`

	// Year is the release year, derived from ReleaseDate when the snapshot
	// does not carry it. Zero means unknown.
	Year int `json:"year,omitempty"`

	// ReleaseDate is the raw release date string from the snapshot.
	ReleaseDate string `json:"release_date,omitempty"`

	// Genres, Cast and Directors are ordered name lists used for
	// membership filtering. Cast is additionally truncated for display.
	Genres    []string `json:"genres"`
	Cast      []string `json:"cast"`
	Directors []string `json:"directors"`

	// Rating is the vote average in [0, 10]. Zero when absent.
	Rating float64 `json:"rating"`

	// Popularity and WeightedRating are numeric sort keys.
	Popularity     float64 `json:"popularity"`
	WeightedRating float64 `json:"weighted_rating"`

	// Overview is the plot summary, normalized to a single string at load.
	Overview string `json:"overview,omitempty"`

	// Runtime is the duration in minutes. Zero means unknown.
	Runtime int `json:"runtime,omitempty"`
}

// DisplayCast returns the first DisplayCastSize cast members.
func (m Movie) DisplayCast() []string {
	if len(m.Cast) <= DisplayCastSize {
		return m.Cast
	}
	return m.Cast[:DisplayCastSize]
}

// HasGenre reports whether the movie's genre list contains name.
// An empty list never matches.
func (m Movie) HasGenre(name string) bool {
	return containsString(m.Genres, name)
}

// HasActor reports whether the movie's cast list contains name.
func (m Movie) HasActor(name string) bool {
	return containsString(m.Cast, name)
}

// HasDirector reports whether the movie's director list contains name.
func (m Movie) HasDirector(name string) bool {
	return containsString(m.Directors, name)
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
