// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package catalog

import "sort"

// Facets holds the distinct filterable attribute values of the catalog,
// derived once at load time. It only populates filter choices; filtering
// itself re-scans the store directly so that predicate semantics live in
// one place.
type Facets struct {
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Directors []string `json:"directors"`

	// YearMin and YearMax bound the known release years. Both are zero
	// when no movie has a known year.
	YearMin int `json:"year_min"`
	YearMax int `json:"year_max"`
}

// BuildFacets derives the facet index from the store.
// Each list is deduplicated and sorted.
func BuildFacets(s *Store) *Facets {
	genres := make(map[string]struct{})
	actors := make(map[string]struct{})
	directors := make(map[string]struct{})

	f := &Facets{}
	for _, m := range s.movies {
		for _, g := range m.Genres {
			genres[g] = struct{}{}
		}
		for _, a := range m.Cast {
			actors[a] = struct{}{}
		}
		for _, d := range m.Directors {
			directors[d] = struct{}{}
		}
		if m.Year == 0 {
			continue
		}
		if f.YearMin == 0 || m.Year < f.YearMin {
			f.YearMin = m.Year
		}
		if m.Year > f.YearMax {
			f.YearMax = m.Year
		}
	}

	f.Genres = sortedKeys(genres)
	f.Actors = sortedKeys(actors)
	f.Directors = sortedKeys(directors)
	return f
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
