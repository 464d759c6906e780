// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package catalog

import (
	"sort"
	"testing"
)

func TestBuildFacets(t *testing.T) {
	movies := []Movie{
		{Title: "A", Year: 2010, Genres: []string{"Sci-Fi", "Drama"}, Cast: []string{"X", "Y"}, Directors: []string{"D1"}},
		{Title: "B", Year: 1995, Genres: []string{"Drama"}, Cast: []string{"Y", "Z"}, Directors: []string{"D2"}},
		{Title: "C", Genres: []string{"Crime"}},
	}
	f := BuildFacets(NewStore(movies))

	wantGenres := []string{"Crime", "Drama", "Sci-Fi"}
	if len(f.Genres) != len(wantGenres) {
		t.Fatalf("Genres = %v, want %v", f.Genres, wantGenres)
	}
	for i := range wantGenres {
		if f.Genres[i] != wantGenres[i] {
			t.Errorf("Genres[%d] = %q, want %q", i, f.Genres[i], wantGenres[i])
		}
	}

	if !sort.StringsAreSorted(f.Actors) {
		t.Errorf("Actors not sorted: %v", f.Actors)
	}
	if len(f.Actors) != 3 {
		t.Errorf("Actors = %v, want 3 distinct values", f.Actors)
	}
	if len(f.Directors) != 2 {
		t.Errorf("Directors = %v, want 2 distinct values", f.Directors)
	}

	// Movie C has no year and must not drag YearMin to zero.
	if f.YearMin != 1995 || f.YearMax != 2010 {
		t.Errorf("year bounds = [%d, %d], want [1995, 2010]", f.YearMin, f.YearMax)
	}
}

func TestBuildFacetsNoKnownYears(t *testing.T) {
	f := BuildFacets(NewStore([]Movie{{Title: "A"}, {Title: "B"}}))

	if f.YearMin != 0 || f.YearMax != 0 {
		t.Errorf("year bounds = [%d, %d], want [0, 0] when no year is known", f.YearMin, f.YearMax)
	}
	if len(f.Genres) != 0 {
		t.Errorf("Genres = %v, want empty", f.Genres)
	}
}
