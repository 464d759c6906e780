// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Nikhil0-3/MovieMatch/internal/catalog"
	"github.com/Nikhil0-3/MovieMatch/internal/query"
	"github.com/Nikhil0-3/MovieMatch/internal/similarity"
)

func testEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()

	store := catalog.NewStore([]catalog.Movie{
		{Title: "Inception", Year: 2010, Genres: []string{"Sci-Fi"}, Rating: 8.3, Popularity: 29.1, WeightedRating: 8.1},
		{Title: "Interstellar", Year: 2014, Genres: []string{"Sci-Fi"}, Rating: 8.4, Popularity: 32.2, WeightedRating: 8.2},
		{Title: "Heat", Year: 1995, Genres: []string{"Crime"}, Rating: 8.2, Popularity: 17.3, WeightedRating: 7.9},
		{Title: "Arrival", Year: 2016, Genres: []string{"Sci-Fi"}, Rating: 7.9, Popularity: 21.7, WeightedRating: 7.7},
	})
	matrix, err := similarity.New([][]float64{
		{1.0, 0.9, 0.1, 0.7},
		{0.9, 1.0, 0.2, 0.8},
		{0.1, 0.2, 1.0, 0.1},
		{0.7, 0.8, 0.1, 1.0},
	})
	if err != nil {
		t.Fatalf("similarity.New() error: %v", err)
	}

	e, err := NewEngine(cfg, store, matrix, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

func titlesOf(movies []catalog.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestNewEngineRejectsDimensionMismatch(t *testing.T) {
	store := catalog.NewStore([]catalog.Movie{{Title: "Lone"}})
	matrix, err := similarity.New([][]float64{{1.0, 0.5}, {0.5, 1.0}})
	if err != nil {
		t.Fatalf("similarity.New() error: %v", err)
	}

	if _, err := NewEngine(nil, store, matrix, zerolog.Nop()); err == nil {
		t.Fatal("NewEngine() accepted mismatched dimensions")
	}
}

func TestRecommend(t *testing.T) {
	e := testEngine(t, nil)

	tests := []struct {
		name  string
		title string
		k     int
		want  []string
	}{
		{
			name:  "neighbors exclude seed",
			title: "Inception",
			k:     3,
			want:  []string{"Interstellar", "Arrival", "Heat"},
		},
		{
			name:  "k truncates",
			title: "Inception",
			k:     1,
			want:  []string{"Interstellar"},
		},
		{
			name:  "zero k uses default",
			title: "Heat",
			k:     0,
			want:  []string{"Interstellar", "Inception", "Arrival"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Recommend(context.Background(), tt.title, tt.k)
			if err != nil {
				t.Fatalf("Recommend(%q, %d) error: %v", tt.title, tt.k, err)
			}
			if !reflect.DeepEqual(titlesOf(got), tt.want) {
				t.Errorf("Recommend(%q, %d) = %v, want %v", tt.title, tt.k, titlesOf(got), tt.want)
			}
		})
	}
}

func TestRecommendUnknownTitle(t *testing.T) {
	e := testEngine(t, nil)
	_, err := e.Recommend(context.Background(), "Nonexistent", 3)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Recommend(unknown) error = %v, want catalog.ErrNotFound", err)
	}
}

func TestRecommendByIDUnknownID(t *testing.T) {
	e := testEngine(t, nil)
	for _, id := range []int{-1, 4, 99} {
		if _, err := e.RecommendByID(context.Background(), id, 3); !errors.Is(err, catalog.ErrNotFound) {
			t.Errorf("RecommendByID(%d) error = %v, want catalog.ErrNotFound", id, err)
		}
	}
}

func TestRecommendClampsK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxK = 2
	e := testEngine(t, cfg)

	got, err := e.Recommend(context.Background(), "Inception", 50)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Recommend(k=50) returned %d movies, want MaxK=2", len(got))
	}
}

func TestRecommendMemoized(t *testing.T) {
	e := testEngine(t, nil)

	first, err := e.RecommendByID(context.Background(), 0, 3)
	if err != nil {
		t.Fatalf("RecommendByID() error: %v", err)
	}
	again, err := e.RecommendByID(context.Background(), 0, 3)
	if err != nil {
		t.Fatalf("RecommendByID() error: %v", err)
	}
	if !reflect.DeepEqual(titlesOf(first), titlesOf(again)) {
		t.Errorf("memoized result differs: %v vs %v", titlesOf(first), titlesOf(again))
	}

	stats := e.memo.GetStats()
	if stats.Hits < 1 {
		t.Errorf("memo hits = %d, want at least 1", stats.Hits)
	}

	// A different k must key a different entry, not collide with the
	// memoized one.
	smaller, err := e.RecommendByID(context.Background(), 0, 2)
	if err != nil {
		t.Fatalf("RecommendByID() error: %v", err)
	}
	if len(smaller) != 2 {
		t.Errorf("len(smaller) = %d, want 2", len(smaller))
	}
}

func TestTop(t *testing.T) {
	e := testEngine(t, nil)

	got := e.Top(2, query.SortWeightedRating)
	want := []string{"Interstellar", "Inception"}
	if !reflect.DeepEqual(titlesOf(got), want) {
		t.Errorf("Top(2) = %v, want %v", titlesOf(got), want)
	}

	// Zero n falls back to the configured default, which exceeds the
	// catalog here, so everything comes back.
	if got := e.Top(0, query.SortWeightedRating); len(got) != 4 {
		t.Errorf("Top(0) returned %d movies, want 4", len(got))
	}
}

func TestFilter(t *testing.T) {
	e := testEngine(t, nil)

	got := e.Filter(query.Spec{Genre: "Sci-Fi", Sort: query.SortYear})
	want := []string{"Arrival", "Interstellar", "Inception"}
	if !reflect.DeepEqual(titlesOf(got), want) {
		t.Errorf("Filter() = %v, want %v", titlesOf(got), want)
	}
}

func TestFacets(t *testing.T) {
	e := testEngine(t, nil)

	f := e.Facets()
	if len(f.Genres) != 2 {
		t.Errorf("Genres = %v, want [Crime Sci-Fi]", f.Genres)
	}
	if f.YearMin != 1995 || f.YearMax != 2016 {
		t.Errorf("year bounds = [%d, %d], want [1995, 2016]", f.YearMin, f.YearMax)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "zero default k", mutate: func(c *Config) { c.DefaultK = 0 }, wantErr: true},
		{name: "max below default", mutate: func(c *Config) { c.MaxK = c.DefaultK - 1 }, wantErr: true},
		{name: "zero top n", mutate: func(c *Config) { c.TopDefaultN = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
