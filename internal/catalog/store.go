// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package catalog

import "fmt"

// Store is the immutable in-memory movie table. It is created once by
// LoadSnapshot (or NewStore in tests), lives for the process lifetime, and
// is safe for concurrent readers because nothing mutates it after load.
type Store struct {
	movies  []Movie
	byTitle map[string]int

	// titleCollisions counts titles that appear more than once; lookup by
	// such a title resolves to the lowest ID (first match wins).
	titleCollisions int
}

// NewStore builds a store from pre-parsed movies. IDs are reassigned
// positionally so they always match slice indices.
func NewStore(movies []Movie) *Store {
	s := &Store{
		movies:  make([]Movie, len(movies)),
		byTitle: make(map[string]int, len(movies)),
	}
	for i, m := range movies {
		m.ID = i
		s.movies[i] = m
		if _, dup := s.byTitle[m.Title]; dup {
			s.titleCollisions++
			continue
		}
		s.byTitle[m.Title] = i
	}
	return s
}

// Len returns the number of movies in the catalog.
func (s *Store) Len() int {
	return len(s.movies)
}

// GetByID returns the movie with the given ID.
// It fails with ErrNotFound for an out-of-range ID.
func (s *Store) GetByID(id int) (Movie, error) {
	if id < 0 || id >= len(s.movies) {
		return Movie{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return s.movies[id], nil
}

// GetByTitle returns the movie with the given title.
// When titles collide the first movie in catalog order wins.
// It fails with ErrNotFound when no movie matches.
func (s *Store) GetByTitle(title string) (Movie, error) {
	id, ok := s.byTitle[title]
	if !ok {
		return Movie{}, fmt.Errorf("title %q: %w", title, ErrNotFound)
	}
	return s.movies[id], nil
}

// Titles returns every title in catalog insertion order. The order is
// stable across calls and is used to populate selection widgets.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.movies))
	for i, m := range s.movies {
		titles[i] = m.Title
	}
	return titles
}

// All returns a copy of the catalog. Callers may sort or filter the
// returned slice freely without breaking the ID/matrix coupling.
func (s *Store) All() []Movie {
	out := make([]Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// TitleCollisions returns the number of duplicate titles detected at load.
func (s *Store) TitleCollisions() int {
	return s.titleCollisions
}
