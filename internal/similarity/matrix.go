// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

// Package similarity owns the precomputed pairwise similarity matrix and
// answers top-K nearest-neighbor queries over it.
//
// The matrix is loaded once, dimension-checked against the catalog, and
// read-only afterwards. Row i corresponds to the movie with catalog ID i;
// that coupling is the catalog package's invariant and the reason neighbor
// results are ID lists rather than reordered movie slices.
package similarity

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"
)

// ErrNotFound indicates a neighbor query for an ID outside the matrix.
var ErrNotFound = errors.New("similarity row not found")

// LoadError indicates a missing, malformed, or dimension-mismatched
// similarity snapshot. Fatal at startup.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Matrix is a square matrix of pairwise similarity scores.
// scores[i][j] is the similarity of movie i to movie j. The matrix is
// symmetric in principle but symmetry is not enforced, and the diagonal is
// not assumed to hold the row maximum.
type Matrix struct {
	scores [][]float64
}

// New builds a matrix from in-memory scores, validating squareness.
// Intended for tests and embedders that already hold the data.
func New(scores [][]float64) (*Matrix, error) {
	n := len(scores)
	for i, row := range scores {
		if len(row) != n {
			return nil, &LoadError{
				Path:   "(in-memory)",
				Reason: fmt.Sprintf("row %d has %d columns, want %d", i, len(row), n),
			}
		}
	}
	return &Matrix{scores: scores}, nil
}

// Load reads the similarity snapshot from path and validates that it is
// square with exactly catalogSize rows. Any structural problem fails with
// a *LoadError.
func Load(path string, catalogSize int) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read snapshot", Err: err}
	}

	var scores [][]float64
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, &LoadError{Path: path, Reason: "decode snapshot", Err: err}
	}

	if len(scores) != catalogSize {
		return nil, &LoadError{
			Path:   path,
			Reason: fmt.Sprintf("matrix has %d rows, catalog has %d movies", len(scores), catalogSize),
		}
	}
	for i, row := range scores {
		if len(row) != catalogSize {
			return nil, &LoadError{
				Path:   path,
				Reason: fmt.Sprintf("row %d has %d columns, want %d", i, len(row), catalogSize),
			}
		}
	}

	return &Matrix{scores: scores}, nil
}

// Size returns the matrix dimension.
func (m *Matrix) Size() int {
	return len(m.scores)
}

// Score returns the similarity of movie i to movie j.
// Out-of-range indices return zero.
func (m *Matrix) Score(i, j int) float64 {
	if i < 0 || i >= len(m.scores) || j < 0 || j >= len(m.scores) {
		return 0
	}
	return m.scores[i][j]
}

// Neighbors returns the IDs of the k movies most similar to id, excluding
// id itself, ordered by descending score with ties broken by lower ID.
// The ordering is fully deterministic: identical inputs always yield an
// identical sequence. When the catalog has fewer than k other movies, all
// of them are returned.
// It fails with ErrNotFound for an out-of-range id.
func (m *Matrix) Neighbors(id, k int) ([]int, error) {
	if id < 0 || id >= len(m.scores) {
		return nil, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	if k <= 0 {
		return []int{}, nil
	}

	row := m.scores[id]
	ids := make([]int, 0, len(row)-1)
	for j := range row {
		if j != id {
			ids = append(ids, j)
		}
	}

	sort.SliceStable(ids, func(a, b int) bool {
		sa, sb := row[ids[a]], row[ids[b]]
		if sa != sb {
			return sa > sb
		}
		return ids[a] < ids[b]
	})

	if len(ids) > k {
		ids = ids[:k]
	}
	return ids, nil
}
