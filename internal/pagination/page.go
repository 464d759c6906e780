// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

// Package pagination slices ordered result sequences into fixed-size
// pages with page-count metadata.
package pagination

import "errors"

// DefaultPageSize is the page size used by listing views when the caller
// does not specify one.
const DefaultPageSize = 10

// ErrInvalidPage indicates a page number below 1. This is a programmer
// error in the calling layer; well-formed navigation state never produces
// it. Callers recover by clamping to page 1.
var ErrInvalidPage = errors.New("page number must be >= 1")

// Page is one page of an ordered result sequence.
type Page[T any] struct {
	// Items holds the page's slice of the sequence. Every page except
	// possibly the last has exactly PageSize items.
	Items []T `json:"items"`

	// PageNumber is 1-based.
	PageNumber int `json:"page_number"`

	// PageSize is the requested page size.
	PageSize int `json:"page_size"`

	// TotalItems is the length of the full sequence.
	TotalItems int `json:"total_items"`

	// TotalPages is ceil(TotalItems / PageSize) for a non-empty sequence
	// and 0 for an empty one, so callers can tell "no results" apart from
	// "results exist, page out of range".
	TotalPages int `json:"total_pages"`
}

// Paginate returns the page numbered page (1-based) of seq.
//
// A page number beyond TotalPages yields an empty Items slice with
// TotalPages still computed, letting callers detect and clamp. A page
// number below 1 fails with ErrInvalidPage. A non-positive size falls
// back to DefaultPageSize.
func Paginate[T any](seq []T, page, size int) (Page[T], error) {
	if page < 1 {
		return Page[T]{}, ErrInvalidPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	p := Page[T]{
		Items:      []T{},
		PageNumber: page,
		PageSize:   size,
		TotalItems: len(seq),
		TotalPages: totalPages(len(seq), size),
	}

	start := (page - 1) * size
	if start >= len(seq) {
		return p, nil
	}
	end := start + size
	if end > len(seq) {
		end = len(seq)
	}

	p.Items = make([]T, end-start)
	copy(p.Items, seq[start:end])
	return p, nil
}

// totalPages is ceiling division, zero for an empty sequence.
func totalPages(total, size int) int {
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}
