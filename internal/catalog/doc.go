// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

// Package catalog owns the immutable in-memory movie table and the facet
// index derived from it.
//
// The store is loaded once at process start from a JSON snapshot and never
// mutated afterwards, so any number of concurrent readers may query it
// without locking. Movie IDs are assigned positionally at load time and
// form the join key into the similarity matrix: row i of the matrix
// corresponds exactly to the movie with ID i. Derived views (filter
// results, pages) are always copies or index lists, never a reordering of
// the canonical slice.
package catalog
