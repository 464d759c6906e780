// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a title or ID lookup miss. Callers recover locally
// (surface "no such movie" to the user) rather than treating it as fatal.
var ErrNotFound = errors.New("movie not found")

// LoadError indicates a missing or structurally invalid snapshot.
// It is fatal at startup: the process must not serve requests with a
// partially loaded catalog.
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
