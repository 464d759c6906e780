// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package pagination

import (
	"net/http"
	"strconv"
)

// Params carries pagination query parameters parsed from an HTTP request.
type Params struct {
	Page     int
	PageSize int
}

// ParseQueryParams reads "page" and "page_size" from the request query
// string. Missing, malformed, or out-of-range values fall back to page 1
// and defaultSize; page numbers below 1 are clamped to 1 rather than
// rejected, since they come from user-controlled navigation state. Sizes
// above maxSize are clamped to maxSize.
func ParseQueryParams(r *http.Request, defaultSize, maxSize int) Params {
	p := Params{Page: 1, PageSize: defaultSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			p.Page = page
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size >= 1 {
			p.PageSize = size
		}
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}
