// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

// Package nav models browsing-session navigation as immutable state
// values with pure transition functions.
//
// The routing layer owns where the state is carried (query strings,
// client storage); this package only defines the value and its legal
// transitions, which keeps the engine free of hidden session state and
// the transitions trivially testable. There is no terminal state: a
// session navigates until the client goes away.
package nav

import "github.com/Nikhil0-3/MovieMatch/internal/query"

// View identifies a browsing view.
type View string

const (
	// ViewHome is the initial view: title selector plus top picks.
	ViewHome View = "home"
	// ViewRecommendations shows neighbors of a seed movie.
	ViewRecommendations View = "recommendations"
	// ViewTop shows the global top-movies ranking.
	ViewTop View = "top"
	// ViewFiltered shows the results of a filter spec.
	ViewFiltered View = "filtered"
	// ViewDetails shows a single movie, remembering where it was opened
	// from for the back transition.
	ViewDetails View = "details"
)

// State is an immutable navigation snapshot. Transition methods return a
// new value and never mutate the receiver.
type State struct {
	View View `json:"view"`

	// Page is the 1-based page of the current listing view.
	Page int `json:"page"`

	// Seed is the title recommendations were requested for, set only in
	// ViewRecommendations.
	Seed string `json:"seed,omitempty"`

	// Spec is the active filter, set only in ViewFiltered.
	Spec query.Spec `json:"spec,omitempty"`

	// SelectedID is the movie open in ViewDetails.
	SelectedID int `json:"selected_id,omitempty"`

	// PrevView and PrevPage remember the listing a details view was
	// opened from, for Back.
	PrevView View `json:"prev_view,omitempty"`
	PrevPage int  `json:"prev_page,omitempty"`
}

// Initial returns the starting state of a session.
func Initial() State {
	return State{View: ViewHome, Page: 1}
}

// ShowRecommendations transitions to the recommendations view for seed.
func (s State) ShowRecommendations(seed string) State {
	return State{View: ViewRecommendations, Page: 1, Seed: seed}
}

// ShowTop transitions to the top-movies view from any state.
func (s State) ShowTop() State {
	return State{View: ViewTop, Page: 1}
}

// ApplyFilter transitions to the filtered-results view from any state.
func (s State) ApplyFilter(spec query.Spec) State {
	return State{View: ViewFiltered, Page: 1, Spec: spec}
}

// SelectMovie transitions to the details view, remembering the current
// view and page so Back can restore them. Selecting from a details view
// keeps the original origin.
func (s State) SelectMovie(id int) State {
	next := s
	if s.View != ViewDetails {
		next.PrevView = s.View
		next.PrevPage = s.Page
	}
	next.View = ViewDetails
	next.SelectedID = id
	return next
}

// Back returns from the details view to the remembered listing view and
// page. From any other view it is the identity.
func (s State) Back() State {
	if s.View != ViewDetails {
		return s
	}
	prev := s
	prev.View = s.PrevView
	prev.Page = s.PrevPage
	prev.SelectedID = 0
	prev.PrevView = ""
	prev.PrevPage = 0
	if prev.View == "" {
		prev.View = ViewHome
		prev.Page = 1
	}
	return prev
}

// WithPage returns the state on a different page of the same view.
func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	next := s
	next.Page = page
	return next
}
