// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		Enabled:      true,
		APIKey:       "test-key",
		BaseURL:      server.URL,
		ImageBaseURL: "https://image.test/w500",
	}, zerolog.Nop())
	return client, server
}

func TestPosterURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("path = %q, want /movie/603", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key = %q, want test-key", got)
		}
		fmt.Fprint(w, `{"poster_path": "/matrix.jpg", "overview": "A hacker.", "runtime": 136}`)
	})

	got := client.PosterURL(context.Background(), 603)
	want := "https://image.test/w500/matrix.jpg"
	if got != want {
		t.Errorf("PosterURL() = %q, want %q", got, want)
	}
}

func TestPosterURLFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "provider error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "empty poster path",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"poster_path": ""}`)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `not json`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.handler)
			if got := client.PosterURL(context.Background(), 1); got != PlaceholderPosterURL {
				t.Errorf("PosterURL() = %q, want placeholder", got)
			}
		})
	}
}

func TestPosterURLDisabled(t *testing.T) {
	client := NewClient(Config{Enabled: false}, zerolog.Nop())
	if got := client.PosterURL(context.Background(), 603); got != PlaceholderPosterURL {
		t.Errorf("PosterURL() with disabled client = %q, want placeholder", got)
	}

	noKey := NewClient(Config{Enabled: true}, zerolog.Nop())
	if got := noKey.PosterURL(context.Background(), 603); got != PlaceholderPosterURL {
		t.Errorf("PosterURL() without api key = %q, want placeholder", got)
	}
}

func TestLookupMemoized(t *testing.T) {
	var calls atomic.Int64
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"poster_path": "/p.jpg"}`)
	})

	for i := 0; i < 5; i++ {
		client.PosterURL(context.Background(), 42)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("upstream calls = %d, want 1 (memoized)", got)
	}

	stats := client.CacheStats()
	if stats.Hits != 4 {
		t.Errorf("memo hits = %d, want 4", stats.Hits)
	}
}

func TestFullDetails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"overview": "A thief in dreams.",
			"runtime": 148,
			"poster_path": "/inception.jpg",
			"genres": [{"name": "Science Fiction"}, {"name": "Action"}]
		}`)
	})

	d, ok := client.FullDetails(context.Background(), 27205)
	if !ok {
		t.Fatal("FullDetails() ok = false, want true")
	}
	if d.Overview != "A thief in dreams." {
		t.Errorf("Overview = %q", d.Overview)
	}
	if d.Runtime != 148 {
		t.Errorf("Runtime = %d, want 148", d.Runtime)
	}
	if len(d.Genres) != 2 || d.Genres[0] != "Science Fiction" {
		t.Errorf("Genres = %v", d.Genres)
	}
	if d.PosterURL != "https://image.test/w500/inception.jpg" {
		t.Errorf("PosterURL = %q", d.PosterURL)
	}
}

func TestFullDetailsUnavailable(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	d, ok := client.FullDetails(context.Background(), 1)
	if ok {
		t.Fatal("FullDetails() ok = true for failing provider")
	}
	if d.PosterURL != PlaceholderPosterURL {
		t.Errorf("PosterURL = %q, want placeholder", d.PosterURL)
	}
}

func TestCircuitBreakerOpens(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	// Distinct IDs bypass the memo; the breaker trips at 60% failures
	// over at least 10 requests, and every request here fails.
	for i := int64(0); i < 15; i++ {
		client.PosterURL(context.Background(), i)
	}

	// Once open, lookups still degrade to the placeholder rather than
	// erroring out.
	if got := client.PosterURL(context.Background(), 999); got != PlaceholderPosterURL {
		t.Errorf("PosterURL() with open breaker = %q, want placeholder", got)
	}
}
