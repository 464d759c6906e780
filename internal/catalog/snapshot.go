// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package catalog

import (
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// snapshotMovie is the wire shape of one catalog row. Field names follow
// the exported dataset columns, which differ from the API shape in Movie.
type snapshotMovie struct {
	TMDBID         int64         `json:"movie_id"`
	Title          string        `json:"title"`
	Genres         []string      `json:"genres_flat"`
	Cast           []string      `json:"cast_flat"`
	Directors      []string      `json:"director_flat"`
	ReleaseDate    string        `json:"release_date"`
	Year           int           `json:"year"`
	Rating         float64       `json:"vote_average"`
	Popularity     float64       `json:"popularity"`
	WeightedRating float64       `json:"weighted_rating"`
	Overview       overviewField `json:"overview"`
	Runtime        int           `json:"runtime"`
}

// overviewField accepts either a plain string or a list of sentence
// fragments; fragments are joined with single spaces.
type overviewField string

func (o *overviewField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = overviewField(s)
		return nil
	}
	var frags []string
	if err := json.Unmarshal(data, &frags); err != nil {
		return err
	}
	*o = overviewField(strings.Join(frags, " "))
	return nil
}

// LoadSnapshot reads the catalog snapshot from path and builds the store.
// It fails with a *LoadError when the file is missing, is not valid JSON,
// is empty, or contains a row without a title.
func LoadSnapshot(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read snapshot", Err: err}
	}

	var rows []snapshotMovie
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &LoadError{Path: path, Reason: "decode snapshot", Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Reason: "snapshot contains no movies"}
	}

	movies := make([]Movie, len(rows))
	for i, row := range rows {
		if row.Title == "" {
			return nil, &LoadError{Path: path, Reason: "row " + strconv.Itoa(i) + " has no title"}
		}
		movies[i] = Movie{
			TMDBID:         row.TMDBID,
			Title:          row.Title,
			Year:           yearOf(row.Year, row.ReleaseDate),
			ReleaseDate:    row.ReleaseDate,
			Genres:         row.Genres,
			Cast:           row.Cast,
			Directors:      row.Directors,
			Rating:         row.Rating,
			Popularity:     row.Popularity,
			WeightedRating: row.WeightedRating,
			Overview:       string(row.Overview),
			Runtime:        row.Runtime,
		}
	}

	return NewStore(movies), nil
}

// yearOf prefers the explicit year column and otherwise derives the year
// from a YYYY-MM-DD release date. Unparseable dates yield zero (unknown).
func yearOf(year int, releaseDate string) int {
	if year != 0 {
		return year
	}
	if len(releaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(releaseDate[:4])
	if err != nil || y <= 0 {
		return 0
	}
	return y
}
