// MovieMatch - Movie Recommendation and Catalog Browsing
// Copyright 2026 Nikhil More (Nikhil0-3)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nikhil0-3/MovieMatch

package pagination

import (
	"errors"
	"reflect"
	"testing"
)

func sequence(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return seq
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		page           int
		size           int
		wantItems      []int
		wantTotalPages int
	}{
		{
			name:  "first page",
			total: 25, page: 1, size: 10,
			wantItems:      sequence(10),
			wantTotalPages: 3,
		},
		{
			name:  "middle page",
			total: 25, page: 2, size: 10,
			wantItems:      []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
			wantTotalPages: 3,
		},
		{
			name:  "short last page",
			total: 25, page: 3, size: 10,
			wantItems:      []int{20, 21, 22, 23, 24},
			wantTotalPages: 3,
		},
		{
			name:  "exact division",
			total: 20, page: 2, size: 10,
			wantItems:      []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
			wantTotalPages: 2,
		},
		{
			name:  "beyond range keeps total pages",
			total: 25, page: 9, size: 10,
			wantItems:      []int{},
			wantTotalPages: 3,
		},
		{
			name:  "empty sequence",
			total: 0, page: 1, size: 10,
			wantItems:      []int{},
			wantTotalPages: 0,
		},
		{
			name:  "size larger than sequence",
			total: 3, page: 1, size: 10,
			wantItems:      []int{0, 1, 2},
			wantTotalPages: 1,
		},
		{
			name:  "non-positive size falls back to default",
			total: 25, page: 1, size: 0,
			wantItems:      sequence(DefaultPageSize),
			wantTotalPages: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(sequence(tt.total), tt.page, tt.size)
			if err != nil {
				t.Fatalf("Paginate() error: %v", err)
			}
			if !reflect.DeepEqual(page.Items, tt.wantItems) {
				t.Errorf("Items = %v, want %v", page.Items, tt.wantItems)
			}
			if page.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tt.wantTotalPages)
			}
			if page.TotalItems != tt.total {
				t.Errorf("TotalItems = %d, want %d", page.TotalItems, tt.total)
			}
			if page.PageNumber != tt.page {
				t.Errorf("PageNumber = %d, want %d", page.PageNumber, tt.page)
			}
		})
	}
}

func TestPaginateInvalidPage(t *testing.T) {
	for _, page := range []int{0, -1, -100} {
		_, err := Paginate(sequence(10), page, 5)
		if !errors.Is(err, ErrInvalidPage) {
			t.Errorf("Paginate(page=%d) error = %v, want ErrInvalidPage", page, err)
		}
	}
}

// TestPaginateReconstruction walks every page in order and checks that
// the concatenation reproduces the original sequence exactly.
func TestPaginateReconstruction(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 95} {
		seq := sequence(total)
		var rebuilt []int
		for page := 1; ; page++ {
			p, err := Paginate(seq, page, 10)
			if err != nil {
				t.Fatalf("total %d page %d: %v", total, page, err)
			}
			if len(p.Items) == 0 {
				break
			}
			rebuilt = append(rebuilt, p.Items...)
		}
		if len(rebuilt) != total {
			t.Errorf("total %d: rebuilt %d items", total, len(rebuilt))
		}
		for i := range rebuilt {
			if rebuilt[i] != seq[i] {
				t.Fatalf("total %d: rebuilt[%d] = %d, want %d", total, i, rebuilt[i], seq[i])
			}
		}
	}
}
