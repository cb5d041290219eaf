package insights

import (
	"testing"
	"time"

	"github.com/jagruklabs/jagruk/internal/models"
)

func TestBucketFor(t *testing.T) {
	intp := func(v int) *int { return &v }

	cases := []struct {
		name   string
		rating *int
		want   RatingBucket
	}{
		{"nil rating", nil, BucketNone},
		{"lowest", intp(1), BucketWorst},
		{"worst upper bound", intp(2), BucketWorst},
		{"poor lower bound", intp(3), BucketPoor},
		{"fair", intp(5), BucketFair},
		{"good upper bound", intp(8), BucketGood},
		{"best lower bound", intp(9), BucketBest},
		{"highest", intp(10), BucketBest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BucketFor(tc.rating); got != tc.want {
				t.Errorf("BucketFor = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMonthGrid_PadsToFirstWeekday(t *testing.T) {
	state := models.NewAppState(time.Now())
	rating := 9
	e := models.DefaultEntry("2026-03-10")
	e.Rating = &rating
	e.IsLocked = true
	state.Entries["2026-03-10"] = e

	// March 2026 starts on a Sunday, so no padding cells.
	cells := MonthGrid(state, 2026, time.March)
	if len(cells) != 31 {
		t.Fatalf("len(cells) = %d, want 31", len(cells))
	}
	if cells[0].Date != "2026-03-01" {
		t.Errorf("first cell = %q", cells[0].Date)
	}
	day10 := cells[9]
	if day10.Bucket != BucketBest || !day10.Locked {
		t.Errorf("day 10 cell = %+v", day10)
	}

	// April 2026 starts on a Wednesday: three padding cells.
	cells = MonthGrid(state, 2026, time.April)
	if len(cells) != 33 {
		t.Fatalf("len(cells) = %d, want 33", len(cells))
	}
	for i := 0; i < 3; i++ {
		if cells[i].Date != "" {
			t.Errorf("cell %d should be padding, got %q", i, cells[i].Date)
		}
	}
	if cells[3].Date != "2026-04-01" {
		t.Errorf("cell 3 = %q, want 2026-04-01", cells[3].Date)
	}
}
