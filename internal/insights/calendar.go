package insights

import (
	"time"

	"github.com/jagruklabs/jagruk/internal/constants"
	"github.com/jagruklabs/jagruk/internal/models"
)

// RatingBucket is a display severity derived from a day's rating.
type RatingBucket int

const (
	BucketNone  RatingBucket = iota // no rating recorded
	BucketWorst                     // 1-2
	BucketPoor                      // 3-4
	BucketFair                      // 5-6
	BucketGood                      // 7-8
	BucketBest                      // 9-10
)

// BucketFor maps an optional 1-10 rating to its display bucket.
func BucketFor(rating *int) RatingBucket {
	if rating == nil {
		return BucketNone
	}
	switch r := *rating; {
	case r <= 2:
		return BucketWorst
	case r <= 4:
		return BucketPoor
	case r <= 6:
		return BucketFair
	case r <= 8:
		return BucketGood
	default:
		return BucketBest
	}
}

// DayCell is one square of the month pulse grid. Pad cells (Date == "")
// align the first of the month to its weekday column.
type DayCell struct {
	Date   string // YYYY-MM-DD, empty for padding
	Bucket RatingBucket
	Locked bool
}

// MonthGrid lays out a month's entries as calendar cells, Sunday-first,
// with leading padding for the first weekday.
func MonthGrid(state *models.AppState, year int, month time.Month) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lastDay := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, 0, int(first.Weekday())+lastDay)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{})
	}
	for d := 1; d <= lastDay; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.Local).Format(constants.DateFormat)
		cell := DayCell{Date: date}
		if e, ok := state.Entries[date]; ok {
			cell.Bucket = BucketFor(e.Rating)
			cell.Locked = e.IsLocked
		}
		cells = append(cells, cell)
	}
	return cells
}
