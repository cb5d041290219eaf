package insights

import (
	"sort"
	"time"

	"github.com/jagruklabs/jagruk/internal/constants"
	"github.com/jagruklabs/jagruk/internal/models"
)

// Streak counts consecutive locked days walking backward from the most
// recent entry. An unlocked most-recent entry means zero; a calendar gap
// between entries ends the run.
func Streak(state *models.AppState) int {
	dates := make([]string, 0, len(state.Entries))
	for d := range state.Entries {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	count := 0
	var prev time.Time
	for _, d := range dates {
		if !state.Entries[d].IsLocked {
			break
		}
		day, err := time.Parse(constants.DateFormat, d)
		if err != nil {
			break
		}
		if count > 0 && !day.Equal(prev.AddDate(0, 0, -1)) {
			// Gap in the calendar run
			break
		}
		count++
		prev = day
	}
	return count
}

// EntryFor returns the stored entry for a date, or the lazily-created
// default. Read-side counterpart of the store's fetch-or-default rule; the
// state itself is not touched.
func EntryFor(state *models.AppState, date string) models.DailyEntry {
	if e, ok := state.Entries[date]; ok {
		return e
	}
	return models.DefaultEntry(date)
}

// PromptForDate rotates the daily journal prompts by day of month.
func PromptForDate(date string) string {
	day, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return constants.DailyPrompts[0]
	}
	return constants.DailyPrompts[day.Day()%len(constants.DailyPrompts)]
}

// TodoStats returns completed and total counts for an entry's objectives.
func TodoStats(entry models.DailyEntry) (done, total int) {
	for _, t := range entry.Todos {
		if t.Completed {
			done++
		}
	}
	return done, len(entry.Todos)
}
