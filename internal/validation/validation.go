// Package validation holds the presentation-boundary checks. Rejections
// happen here, before an action reaches the store; the store itself treats
// missing optional fields as benign defaults.
package validation

import (
	"fmt"
	"time"

	"github.com/jagruklabs/jagruk/internal/constants"
	"github.com/jagruklabs/jagruk/internal/models"
)

// Transaction rejects ledger entries with no category or a non-positive
// amount.
func Transaction(category string, amount float64) error {
	if category == "" {
		return fmt.Errorf("category must not be empty")
	}
	if amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// Rating checks the 1-10 discipline scale.
func Rating(rating int) error {
	if rating < constants.RatingMin || rating > constants.RatingMax {
		return fmt.Errorf("rating must be between %d and %d", constants.RatingMin, constants.RatingMax)
	}
	return nil
}

// LockDay requires a rating before a day can be sealed.
func LockDay(entry models.DailyEntry) error {
	if entry.IsLocked {
		return fmt.Errorf("day %s is already locked", entry.Date)
	}
	if entry.Rating == nil {
		return fmt.Errorf("seal your day with a discipline rating first")
	}
	return nil
}

// Onboarding checks the wizard's output before it is merged into the
// profile.
func Onboarding(name string, intents []string, morning, night string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(intents) == 0 {
		return fmt.Errorf("select at least one intent")
	}
	if err := ClockTime(morning); err != nil {
		return fmt.Errorf("morning reminder: %w", err)
	}
	if err := ClockTime(night); err != nil {
		return fmt.Errorf("night reminder: %w", err)
	}
	return nil
}

// NightReport requires a mood; everything else defaults.
func NightReport(reflection models.NightReflection) error {
	if reflection.Mood == "" {
		return fmt.Errorf("please select a mood")
	}
	if !models.ValidMood(reflection.Mood) {
		return fmt.Errorf("invalid mood: %s", reflection.Mood)
	}
	return nil
}

// Mood checks a mood tag against the enumerated set.
func Mood(m models.Mood) error {
	if !models.ValidMood(m) {
		return fmt.Errorf("invalid mood: %s (one of happy, good, neutral, sad, angry)", m)
	}
	return nil
}

// GoalType checks the vision tab enum.
func GoalType(t models.GoalType) error {
	if t != models.GoalCareer && t != models.GoalBucket {
		return fmt.Errorf("invalid goal type: %s (career or bucket)", t)
	}
	return nil
}

// ClockTime checks the HH:MM reminder format.
func ClockTime(s string) error {
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return fmt.Errorf("invalid time format: %q (expected HH:MM)", s)
	}
	return nil
}

// Date checks the YYYY-MM-DD format used for entry keys and back-dating.
func Date(s string) error {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid date format: %q (expected YYYY-MM-DD)", s)
	}
	return nil
}
