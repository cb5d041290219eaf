package validation

import (
	"testing"

	"github.com/jagruklabs/jagruk/internal/models"
)

func TestTransaction(t *testing.T) {
	cases := []struct {
		name     string
		category string
		amount   float64
		wantErr  bool
	}{
		{"valid", "Food", 100, false},
		{"empty category", "", 100, true},
		{"zero amount", "Food", 0, true},
		{"negative amount", "Food", -5, true},
		{"fractional amount", "Coffee", 0.5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Transaction(tc.category, tc.amount)
			if (err != nil) != tc.wantErr {
				t.Errorf("Transaction(%q, %v) error = %v, wantErr %v", tc.category, tc.amount, err, tc.wantErr)
			}
		})
	}
}

func TestRating(t *testing.T) {
	cases := []struct {
		rating  int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{5, false},
		{10, false},
		{11, true},
		{-3, true},
	}

	for _, tc := range cases {
		err := Rating(tc.rating)
		if (err != nil) != tc.wantErr {
			t.Errorf("Rating(%d) error = %v, wantErr %v", tc.rating, err, tc.wantErr)
		}
	}
}

func TestLockDay(t *testing.T) {
	rating := 7

	unrated := models.DailyEntry{Date: "2026-03-01"}
	if err := LockDay(unrated); err == nil {
		t.Error("unrated day must not be sealable")
	}

	rated := models.DailyEntry{Date: "2026-03-01", Rating: &rating}
	if err := LockDay(rated); err != nil {
		t.Errorf("rated day should be sealable: %v", err)
	}

	sealed := models.DailyEntry{Date: "2026-03-01", Rating: &rating, IsLocked: true}
	if err := LockDay(sealed); err == nil {
		t.Error("sealed day must not be sealable again")
	}
}

func TestOnboarding(t *testing.T) {
	cases := []struct {
		name    string
		person  string
		intents []string
		morning string
		night   string
		wantErr bool
	}{
		{"valid", "Asha", []string{"Discipline"}, "07:00", "22:00", false},
		{"empty name", "", []string{"Discipline"}, "07:00", "22:00", true},
		{"no intents", "Asha", nil, "07:00", "22:00", true},
		{"bad morning time", "Asha", []string{"Money"}, "7am", "22:00", true},
		{"bad night time", "Asha", []string{"Money"}, "07:00", "25:61", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Onboarding(tc.person, tc.intents, tc.morning, tc.night)
			if (err != nil) != tc.wantErr {
				t.Errorf("Onboarding error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNightReport(t *testing.T) {
	if err := NightReport(models.NightReflection{}); err == nil {
		t.Error("missing mood must be rejected")
	}
	if err := NightReport(models.NightReflection{Mood: "ecstatic"}); err == nil {
		t.Error("unknown mood must be rejected")
	}
	if err := NightReport(models.NightReflection{Mood: models.MoodGood}); err != nil {
		t.Errorf("valid report rejected: %v", err)
	}
}

func TestMood(t *testing.T) {
	for _, m := range models.Moods {
		if err := Mood(m); err != nil {
			t.Errorf("Mood(%q) rejected a valid mood: %v", m, err)
		}
	}
	if err := Mood("meh"); err == nil {
		t.Error("unknown mood must be rejected")
	}
}

func TestGoalType(t *testing.T) {
	if err := GoalType(models.GoalCareer); err != nil {
		t.Errorf("career rejected: %v", err)
	}
	if err := GoalType(models.GoalBucket); err != nil {
		t.Errorf("bucket rejected: %v", err)
	}
	if err := GoalType("fitness"); err == nil {
		t.Error("unknown type must be rejected")
	}
}

func TestClockTimeAndDate(t *testing.T) {
	if err := ClockTime("07:30"); err != nil {
		t.Errorf("ClockTime valid input rejected: %v", err)
	}
	if err := ClockTime("7:30pm"); err == nil {
		t.Error("ClockTime must reject non HH:MM input")
	}
	if err := Date("2026-03-01"); err != nil {
		t.Errorf("Date valid input rejected: %v", err)
	}
	if err := Date("03/01/2026"); err == nil {
		t.Error("Date must reject non ISO input")
	}
}
