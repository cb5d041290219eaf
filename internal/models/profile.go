package models

// UserProfile holds the single installation's identity and preferences.
// IsOnboarded transitions false->true exactly once; only a full data reset
// can produce a profile with the flag cleared again.
type UserProfile struct {
	Name            string             `json:"name"`
	StartDate       string             `json:"start_date"` // RFC3339 timestamp
	Intents         []string           `json:"intents"`
	ReminderMorning string             `json:"reminder_morning"` // HH:MM format
	ReminderNight   string             `json:"reminder_night"`   // HH:MM format
	IsOnboarded     bool               `json:"is_onboarded"`
	DailyBudget     float64            `json:"daily_budget"`
	HabitLimits     map[string]int     `json:"habit_limits,omitempty"`    // habit name -> per-day cap
	HabitOverrides  map[string]float64 `json:"habit_overrides,omitempty"` // preset id -> unit price
}
