package models

import (
	"time"

	"github.com/jagruklabs/jagruk/internal/constants"
)

// AppState is the single owned root aggregate. All nested collections are
// exclusively owned by it; there is exactly one root per installation.
//
// CurrentDate always reflects the real device-local date at the time the
// state was last loaded into memory. It is recomputed on every load and is
// not trustworthy as historical data.
type AppState struct {
	Profile       UserProfile           `json:"profile"`
	Entries       map[string]DailyEntry `json:"entries"` // keyed by YYYY-MM-DD
	Transactions  []Transaction         `json:"transactions"`
	AddictionLogs []AddictionLog        `json:"addiction_logs"`
	Goals         []Goal                `json:"goals"`
	CurrentDate   string                `json:"current_date"` // YYYY-MM-DD format
}

// NewAppState returns the default state for a fresh installation.
func NewAppState(now time.Time) *AppState {
	return &AppState{
		Profile: UserProfile{
			StartDate:       now.Format(time.RFC3339),
			Intents:         []string{},
			ReminderMorning: constants.DefaultReminderMorning,
			ReminderNight:   constants.DefaultReminderNight,
			IsOnboarded:     false,
			DailyBudget:     constants.DefaultDailyBudget,
			HabitLimits:     cloneIntMap(constants.DefaultHabitLimits),
			HabitOverrides:  map[string]float64{},
		},
		Entries:       map[string]DailyEntry{},
		Transactions:  []Transaction{},
		AddictionLogs: []AddictionLog{},
		Goals:         []Goal{},
		CurrentDate:   now.Format(constants.DateFormat),
	}
}

// DefaultEntry returns the lazily-created entry for a date: empty todos,
// mid-scale rating, unlocked.
func DefaultEntry(date string) DailyEntry {
	rating := constants.RatingDefault
	return DailyEntry{
		Date:   date,
		Rating: &rating,
		Todos:  []ToDoItem{},
	}
}

// Clone returns a structural deep copy of the state. Mutation operations
// clone first and replace the touched branch so that previously handed-out
// snapshots stay immutable.
func (s *AppState) Clone() *AppState {
	c := &AppState{
		Profile:       s.Profile,
		Entries:       make(map[string]DailyEntry, len(s.Entries)),
		Transactions:  make([]Transaction, len(s.Transactions)),
		AddictionLogs: make([]AddictionLog, len(s.AddictionLogs)),
		Goals:         make([]Goal, len(s.Goals)),
		CurrentDate:   s.CurrentDate,
	}

	c.Profile.Intents = append([]string(nil), s.Profile.Intents...)
	c.Profile.HabitLimits = cloneIntMap(s.Profile.HabitLimits)
	c.Profile.HabitOverrides = cloneFloatMap(s.Profile.HabitOverrides)

	for date, e := range s.Entries {
		c.Entries[date] = e.clone()
	}
	copy(c.Transactions, s.Transactions)
	copy(c.AddictionLogs, s.AddictionLogs)
	copy(c.Goals, s.Goals)

	return c
}

func (e DailyEntry) clone() DailyEntry {
	c := e
	if e.Rating != nil {
		r := *e.Rating
		c.Rating = &r
	}
	c.Todos = append([]ToDoItem(nil), e.Todos...)
	c.MoodReasons = append([]string(nil), e.MoodReasons...)
	if e.NightReflection != nil {
		nr := e.NightReflection.clone()
		c.NightReflection = &nr
	}
	return c
}

func (n NightReflection) clone() NightReflection {
	c := n
	c.SmokedToday = cloneBool(n.SmokedToday)
	c.ImpulseBuy = cloneBool(n.ImpulseBuy)
	c.ResistedCraving = cloneBool(n.ResistedCraving)
	if n.RegretSpendAmount != nil {
		v := *n.RegretSpendAmount
		c.RegretSpendAmount = &v
	}
	return c
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	c := make(map[string]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneFloatMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	c := make(map[string]float64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
