package store

import "github.com/jagruklabs/jagruk/internal/models"

// Typed patches replace the dynamic partial-object merges of a looser
// runtime: a nil field leaves the target untouched, a set field replaces
// the whole value.

// EntryPatch is a partial update for a DailyEntry.
type EntryPatch struct {
	Rating          *int
	Intention       *string
	Memory          *string
	Todos           *[]models.ToDoItem
	PromptAnswer    *string
	Mood            *models.Mood
	MoodReasons     *[]string
	SongTitle       *string
	SongArtist      *string
	SongReason      *string
	Gratitude       *string
	IsLocked        *bool
	NightReflection *models.NightReflection
}

func (p EntryPatch) apply(e *models.DailyEntry) {
	if p.Rating != nil {
		r := *p.Rating
		e.Rating = &r
	}
	if p.Intention != nil {
		e.Intention = *p.Intention
	}
	if p.Memory != nil {
		e.Memory = *p.Memory
	}
	if p.Todos != nil {
		e.Todos = append([]models.ToDoItem(nil), (*p.Todos)...)
	}
	if p.PromptAnswer != nil {
		e.PromptAnswer = *p.PromptAnswer
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.MoodReasons != nil {
		e.MoodReasons = append([]string(nil), (*p.MoodReasons)...)
	}
	if p.SongTitle != nil {
		e.SongTitle = *p.SongTitle
	}
	if p.SongArtist != nil {
		e.SongArtist = *p.SongArtist
	}
	if p.SongReason != nil {
		e.SongReason = *p.SongReason
	}
	if p.Gratitude != nil {
		e.Gratitude = *p.Gratitude
	}
	if p.IsLocked != nil {
		e.IsLocked = *p.IsLocked
	}
	if p.NightReflection != nil {
		nr := *p.NightReflection
		e.NightReflection = &nr
	}
}

// GoalPatch is a partial update for a Goal. Progress changes should go
// through AdjustGoalProgress, which also reconciles Completed.
type GoalPatch struct {
	Title    *string
	Reason   *string
	Action   *string
	Progress *int
	Type     *models.GoalType
}

func (p GoalPatch) apply(g *models.Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Reason != nil {
		g.Reason = *p.Reason
	}
	if p.Action != nil {
		g.Action = *p.Action
	}
	if p.Progress != nil {
		g.Progress = *p.Progress
	}
	if p.Type != nil {
		g.Type = *p.Type
	}
}

// ProfilePatch is a partial update for the UserProfile. IsOnboarded is
// deliberately absent: the flag only moves through CompleteOnboarding and
// ResetAll.
type ProfilePatch struct {
	Name            *string
	Intents         *[]string
	ReminderMorning *string
	ReminderNight   *string
	DailyBudget     *float64
	HabitLimits     *map[string]int
	HabitOverrides  *map[string]float64
}

func (p ProfilePatch) apply(u *models.UserProfile) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Intents != nil {
		u.Intents = append([]string(nil), (*p.Intents)...)
	}
	if p.ReminderMorning != nil {
		u.ReminderMorning = *p.ReminderMorning
	}
	if p.ReminderNight != nil {
		u.ReminderNight = *p.ReminderNight
	}
	if p.DailyBudget != nil {
		u.DailyBudget = *p.DailyBudget
	}
	if p.HabitLimits != nil {
		m := make(map[string]int, len(*p.HabitLimits))
		for k, v := range *p.HabitLimits {
			m[k] = v
		}
		u.HabitLimits = m
	}
	if p.HabitOverrides != nil {
		m := make(map[string]float64, len(*p.HabitOverrides))
		for k, v := range *p.HabitOverrides {
			m[k] = v
		}
		u.HabitOverrides = m
	}
}
