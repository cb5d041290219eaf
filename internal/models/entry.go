package models

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodGood    Mood = "good"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
)

// Moods lists every valid mood tag in display order.
var Moods = []Mood{MoodHappy, MoodGood, MoodNeutral, MoodSad, MoodAngry}

type TaskPriority string

const (
	PriorityCritical TaskPriority = "Critical"
	PriorityHigh     TaskPriority = "High"
	PriorityMedium   TaskPriority = "Medium"
	PriorityLow      TaskPriority = "Low"
)

// ToDoItem belongs to exactly one DailyEntry. Ordering is significant:
// the first item in an entry's list is the day's primary objective.
type ToDoItem struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
	Priority  TaskPriority `json:"priority,omitempty"`
	Category  string       `json:"category,omitempty"`
}

// NightReflection is the structured end-of-day report attached when a day
// is sealed.
type NightReflection struct {
	Mood              Mood     `json:"mood"`
	FollowedFocus     bool     `json:"followed_focus"`
	Win               string   `json:"win"`
	Regret            string   `json:"regret"`
	Gratitude         string   `json:"gratitude"`
	SmokedToday       *bool    `json:"smoked_today,omitempty"`
	ImpulseBuy        *bool    `json:"impulse_buy,omitempty"`
	RegretSpendAmount *float64 `json:"regret_spend_amount,omitempty"`
	ResistedCraving   *bool    `json:"resisted_craving,omitempty"`
}

// DailyEntry is the per-calendar-day journal record, keyed by date string.
// Entries are created lazily on first access and never deleted
// individually; once IsLocked is set the day is considered final.
type DailyEntry struct {
	Date   string `json:"date"`             // YYYY-MM-DD format
	Rating *int   `json:"rating,omitempty"` // 1-10 scale

	Intention    string     `json:"intention,omitempty"`
	Memory       string     `json:"memory,omitempty"`
	Todos        []ToDoItem `json:"todos"`
	PromptAnswer string     `json:"prompt_answer,omitempty"`

	Mood        Mood     `json:"mood,omitempty"`
	MoodReasons []string `json:"mood_reasons,omitempty"`
	SongTitle   string   `json:"song_title,omitempty"`
	SongArtist  string   `json:"song_artist,omitempty"`
	SongReason  string   `json:"song_reason,omitempty"`

	Gratitude       string           `json:"gratitude,omitempty"`
	IsLocked        bool             `json:"is_locked"`
	NightReflection *NightReflection `json:"night_reflection,omitempty"`
}

// ValidMood reports whether m is one of the enumerated mood tags.
func ValidMood(m Mood) bool {
	for _, v := range Moods {
		if v == m {
			return true
		}
	}
	return false
}
