package constants

const (
	AppName           = "jagruk"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/jagruk/jagruk.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock format used for reminder times (HH:MM)
	TimeFormat = "15:04"

	// Profile defaults
	DefaultDailyBudget     = 500.0
	DefaultReminderMorning = "07:00"
	DefaultReminderNight   = "22:00"

	// Rating scale for daily discipline entries
	RatingMin     = 1
	RatingMax     = 10
	RatingDefault = 5

	// Leak-spend threshold that triggers the redirection advisory
	RedirectionThreshold = 500.0

	// Weekly spend chart: floor for the series maximum so a near-empty
	// week does not produce a degenerate bar scale
	ChartScaleFloor = 100.0

	// Ledger grouping window
	LedgerWindow = 30

	// Toast auto-dismiss duration in milliseconds
	ToastDurationMs = 3000
)

// IntentOptions are the self-improvement intents offered during onboarding.
var IntentOptions = []string{
	"Discipline",
	"Career",
	"Money",
	"Health",
	"Mindfulness",
}

// AddictionTriggers are the selectable triggers for a craving log.
var AddictionTriggers = []string{
	"Stress",
	"Boredom",
	"Social",
	"Habit",
	"Craving",
}

// DailyPrompts rotate by day of month on the journal screen.
var DailyPrompts = []string{
	"Where did your time leak today?",
	"What is the one thing you are avoiding?",
	"Who did you help today?",
	"What would you do differently if you could restart today?",
	"What gave you energy today?",
	"What drained your energy today?",
}

// DefaultHabitLimits seed the per-day occurrence caps for tracked habits.
var DefaultHabitLimits = map[string]int{
	"Cigarettes": 2,
	"Junk Food":  1,
}
