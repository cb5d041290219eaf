package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/jagruklabs/jagruk/internal/models"
)

// sampleState builds a state exercising every persisted field shape:
// optional pointers, nested JSON collections and the singleton profile.
func sampleState() *models.AppState {
	state := models.NewAppState(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	state.Profile.Name = "Asha"
	state.Profile.Intents = []string{"Discipline", "Money"}
	state.Profile.IsOnboarded = true
	state.Profile.DailyBudget = 650
	state.Profile.HabitOverrides = map[string]float64{"qa1": 20}

	rating := 7
	smoked := false
	entry := models.DefaultEntry("2026-03-01")
	entry.Rating = &rating
	entry.Intention = "deep work"
	entry.Todos = []models.ToDoItem{
		{ID: "td1", Text: "Write report", Completed: true, Priority: models.PriorityHigh},
		{ID: "td2", Text: "Walk 5k", Category: "Health"},
	}
	entry.Mood = models.MoodGood
	entry.MoodReasons = []string{"slept well"}
	entry.IsLocked = true
	entry.NightReflection = &models.NightReflection{
		Mood:          models.MoodGood,
		FollowedFocus: true,
		Win:           "shipped it",
		SmokedToday:   &smoked,
	}
	state.Entries["2026-03-01"] = entry
	state.Entries["2026-03-02"] = models.DefaultEntry("2026-03-02")

	state.Transactions = []models.Transaction{
		{ID: "t2", Timestamp: "2026-03-01T14:00:00Z", Amount: 36, Type: models.TransactionExpense,
			Category: "Cigarettes", IsHabit: true, UnitQuantity: 2, UnitType: models.UnitStick},
		{ID: "t1", Timestamp: "2026-03-01T09:00:00Z", Amount: 5000, Type: models.TransactionIncome,
			Category: "Salary", Note: "March"},
	}
	state.AddictionLogs = []models.AddictionLog{
		{ID: "a1", Timestamp: "2026-03-01T15:00:00Z", Type: "Cigarettes", Trigger: "Stress",
			MoodBefore: models.MoodSad, MoodAfter: models.MoodNeutral},
	}
	state.Goals = []models.Goal{
		{ID: "g1", Title: "Run a marathon", Reason: "health", Action: "train 3x/week",
			Progress: 40, Type: models.GoalBucket},
		{ID: "g2", Title: "Senior role", Progress: 100, Type: models.GoalCareer, Completed: true},
	}
	return state
}

func providers(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "jagruk.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "jagruk.db")),
	}
}

func TestProvider_FreshInstallLoadsNil(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			state, err := p.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if state != nil {
				t.Error("fresh install must load nil state")
			}
		})
	}
}

func TestProvider_RoundTrip(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer p.Close()
			want := sampleState()

			if err := p.Save(want); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := p.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got == nil {
				t.Fatal("Load returned nil after Save")
			}

			if !reflect.DeepEqual(got.Profile, want.Profile) {
				t.Errorf("Profile mismatch:\n got %+v\nwant %+v", got.Profile, want.Profile)
			}
			if !reflect.DeepEqual(got.Entries, want.Entries) {
				t.Errorf("Entries mismatch:\n got %+v\nwant %+v", got.Entries, want.Entries)
			}
			if !reflect.DeepEqual(got.Transactions, want.Transactions) {
				t.Errorf("Transactions mismatch:\n got %+v\nwant %+v", got.Transactions, want.Transactions)
			}
			if !reflect.DeepEqual(got.AddictionLogs, want.AddictionLogs) {
				t.Errorf("AddictionLogs mismatch:\n got %+v\nwant %+v", got.AddictionLogs, want.AddictionLogs)
			}
			if !reflect.DeepEqual(got.Goals, want.Goals) {
				t.Errorf("Goals mismatch:\n got %+v\nwant %+v", got.Goals, want.Goals)
			}
			if got.CurrentDate != want.CurrentDate {
				t.Errorf("CurrentDate = %q, want %q", got.CurrentDate, want.CurrentDate)
			}
		})
	}
}

func TestProvider_SaveOverwritesPreviousState(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer p.Close()

			if err := p.Save(sampleState()); err != nil {
				t.Fatalf("first Save failed: %v", err)
			}
			next := models.NewAppState(time.Now())
			next.Profile.Name = "Ravi"
			if err := p.Save(next); err != nil {
				t.Fatalf("second Save failed: %v", err)
			}

			got, err := p.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got.Profile.Name != "Ravi" {
				t.Errorf("Profile.Name = %q, want Ravi", got.Profile.Name)
			}
			if len(got.Transactions) != 0 {
				t.Errorf("stale transactions survived the overwrite: %d", len(got.Transactions))
			}
		})
	}
}

func TestProvider_InitRefusesExistingStorage(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer p.Close()

			if err := p.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			if err := p.Init(); err == nil {
				t.Error("second Init must fail")
			}
		})
	}
}

func TestProvider_ResetRemovesData(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			defer p.Close()

			if err := p.Save(sampleState()); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if err := p.Reset(); err != nil {
				t.Fatalf("Reset failed: %v", err)
			}
			state, err := p.Load()
			if err != nil {
				t.Fatalf("Load after Reset failed: %v", err)
			}
			if state != nil {
				t.Error("Load after Reset must report a fresh install")
			}
		})
	}
}

func TestJSONStore_ToleratesMissingCollections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jagruk.json")
	store := NewJSONStore(path)

	// A hand-edited file might omit empty collections entirely.
	if err := os.WriteFile(path, []byte(`{"profile":{"name":"Asha"},"current_date":"2026-03-01"}`), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state.Entries == nil || state.Transactions == nil || state.AddictionLogs == nil || state.Goals == nil {
		t.Error("collections must be initialized on load")
	}
	if state.Profile.Name != "Asha" {
		t.Errorf("Profile.Name = %q", state.Profile.Name)
	}
}
