package store

import (
	"errors"
	"testing"
	"time"

	"github.com/jagruklabs/jagruk/internal/models"
)

// memProvider is an in-memory Provider for store tests.
type memProvider struct {
	saved *models.AppState
	saves int
}

func (p *memProvider) Init() error  { return nil }
func (p *memProvider) Close() error { return nil }
func (p *memProvider) Load() (*models.AppState, error) {
	return p.saved, nil
}
func (p *memProvider) Save(state *models.AppState) error {
	p.saved = state
	p.saves++
	return nil
}
func (p *memProvider) Reset() error {
	p.saved = nil
	return nil
}
func (p *memProvider) DataPath() string { return "(memory)" }

func newTestStore(t *testing.T) (*Store, *memProvider) {
	t.Helper()
	p := &memProvider{}
	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s, p
}

func TestUpdateEntry_CreatesDefaultWhenAbsent(t *testing.T) {
	s, _ := newTestStore(t)
	intention := "deep work"

	if err := s.UpdateEntry("2026-03-01", EntryPatch{Intention: &intention}); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	entry, ok := s.State().Entries["2026-03-01"]
	if !ok {
		t.Fatal("expected entry to be created")
	}
	if entry.Intention != "deep work" {
		t.Errorf("Intention = %q, want %q", entry.Intention, "deep work")
	}
	if entry.Rating == nil || *entry.Rating != 5 {
		t.Errorf("expected default rating 5, got %v", entry.Rating)
	}
	if entry.IsLocked {
		t.Error("new entry must start unlocked")
	}
}

func TestUpdateEntry_MergePreservesUntouchedFields(t *testing.T) {
	s, _ := newTestStore(t)
	intention := "ship the report"
	rating := 8

	if err := s.UpdateEntry("2026-03-01", EntryPatch{Intention: &intention}); err != nil {
		t.Fatalf("first patch failed: %v", err)
	}
	if err := s.UpdateEntry("2026-03-01", EntryPatch{Rating: &rating}); err != nil {
		t.Fatalf("second patch failed: %v", err)
	}

	entry := s.State().Entries["2026-03-01"]
	if entry.Intention != "ship the report" {
		t.Errorf("Intention lost on merge: %q", entry.Intention)
	}
	if entry.Rating == nil || *entry.Rating != 8 {
		t.Errorf("Rating = %v, want 8", entry.Rating)
	}
}

func TestUpdateEntry_LockedEntryRejectsPatches(t *testing.T) {
	s, _ := newTestStore(t)
	locked := true
	rating := 9

	if err := s.UpdateEntry("2026-03-01", EntryPatch{IsLocked: &locked}); err != nil {
		t.Fatalf("lock failed: %v", err)
	}
	err := s.UpdateEntry("2026-03-01", EntryPatch{Rating: &rating})
	if !errors.Is(err, ErrEntryLocked) {
		t.Fatalf("expected ErrEntryLocked, got %v", err)
	}
	entry := s.State().Entries["2026-03-01"]
	if entry.Rating != nil && *entry.Rating == 9 {
		t.Error("rejected patch must not mutate the entry")
	}
}

func TestUpdateEntry_SnapshotsAreImmutable(t *testing.T) {
	s, _ := newTestStore(t)
	intention := "before"

	if err := s.UpdateEntry("2026-03-01", EntryPatch{Intention: &intention}); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	before := s.State()

	after := "after"
	if err := s.UpdateEntry("2026-03-01", EntryPatch{Intention: &after}); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	if before.Entries["2026-03-01"].Intention != "before" {
		t.Error("earlier snapshot was mutated by a later commit")
	}
}

func TestAddTransaction_PrependsAndAssignsIdentity(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.AddTransaction(TransactionDraft{Amount: 50, Type: models.TransactionExpense, Category: "Food"})
	second := s.AddTransaction(TransactionDraft{Amount: 20, Type: models.TransactionExpense, Category: "Coffee"})

	txns := s.State().Transactions
	if len(txns) != 2 {
		t.Fatalf("len(Transactions) = %d, want 2", len(txns))
	}
	if txns[0].ID != second.ID {
		t.Error("newest transaction must be first")
	}
	if first.ID == second.ID {
		t.Error("transaction ids must be unique")
	}
	if _, err := time.Parse(time.RFC3339, first.Timestamp); err != nil {
		t.Errorf("timestamp not RFC3339: %q", first.Timestamp)
	}
}

func TestAddTransaction_IDUniqueness(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		txn := s.AddTransaction(TransactionDraft{Amount: 1, Type: models.TransactionExpense, Category: "x"})
		if seen[txn.ID] {
			t.Fatalf("duplicate transaction id after %d inserts", i)
		}
		seen[txn.ID] = true
	}
}

func TestAddTransaction_TimestampOverride(t *testing.T) {
	s, _ := newTestStore(t)

	txn := s.AddTransaction(TransactionDraft{
		Amount:    10,
		Type:      models.TransactionExpense,
		Category:  "Food",
		Timestamp: "2026-02-14T12:00:00Z",
	})
	if txn.Timestamp != "2026-02-14T12:00:00Z" {
		t.Errorf("Timestamp = %q, want the override", txn.Timestamp)
	}
}

func TestAdjustGoalProgress_ClampsAndReconciles(t *testing.T) {
	cases := []struct {
		name          string
		start         int
		completed     bool
		delta         int
		wantProgress  int
		wantCompleted bool
	}{
		{"bump within range", 40, false, 10, 50, false},
		{"clamp at hundred", 95, false, 10, 100, true},
		{"clamp at zero", 5, false, -10, 0, false},
		{"reopen below hundred", 100, true, -10, 90, false},
		{"no-op delta keeps completed", 100, true, 0, 100, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestStore(t)
			s.AddGoal(models.Goal{ID: "g1", Title: "Run a marathon", Progress: tc.start, Completed: tc.completed, Type: models.GoalBucket})

			if err := s.AdjustGoalProgress("g1", tc.delta); err != nil {
				t.Fatalf("AdjustGoalProgress failed: %v", err)
			}
			g := s.State().Goals[0]
			if g.Progress != tc.wantProgress {
				t.Errorf("Progress = %d, want %d", g.Progress, tc.wantProgress)
			}
			if g.Completed != tc.wantCompleted {
				t.Errorf("Completed = %v, want %v", g.Completed, tc.wantCompleted)
			}
		})
	}
}

func TestToggleGoal_DoesNotTouchProgress(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddGoal(models.Goal{ID: "g1", Title: "Read 20 books", Progress: 30, Type: models.GoalCareer})

	if err := s.ToggleGoal("g1"); err != nil {
		t.Fatalf("ToggleGoal failed: %v", err)
	}
	g := s.State().Goals[0]
	if !g.Completed {
		t.Error("expected goal to be completed")
	}
	if g.Progress != 30 {
		t.Errorf("Progress = %d, toggle must not change it", g.Progress)
	}

	if err := s.ToggleGoal("missing"); err == nil {
		t.Error("expected error for unknown goal id")
	}
}

func TestUpdateGoal_PartialPatch(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddGoal(models.Goal{ID: "g1", Title: "Old", Reason: "why", Type: models.GoalCareer})

	title := "New"
	if err := s.UpdateGoal("g1", GoalPatch{Title: &title}); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}
	g := s.State().Goals[0]
	if g.Title != "New" || g.Reason != "why" {
		t.Errorf("patch result = %+v", g)
	}
}

func TestCompleteOnboarding_SetsProfile(t *testing.T) {
	s, _ := newTestStore(t)

	s.CompleteOnboarding("Asha", []string{"Discipline", "Money"}, "06:30", "21:30")

	p := s.State().Profile
	if !p.IsOnboarded {
		t.Error("IsOnboarded must be true")
	}
	if p.Name != "Asha" || len(p.Intents) != 2 {
		t.Errorf("profile = %+v", p)
	}
	if p.ReminderMorning != "06:30" || p.ReminderNight != "21:30" {
		t.Errorf("reminders = %s/%s", p.ReminderMorning, p.ReminderNight)
	}
}

func TestObservers_FireOnEveryMutation(t *testing.T) {
	s, p := newTestStore(t)

	calls := 0
	s.OnChange(func(*models.AppState) { calls++ })

	rating := 7
	if err := s.UpdateEntry("2026-03-01", EntryPatch{Rating: &rating}); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	s.AddTransaction(TransactionDraft{Amount: 10, Type: models.TransactionExpense, Category: "Food"})

	if calls != 2 {
		t.Errorf("observer calls = %d, want 2", calls)
	}
	if p.saves != 2 {
		t.Errorf("provider saves = %d, want 2", p.saves)
	}
}

func TestNotifier_ReceivesTransactionConfirmation(t *testing.T) {
	s, _ := newTestStore(t)

	var got string
	s.SetNotifier(notifierFunc(func(text string) { got = text }))

	s.AddTransaction(TransactionDraft{Amount: 20, Type: models.TransactionExpense, Category: "Coffee"})
	if got == "" {
		t.Fatal("expected a confirmation notification")
	}
}

type notifierFunc func(string)

func (f notifierFunc) Notify(text string) { f(text) }

func TestResetAll_ClearsStateAndStorage(t *testing.T) {
	s, p := newTestStore(t)
	s.CompleteOnboarding("Asha", []string{"Health"}, "07:00", "22:00")
	s.AddTransaction(TransactionDraft{Amount: 10, Type: models.TransactionExpense, Category: "Food"})

	if err := s.ResetAll(); err != nil {
		t.Fatalf("ResetAll failed: %v", err)
	}

	state := s.State()
	if state.Profile.IsOnboarded {
		t.Error("profile must be reset")
	}
	if len(state.Transactions) != 0 || len(state.Entries) != 0 {
		t.Error("collections must be empty after reset")
	}
	if p.saved != nil {
		t.Error("provider must be wiped")
	}
}

func TestAddAddictionLog_Prepends(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddAddictionLog(AddictionLogDraft{Type: "Cigarettes", Trigger: "Stress", MoodBefore: models.MoodSad})
	second := s.AddAddictionLog(AddictionLogDraft{Type: "Coffee", Trigger: "Habit"})

	logs := s.State().AddictionLogs
	if len(logs) != 2 {
		t.Fatalf("len(AddictionLogs) = %d, want 2", len(logs))
	}
	if logs[0].ID != second.ID {
		t.Error("newest log must be first")
	}
}
