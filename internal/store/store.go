// Package store owns the application state. Every mutation goes through
// one of the enumerated operations below; each produces a complete new
// state with the touched branch replaced, so snapshots handed out earlier
// are never modified behind a reader's back.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jagruklabs/jagruk/internal/constants"
	"github.com/jagruklabs/jagruk/internal/logger"
	"github.com/jagruklabs/jagruk/internal/models"
	"github.com/jagruklabs/jagruk/internal/storage"
)

// ErrEntryLocked is returned when a mutation targets a sealed day.
var ErrEntryLocked = errors.New("entry is locked")

// Notifier receives transient user-facing confirmations. Fire-and-forget:
// the store does not wait for or act on the outcome.
type Notifier interface {
	Notify(text string)
}

// Observer is called with the new state after every mutation.
type Observer func(*models.AppState)

type Store struct {
	provider  storage.Provider
	state     *models.AppState
	observers []Observer
	notifier  Notifier
}

// Open loads the persisted state (or boots the default state on first
// run), normalizes CurrentDate to the real today, and registers the
// persistence observer. Save failures are logged and never surfaced.
func Open(provider storage.Provider) (*Store, error) {
	state, err := provider.Load()
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = models.NewAppState(time.Now())
	}
	state.CurrentDate = time.Now().Format(constants.DateFormat)

	s := New(state, provider)
	s.OnChange(func(st *models.AppState) {
		if err := provider.Save(st); err != nil {
			logger.Error("failed to persist state", "error", err)
		}
	})
	return s, nil
}

// New wraps an in-memory state without loading from the provider. Used by
// Open and by tests that construct states directly.
func New(state *models.AppState, provider storage.Provider) *Store {
	return &Store{
		provider: provider,
		state:    state,
	}
}

// OnChange registers an observer invoked after every mutation.
func (s *Store) OnChange(fn Observer) {
	s.observers = append(s.observers, fn)
}

// SetNotifier installs the confirmation hook.
func (s *Store) SetNotifier(n Notifier) {
	s.notifier = n
}

// State returns the current snapshot. Mutations replace the snapshot
// wholesale, so a caller holding this pointer observes a consistent state.
func (s *Store) State() *models.AppState {
	return s.state
}

func (s *Store) commit(next *models.AppState) {
	s.state = next
	for _, fn := range s.observers {
		fn(next)
	}
}

// UpdateEntry fetches-or-defaults the entry for date, applies the patch
// and writes the entry back. A locked entry rejects every further patch.
func (s *Store) UpdateEntry(date string, patch EntryPatch) error {
	existing, ok := s.state.Entries[date]
	if !ok {
		existing = models.DefaultEntry(date)
	}
	if existing.IsLocked {
		return ErrEntryLocked
	}

	next := s.state.Clone()
	entry, ok := next.Entries[date]
	if !ok {
		entry = models.DefaultEntry(date)
	}
	patch.apply(&entry)
	next.Entries[date] = entry
	s.commit(next)
	return nil
}

// TransactionDraft is a Transaction without identity; the store assigns
// ID and timestamp. Timestamp may be pre-set for back-dating.
type TransactionDraft struct {
	Amount       float64
	Type         models.TransactionType
	Category     string
	IsHabit      bool
	UnitQuantity float64
	UnitType     models.UnitType
	Mood         models.Mood
	Note         string
	Timestamp    string // optional RFC3339 override
}

// AddTransaction prepends a new transaction to the ledger and requests a
// transient confirmation toast. The ledger is append-only: there is no
// update or delete operation.
func (s *Store) AddTransaction(draft TransactionDraft) models.Transaction {
	ts := draft.Timestamp
	if ts == "" {
		ts = time.Now().Format(time.RFC3339)
	}
	txn := models.Transaction{
		ID:           uuid.New().String(),
		Timestamp:    ts,
		Amount:       draft.Amount,
		Type:         draft.Type,
		Category:     draft.Category,
		IsHabit:      draft.IsHabit,
		UnitQuantity: draft.UnitQuantity,
		UnitType:     draft.UnitType,
		Mood:         draft.Mood,
		Note:         draft.Note,
	}

	next := s.state.Clone()
	next.Transactions = append([]models.Transaction{txn}, next.Transactions...)
	s.commit(next)

	if s.notifier != nil {
		s.notifier.Notify(fmt.Sprintf("Logged: %s", txn.Category))
	}
	return txn
}

// AddictionLogDraft is an AddictionLog without identity.
type AddictionLogDraft struct {
	Type       string
	Trigger    string
	MoodBefore models.Mood
	MoodAfter  models.Mood
}

// AddAddictionLog prepends a craving record to the log.
func (s *Store) AddAddictionLog(draft AddictionLogDraft) models.AddictionLog {
	log := models.AddictionLog{
		ID:         uuid.New().String(),
		Timestamp:  time.Now().Format(time.RFC3339),
		Type:       draft.Type,
		Trigger:    draft.Trigger,
		MoodBefore: draft.MoodBefore,
		MoodAfter:  draft.MoodAfter,
	}

	next := s.state.Clone()
	next.AddictionLogs = append([]models.AddictionLog{log}, next.AddictionLogs...)
	s.commit(next)
	return log
}

// AddGoal appends a fully-formed goal; the caller assigns the identifier.
func (s *Store) AddGoal(goal models.Goal) {
	next := s.state.Clone()
	next.Goals = append(next.Goals, goal)
	s.commit(next)
}

// ToggleGoal flips Completed for the matching goal. It deliberately does
// not touch Progress; only AdjustGoalProgress reconciles the two, so a
// direct toggle can leave a completed goal below 100%.
func (s *Store) ToggleGoal(id string) error {
	next := s.state.Clone()
	for i := range next.Goals {
		if next.Goals[i].ID == id {
			next.Goals[i].Completed = !next.Goals[i].Completed
			s.commit(next)
			return nil
		}
	}
	return fmt.Errorf("goal not found: %s", id)
}

// AdjustGoalProgress clamps progress+delta to [0,100]. Reaching 100 marks
// the goal completed; dropping back below 100 reopens it. This is the only
// path that keeps Progress and Completed mutually consistent.
func (s *Store) AdjustGoalProgress(id string, delta int) error {
	next := s.state.Clone()
	for i := range next.Goals {
		if next.Goals[i].ID != id {
			continue
		}
		progress := next.Goals[i].Progress + delta
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
		next.Goals[i].Progress = progress
		if progress == 100 && !next.Goals[i].Completed {
			next.Goals[i].Completed = true
		}
		if progress < 100 && next.Goals[i].Completed {
			next.Goals[i].Completed = false
		}
		s.commit(next)
		return nil
	}
	return fmt.Errorf("goal not found: %s", id)
}

// UpdateGoal shallow-merges a patch over the matching goal.
func (s *Store) UpdateGoal(id string, patch GoalPatch) error {
	next := s.state.Clone()
	for i := range next.Goals {
		if next.Goals[i].ID == id {
			patch.apply(&next.Goals[i])
			s.commit(next)
			return nil
		}
	}
	return fmt.Errorf("goal not found: %s", id)
}

// UpdateProfile shallow-merges a patch over the profile.
func (s *Store) UpdateProfile(patch ProfilePatch) {
	next := s.state.Clone()
	patch.apply(&next.Profile)
	s.commit(next)
}

// CompleteOnboarding merges the collected profile fields and flips
// IsOnboarded. The flag transitions false->true exactly once; nothing but
// ResetAll ever clears it.
func (s *Store) CompleteOnboarding(name string, intents []string, morning, night string) {
	next := s.state.Clone()
	next.Profile.Name = name
	next.Profile.Intents = append([]string(nil), intents...)
	if morning != "" {
		next.Profile.ReminderMorning = morning
	}
	if night != "" {
		next.Profile.ReminderNight = night
	}
	next.Profile.IsOnboarded = true
	s.commit(next)
}

// ResetAll discards the in-memory state and the persisted copy. The
// observers are intentionally not fired: there is no new state to persist,
// and the presentation layer restarts from onboarding.
func (s *Store) ResetAll() error {
	if s.provider != nil {
		if err := s.provider.Reset(); err != nil {
			return err
		}
	}
	s.state = models.NewAppState(time.Now())
	return nil
}
