package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jagruklabs/jagruk/internal/models"
)

// SQLiteStore persists the AppState across normalized tables. Nested
// collections (todos, intents, habit maps, night reflection) are stored as
// JSON columns; the dataset is hundreds of rows, so Save replaces the
// whole state inside a single transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS profile (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	intents TEXT NOT NULL DEFAULT '[]',
	reminder_morning TEXT NOT NULL DEFAULT '07:00',
	reminder_night TEXT NOT NULL DEFAULT '22:00',
	is_onboarded INTEGER NOT NULL DEFAULT 0,
	daily_budget REAL NOT NULL DEFAULT 500,
	habit_limits TEXT NOT NULL DEFAULT '{}',
	habit_overrides TEXT NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS entries (
	date TEXT PRIMARY KEY,
	rating INTEGER,
	intention TEXT NOT NULL DEFAULT '',
	memory TEXT NOT NULL DEFAULT '',
	todos TEXT NOT NULL DEFAULT '[]',
	prompt_answer TEXT NOT NULL DEFAULT '',
	mood TEXT NOT NULL DEFAULT '',
	mood_reasons TEXT NOT NULL DEFAULT '[]',
	song_title TEXT NOT NULL DEFAULT '',
	song_artist TEXT NOT NULL DEFAULT '',
	song_reason TEXT NOT NULL DEFAULT '',
	gratitude TEXT NOT NULL DEFAULT '',
	is_locked INTEGER NOT NULL DEFAULT 0,
	night_reflection TEXT
);

CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	timestamp TEXT NOT NULL,
	amount REAL NOT NULL,
	type TEXT NOT NULL,
	category TEXT NOT NULL,
	is_habit INTEGER NOT NULL DEFAULT 0,
	unit_quantity REAL NOT NULL DEFAULT 0,
	unit_type TEXT NOT NULL DEFAULT '',
	mood TEXT NOT NULL DEFAULT '',
	note TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS addiction_logs (
	id TEXT PRIMARY KEY,
	timestamp TEXT NOT NULL,
	type TEXT NOT NULL,
	trigger_tag TEXT NOT NULL DEFAULT '',
	mood_before TEXT NOT NULL DEFAULT '',
	mood_after TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	action TEXT NOT NULL DEFAULT '',
	progress INTEGER NOT NULL DEFAULT 0,
	type TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.Save(models.NewAppState(time.Now()))
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (*models.AppState, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		// Fresh installation
		return nil, nil
	}

	if err := s.open(); err != nil {
		return nil, err
	}

	state := &models.AppState{
		Entries:       map[string]models.DailyEntry{},
		Transactions:  []models.Transaction{},
		AddictionLogs: []models.AddictionLog{},
		Goals:         []models.Goal{},
	}

	if err := s.loadProfile(state); err != nil {
		return nil, err
	}
	if err := s.loadEntries(state); err != nil {
		return nil, err
	}
	if err := s.loadTransactions(state); err != nil {
		return nil, err
	}
	if err := s.loadAddictionLogs(state); err != nil {
		return nil, err
	}
	if err := s.loadGoals(state); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'current_date'`)
	if err := row.Scan(&state.CurrentDate); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to load current date: %w", err)
	}

	return state, nil
}

func (s *SQLiteStore) loadProfile(state *models.AppState) error {
	var intents, limits, overrides string
	row := s.db.QueryRow(`SELECT name, start_date, intents, reminder_morning, reminder_night,
		is_onboarded, daily_budget, habit_limits, habit_overrides FROM profile WHERE id = 1`)
	err := row.Scan(&state.Profile.Name, &state.Profile.StartDate, &intents,
		&state.Profile.ReminderMorning, &state.Profile.ReminderNight,
		&state.Profile.IsOnboarded, &state.Profile.DailyBudget, &limits, &overrides)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if err := json.Unmarshal([]byte(intents), &state.Profile.Intents); err != nil {
		return fmt.Errorf("failed to parse profile intents: %w", err)
	}
	if err := json.Unmarshal([]byte(limits), &state.Profile.HabitLimits); err != nil {
		return fmt.Errorf("failed to parse habit limits: %w", err)
	}
	if err := json.Unmarshal([]byte(overrides), &state.Profile.HabitOverrides); err != nil {
		return fmt.Errorf("failed to parse habit overrides: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadEntries(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT date, rating, intention, memory, todos, prompt_answer,
		mood, mood_reasons, song_title, song_artist, song_reason, gratitude, is_locked,
		night_reflection FROM entries`)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.DailyEntry
		var rating sql.NullInt64
		var todos, reasons string
		var reflection sql.NullString
		if err := rows.Scan(&e.Date, &rating, &e.Intention, &e.Memory, &todos,
			&e.PromptAnswer, &e.Mood, &reasons, &e.SongTitle, &e.SongArtist,
			&e.SongReason, &e.Gratitude, &e.IsLocked, &reflection); err != nil {
			return fmt.Errorf("failed to scan entry: %w", err)
		}
		if rating.Valid {
			r := int(rating.Int64)
			e.Rating = &r
		}
		if err := json.Unmarshal([]byte(todos), &e.Todos); err != nil {
			return fmt.Errorf("failed to parse todos for %s: %w", e.Date, err)
		}
		if err := json.Unmarshal([]byte(reasons), &e.MoodReasons); err != nil {
			return fmt.Errorf("failed to parse mood reasons for %s: %w", e.Date, err)
		}
		if reflection.Valid && reflection.String != "" {
			nr := &models.NightReflection{}
			if err := json.Unmarshal([]byte(reflection.String), nr); err != nil {
				return fmt.Errorf("failed to parse night reflection for %s: %w", e.Date, err)
			}
			e.NightReflection = nr
		}
		state.Entries[e.Date] = e
	}
	return rows.Err()
}

func (s *SQLiteStore) loadTransactions(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT id, timestamp, amount, type, category, is_habit,
		unit_quantity, unit_type, mood, note FROM transactions ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Timestamp, &t.Amount, &t.Type, &t.Category,
			&t.IsHabit, &t.UnitQuantity, &t.UnitType, &t.Mood, &t.Note); err != nil {
			return fmt.Errorf("failed to scan transaction: %w", err)
		}
		state.Transactions = append(state.Transactions, t)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadAddictionLogs(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT id, timestamp, type, trigger_tag, mood_before, mood_after
		FROM addiction_logs ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load addiction logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.AddictionLog
		if err := rows.Scan(&l.ID, &l.Timestamp, &l.Type, &l.Trigger, &l.MoodBefore, &l.MoodAfter); err != nil {
			return fmt.Errorf("failed to scan addiction log: %w", err)
		}
		state.AddictionLogs = append(state.AddictionLogs, l)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadGoals(state *models.AppState) error {
	rows, err := s.db.Query(`SELECT id, title, reason, action, progress, type, completed
		FROM goals ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.Title, &g.Reason, &g.Action, &g.Progress, &g.Type, &g.Completed); err != nil {
			return fmt.Errorf("failed to scan goal: %w", err)
		}
		state.Goals = append(state.Goals, g)
	}
	return rows.Err()
}

func (s *SQLiteStore) Save(state *models.AppState) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"profile", "entries", "transactions", "addiction_logs", "goals", "meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	intents, err := json.Marshal(state.Profile.Intents)
	if err != nil {
		return fmt.Errorf("failed to serialize intents: %w", err)
	}
	limits, err := json.Marshal(state.Profile.HabitLimits)
	if err != nil {
		return fmt.Errorf("failed to serialize habit limits: %w", err)
	}
	overrides, err := json.Marshal(state.Profile.HabitOverrides)
	if err != nil {
		return fmt.Errorf("failed to serialize habit overrides: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO profile (id, name, start_date, intents, reminder_morning,
		reminder_night, is_onboarded, daily_budget, habit_limits, habit_overrides)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		state.Profile.Name, state.Profile.StartDate, string(intents),
		state.Profile.ReminderMorning, state.Profile.ReminderNight,
		state.Profile.IsOnboarded, state.Profile.DailyBudget, string(limits), string(overrides))
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	for date, e := range state.Entries {
		todos, err := json.Marshal(e.Todos)
		if err != nil {
			return fmt.Errorf("failed to serialize todos for %s: %w", date, err)
		}
		reasons, err := json.Marshal(e.MoodReasons)
		if err != nil {
			return fmt.Errorf("failed to serialize mood reasons for %s: %w", date, err)
		}
		var reflection any
		if e.NightReflection != nil {
			data, err := json.Marshal(e.NightReflection)
			if err != nil {
				return fmt.Errorf("failed to serialize night reflection for %s: %w", date, err)
			}
			reflection = string(data)
		}
		var rating any
		if e.Rating != nil {
			rating = *e.Rating
		}
		_, err = tx.Exec(`INSERT INTO entries (date, rating, intention, memory, todos,
			prompt_answer, mood, mood_reasons, song_title, song_artist, song_reason,
			gratitude, is_locked, night_reflection)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			date, rating, e.Intention, e.Memory, string(todos), e.PromptAnswer,
			e.Mood, string(reasons), e.SongTitle, e.SongArtist, e.SongReason,
			e.Gratitude, e.IsLocked, reflection)
		if err != nil {
			return fmt.Errorf("failed to save entry %s: %w", date, err)
		}
	}

	for i, t := range state.Transactions {
		_, err := tx.Exec(`INSERT INTO transactions (id, timestamp, amount, type, category,
			is_habit, unit_quantity, unit_type, mood, note, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Timestamp, t.Amount, t.Type, t.Category, t.IsHabit,
			t.UnitQuantity, t.UnitType, t.Mood, t.Note, i)
		if err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", t.ID, err)
		}
	}

	for i, l := range state.AddictionLogs {
		_, err := tx.Exec(`INSERT INTO addiction_logs (id, timestamp, type, trigger_tag,
			mood_before, mood_after, position) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			l.ID, l.Timestamp, l.Type, l.Trigger, l.MoodBefore, l.MoodAfter, i)
		if err != nil {
			return fmt.Errorf("failed to save addiction log %s: %w", l.ID, err)
		}
	}

	for i, g := range state.Goals {
		_, err := tx.Exec(`INSERT INTO goals (id, title, reason, action, progress, type,
			completed, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.Title, g.Reason, g.Action, g.Progress, g.Type, g.Completed, i)
		if err != nil {
			return fmt.Errorf("failed to save goal %s: %w", g.ID, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('current_date', ?)`,
		state.CurrentDate); err != nil {
		return fmt.Errorf("failed to save current date: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) Reset() error {
	if err := s.Close(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to discard storage: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) DataPath() string {
	return s.path
}
