package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jagruklabs/jagruk/internal/models"
)

// JSONStore persists the whole AppState as a single indented JSON blob.
// The file's schema is exactly the AppState shape.
type JSONStore struct {
	path string
}

func NewJSONStore(dataPath string) *JSONStore {
	return &JSONStore{
		path: dataPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.NewAppState(time.Now()))
}

func (s *JSONStore) Load() (*models.AppState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Fresh installation
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	state := &models.AppState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if state.Entries == nil {
		state.Entries = make(map[string]models.DailyEntry)
	}
	if state.Transactions == nil {
		state.Transactions = []models.Transaction{}
	}
	if state.AddictionLogs == nil {
		state.AddictionLogs = []models.AddictionLog{}
	}
	if state.Goals == nil {
		state.Goals = []models.Goal{}
	}

	return state, nil
}

func (s *JSONStore) Save(state *models.AppState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to discard storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// DataPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple jagruk processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) DataPath() string {
	return s.path
}
