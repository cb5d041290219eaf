package storage

import "github.com/jagruklabs/jagruk/internal/models"

// Provider is the persistence adapter contract. Load returns (nil, nil)
// on a fresh installation; callers substitute a default state. Save is
// best-effort: the store fires it after every mutation and does not wait
// on or surface its failure.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// State blob
	Load() (*models.AppState, error)
	Save(*models.AppState) error

	// Reset discards the persisted copy. Destructive and non-reversible.
	Reset() error

	// Utils
	DataPath() string
}
