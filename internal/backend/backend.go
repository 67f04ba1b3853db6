package backend

import (
	"fmt"
	"log/slog"

	"bemviver/internal/memory"
	"bemviver/internal/storage"
	"bemviver/internal/store"
)

// Type selects the storage backend.
type Type string

const (
	SQLite Type = "sqlite"
	Memory Type = "memory"
)

func (t Type) IsValid() bool {
	return t == SQLite || t == Memory
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Config holds what backend creation needs.
type Config struct {
	Type         Type
	SQLiteDBPath string
}

// Result bundles the store with its cleanup function.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// New creates the configured storage backend.
func New(config Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLite:
		repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite repository: %w", err)
		}
		logger.Info("Initialized SQLite backend", "path", config.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil
	default:
		logger.Info("Initialized memory backend")
		return &Result{Store: memory.New(), Cleanup: func() error { return nil }}, nil
	}
}
