// internal/infra/badger/client.go

// Package badgerinfra opens the local BadgerDB that backs the durable
// client-side slots (cart, browse location, client id). Badger gives the
// runtime a localStorage-like store: a handful of keys, synchronous
// single-writer access, survives process restarts.
package badgerinfra

import (
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"
)

// Config holds parameters for the local database.
type Config struct {
	// Path is the directory for the database files. Ignored when InMemory
	// is set.
	Path string

	// InMemory disables disk persistence. Useful for tests.
	InMemory bool

	// SyncWrites makes every write durable before returning. The cart
	// slot is tiny and mutations are user-paced, so this stays on.
	SyncWrites bool
}

// DefaultConfig returns the production configuration rooted at dir.
func DefaultConfig(dir string) Config {
	return Config{Path: dir, SyncWrites: true}
}

// Open creates the state directory if needed and opens the database.
func Open(cfg Config) (*badger.DB, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("badgerinfra: path is empty")
		}
		if err := os.MkdirAll(filepath.Clean(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("badgerinfra: create state dir: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.
		WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerinfra: open %q: %w", cfg.Path, err)
	}
	return db, nil
}
