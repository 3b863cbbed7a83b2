// internal/adapters/out/localstore/state_store.go
package localstore

import (
	"context"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// StateStore holds the non-cart durable slots: the persisted browse
// location (the address-bar analog) and the once-minted client identity.
type StateStore struct {
	db *badger.DB
}

func NewStateStore(db *badger.DB) *StateStore {
	return &StateStore{db: db}
}

// LoadLocation returns the persisted browse query string, empty when none
// has been saved yet.
func (s *StateStore) LoadLocation(ctx context.Context) (string, error) {
	if s == nil || s.db == nil {
		return "", errors.New("localstore: db is nil")
	}
	raw, err := getRaw(s.db, keyLocation)
	if err != nil {
		return "", fmt.Errorf("localstore: load location: %w", err)
	}
	return string(raw), nil
}

// SaveLocation overwrites the browse location slot.
func (s *StateStore) SaveLocation(ctx context.Context, query string) error {
	if s == nil || s.db == nil {
		return errors.New("localstore: db is nil")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyLocation), []byte(query))
	})
}

// EnsureClientID returns the stored client identity, minting and
// persisting a fresh UUID on first use. The id keys the synced cart
// document and accompanies order submissions.
func (s *StateStore) EnsureClientID(ctx context.Context) (string, error) {
	if s == nil || s.db == nil {
		return "", errors.New("localstore: db is nil")
	}

	raw, err := getRaw(s.db, keyClientID)
	if err != nil {
		return "", fmt.Errorf("localstore: load client id: %w", err)
	}
	if len(raw) > 0 {
		return string(raw), nil
	}

	id := uuid.NewString()
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyClientID), []byte(id))
	})
	if err != nil {
		return "", fmt.Errorf("localstore: persist client id: %w", err)
	}
	return id, nil
}

func getRaw(db *badger.DB, key string) ([]byte, error) {
	var out []byte
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
