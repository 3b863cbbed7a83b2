// internal/adapters/out/localstore/cart_store.go

// Package localstore implements the durable client-side slots on the
// local BadgerDB: the cart, the browse location, and the client identity.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"

	cartdom "shopfront/internal/domain/cart"
)

// Slot keys. One value per key; the cart slot holds the serialized line
// item array with no envelope.
const (
	keyCart     = "cart"
	keyLocation = "location"
	keyClientID = "client_id"
)

// CartStore implements cart.Store on one local key.
type CartStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCartStore(db *badger.DB, log *slog.Logger) *CartStore {
	if log == nil {
		log = slog.Default()
	}
	return &CartStore{db: db, log: log}
}

// Load reads the cart slot. An absent or unparsable slot reads as an
// empty cart; only database failures surface as errors.
func (s *CartStore) Load(ctx context.Context) (*cartdom.Cart, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("localstore: db is nil")
	}

	raw, err := getRaw(s.db, keyCart)
	if err != nil {
		return nil, fmt.Errorf("localstore: load cart: %w", err)
	}
	if raw == nil {
		return cartdom.New(), nil
	}

	var items []cartdom.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// corrupted slot: treated as empty, never surfaced to the user
		s.log.Debug("cart slot unparsable, treating as empty", "error", err)
		return cartdom.New(), nil
	}
	return cartdom.FromItems(items), nil
}

// Save overwrites the cart slot with the serialized line items in one
// write.
func (s *CartStore) Save(ctx context.Context, c *cartdom.Cart) error {
	if s == nil || s.db == nil {
		return errors.New("localstore: db is nil")
	}
	if c == nil {
		return cartdom.ErrInvalidCart
	}

	raw, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("localstore: marshal cart: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyCart), raw)
	})
}

// Clear drops the cart slot.
func (s *CartStore) Clear(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("localstore: db is nil")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyCart))
	})
}
