// internal/adapters/out/firestore/cart_store_fs.go
package firestore

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "shopfront/internal/domain/cart"
)

// CartStoreFS implements cart.Store on Firestore, for shoppers who sync
// their cart across machines.
//
// Collection design:
// - collection: carts
// - docId: clientID (the locally minted identity is the source of truth)
// - fields: items (array of {id, qty}), updatedAt
type CartStoreFS struct {
	Client   *firestore.Client
	ClientID string

	log *slog.Logger
}

func NewCartStoreFS(client *firestore.Client, clientID string, log *slog.Logger) *CartStoreFS {
	if log == nil {
		log = slog.Default()
	}
	return &CartStoreFS{Client: client, ClientID: clientID, log: log}
}

func (s *CartStoreFS) col() *firestore.CollectionRef {
	return s.Client.Collection("carts")
}

// Load returns the synced cart. A missing document, or one whose items no
// longer parse, reads as an empty cart (same fail-soft contract as the
// local slot).
func (s *CartStoreFS) Load(ctx context.Context) (*cartdom.Cart, error) {
	if s == nil || s.Client == nil {
		return nil, errors.New("cart_store_fs: firestore client is nil")
	}
	id := strings.TrimSpace(s.ClientID)
	if id == "" {
		return nil, errors.New("cart_store_fs: client id is empty")
	}

	snap, err := s.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cartdom.New(), nil
		}
		return nil, err
	}

	var doc cartDoc
	if err := snap.DataTo(&doc); err != nil {
		// schema drift is treated like local corruption: empty cart
		s.log.Debug("cart doc unparsable, treating as empty", "error", err)
		return cartdom.New(), nil
	}

	items := make([]cartdom.LineItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, cartdom.LineItem{ID: it.ID, Qty: it.Qty})
	}
	return cartdom.FromItems(items), nil
}

// Save overwrites the whole document (simple and predictable).
func (s *CartStoreFS) Save(ctx context.Context, c *cartdom.Cart) error {
	if s == nil || s.Client == nil {
		return errors.New("cart_store_fs: firestore client is nil")
	}
	if c == nil {
		return cartdom.ErrInvalidCart
	}
	id := strings.TrimSpace(s.ClientID)
	if id == "" {
		return errors.New("cart_store_fs: client id is empty")
	}

	doc := cartDoc{
		Items:     make([]cartItemDoc, 0, c.Len()),
		UpdatedAt: time.Now().UTC(),
	}
	for _, it := range c.Items {
		doc.Items = append(doc.Items, cartItemDoc{ID: it.ID, Qty: it.Qty})
	}

	_, err := s.col().Doc(id).Set(ctx, doc)
	return err
}

// Clear deletes the document. Deleting an absent document succeeds, which
// keeps Clear idempotent.
func (s *CartStoreFS) Clear(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return errors.New("cart_store_fs: firestore client is nil")
	}
	id := strings.TrimSpace(s.ClientID)
	if id == "" {
		return errors.New("cart_store_fs: client id is empty")
	}

	_, err := s.col().Doc(id).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartDoc struct {
	Items     []cartItemDoc `firestore:"items"`
	UpdatedAt time.Time     `firestore:"updatedAt"`
}

type cartItemDoc struct {
	ID  int `firestore:"id"`
	Qty int `firestore:"qty"`
}
