// internal/domain/catalog/product.go
package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("catalog: product not found")

// PlaceholderImage is substituted when a snapshot carries no image URL.
const PlaceholderImage = "https://placehold.co/80x60"

// Snapshot is the authoritative product data borrowed from the backend
// catalog for one reconciliation pass. It is never stored locally; every
// pass fetches it fresh.
type Snapshot struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
	Stock int             `json:"stock"`
}

// ImageOrPlaceholder returns the snapshot image URL, falling back to the
// shared placeholder when the catalog has none.
func (s Snapshot) ImageOrPlaceholder() string {
	if s.Image == "" {
		return PlaceholderImage
	}
	return s.Image
}

// Reader is the outbound port to the backend product-details endpoint.
type Reader interface {
	// DetailsByIDs fetches snapshots for the given distinct ids. Response
	// order is not guaranteed; callers join by id. Ids unknown to the
	// backend are simply absent from the result.
	DetailsByIDs(ctx context.Context, ids []int) ([]Snapshot, error)
}

// Index builds an id lookup over a snapshot list.
func Index(snaps []Snapshot) map[int]Snapshot {
	m := make(map[int]Snapshot, len(snaps))
	for _, s := range snaps {
		m[s.ID] = s
	}
	return m
}
