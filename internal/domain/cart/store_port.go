// internal/domain/cart/store_port.go
package cart

import "context"

// Store is the persistence port for the durable cart slot.
//
// Slot design:
// - one slot per client (local key-value entry, or one remote document)
// - value: JSON array of {id, qty}
//
// Not-found / corruption policy:
//   - Load never fails because of the slot's contents: an absent,
//     unparsable, or malformed slot reads as an empty cart with a nil
//     error. Only infrastructure failures (store unavailable) surface.
//   - Callers therefore never observe a partial cart; Save overwrites the
//     whole slot in one write.
type Store interface {
	// Load returns the current cart, empty when the slot is absent or
	// unreadable.
	Load(ctx context.Context) (*Cart, error)

	// Save serializes the cart and overwrites the slot.
	Save(ctx context.Context, c *Cart) error

	// Clear drops the slot (e.g. after a successful order submission).
	Clear(ctx context.Context) error
}
