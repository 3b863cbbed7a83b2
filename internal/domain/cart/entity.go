// internal/domain/cart/entity.go
package cart

import "errors"

var (
	ErrInvalidCart = errors.New("cart: invalid")
	ErrInvalidItem = errors.New("cart: invalid line item")
)

// LineItem represents one line item in a cart: a product id plus the
// desired quantity. A LineItem never carries qty < 1; dropping to zero
// removes the item from the cart instead.
type LineItem struct {
	ID  int `json:"id"`
	Qty int `json:"qty"`
}

// Cart holds the ordered list of line items. Order is first-add order and
// is preserved across every mutation. Uniqueness is defined by LineItem.ID.
//
// The durable slot stores the bare items array (`[{"id":..,"qty":..}]`,
// no envelope, no schema version).
type Cart struct {
	Items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []LineItem{}}
}

// FromItems builds a cart from a raw item list, normalizing it: entries
// with id <= 0 or qty <= 0 are dropped, duplicate ids are merged into the
// first occurrence. Used when loading the durable slot, whose contents may
// predate the current writer.
func FromItems(items []LineItem) *Cart {
	return &Cart{Items: normalize(items)}
}

// Empty reports whether the cart has no line items.
func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// Get returns the line item for id, if present.
func (c *Cart) Get(id int) (LineItem, bool) {
	if c == nil {
		return LineItem{}, false
	}
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}

// Qty returns the held quantity for id, zero when absent.
func (c *Cart) Qty(id int) int {
	it, ok := c.Get(id)
	if !ok {
		return 0
	}
	return it.Qty
}

// IDs returns the distinct product ids in cart order.
func (c *Cart) IDs() []int {
	if c == nil {
		return nil
	}
	out := make([]int, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, it.ID)
	}
	return out
}

// TotalQty returns the sum of quantities across all line items.
func (c *Cart) TotalQty() int {
	if c == nil {
		return 0
	}
	sum := 0
	for _, it := range c.Items {
		sum += it.Qty
	}
	return sum
}

// Add increases quantity for id, appending a new line item when the id is
// not yet present. qty must be >= 1 and id must be > 0.
func (c *Cart) Add(id, qty int) error {
	if c == nil {
		return ErrInvalidCart
	}
	if id <= 0 || qty <= 0 {
		return ErrInvalidItem
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Qty += qty
			return nil
		}
	}
	c.Items = append(c.Items, LineItem{ID: id, Qty: qty})
	return nil
}

// SetQty sets the quantity for id. qty <= 0 removes the item; setting a
// quantity for an absent id appends it.
func (c *Cart) SetQty(id, qty int) error {
	if c == nil {
		return ErrInvalidCart
	}
	if id <= 0 {
		return ErrInvalidItem
	}
	if qty <= 0 {
		c.Remove(id)
		return nil
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Qty = qty
			return nil
		}
	}
	c.Items = append(c.Items, LineItem{ID: id, Qty: qty})
	return nil
}

// Remove deletes the line item for id, preserving the order of the rest.
// Removing an absent id is a no-op.
func (c *Cart) Remove(id int) {
	if c == nil {
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy. Mutating the copy does not affect the
// original.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return New()
	}
	cp := make([]LineItem, len(c.Items))
	copy(cp, c.Items)
	return &Cart{Items: cp}
}

// normalize drops invalid entries and merges duplicate ids into the first
// occurrence, preserving first-seen order.
func normalize(src []LineItem) []LineItem {
	out := make([]LineItem, 0, len(src))
	seen := make(map[int]int, len(src))
	for _, it := range src {
		if it.ID <= 0 || it.Qty <= 0 {
			continue
		}
		if i, ok := seen[it.ID]; ok {
			out[i].Qty += it.Qty
			continue
		}
		seen[it.ID] = len(out)
		out = append(out, it)
	}
	return out
}
