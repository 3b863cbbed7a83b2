// internal/application/query/dto/cart_view_dto.go
package dto

import "github.com/shopspring/decimal"

// CartViewState names the reconciliation states.
type CartViewState string

const (
	StateEmpty    CartViewState = "empty"
	StateLoading  CartViewState = "loading"
	StateRendered CartViewState = "rendered"
	StateError    CartViewState = "error"
)

// CartRow is one rendered cart line after the join with live catalog data.
// Stock is captured here so row controls can dispatch with the ceiling the
// user actually saw.
type CartRow struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Qty       int             `json:"qty"`
	Stock     int             `json:"stock"`
	Subtotal  decimal.Decimal `json:"subtotal"`

	// CanIncrement is false once qty has reached the row's stock.
	CanIncrement bool `json:"canIncrement"`
}

// CartView is the response shape for the cart screen: the joined rows plus
// both totals. Subtotal and Total carry the same value (no client-side tax
// or shipping); both render to two decimal places.
type CartView struct {
	State    CartViewState   `json:"state"`
	Rows     []CartRow       `json:"rows"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`

	// Orphans counts cart line items that no longer resolve to a catalog
	// product. They contribute nothing to the totals and stay out of Rows;
	// the underlying slot is left untouched.
	Orphans int `json:"orphans,omitempty"`
}

// FormatAmount renders a money amount to two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
