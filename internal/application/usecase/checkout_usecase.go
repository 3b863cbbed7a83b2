// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"log/slog"

	cartdom "shopfront/internal/domain/cart"
)

// OrderSubmitter is an outbound port to the order-creation endpoint.
// Implementations return ErrUnauthorized on an authorization failure
// response; any other non-success is an ordinary error.
type OrderSubmitter interface {
	Submit(ctx context.Context, clientID string, items []cartdom.LineItem) (orderID string, err error)
}

// Navigator issues the next page location. The runtime does no routing of
// its own; it only hands the target over.
type Navigator interface {
	Navigate(location string)
}

var (
	ErrUnauthorized         = errors.New("checkout: unauthorized")
	ErrCheckoutStoreMissing = errors.New("checkout: cart store is not configured")
	ErrCheckoutModeUnknown  = errors.New("checkout: unknown mode")
)

// Checkout modes. ModeRedirect hands the cart to the summary flow
// untouched; ModeSubmit posts it to the order endpoint directly.
const (
	ModeRedirect = "redirect"
	ModeSubmit   = "submit"
)

// Well-known target locations.
const (
	RouteSummary = "/checkout/summary"
	RouteOrders  = "/account/orders"
	RouteLogin   = "/login"
)

// CheckoutUsecase gates the handoff from cart to order. The two historic
// storefront variants (redirect-only vs. direct submission) are both kept,
// selected by mode at construction.
type CheckoutUsecase struct {
	mode     string
	store    cartdom.Store
	orders   OrderSubmitter
	notify   Notifier
	nav      Navigator
	badge    BadgeSink
	clientID string

	log *slog.Logger
}

func NewCheckoutUsecase(mode string, store cartdom.Store, orders OrderSubmitter, notify Notifier, nav Navigator, badge BadgeSink, clientID string, log *slog.Logger) *CheckoutUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &CheckoutUsecase{
		mode:     mode,
		store:    store,
		orders:   orders,
		notify:   notify,
		nav:      nav,
		badge:    badge,
		clientID: clientID,
		log:      log,
	}
}

// Checkout runs the configured variant. Every failure path leaves the cart
// slot exactly as it was; only a successful submission clears it.
func (u *CheckoutUsecase) Checkout(ctx context.Context) error {
	if u.store == nil {
		return ErrCheckoutStoreMissing
	}

	c, err := u.store.Load(ctx)
	if err != nil {
		return err
	}

	switch u.mode {
	case ModeRedirect:
		return u.redirect(c)
	case ModeSubmit, "":
		return u.submit(ctx, c)
	default:
		return ErrCheckoutModeUnknown
	}
}

func (u *CheckoutUsecase) redirect(c *cartdom.Cart) error {
	if c.Empty() {
		u.show("Your cart is empty")
		return nil
	}
	u.navigate(RouteSummary)
	return nil
}

func (u *CheckoutUsecase) submit(ctx context.Context, c *cartdom.Cart) error {
	if c.Empty() {
		// empty cart is a silent no-op in the submission variant
		return nil
	}
	if u.orders == nil {
		return errors.New("checkout: order submitter is not configured")
	}

	orderID, err := u.orders.Submit(ctx, u.clientID, c.Items)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			u.show("Please sign in to place your order")
			u.navigate(RouteLogin)
			u.log.Info("order submission unauthorized", "items", c.Len())
			return nil
		}
		u.show("Could not place your order, please try again")
		u.log.Error("order submission failed", "error", err, "items", c.Len())
		return nil
	}

	if err := u.store.Clear(ctx); err != nil {
		// order exists but the slot survived; next reconciliation will
		// still show it, so surface this one
		return err
	}
	if u.badge != nil {
		u.badge.SetCount(0)
	}
	u.log.Info("order placed", "order_id", orderID, "items", c.Len())
	u.navigate(RouteOrders)
	return nil
}

func (u *CheckoutUsecase) navigate(location string) {
	if u.nav == nil {
		return
	}
	u.nav.Navigate(location)
}

func (u *CheckoutUsecase) show(msg string) {
	if u.notify == nil {
		return
	}
	u.notify.Show(msg)
}
