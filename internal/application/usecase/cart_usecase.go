// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	cartdom "shopfront/internal/domain/cart"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartItemNotFound    = errors.New("cart_usecase: item not in cart")
	ErrStockExceeded       = errors.New("cart_usecase: stock ceiling exceeded")
)

// StockUnbounded is the ceiling value used when the caller cannot determine
// real stock (missing or malformed stock attribute). Any maxStock <= 0 is
// treated the same way: the ceiling check is skipped.
const StockUnbounded = 0

// Notifier is the transient notification channel. Implementations own
// their container lifecycle and dismiss messages on their own schedule.
type Notifier interface {
	Show(msg string)
}

// BadgeSink receives the projected cart badge count after each mutation.
type BadgeSink interface {
	SetCount(total int)
}

// CartUsecase is the stock-aware mutator: the only writer of the cart
// slot. Every operation is one load-mutate-save unit; the mutex stands in
// for the single-threaded page the original design assumes.
type CartUsecase struct {
	store  cartdom.Store
	notify Notifier
	badge  BadgeSink

	mu  sync.Mutex
	log *slog.Logger
}

func NewCartUsecase(store cartdom.Store, notify Notifier, badge BadgeSink, log *slog.Logger) *CartUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &CartUsecase{store: store, notify: notify, badge: badge, log: log}
}

// Add merges qty into the line item for id, appending when absent. When
// the combined quantity would exceed maxStock the whole operation is
// rejected: nothing is persisted and a capacity notice names the ceiling
// and the quantity already held.
func (u *CartUsecase) Add(ctx context.Context, id, qty, maxStock int) (*cartdom.Cart, error) {
	if id <= 0 || qty <= 0 {
		return nil, ErrCartInvalidArgument
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	c, err := u.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	held := c.Qty(id)
	if maxStock > StockUnbounded && held+qty > maxStock {
		u.show(fmt.Sprintf("Only %d in stock (you already have %d in your cart)", maxStock, held))
		u.log.Debug("add rejected by stock ceiling", "id", id, "qty", qty, "held", held, "max_stock", maxStock)
		return c, ErrStockExceeded
	}

	if err := c.Add(id, qty); err != nil {
		return nil, err
	}
	if err := u.store.Save(ctx, c); err != nil {
		return nil, err
	}
	u.project(c)
	u.show("Added to cart")
	u.log.Info("item added", "id", id, "qty", qty, "total_qty", c.TotalQty())
	return c, nil
}

// Increment raises the quantity for id by one unless the row's stock
// ceiling is already met, in which case a limit notice fires and the cart
// is left unchanged.
func (u *CartUsecase) Increment(ctx context.Context, id, maxStock int) (*cartdom.Cart, error) {
	if id <= 0 {
		return nil, ErrCartInvalidArgument
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	c, err := u.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	it, ok := c.Get(id)
	if !ok {
		return c, ErrCartItemNotFound
	}

	if maxStock > StockUnbounded && it.Qty >= maxStock {
		u.show("Stock limit reached")
		u.log.Debug("increment rejected by stock ceiling", "id", id, "qty", it.Qty, "max_stock", maxStock)
		return c, ErrStockExceeded
	}

	if err := c.SetQty(id, it.Qty+1); err != nil {
		return nil, err
	}
	if err := u.store.Save(ctx, c); err != nil {
		return nil, err
	}
	u.project(c)
	return c, nil
}

// Decrement lowers the quantity for id by one. Quantity never drops below
// 1 through this path: at 1 the call is a no-op (removal is explicit).
func (u *CartUsecase) Decrement(ctx context.Context, id int) (*cartdom.Cart, error) {
	if id <= 0 {
		return nil, ErrCartInvalidArgument
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	c, err := u.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	it, ok := c.Get(id)
	if !ok {
		return c, ErrCartItemNotFound
	}
	if it.Qty <= 1 {
		return c, nil
	}

	if err := c.SetQty(id, it.Qty-1); err != nil {
		return nil, err
	}
	if err := u.store.Save(ctx, c); err != nil {
		return nil, err
	}
	u.project(c)
	return c, nil
}

// Remove deletes the line item for id unconditionally and persists.
func (u *CartUsecase) Remove(ctx context.Context, id int) (*cartdom.Cart, error) {
	if id <= 0 {
		return nil, ErrCartInvalidArgument
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	c, err := u.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.Remove(id)
	if err := u.store.Save(ctx, c); err != nil {
		return nil, err
	}
	u.project(c)
	u.log.Info("item removed", "id", id, "total_qty", c.TotalQty())
	return c, nil
}

func (u *CartUsecase) project(c *cartdom.Cart) {
	if u.badge == nil {
		return
	}
	u.badge.SetCount(c.TotalQty())
}

func (u *CartUsecase) show(msg string) {
	if u.notify == nil {
		return
	}
	u.notify.Show(msg)
}
