// internal/application/query/cart_view_query.go
package query

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"shopfront/internal/application/query/dto"
	cartdom "shopfront/internal/domain/cart"
	"shopfront/internal/domain/catalog"
)

var ErrCartViewCatalogMissing = errors.New("cart_view_query: catalog reader is nil")

// CartViewQuery is the cart reconciliation read model. Each Render pass
// re-reads the cart slot, fetches fresh snapshots for exactly the
// referenced ids, joins by id and recomputes totals. A pass that fails
// leaves the previously rendered view in place; a newer pass always wins
// over a slower, older one.
type CartViewQuery struct {
	store   cartdom.Store
	catalog catalog.Reader
	log     *slog.Logger

	mu      sync.Mutex
	passSeq uint64
	lastSeq uint64
	last    *dto.CartView
}

func NewCartViewQuery(store cartdom.Store, reader catalog.Reader, log *slog.Logger) *CartViewQuery {
	if log == nil {
		log = slog.Default()
	}
	return &CartViewQuery{store: store, catalog: reader, log: log}
}

// Render runs one full reconciliation pass and returns the resulting
// view. On fetch or decode failure the returned view carries StateError
// and the last rendered view is retained untouched (the failure is logged
// and not surfaced as a user notice).
func (q *CartViewQuery) Render(ctx context.Context) (*dto.CartView, error) {
	if q.catalog == nil {
		return nil, ErrCartViewCatalogMissing
	}

	q.mu.Lock()
	q.passSeq++
	pass := q.passSeq
	q.mu.Unlock()

	c, err := q.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if c.Empty() {
		view := &dto.CartView{State: dto.StateEmpty, Rows: []dto.CartRow{}}
		q.commit(pass, view)
		return view, nil
	}

	snaps, err := q.catalog.DetailsByIDs(ctx, c.IDs())
	if err != nil {
		// non-fatal: prior rendered content stays in place
		q.log.Error("cart reconciliation fetch failed", "error", err, "ids", c.Len())
		return &dto.CartView{State: dto.StateError}, nil
	}

	view := Reconcile(c, snaps)
	q.commit(pass, view)
	q.log.Debug("cart reconciled", "rows", len(view.Rows), "orphans", view.Orphans, "total", dto.FormatAmount(view.Total))
	return view, nil
}

// LastRendered returns the most recent successfully rendered view, nil
// when no pass has completed yet.
func (q *CartViewQuery) LastRendered() *dto.CartView {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.last
}

// commit stores the pass result unless a newer pass already rendered
// (last-render-wins without cancelling in-flight requests).
func (q *CartViewQuery) commit(pass uint64, view *dto.CartView) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if pass < q.lastSeq {
		return
	}
	q.lastSeq = pass
	q.last = view
}

// Reconcile joins cart line items against catalog snapshots, in cart
// order. Rows with no matching snapshot are skipped and counted as
// orphans; they contribute nothing to the totals. Pure function, no I/O.
func Reconcile(c *cartdom.Cart, snaps []catalog.Snapshot) *dto.CartView {
	byID := catalog.Index(snaps)

	view := &dto.CartView{
		State: dto.StateRendered,
		Rows:  make([]dto.CartRow, 0, c.Len()),
	}

	total := decimal.Zero
	for _, it := range c.Items {
		snap, ok := byID[it.ID]
		if !ok {
			view.Orphans++
			continue
		}

		subtotal := snap.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
		total = total.Add(subtotal)

		view.Rows = append(view.Rows, dto.CartRow{
			ID:           it.ID,
			Name:         snap.Name,
			Image:        snap.ImageOrPlaceholder(),
			UnitPrice:    snap.Price,
			Qty:          it.Qty,
			Stock:        snap.Stock,
			Subtotal:     subtotal,
			CanIncrement: it.Qty < snap.Stock,
		})
	}

	// no client-side tax or shipping
	view.Subtotal = total
	view.Total = total
	return view
}
