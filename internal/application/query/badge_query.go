// internal/application/query/badge_query.go
package query

import (
	"context"
	"log/slog"

	cartdom "shopfront/internal/domain/cart"
)

// BadgeSink is the single display slot the badge count is written to. A
// nil sink means the current surface has no badge and the projection is a
// no-op.
type BadgeSink interface {
	SetCount(total int)
}

// BadgeQuery projects the cart badge: the total quantity across all line
// items. It is re-run once at startup and after every mutation.
type BadgeQuery struct {
	store cartdom.Store
	sink  BadgeSink
	log   *slog.Logger
}

func NewBadgeQuery(store cartdom.Store, sink BadgeSink, log *slog.Logger) *BadgeQuery {
	if log == nil {
		log = slog.Default()
	}
	return &BadgeQuery{store: store, sink: sink, log: log}
}

// Refresh re-derives the badge count from the store's current value and
// pushes it to the sink. The count is also returned for callers that
// render inline.
func (q *BadgeQuery) Refresh(ctx context.Context) (int, error) {
	c, err := q.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	total := c.TotalQty()
	if q.sink != nil {
		q.sink.SetCount(total)
	}
	return total, nil
}
