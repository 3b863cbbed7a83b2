package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "shopfront/internal/domain/cart"
)

// memStore is an in-memory cart.Store for tests. It counts writes so
// rejection paths can assert that nothing was persisted.
type memStore struct {
	items   []cartdom.LineItem
	saves   int
	loadErr error
	saveErr error
}

func (s *memStore) Load(ctx context.Context) (*cartdom.Cart, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return cartdom.FromItems(s.items), nil
}

func (s *memStore) Save(ctx context.Context, c *cartdom.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.items = append([]cartdom.LineItem(nil), c.Items...)
	return nil
}

func (s *memStore) Clear(ctx context.Context) error {
	s.items = nil
	return nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Show(msg string) { n.messages = append(n.messages, msg) }

type recordingBadge struct {
	counts []int
}

func (b *recordingBadge) SetCount(total int) { b.counts = append(b.counts, total) }

func newTestCartUsecase(store *memStore) (*CartUsecase, *recordingNotifier, *recordingBadge) {
	n := &recordingNotifier{}
	b := &recordingBadge{}
	return NewCartUsecase(store, n, b, nil), n, b
}

func TestAddNewAndExisting(t *testing.T) {
	store := &memStore{}
	uc, notify, badge := newTestCartUsecase(store)
	ctx := context.Background()

	c, err := uc.Add(ctx, 5, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Qty(5))

	c, err = uc.Add(ctx, 5, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Qty(5))

	assert.Equal(t, 2, store.saves)
	assert.Equal(t, []string{"Added to cart", "Added to cart"}, notify.messages)
	assert.Equal(t, []int{1, 3}, badge.counts)
}

func TestAddRejectedByStockCeiling(t *testing.T) {
	// add(id:7, qty:5, maxStock:3) on an empty cart
	store := &memStore{}
	uc, notify, _ := newTestCartUsecase(store)

	c, err := uc.Add(context.Background(), 7, 5, 3)
	assert.ErrorIs(t, err, ErrStockExceeded)
	assert.True(t, c.Empty(), "cart must remain empty")
	assert.Equal(t, 0, store.saves, "no persistence write on rejection")
	require.Len(t, notify.messages, 1)
	assert.Contains(t, notify.messages[0], "Only 3 in stock")
}

func TestAddRejectedInFullNotPartially(t *testing.T) {
	store := &memStore{items: []cartdom.LineItem{{ID: 7, Qty: 2}}}
	uc, notify, _ := newTestCartUsecase(store)

	// 2 held + 4 requested > 5 in stock: nothing of the 4 is applied
	c, err := uc.Add(context.Background(), 7, 4, 5)
	assert.ErrorIs(t, err, ErrStockExceeded)
	assert.Equal(t, 2, c.Qty(7))
	assert.Equal(t, 0, store.saves)
	require.Len(t, notify.messages, 1)
	assert.Contains(t, notify.messages[0], "you already have 2")
}

func TestAddUnboundedWhenStockUnknown(t *testing.T) {
	store := &memStore{}
	uc, _, _ := newTestCartUsecase(store)

	c, err := uc.Add(context.Background(), 1, 9999, StockUnbounded)
	require.NoError(t, err)
	assert.Equal(t, 9999, c.Qty(1))

	// negative is the same sentinel
	c, err = uc.Add(context.Background(), 1, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, 10000, c.Qty(1))
}

func TestAddInvalidArguments(t *testing.T) {
	uc, _, _ := newTestCartUsecase(&memStore{})

	_, err := uc.Add(context.Background(), 0, 1, 0)
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
	_, err = uc.Add(context.Background(), 1, 0, 0)
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
}

func TestIncrement(t *testing.T) {
	tests := []struct {
		name     string
		initial  []cartdom.LineItem
		id       int
		maxStock int
		wantErr  error
		wantQty  int
		wantSave int
	}{
		{
			name:     "below ceiling increments",
			initial:  []cartdom.LineItem{{ID: 5, Qty: 2}},
			id:       5,
			maxStock: 3,
			wantQty:  3,
			wantSave: 1,
		},
		{
			name:     "at ceiling makes no change",
			initial:  []cartdom.LineItem{{ID: 5, Qty: 3}},
			id:       5,
			maxStock: 3,
			wantErr:  ErrStockExceeded,
			wantQty:  3,
			wantSave: 0,
		},
		{
			name:     "unbounded ceiling always increments",
			initial:  []cartdom.LineItem{{ID: 5, Qty: 99}},
			id:       5,
			maxStock: StockUnbounded,
			wantQty:  100,
			wantSave: 1,
		},
		{
			name:     "absent id not found",
			initial:  []cartdom.LineItem{{ID: 5, Qty: 1}},
			id:       6,
			maxStock: 3,
			wantErr:  ErrCartItemNotFound,
			wantSave: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{items: tt.initial}
			uc, _, _ := newTestCartUsecase(store)

			c, err := uc.Increment(context.Background(), tt.id, tt.maxStock)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantQty, c.Qty(tt.id))
			assert.Equal(t, tt.wantSave, store.saves)
		})
	}
}

func TestDecrementNeverBelowOne(t *testing.T) {
	store := &memStore{items: []cartdom.LineItem{{ID: 5, Qty: 2}}}
	uc, _, _ := newTestCartUsecase(store)
	ctx := context.Background()

	c, err := uc.Decrement(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Qty(5))

	// at 1 decrement is a no-op, not a removal
	c, err = uc.Decrement(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Qty(5))
	assert.Equal(t, 1, store.saves)
}

func TestRemove(t *testing.T) {
	store := &memStore{items: []cartdom.LineItem{{ID: 5, Qty: 7}, {ID: 6, Qty: 1}}}
	uc, _, badge := newTestCartUsecase(store)

	c, err := uc.Remove(context.Background(), 5)
	require.NoError(t, err)
	_, ok := c.Get(5)
	assert.False(t, ok, "id must be absent regardless of prior qty")
	assert.Equal(t, []int{6}, c.IDs())
	assert.Equal(t, []int{1}, badge.counts)
}

func TestBadgeTracksEveryMutation(t *testing.T) {
	store := &memStore{}
	uc, _, badge := newTestCartUsecase(store)
	ctx := context.Background()

	_, _ = uc.Add(ctx, 1, 2, 0)
	_, _ = uc.Add(ctx, 2, 3, 0)
	_, _ = uc.Increment(ctx, 1, 0)
	_, _ = uc.Decrement(ctx, 2)
	_, _ = uc.Remove(ctx, 1)

	assert.Equal(t, []int{2, 5, 6, 5, 2}, badge.counts)

	// badge always equals the sum of quantities in the persisted cart
	final, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, badge.counts[len(badge.counts)-1], final.TotalQty())
}

func TestInvariantsAcrossSequences(t *testing.T) {
	store := &memStore{}
	uc, _, _ := newTestCartUsecase(store)
	ctx := context.Background()

	_, _ = uc.Add(ctx, 3, 2, 10)
	_, _ = uc.Add(ctx, 1, 1, 10)
	_, _ = uc.Add(ctx, 3, 5, 4) // rejected
	_, _ = uc.Increment(ctx, 1, 1)
	_, _ = uc.Decrement(ctx, 3)
	_, _ = uc.Decrement(ctx, 1)
	_, _ = uc.Add(ctx, 2, 1, 0)
	_, _ = uc.Remove(ctx, 1)

	c, err := store.Load(ctx)
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, it := range c.Items {
		assert.GreaterOrEqual(t, it.Qty, 1, "qty never below 1")
		assert.False(t, seen[it.ID], "no duplicate ids")
		seen[it.ID] = true
	}
	assert.Equal(t, []int{3, 2}, c.IDs())
	assert.Equal(t, 1, c.Qty(3))
}

func TestStoreErrorsPropagate(t *testing.T) {
	boom := errors.New("backend down")
	uc, _, _ := newTestCartUsecase(&memStore{loadErr: boom})
	_, err := uc.Add(context.Background(), 1, 1, 0)
	assert.ErrorIs(t, err, boom)

	uc2, _, _ := newTestCartUsecase(&memStore{saveErr: boom})
	_, err = uc2.Add(context.Background(), 1, 1, 0)
	assert.ErrorIs(t, err, boom)
}
