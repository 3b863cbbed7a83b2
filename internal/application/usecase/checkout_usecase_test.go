package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "shopfront/internal/domain/cart"
)

type fakeSubmitter struct {
	err      error
	orderID  string
	calls    int
	gotID    string
	gotItems []cartdom.LineItem
}

func (f *fakeSubmitter) Submit(ctx context.Context, clientID string, items []cartdom.LineItem) (string, error) {
	f.calls++
	f.gotID = clientID
	f.gotItems = items
	if f.err != nil {
		return "", f.err
	}
	return f.orderID, nil
}

type recordingNav struct {
	locations []string
}

func (n *recordingNav) Navigate(location string) { n.locations = append(n.locations, location) }

func TestCheckoutSubmitSuccessClearsCart(t *testing.T) {
	store := &memStore{items: []cartdom.LineItem{{ID: 5, Qty: 2}}}
	orders := &fakeSubmitter{orderID: "ord-123"}
	nav := &recordingNav{}
	badge := &recordingBadge{}
	uc := NewCheckoutUsecase(ModeSubmit, store, orders, &recordingNotifier{}, nav, badge, "client-1", nil)

	require.NoError(t, uc.Checkout(context.Background()))

	assert.Equal(t, 1, orders.calls)
	assert.Equal(t, "client-1", orders.gotID)
	assert.Equal(t, []cartdom.LineItem{{ID: 5, Qty: 2}}, orders.gotItems)

	c, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, c.Empty(), "cart cleared on success")
	assert.Equal(t, []int{0}, badge.counts)
	assert.Equal(t, []string{RouteOrders}, nav.locations)
}

func TestCheckoutSubmitUnauthorizedPreservesCart(t *testing.T) {
	// 401 leaves the cart non-empty and unchanged, user sent to login
	store := &memStore{items: []cartdom.LineItem{{ID: 5, Qty: 2}}}
	orders := &fakeSubmitter{err: ErrUnauthorized}
	nav := &recordingNav{}
	notify := &recordingNotifier{}
	uc := NewCheckoutUsecase(ModeSubmit, store, orders, notify, nav, nil, "client-1", nil)

	require.NoError(t, uc.Checkout(context.Background()))

	c, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Qty(5), "cart unchanged after 401")
	assert.Equal(t, []string{RouteLogin}, nav.locations)
	require.Len(t, notify.messages, 1)
	assert.Contains(t, notify.messages[0], "sign in")
}

func TestCheckoutSubmitGenericFailure(t *testing.T) {
	store := &memStore{items: []cartdom.LineItem{{ID: 5, Qty: 2}}}
	orders := &fakeSubmitter{err: errors.New("status 500")}
	nav := &recordingNav{}
	notify := &recordingNotifier{}
	uc := NewCheckoutUsecase(ModeSubmit, store, orders, notify, nav, nil, "client-1", nil)

	require.NoError(t, uc.Checkout(context.Background()))

	c, _ := store.Load(context.Background())
	assert.Equal(t, 2, c.Qty(5), "cart preserved")
	assert.Empty(t, nav.locations, "no navigation on generic failure")
	assert.Len(t, notify.messages, 1)
	assert.Equal(t, 1, orders.calls, "no retry")
}

func TestCheckoutSubmitEmptyCartIsSilentNoop(t *testing.T) {
	orders := &fakeSubmitter{}
	notify := &recordingNotifier{}
	nav := &recordingNav{}
	uc := NewCheckoutUsecase(ModeSubmit, &memStore{}, orders, notify, nav, nil, "client-1", nil)

	require.NoError(t, uc.Checkout(context.Background()))
	assert.Equal(t, 0, orders.calls)
	assert.Empty(t, notify.messages)
	assert.Empty(t, nav.locations)
}

func TestCheckoutRedirectVariant(t *testing.T) {
	t.Run("empty cart blocks with notice", func(t *testing.T) {
		notify := &recordingNotifier{}
		nav := &recordingNav{}
		uc := NewCheckoutUsecase(ModeRedirect, &memStore{}, nil, notify, nav, nil, "", nil)

		require.NoError(t, uc.Checkout(context.Background()))
		require.Len(t, notify.messages, 1)
		assert.Contains(t, notify.messages[0], "empty")
		assert.Empty(t, nav.locations)
	})

	t.Run("non-empty cart navigates to summary untouched", func(t *testing.T) {
		store := &memStore{items: []cartdom.LineItem{{ID: 1, Qty: 1}}}
		nav := &recordingNav{}
		uc := NewCheckoutUsecase(ModeRedirect, store, nil, &recordingNotifier{}, nav, nil, "", nil)

		require.NoError(t, uc.Checkout(context.Background()))
		assert.Equal(t, []string{RouteSummary}, nav.locations)

		c, _ := store.Load(context.Background())
		assert.Equal(t, 1, c.Qty(1))
	})
}

func TestCheckoutUnknownMode(t *testing.T) {
	uc := NewCheckoutUsecase("teleport", &memStore{}, nil, nil, nil, nil, "", nil)
	assert.ErrorIs(t, uc.Checkout(context.Background()), ErrCheckoutModeUnknown)
}
