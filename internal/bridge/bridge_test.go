package bridge

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrmenu/internal/models"
	"qrmenu/internal/session"
)

// fakeOrders records CreateOrder calls and can be told to fail.
type fakeOrders struct {
	calls []fakeOrderCall
	err   error
}

type fakeOrderCall struct {
	tableID   uint
	sessionID string
	lines     []session.CartLine
}

func (f *fakeOrders) CreateOrder(ctx context.Context, tableID uint, sessionID string, lines []session.CartLine) (uint, error) {
	f.calls = append(f.calls, fakeOrderCall{tableID: tableID, sessionID: sessionID, lines: lines})
	if f.err != nil {
		return 0, f.err
	}
	return 42, nil
}

func newTestSession(locale models.Locale) *session.Session {
	return &session.Session{
		ID:      "sess-1",
		TableID: 7,
		Locale:  locale,
		Cart:    &session.Cart{},
	}
}

func TestOrderIntentShowsSummaryAndAwaits(t *testing.T) {
	orders := &fakeOrders{}
	b := New(orders, nil)
	s := newTestSession(models.LocaleEN)
	s.Cart.Add(5, "Margherita Pizza", 45.0, 2, "")

	reply, handled := b.HandleTurn(context.Background(), s, "confirm order please")

	require.True(t, handled)
	assert.True(t, s.AwaitingOrderConfirmation)
	assert.Contains(t, reply, "Margherita Pizza x2 = 90.00 TL")
	assert.Contains(t, reply, "**Total:** 90.00 TL")
	assert.Empty(t, orders.calls, "no order before confirmation")
}

func TestAffirmativePlacesOrderAndClearsCart(t *testing.T) {
	orders := &fakeOrders{}
	b := New(orders, nil)
	s := newTestSession(models.LocaleEN)
	s.Cart.Add(5, "Margherita Pizza", 45.0, 2, "")
	s.AwaitingOrderConfirmation = true

	reply, handled := b.HandleTurn(context.Background(), s, "yes")

	require.True(t, handled)
	require.Len(t, orders.calls, 1)
	call := orders.calls[0]
	assert.Equal(t, uint(7), call.tableID)
	assert.Equal(t, "sess-1", call.sessionID)
	require.Len(t, call.lines, 1)
	assert.Equal(t, uint(5), call.lines[0].ItemID)
	assert.Equal(t, 2, call.lines[0].Quantity)

	assert.True(t, s.Cart.IsEmpty())
	assert.False(t, s.AwaitingOrderConfirmation)
	assert.Contains(t, reply, "#42")
}

func TestNegativeKeepsCartAndReturnsToIdle(t *testing.T) {
	orders := &fakeOrders{}
	b := New(orders, nil)
	s := newTestSession(models.LocaleEN)
	s.Cart.Add(5, "Margherita Pizza", 45.0, 2, "")
	s.AwaitingOrderConfirmation = true

	reply, handled := b.HandleTurn(context.Background(), s, "no thanks")

	require.True(t, handled)
	assert.Empty(t, orders.calls)
	assert.Equal(t, 2, s.Cart.Count(), "cart must survive a cancelled confirmation")
	assert.False(t, s.AwaitingOrderConfirmation)
	assert.Contains(t, reply, "not placed")
}

func TestUnrecognizedReplyStaysAwaiting(t *testing.T) {
	b := New(&fakeOrders{}, nil)
	s := newTestSession(models.LocaleEN)
	s.Cart.Add(5, "Margherita Pizza", 45.0, 1, "")
	s.AwaitingOrderConfirmation = true

	reply, handled := b.HandleTurn(context.Background(), s, "what desserts do you have?")

	require.True(t, handled)
	assert.True(t, s.AwaitingOrderConfirmation)
	assert.Contains(t, reply, `"yes"`)
}

func TestEmptyCartOrderIntent(t *testing.T) {
	b := New(&fakeOrders{}, nil)
	s := newTestSession(models.LocaleEN)

	reply, handled := b.HandleTurn(context.Background(), s, "place order")

	require.True(t, handled)
	assert.False(t, s.AwaitingOrderConfirmation)
	assert.Contains(t, reply, "cart is empty")
}

func TestPersistenceFailureKeepsCart(t *testing.T) {
	orders := &fakeOrders{err: fmt.Errorf("database locked")}
	b := New(orders, nil)
	s := newTestSession(models.LocaleTR)
	s.Cart.Add(5, "Margarita Pizza", 45.0, 2, "")
	s.AwaitingOrderConfirmation = true

	reply, handled := b.HandleTurn(context.Background(), s, "evet")

	require.True(t, handled)
	require.Len(t, orders.calls, 1)
	assert.Equal(t, 2, s.Cart.Count(), "cart must survive a failed order")
	assert.False(t, s.AwaitingOrderConfirmation)
	assert.Contains(t, reply, "Sepetiniz korundu")
}

func TestNonOrderMessagesPassThrough(t *testing.T) {
	b := New(&fakeOrders{}, nil)
	s := newTestSession(models.LocaleEN)
	s.Cart.Add(5, "Margherita Pizza", 45.0, 1, "")

	for _, msg := range []string{
		"do you know any vegan options?", // "no" inside "know" must not match
		"I have some notes about allergies",
		"what do you recommend?",
	} {
		reply, handled := b.HandleTurn(context.Background(), s, msg)
		assert.False(t, handled, "message %q should reach the assistant", msg)
		assert.Empty(t, reply)
	}
}

func TestTurkishFlow(t *testing.T) {
	orders := &fakeOrders{}
	b := New(orders, nil)
	s := newTestSession(models.LocaleTR)
	s.Cart.Add(3, "Acılı Tavuk Burger", 95.0, 1, "az acılı")

	reply, handled := b.HandleTurn(context.Background(), s, "sipariş ver")
	require.True(t, handled)
	assert.Contains(t, reply, "**Toplam:** 95.00 TL")
	assert.True(t, s.AwaitingOrderConfirmation)

	reply, handled = b.HandleTurn(context.Background(), s, "onaylıyorum")
	require.True(t, handled)
	require.Len(t, orders.calls, 1)
	assert.Equal(t, "az acılı", orders.calls[0].lines[0].Note)
	assert.True(t, s.Cart.IsEmpty())
	assert.Contains(t, reply, "Afiyet olsun")
}

func TestNegativesWinOverAffirmatives(t *testing.T) {
	orders := &fakeOrders{}
	b := New(orders, nil)
	s := newTestSession(models.LocaleEN)
	s.Cart.Add(5, "Margherita Pizza", 45.0, 1, "")
	s.AwaitingOrderConfirmation = true

	_, handled := b.HandleTurn(context.Background(), s, "no, cancel it. ok?")

	require.True(t, handled)
	assert.Empty(t, orders.calls)
	assert.False(t, s.AwaitingOrderConfirmation)
}
