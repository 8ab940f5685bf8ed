// Package bridge lets customers confirm their order inside the chat.
// It is a two-state keyword-driven machine layered over ordinary chat
// turns: Idle until an order-intent phrase arrives, then awaiting a
// yes/no answer to the cart summary it printed.
package bridge

import (
	"context"
	"fmt"
	"log"
	"strings"

	"qrmenu/internal/models"
	"qrmenu/internal/session"
)

// OrderCreator is the persistence collaborator that materializes a
// cart snapshot into a durable order.
type OrderCreator interface {
	CreateOrder(ctx context.Context, tableID uint, sessionID string, lines []session.CartLine) (uint, error)
}

// Bridge interprets order-confirmation intents in chat turns.
type Bridge struct {
	orders   OrderCreator
	classify Classifier
}

// New creates a bridge. A nil classifier falls back to the built-in
// keyword matcher.
func New(orders OrderCreator, classify Classifier) *Bridge {
	if classify == nil {
		classify = KeywordClassifier{}
	}
	return &Bridge{orders: orders, classify: classify}
}

// HandleTurn inspects one customer message. When the bridge consumes
// the message it returns the reply to show and handled=true; otherwise
// the message belongs to the recommendation engine. The caller must
// hold the session lock.
func (b *Bridge) HandleTurn(ctx context.Context, s *session.Session, text string) (string, bool) {
	if s.AwaitingOrderConfirmation {
		return b.handleConfirmation(ctx, s, text), true
	}

	if !b.classify.IsOrderIntent(s.Locale, text) {
		return "", false
	}

	if s.Cart.IsEmpty() {
		return emptyCartMessage(s.Locale), true
	}

	s.AwaitingOrderConfirmation = true
	return cartSummary(s.Locale, s.Cart), true
}

func (b *Bridge) handleConfirmation(ctx context.Context, s *session.Session, text string) string {
	switch b.classify.Confirmation(s.Locale, text) {
	case IntentAffirmative:
		s.AwaitingOrderConfirmation = false
		orderID, err := b.orders.CreateOrder(ctx, s.TableID, s.ID, s.Cart.Lines())
		if err != nil {
			// Cart stays intact so the customer can retry the flow.
			log.Printf("bridge: order creation failed for session %s: %v", s.ID, err)
			return orderFailedMessage(s.Locale)
		}
		s.Cart.Clear()
		return orderPlacedMessage(s.Locale, orderID)

	case IntentNegative:
		s.AwaitingOrderConfirmation = false
		return cancelledMessage(s.Locale)

	default:
		return reminderMessage(s.Locale)
	}
}

// cartSummary renders the itemized confirmation prompt.
func cartSummary(locale models.Locale, cart *session.Cart) string {
	var sb strings.Builder
	if locale == models.LocaleEN {
		sb.WriteString("🛒 **Your Cart:**\n\n")
	} else {
		sb.WriteString("🛒 **Sepetiniz:**\n\n")
	}

	for _, l := range cart.Lines() {
		fmt.Fprintf(&sb, "• %s x%d = %.2f TL\n", l.Name, l.Quantity, l.Subtotal())
	}

	if locale == models.LocaleEN {
		fmt.Fprintf(&sb, "\n**Total:** %.2f TL\n\nWould you like to confirm your order?", cart.Total())
	} else {
		fmt.Fprintf(&sb, "\n**Toplam:** %.2f TL\n\nSiparişi onaylamak istiyor musunuz?", cart.Total())
	}
	return sb.String()
}

func emptyCartMessage(locale models.Locale) string {
	if locale == models.LocaleEN {
		return "Your cart is empty. Add some items from the menu first, then ask me to place the order. 🛒"
	}
	return "Sepetiniz boş. Önce menüden ürün ekleyin, sonra sipariş vermemi isteyin. 🛒"
}

func orderPlacedMessage(locale models.Locale, orderID uint) string {
	if locale == models.LocaleEN {
		return fmt.Sprintf("✅ Your order #%d has been placed! The kitchen has been notified. Enjoy your meal! 🍽️", orderID)
	}
	return fmt.Sprintf("✅ #%d numaralı siparişiniz alındı! Mutfağa iletildi. Afiyet olsun! 🍽️", orderID)
}

func orderFailedMessage(locale models.Locale) string {
	if locale == models.LocaleEN {
		return "⚠️ I couldn't place your order just now. Your cart is untouched — please try confirming again or ask our staff."
	}
	return "⚠️ Siparişinizi şu anda iletemedim. Sepetiniz korundu — lütfen tekrar onaylamayı deneyin veya personelimize bildirin."
}

func cancelledMessage(locale models.Locale) string {
	if locale == models.LocaleEN {
		return "No problem, your order was not placed. Your cart is unchanged — let me know if you'd like anything else. 😊"
	}
	return "Sorun değil, siparişiniz gönderilmedi. Sepetiniz aynen duruyor — başka bir isteğiniz olursa söyleyin. 😊"
}

func reminderMessage(locale models.Locale) string {
	if locale == models.LocaleEN {
		return "Please answer with \"yes\" to confirm your order or \"no\" to cancel."
	}
	return "Lütfen siparişi onaylamak için \"evet\", iptal etmek için \"hayır\" yazın."
}
