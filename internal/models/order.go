package models

import "github.com/jinzhu/gorm"

// Order is a confirmed customer order created from a pending cart.
type Order struct {
	gorm.Model
	TableID   uint
	SessionID string
	Status    string `gorm:"default:'received'"`
	Total     float64
	Items     []OrderItem `gorm:"foreignkey:OrderID"`
}

// OrderItem is one line of an order. Name and unit price are snapshots
// taken at confirmation time so later menu edits do not rewrite history.
type OrderItem struct {
	gorm.Model
	OrderID    uint
	MenuItemID uint
	Name       string
	UnitPrice  float64
	Quantity   int
	Note       string
}

// OrderStatus represents the possible states of an order.
type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidTransition reports whether an order may move from one status to another.
func ValidTransition(from, to OrderStatus) bool {
	switch from {
	case OrderStatusReceived:
		return to == OrderStatusPreparing || to == OrderStatusCancelled
	case OrderStatusPreparing:
		return to == OrderStatusReady || to == OrderStatusCancelled
	case OrderStatusReady:
		return to == OrderStatusDelivered
	default:
		return false
	}
}
