// Package orders persists confirmed orders and backs the staff order
// screens and daily reports.
package orders

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"qrmenu/internal/models"
	"qrmenu/internal/monitoring"
	"qrmenu/internal/session"
)

// OrderCreationError reports a persistence fault while creating an
// order. The caller keeps the cart intact so the customer can retry.
type OrderCreationError struct {
	Err error
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("order creation failed: %v", e.Err)
}

func (e *OrderCreationError) Unwrap() error { return e.Err }

// Repository persists orders through GORM.
type Repository struct {
	db      *gorm.DB
	metrics *monitoring.Metrics
}

func NewRepository(db *gorm.DB, metrics *monitoring.Metrics) *Repository {
	return &Repository{db: db, metrics: metrics}
}

// CreateOrder materializes a cart snapshot into a durable order with
// its lines inside one transaction and returns the new order id. Any
// fault rolls the whole order back and surfaces as OrderCreationError.
func (r *Repository) CreateOrder(ctx context.Context, tableID uint, sessionID string, lines []session.CartLine) (uint, error) {
	if len(lines) == 0 {
		return 0, &OrderCreationError{Err: fmt.Errorf("empty cart")}
	}

	order := models.Order{
		TableID:   tableID,
		SessionID: sessionID,
		Status:    string(models.OrderStatusReceived),
	}
	for _, l := range lines {
		order.Total += l.Subtotal()
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: l.ItemID,
			Name:       l.Name,
			UnitPrice:  l.UnitPrice,
			Quantity:   l.Quantity,
			Note:       l.Note,
		})
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		r.metrics.OrderFailed()
		return 0, &OrderCreationError{Err: tx.Error}
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		r.metrics.OrderFailed()
		return 0, &OrderCreationError{Err: err}
	}
	if err := tx.Commit().Error; err != nil {
		r.metrics.OrderFailed()
		return 0, &OrderCreationError{Err: err}
	}

	r.metrics.OrderCreated()
	return order.ID, nil
}

// UpdateStatus moves an order along the kitchen workflow, rejecting
// transitions the workflow does not allow.
func (r *Repository) UpdateStatus(ctx context.Context, orderID uint, to models.OrderStatus) error {
	var order models.Order
	if err := r.db.First(&order, orderID).Error; err != nil {
		return fmt.Errorf("failed to load order %d: %w", orderID, err)
	}

	if !models.ValidTransition(models.OrderStatus(order.Status), to) {
		return fmt.Errorf("invalid status transition %s -> %s for order %d", order.Status, to, orderID)
	}

	return r.db.Model(&order).Update("status", string(to)).Error
}

// ListActive returns all orders that still need kitchen attention,
// oldest first, with their lines preloaded.
func (r *Repository) ListActive(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := r.db.Preload("Items").
		Where("status IN (?)", []string{
			string(models.OrderStatusReceived),
			string(models.OrderStatusPreparing),
			string(models.OrderStatusReady),
		}).
		Order("created_at").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active orders: %w", err)
	}
	return out, nil
}
