// Package store exposes the read-only menu view consumed by the
// retrieval index and the assistant.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"

	"qrmenu/internal/models"
)

// ErrItemNotFound is returned when an identifier no longer resolves to
// an existing, available menu item. Callers treat this as a normal
// outcome: the assistant may reference items deleted after the index
// was built.
var ErrItemNotFound = errors.New("menu item not found")

// MenuStore reads menu documents and the restaurant profile from the
// relational schema.
type MenuStore struct {
	db *gorm.DB
}

func NewMenuStore(db *gorm.DB) *MenuStore {
	return &MenuStore{db: db}
}

// ListAvailableItems returns documents for every available menu item.
// Unavailable and deleted items are never part of the result, which is
// what keeps them out of the retrieval index after a rebuild.
func (s *MenuStore) ListAvailableItems(ctx context.Context) ([]models.MenuDocument, error) {
	var items []models.MenuItem
	err := s.db.Preload("Category").
		Where("is_available = ?", true).
		Order("category_id, id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	docs := make([]models.MenuDocument, 0, len(items))
	for i := range items {
		docs = append(docs, models.DocumentFromItem(&items[i]))
	}
	return docs, nil
}

// GetItem resolves a single available item by its stable identifier.
func (s *MenuStore) GetItem(ctx context.Context, id uint) (models.MenuDocument, error) {
	var item models.MenuItem
	err := s.db.Preload("Category").
		Where("id = ? AND is_available = ?", id, true).
		First(&item).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.MenuDocument{}, ErrItemNotFound
	}
	if err != nil {
		return models.MenuDocument{}, fmt.Errorf("failed to load menu item %d: %w", id, err)
	}
	return models.DocumentFromItem(&item), nil
}

// RestaurantProfile returns the locale-resolved identity block.
func (s *MenuStore) RestaurantProfile(ctx context.Context, locale models.Locale) (models.Profile, error) {
	var r models.Restaurant
	if err := s.db.First(&r).Error; err != nil {
		return models.Profile{}, fmt.Errorf("failed to load restaurant profile: %w", err)
	}
	return r.ProfileFor(locale), nil
}
