package models

import "strings"

// MenuDocument is the read-only view of a menu item handed to the
// retrieval index and the assistant. It is derived from a MenuItem
// record, never stored on its own.
type MenuDocument struct {
	ID           uint
	NameTR       string
	NameEN       string
	CategoryID   uint
	Category     string
	Description  string
	Price        float64
	IsVegetarian bool
	IsVegan      bool
	IsSpicy      bool
	SpiceLevel   int
	Allergens    []string
	Ingredients  string
	Available    bool
}

// Name returns the display name for the requested locale.
func (d MenuDocument) Name(locale Locale) string {
	if locale == LocaleEN && d.NameEN != "" {
		return d.NameEN
	}
	return d.NameTR
}

// HasAnyAllergen reports whether the document lists at least one of the
// given allergen tokens. Matching is case-insensitive on already
// normalized tokens.
func (d MenuDocument) HasAnyAllergen(exclude []string) bool {
	if len(d.Allergens) == 0 || len(exclude) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(d.Allergens))
	for _, a := range d.Allergens {
		set[a] = struct{}{}
	}
	for _, e := range exclude {
		if _, ok := set[strings.TrimSpace(strings.ToLower(e))]; ok {
			return true
		}
	}
	return false
}

// DocumentFromItem builds the retrieval view of a persisted menu item.
func DocumentFromItem(item *MenuItem) MenuDocument {
	return MenuDocument{
		ID:           item.ID,
		NameTR:       item.NameTR,
		NameEN:       item.NameEN,
		CategoryID:   item.CategoryID,
		Category:     item.Category.NameTR,
		Description:  item.Description,
		Price:        item.Price,
		IsVegetarian: item.IsVegetarian,
		IsVegan:      item.IsVegan,
		IsSpicy:      item.IsSpicy,
		SpiceLevel:   item.SpiceLevel,
		Allergens:    item.AllergenList(),
		Ingredients:  item.Ingredients,
		Available:    item.IsAvailable,
	}
}
