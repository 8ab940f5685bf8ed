package models

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
)

// Category groups menu items on the customer menu screen.
type Category struct {
	gorm.Model
	NameTR    string `gorm:"not null"`
	NameEN    string
	SortOrder int
	IsActive  bool `gorm:"default:true"`
}

// MenuItem represents a dish on the menu as persisted by the admin panel.
type MenuItem struct {
	gorm.Model
	NameTR       string `gorm:"not null"`
	NameEN       string
	Description  string
	CategoryID   uint
	Category     Category
	Price        float64
	IsVegetarian bool
	IsVegan      bool
	IsSpicy      bool
	SpiceLevel   int    // 0-5, meaningful only when IsSpicy
	Allergens    string // comma-separated tokens, e.g. "gluten,dairy"
	Ingredients  string
	ImageURL     string
	Rating       float64
	IsAvailable  bool `gorm:"default:true"`
}

// LocalizedName returns the item name in the requested locale,
// falling back to Turkish when no English name was entered.
func (mi *MenuItem) LocalizedName(locale Locale) string {
	if locale == LocaleEN && mi.NameEN != "" {
		return mi.NameEN
	}
	return mi.NameTR
}

// AllergenList splits the stored allergen field into clean tokens.
func (mi *MenuItem) AllergenList() []string {
	return splitAllergens(mi.Allergens)
}

// ValidateMenuItem checks the fields the admin form must always provide.
func ValidateMenuItem(item *MenuItem) error {
	if item.NameTR == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.Price <= 0 {
		return fmt.Errorf("menu item price must be greater than 0")
	}
	if item.SpiceLevel < 0 || item.SpiceLevel > 5 {
		return fmt.Errorf("spice level must be between 0 and 5")
	}
	return nil
}

func splitAllergens(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(strings.ToLower(p)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
