package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleEN, ParseLocale("en"))
	assert.Equal(t, LocaleTR, ParseLocale("tr"))
	assert.Equal(t, LocaleTR, ParseLocale(""))
	assert.Equal(t, LocaleTR, ParseLocale("de"))
}

func TestLocalizedName(t *testing.T) {
	item := &MenuItem{NameTR: "Mercimek Çorbası", NameEN: "Lentil Soup"}
	assert.Equal(t, "Lentil Soup", item.LocalizedName(LocaleEN))
	assert.Equal(t, "Mercimek Çorbası", item.LocalizedName(LocaleTR))

	// Missing translation falls back to Turkish.
	item.NameEN = ""
	assert.Equal(t, "Mercimek Çorbası", item.LocalizedName(LocaleEN))
}

func TestAllergenList(t *testing.T) {
	item := &MenuItem{Allergens: "Gluten, DAIRY , nuts,,"}
	assert.Equal(t, []string{"gluten", "dairy", "nuts"}, item.AllergenList())

	item.Allergens = "  "
	assert.Nil(t, item.AllergenList())
}

func TestValidateMenuItem(t *testing.T) {
	valid := &MenuItem{NameTR: "Pizza", Price: 85, SpiceLevel: 2}
	assert.NoError(t, ValidateMenuItem(valid))

	assert.Error(t, ValidateMenuItem(&MenuItem{Price: 85}))
	assert.Error(t, ValidateMenuItem(&MenuItem{NameTR: "Pizza"}))
	assert.Error(t, ValidateMenuItem(&MenuItem{NameTR: "Pizza", Price: -5}))
	assert.Error(t, ValidateMenuItem(&MenuItem{NameTR: "Pizza", Price: 85, SpiceLevel: 6}))
}

func TestHasAnyAllergen(t *testing.T) {
	doc := MenuDocument{Allergens: []string{"gluten", "dairy"}}

	assert.True(t, doc.HasAnyAllergen([]string{"dairy"}))
	assert.True(t, doc.HasAnyAllergen([]string{" DAIRY "}))
	assert.False(t, doc.HasAnyAllergen([]string{"nuts"}))
	assert.False(t, doc.HasAnyAllergen(nil))
	assert.False(t, MenuDocument{}.HasAnyAllergen([]string{"gluten"}))
}

func TestDocumentFromItem(t *testing.T) {
	item := &MenuItem{
		NameTR:       "Acılı Tavuk Burger",
		NameEN:       "Spicy Chicken Burger",
		CategoryID:   3,
		Category:     Category{NameTR: "Burger"},
		Price:        95,
		IsSpicy:      true,
		SpiceLevel:   4,
		Allergens:    "Gluten, Egg",
		IsAvailable:  true,
		IsVegetarian: false,
	}
	item.ID = 12

	doc := DocumentFromItem(item)
	assert.Equal(t, uint(12), doc.ID)
	assert.Equal(t, uint(3), doc.CategoryID)
	assert.Equal(t, "Burger", doc.Category)
	assert.Equal(t, []string{"gluten", "egg"}, doc.Allergens)
	assert.True(t, doc.Available)
	assert.Equal(t, "Spicy Chicken Burger", doc.Name(LocaleEN))
}

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusReceived, OrderStatusPreparing, true},
		{OrderStatusReceived, OrderStatusCancelled, true},
		{OrderStatusReceived, OrderStatusReady, false},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusReceived, false},
		{OrderStatusReady, OrderStatusDelivered, true},
		{OrderStatusReady, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusReceived, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ValidTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
