package rag

import (
	"fmt"
	"strings"

	"qrmenu/internal/models"
)

// RenderBlob flattens a menu document into the single text blob that
// gets embedded. Dietary features are mentioned only when they apply,
// so their absence in the blob signals their absence on the dish. The
// blob blends both name locales, which lets one index answer queries
// in either language.
func RenderBlob(doc models.MenuDocument) string {
	name := doc.NameTR
	if doc.NameEN != "" && doc.NameEN != doc.NameTR {
		name = fmt.Sprintf("%s (%s)", doc.NameTR, doc.NameEN)
	}

	parts := []string{
		fmt.Sprintf("Yemek Adı: %s", name),
		fmt.Sprintf("Kategori: %s", doc.Category),
		fmt.Sprintf("Açıklama: %s", doc.Description),
		fmt.Sprintf("Fiyat: %.2f TL", doc.Price),
	}

	if doc.IsVegetarian {
		parts = append(parts, "Vejetaryen uyumlu")
	}
	if doc.IsVegan {
		parts = append(parts, "Vegan uyumlu")
	}
	if doc.IsSpicy {
		parts = append(parts, fmt.Sprintf("Acılık seviyesi: %d/5", doc.SpiceLevel))
	}
	if len(doc.Allergens) > 0 {
		parts = append(parts, fmt.Sprintf("Alerjenler: %s", strings.Join(doc.Allergens, ", ")))
	}
	if doc.Ingredients != "" {
		parts = append(parts, fmt.Sprintf("İçindekiler: %s", doc.Ingredients))
	}

	return strings.Join(parts, " | ")
}
