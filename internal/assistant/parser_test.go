package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProducts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantIDs []uint
	}{
		{
			name:    "no markers",
			input:   "Bugün çorbalarımız çok taze! 🍲",
			wantIDs: nil,
		},
		{
			name:    "single marker",
			input:   "**Margarita Pizza** [PRODUCT:12] tam size göre!",
			wantIDs: []uint{12},
		},
		{
			name:    "order and duplicates preserved",
			input:   "İlk önerim [PRODUCT:5] sonra [PRODUCT:3] ve yine [PRODUCT:5]",
			wantIDs: []uint{5, 3, 5},
		},
		{
			name:    "malformed markers pass through",
			input:   "Deneyin: [PRODUCT:abc] ve [PRODUCT:] belki [PRODUCT 7]",
			wantIDs: nil,
		},
		{
			name:    "mixed valid and malformed",
			input:   "[PRODUCT:abc] ama [PRODUCT:42] geçerli",
			wantIDs: []uint{42},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ids, _ := ParseProducts(tc.input)
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestParseProductsDisplayText(t *testing.T) {
	raw := `1️⃣ **Çıtır Soğan Halkaları** [PRODUCT:3] – 40 TL
2️⃣ **Akdeniz Salatası** [PRODUCT:22] – 55 TL

Afiyet olsun! 🍴`

	ids, display := ParseProducts(raw)
	assert.Equal(t, []uint{3, 22}, ids)
	assert.NotContains(t, display, "[PRODUCT:")
	assert.Contains(t, display, "**Çıtır Soğan Halkaları** – 40 TL")
	assert.Contains(t, display, "Afiyet olsun! 🍴")
}

func TestParseProductsMalformedUntouched(t *testing.T) {
	raw := "Bakınız [PRODUCT:abc], harika bir seçim."
	_, display := ParseProducts(raw)
	assert.Equal(t, raw, display)
}

func TestParseProductsPreservesFormatting(t *testing.T) {
	// Marker-free text, including aligned columns, must come back as
	// the trimmed input with nothing else rewritten.
	raw := "Fiyat listesi:\nPizza   85 TL\nSalata  75 TL"
	ids, display := ParseProducts(raw)
	assert.Nil(t, ids)
	assert.Equal(t, raw, display)

	// With markers, only the markers (and the space in front of each)
	// disappear; the column spacing elsewhere stays.
	tagged := "Pizza [PRODUCT:1]   85 TL\nSalata [PRODUCT:2]  75 TL"
	ids, display = ParseProducts(tagged)
	assert.Equal(t, []uint{1, 2}, ids)
	assert.Equal(t, "Pizza   85 TL\nSalata  75 TL", display)
}

func TestParseProductsIdempotent(t *testing.T) {
	inputs := []string{
		"[PRODUCT:1] ve [PRODUCT:2] öneririm",
		"markersız düz metin",
		"  [PRODUCT:9]kenar boşluklu  ",
	}

	for _, raw := range inputs {
		_, display := ParseProducts(raw)
		ids, second := ParseProducts(display)
		assert.Empty(t, ids, "markers survived one pass for %q", raw)
		assert.Equal(t, display, second)
	}
}
