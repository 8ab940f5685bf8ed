package assistant

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"qrmenu/internal/models"
	"qrmenu/internal/rag"
)

const promptTemplateTR = `Sen bir restoran menü asistanısın. Müşterilere menüden yemek önerisi yapıyor ve sorularını cevaplıyorsun.

Restoran Bilgileri:
- İsim: {{.Profile.Name}}
- Hakkında: {{.Profile.About}}
{{- if .Profile.Phone}}
- Telefon: {{.Profile.Phone}}
{{- end}}
{{- if .Profile.Address}}
- Adres: {{.Profile.Address}}
{{- end}}

İşte menüden ilgili ürünler:
{{.MenuItems}}

Müşteri Sorusu: {{.Question}}

Lütfen şu kurallara uy:
1. Samimi ve yardımsever bir dille konuş
2. Fiyatları TL olarak belirt
3. Üründe alerjen varsa mutlaka belirt
4. Vejetaryen/vegan isteyen müşteriye öncelikle vejetaryen/vegan ürünleri öner
5. En fazla 3-4 öneri sun
6. Önerdiğin her ürünün adından hemen sonra [PRODUCT:ID] etiketini ekle
7. Sadece yukarıdaki ürün listesinden öneri yap, listede olmayan ürün uydurma
8. Liste boşsa uygun ürün bulunmadığını açıkça söyle ve mevcut kategorileri öner
9. Emoji kullanarak mesajı renklendir 🍕🥗🍝
10. SADECE TÜRKÇE yanıt ver

Cevap:`

const promptTemplateEN = `You are a restaurant menu assistant. You help customers with menu recommendations and answer their questions.

Restaurant Information:
- Name: {{.Profile.Name}}
- About: {{.Profile.About}}
{{- if .Profile.Phone}}
- Phone: {{.Profile.Phone}}
{{- end}}
{{- if .Profile.Address}}
- Address: {{.Profile.Address}}
{{- end}}

Here are the relevant items from the menu:
{{.MenuItems}}

Customer Question: {{.Question}}

Please follow these rules:
1. Speak in a friendly and helpful manner
2. State prices in TL
3. Always mention allergens when an item has them
4. Prioritize vegetarian/vegan items for customers who ask for them
5. Suggest a maximum of 3-4 recommendations
6. Put a [PRODUCT:ID] tag immediately after the name of every item you recommend
7. Only recommend items from the list above, never invent items that are not listed
8. If the list is empty, clearly state that nothing matches and suggest the available categories
9. Use emojis to make the message colorful 🍕🥗🍝
10. RESPOND IN ENGLISH ONLY

Answer:`

var promptTemplates = map[models.Locale]*template.Template{
	models.LocaleTR: template.Must(template.New("prompt_tr").Parse(promptTemplateTR)),
	models.LocaleEN: template.Must(template.New("prompt_en").Parse(promptTemplateEN)),
}

type promptData struct {
	Profile   models.Profile
	MenuItems string
	Question  string
}

// buildPrompt renders the locale-specific prompt around the filtered
// candidate list and the raw customer question.
func buildPrompt(locale models.Locale, profile models.Profile, candidates []rag.ScoredDocument, question string) (string, error) {
	tmpl, ok := promptTemplates[locale]
	if !ok {
		tmpl = promptTemplates[models.LocaleTR]
	}

	var sb strings.Builder
	err := tmpl.Execute(&sb, promptData{
		Profile:   profile,
		MenuItems: formatCandidates(candidates, locale),
		Question:  question,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return sb.String(), nil
}

// formatCandidates renders each candidate with its identifier, name,
// category, price, and a content excerpt. An empty candidate list
// renders the explicit no-match line the prompt rules refer to.
func formatCandidates(candidates []rag.ScoredDocument, locale models.Locale) string {
	if len(candidates) == 0 {
		if locale == models.LocaleEN {
			return "No items found matching these criteria. Please choose from our available categories."
		}
		return "Menüde bu kriterlere uygun ürün bulunamadı. Lütfen mevcut kategorilerimizden seçim yapın."
	}

	categories := make(map[string]struct{})
	for _, c := range candidates {
		if c.Document.Category != "" {
			categories[c.Document.Category] = struct{}{}
		}
	}

	var sb strings.Builder
	if len(categories) > 0 {
		names := make([]string, 0, len(categories))
		for name := range categories {
			names = append(names, name)
		}
		sort.Strings(names)
		if locale == models.LocaleEN {
			fmt.Fprintf(&sb, "📋 Found categories: %s\n\n", strings.Join(names, ", "))
		} else {
			fmt.Fprintf(&sb, "📋 Bulunan kategoriler: %s\n\n", strings.Join(names, ", "))
		}
	}

	for i, c := range candidates {
		doc := c.Document
		if locale == models.LocaleEN {
			fmt.Fprintf(&sb, "%d. %s (ID: %d)\n   - Category: %s\n   - Price: %.2f TL\n   - Description: %s\n",
				i+1, doc.Name(locale), doc.ID, doc.Category, doc.Price, excerpt(rag.RenderBlob(doc), 200))
		} else {
			fmt.Fprintf(&sb, "%d. %s (ID: %d)\n   - Kategori: %s\n   - Fiyat: %.2f TL\n   - Açıklama: %s\n",
				i+1, doc.Name(locale), doc.ID, doc.Category, doc.Price, excerpt(rag.RenderBlob(doc), 200))
		}
	}
	return sb.String()
}

func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
