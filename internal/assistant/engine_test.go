package assistant

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"qrmenu/internal/models"
	"qrmenu/internal/rag"
)

type stubSearcher struct {
	results []rag.ScoredDocument
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string, k int) ([]rag.ScoredDocument, error) {
	return s.results, s.err
}

type stubProfiles struct {
	err error
}

func (s *stubProfiles) RestaurantProfile(ctx context.Context, locale models.Locale) (models.Profile, error) {
	if s.err != nil {
		return models.Profile{}, s.err
	}
	return models.Profile{Name: "La Pizza Bella", About: "Aile restoranı"}, nil
}

// stubProvider captures the prompt it was given so tests can assert on
// prompt construction without a live model.
type stubProvider struct {
	prompt string
	reply  string
	err    error
}

func (p *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	p.prompt = prompt
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func TestRecommendHappyPath(t *testing.T) {
	searcher := &stubSearcher{results: candidateSet()}
	provider := &stubProvider{reply: "**Margarita** [PRODUCT:1] öneririm! 🍕"}
	engine := NewEngine(searcher, &stubProfiles{}, provider, nil)

	answer := engine.Recommend(context.Background(), "vejetaryen pizza var mı?", models.LocaleTR, nil)

	assert.Equal(t, "**Margarita** [PRODUCT:1] öneririm! 🍕", answer)
	assert.Contains(t, provider.prompt, "La Pizza Bella")
	assert.Contains(t, provider.prompt, "vejetaryen pizza var mı?")
	assert.Contains(t, provider.prompt, "Margarita (ID: 1)")
	assert.Contains(t, provider.prompt, "SADECE TÜRKÇE")
}

func TestRecommendEmptyCandidatesPromptsNoMatch(t *testing.T) {
	provider := &stubProvider{reply: "Üzgünüm, uygun ürün bulamadım."}
	engine := NewEngine(&stubSearcher{}, &stubProfiles{}, provider, nil)

	engine.Recommend(context.Background(), "100 yıllık şarap", models.LocaleTR, nil)
	assert.Contains(t, provider.prompt, "uygun ürün bulunamadı")

	engine.Recommend(context.Background(), "hundred year old wine", models.LocaleEN, nil)
	assert.Contains(t, provider.prompt, "No items found matching these criteria")
}

func TestRecommendFiltersNarrowPrompt(t *testing.T) {
	provider := &stubProvider{reply: "ok"}
	engine := NewEngine(&stubSearcher{results: candidateSet()}, &stubProfiles{}, provider, nil)

	engine.Recommend(context.Background(), "vegan bir şey", models.LocaleTR, &Filters{VeganOnly: true})

	assert.Contains(t, provider.prompt, "Vegan Kase")
	assert.NotContains(t, provider.prompt, "Tavuk Burger")
}

func TestRecommendNeverSurfacesErrors(t *testing.T) {
	tests := []struct {
		name   string
		engine *Engine
	}{
		{
			name:   "retrieval failure",
			engine: NewEngine(&stubSearcher{err: fmt.Errorf("index gone")}, &stubProfiles{}, &stubProvider{reply: "ok"}, nil),
		},
		{
			name:   "profile lookup failure",
			engine: NewEngine(&stubSearcher{results: candidateSet()}, &stubProfiles{err: fmt.Errorf("db gone")}, &stubProvider{reply: "ok"}, nil),
		},
		{
			name:   "generation failure",
			engine: NewEngine(&stubSearcher{results: candidateSet()}, &stubProfiles{}, &stubProvider{err: fmt.Errorf("model timeout")}, nil),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, locale := range []models.Locale{models.LocaleTR, models.LocaleEN} {
				answer := tc.engine.Recommend(context.Background(), "ne önerirsin?", locale, nil)
				assert.Equal(t, FallbackMessage(locale), answer)
			}
		})
	}
}
