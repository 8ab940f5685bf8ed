// Package assistant turns customer questions into menu recommendations:
// it retrieves candidates from the embedding index, narrows them with
// the customer's dietary filters, renders a locale-specific prompt, and
// hands the model's raw answer back to the chat surface.
package assistant

import (
	"context"
	"log"
	"time"

	"qrmenu/internal/assistant/providers"
	"qrmenu/internal/models"
	"qrmenu/internal/monitoring"
	"qrmenu/internal/rag"
)

const defaultTopK = 5

// Searcher is the retrieval side of the embedding index.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]rag.ScoredDocument, error)
}

// ProfileSource supplies the restaurant identity block for prompts.
type ProfileSource interface {
	RestaurantProfile(ctx context.Context, locale models.Locale) (models.Profile, error)
}

// Engine is the recommendation pipeline. All failures below its
// boundary are absorbed into the locale's static fallback message; the
// caller never sees an error from Recommend.
type Engine struct {
	searcher Searcher
	profiles ProfileSource
	provider providers.Provider
	metrics  *monitoring.Metrics
	topK     int
}

func NewEngine(searcher Searcher, profiles ProfileSource, provider providers.Provider, metrics *monitoring.Metrics) *Engine {
	return &Engine{
		searcher: searcher,
		profiles: profiles,
		provider: provider,
		metrics:  metrics,
		topK:     defaultTopK,
	}
}

// Recommend answers a customer question. An empty retrieval result is
// not a failure: the prompt instructs the model to say nothing matched
// and to point at the available categories instead.
func (e *Engine) Recommend(ctx context.Context, query string, locale models.Locale, filters *Filters) string {
	retrievalStart := time.Now()
	candidates, err := e.searcher.Search(ctx, query, e.topK)
	e.metrics.ObserveRetrieval(time.Since(retrievalStart))
	if err != nil {
		log.Printf("assistant: retrieval failed: %v", err)
		return e.fallback(locale)
	}

	filtered := filters.Apply(candidates)

	profile, err := e.profiles.RestaurantProfile(ctx, locale)
	if err != nil {
		log.Printf("assistant: profile lookup failed: %v", err)
		return e.fallback(locale)
	}

	prompt, err := buildPrompt(locale, profile, filtered, query)
	if err != nil {
		log.Printf("assistant: prompt rendering failed: %v", err)
		return e.fallback(locale)
	}

	generationStart := time.Now()
	answer, err := e.provider.Complete(ctx, prompt)
	e.metrics.ObserveGeneration(time.Since(generationStart))
	if err != nil {
		log.Printf("assistant: generation failed: %v", err)
		e.metrics.GenerationFailed()
		return e.fallback(locale)
	}

	e.metrics.RecommendationServed(string(locale), false)
	return answer
}

func (e *Engine) fallback(locale models.Locale) string {
	e.metrics.RecommendationServed(string(locale), true)
	return FallbackMessage(locale)
}
