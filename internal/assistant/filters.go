package assistant

import "qrmenu/internal/rag"

// Filters narrows a retrieved candidate set. Every field is optional;
// a zero Filters passes everything through. Filtering never re-queries
// the index, so contradictory filters simply produce an empty set.
type Filters struct {
	VegetarianOnly   bool
	VeganOnly        bool
	MaxPrice         *float64
	ExcludeAllergens []string
}

// Apply returns the candidates that satisfy every active constraint,
// preserving retrieval order.
func (f *Filters) Apply(candidates []rag.ScoredDocument) []rag.ScoredDocument {
	if f == nil {
		return candidates
	}

	kept := make([]rag.ScoredDocument, 0, len(candidates))
	for _, c := range candidates {
		doc := c.Document
		if f.VegetarianOnly && !doc.IsVegetarian {
			continue
		}
		if f.VeganOnly && !doc.IsVegan {
			continue
		}
		if f.MaxPrice != nil && doc.Price > *f.MaxPrice {
			continue
		}
		if doc.HasAnyAllergen(f.ExcludeAllergens) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
