// Package rag maintains the embedding index over available menu items
// and serves similarity searches for the recommendation engine.
package rag

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"github.com/tmc/langchaingo/embeddings"

	"qrmenu/internal/models"
)

// DocumentSource supplies the authoritative snapshot of available menu
// items a rebuild starts from.
type DocumentSource interface {
	ListAvailableItems(ctx context.Context) ([]models.MenuDocument, error)
}

// IndexBuildError reports a failed rebuild attempt. The previously
// built index, if any, remains live.
type IndexBuildError struct {
	Reason string
	Err    error
}

func (e *IndexBuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("index build failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("index build failed: %s", e.Reason)
}

func (e *IndexBuildError) Unwrap() error { return e.Err }

// ScoredDocument pairs a retrieved document with its relevance score.
type ScoredDocument struct {
	Document models.MenuDocument
	Score    float32
}

type entry struct {
	doc models.MenuDocument
	vec []float32
}

type snapshot struct {
	entries []entry
}

// Index is the shared, read-mostly embedding index. Searches read the
// current snapshot without locking; Rebuild prepares a fresh snapshot
// off to the side and swaps it in atomically, so readers see either
// the old or the new index but never a half-built one.
type Index struct {
	source   DocumentSource
	embedder embeddings.Embedder
	current  atomic.Pointer[snapshot]
}

func NewIndex(source DocumentSource, embedder embeddings.Embedder) *Index {
	return &Index{source: source, embedder: embedder}
}

// Rebuild re-reads all available menu items, embeds each rendered
// blob, and swaps the result in as the current snapshot. An empty menu
// store or any store/embedder failure aborts the rebuild with an
// IndexBuildError and leaves the previous snapshot serving.
func (ix *Index) Rebuild(ctx context.Context) error {
	docs, err := ix.source.ListAvailableItems(ctx)
	if err != nil {
		return &IndexBuildError{Reason: "menu store unreachable", Err: err}
	}
	if len(docs) == 0 {
		return &IndexBuildError{Reason: "no available menu items to index"}
	}

	blobs := make([]string, len(docs))
	for i, doc := range docs {
		blobs[i] = RenderBlob(doc)
	}

	vectors, err := ix.embedder.EmbedDocuments(ctx, blobs)
	if err != nil {
		return &IndexBuildError{Reason: "embedding failed", Err: err}
	}
	if len(vectors) != len(docs) {
		return &IndexBuildError{Reason: fmt.Sprintf("embedder returned %d vectors for %d documents", len(vectors), len(docs))}
	}

	next := &snapshot{entries: make([]entry, len(docs))}
	for i := range docs {
		next.entries[i] = entry{doc: docs[i], vec: vectors[i]}
	}
	ix.current.Store(next)
	return nil
}

// Search embeds the query with the same embedder used at build time and
// returns up to k documents by descending cosine similarity. An index
// that has never been built returns an empty result, not an error:
// callers are expected to fall back to graceful "nothing matched"
// language.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]ScoredDocument, error) {
	snap := ix.current.Load()
	if snap == nil || len(snap.entries) == 0 || k <= 0 {
		return nil, nil
	}

	qvec, err := ix.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scored := make([]ScoredDocument, 0, len(snap.entries))
	for _, e := range snap.entries {
		scored = append(scored, ScoredDocument{
			Document: e.doc,
			Score:    cosineSimilarity(qvec, e.vec),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < len(scored) {
		scored = scored[:k]
	}
	return scored, nil
}

// Size returns the number of indexed documents in the current snapshot.
func (ix *Index) Size() int {
	if snap := ix.current.Load(); snap != nil {
		return len(snap.entries)
	}
	return 0
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct float32
	var normA float32
	var normB float32

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / float32(math.Sqrt(float64(normA)*float64(normB)))
}
