package providers

import "context"

// Provider is the text-generation backend used by the recommendation
// engine. Implementations perform a single blocking model call; the
// engine handles timeouts through ctx and never retries.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
