package providers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider generates completions against a local Ollama server.
type OllamaProvider struct {
	llm         *ollama.LLM
	temperature float64
	maxTokens   int
}

// NewOllamaProvider creates a provider for the given model. serverURL
// may be empty, in which case the client uses the Ollama default.
func NewOllamaProvider(model, serverURL string, temperature float64, maxTokens int) (*OllamaProvider, error) {
	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	return &OllamaProvider{
		llm:         llm,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Complete implements the Provider interface.
func (p *OllamaProvider) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, p.llm, prompt,
		llms.WithTemperature(p.temperature),
		llms.WithMaxTokens(p.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("ollama completion failed: %w", err)
	}
	return out, nil
}
