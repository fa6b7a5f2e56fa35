package embedding

import (
	"context"
	"fmt"

	"github.com/nikhilbhutani/semchunk/pkg/chunker"
)

// Service batches embedding calls against a Provider.
type Service struct {
	provider Provider
	model    string
}

func NewService(p Provider, model string) *Service {
	return &Service{provider: p, model: model}
}

// Embed embeds texts and returns one vector per text, in order.
func (s *Service) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	// Batch in groups of 100 for API limits
	const batchSize = 100
	var allEmbeddings [][]float32

	for i := 0; i < len(texts); i += batchSize {
		end := i + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		resp, err := s.provider.Embed(ctx, Request{
			Model: s.model,
			Input: texts[i:end],
		})
		if err != nil {
			return nil, fmt.Errorf("embed batch %d: %w", i/batchSize, err)
		}

		allEmbeddings = append(allEmbeddings, resp.Embeddings...)
	}

	return allEmbeddings, nil
}

// EmbedFunc adapts the service to the chunking engine's injected
// collaborator signature.
func (s *Service) EmbedFunc() chunker.EmbedFunc {
	return s.Embed
}
