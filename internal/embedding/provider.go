package embedding

import "context"

// Provider abstracts an embedding backend (OpenAI, Ollama, etc.)
type Provider interface {
	Embed(ctx context.Context, req Request) (*Response, error)
	Name() string
}

// Request is the input for embedding generation.
type Request struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// Response is the output from embedding generation. Embeddings match the
// input in length and order.
type Response struct {
	Provider   string      `json:"provider"`
	Model      string      `json:"model"`
	Embeddings [][]float32 `json:"embeddings"`
	Tokens     int         `json:"tokens"`
}
