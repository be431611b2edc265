package embedding

import "context"

// EmbeddingProvider turns text into fixed-dimension vectors for the flat
// index. Dimension must match the index the vectors are added to.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}
