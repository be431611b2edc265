package retrieval

import (
	"context"
	"fmt"
	"log"

	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/pkg/embedding"
	"ai-bankassist-be/pkg/vector"
)

const snippetLength = 200

// Chunk is one retrieved KB passage.
type Chunk struct {
	Content string
	Doc     string
	Page    *int
	Score   float64
}

// Retriever embeds a query and searches the tenant's flat index.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	registry *vector.Registry
	logger   *log.Logger
}

func NewRetriever(embedder embedding.EmbeddingProvider, registry *vector.Registry, logger *log.Logger) *Retriever {
	return &Retriever{
		embedder: embedder,
		registry: registry,
		logger:   logger,
	}
}

// Retrieve returns the top-k chunks for the query within one tenant's
// index, plus one citation per chunk. Filters are exact-match against
// chunk metadata.
func (r *Retriever) Retrieve(ctx context.Context, query, tenant string, k int, filters map[string]interface{}) ([]Chunk, []dto.CitationDTO, error) {
	idx, err := r.registry.Get(tenant)
	if err != nil {
		return nil, nil, err
	}
	if idx.Len() == 0 {
		return nil, nil, nil
	}

	queryVector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := idx.Search(queryVector, k, vector.Metadata(filters))
	if err != nil {
		return nil, nil, err
	}

	chunks := make([]Chunk, 0, len(results))
	citations := make([]dto.CitationDTO, 0, len(results))
	for _, res := range results {
		chunk := chunkFromMetadata(res.Metadata, res.Score)
		chunks = append(chunks, chunk)
		citations = append(citations, citationFor(chunk))
	}

	r.logger.Printf("[RETRIEVE] tenant=%s k=%d hits=%d query=%q", tenant, k, len(chunks), truncate(query, 80))
	return chunks, citations, nil
}

func chunkFromMetadata(md vector.Metadata, score float64) Chunk {
	chunk := Chunk{Score: score}
	if v, ok := md["content"].(string); ok {
		chunk.Content = v
	}
	if v, ok := md["doc"].(string); ok {
		chunk.Doc = v
	}
	// JSON round-trips numbers as float64
	if v, ok := md["page"].(float64); ok {
		page := int(v)
		chunk.Page = &page
	} else if v, ok := md["page"].(int); ok {
		page := v
		chunk.Page = &page
	}
	return chunk
}

func citationFor(chunk Chunk) dto.CitationDTO {
	score := chunk.Score
	return dto.CitationDTO{
		Doc:     chunk.Doc,
		Page:    chunk.Page,
		Snippet: snippet(chunk.Content),
		Score:   &score,
	}
}

func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return string(runes[:snippetLength]) + "..."
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
