package entity

import "time"

// KbChunk is one chunk of an ingested document. Embeddings are not stored
// here; they live in the per-tenant flat vector index.
type KbChunk struct {
	Id         int64
	DocId      int64
	Content    string
	ChunkIndex int
	PageNumber *int
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}
