package contract

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
)

type KbChunkRepository interface {
	CreateBatch(ctx context.Context, chunks []*entity.KbChunk) error
	DeleteAllByDocId(ctx context.Context, docId int64) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KbChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
