package contract

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
)

type KbDocRepository interface {
	Create(ctx context.Context, doc *entity.KbDoc) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KbDoc, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KbDoc, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
