package contract

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
)

type ChannelDetailRepository interface {
	CreateBatch(ctx context.Context, details []*entity.ChannelDetail) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChannelDetail, error)
}
