package contract

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/repository/specification"
)

type ChannelRepository interface {
	Create(ctx context.Context, channel *entity.Channel) error
	Update(ctx context.Context, channel *entity.Channel) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Channel, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Channel, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
