package implementation

import (
	"context"
	"errors"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/mapper"
	"ai-bankassist-be/internal/model"
	"ai-bankassist-be/internal/repository/contract"
	"ai-bankassist-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChannelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChannelMapper
}

func NewChannelRepository(db *gorm.DB) contract.ChannelRepository {
	return &ChannelRepositoryImpl{
		db:     db,
		mapper: mapper.NewChannelMapper(),
	}
}

func (r *ChannelRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChannelRepositoryImpl) Create(ctx context.Context, channel *entity.Channel) error {
	m := r.mapper.ToModel(channel)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	channel.CreatedAt = m.CreatedAt
	return nil
}

func (r *ChannelRepositoryImpl) Update(ctx context.Context, channel *entity.Channel) error {
	m := r.mapper.ToModel(channel)
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *ChannelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Channel, error) {
	var m model.Channel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChannelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Channel, error) {
	var models []*model.Channel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChannelRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Channel{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
