package implementation

import (
	"context"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/mapper"
	"ai-bankassist-be/internal/model"
	"ai-bankassist-be/internal/repository/contract"
	"ai-bankassist-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChannelDetailRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChannelMapper
}

func NewChannelDetailRepository(db *gorm.DB) contract.ChannelDetailRepository {
	return &ChannelDetailRepositoryImpl{
		db:     db,
		mapper: mapper.NewChannelMapper(),
	}
}

func (r *ChannelDetailRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChannelDetailRepositoryImpl) CreateBatch(ctx context.Context, details []*entity.ChannelDetail) error {
	if len(details) == 0 {
		return nil
	}
	models := make([]*model.ChannelDetail, 0, len(details))
	for _, d := range details {
		models = append(models, r.mapper.DetailToModel(d))
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		details[i].Id = m.Id
	}
	return nil
}

func (r *ChannelDetailRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChannelDetail, error) {
	var models []*model.ChannelDetail
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.DetailToEntities(models), nil
}
