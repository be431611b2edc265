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

type KbDocRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KbMapper
}

func NewKbDocRepository(db *gorm.DB) contract.KbDocRepository {
	return &KbDocRepositoryImpl{
		db:     db,
		mapper: mapper.NewKbMapper(),
	}
}

func (r *KbDocRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KbDocRepositoryImpl) Create(ctx context.Context, doc *entity.KbDoc) error {
	m := r.mapper.DocToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	doc.Id = m.Id
	doc.CreatedAt = m.CreatedAt
	return nil
}

func (r *KbDocRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.KbDoc{}, "id = ?", id).Error
}

func (r *KbDocRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KbDoc, error) {
	var m model.KbDoc
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DocToEntity(&m), nil
}

func (r *KbDocRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KbDoc, error) {
	var models []*model.KbDoc
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.KbDoc, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.mapper.DocToEntity(m))
	}
	return entities, nil
}

func (r *KbDocRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KbDoc{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
