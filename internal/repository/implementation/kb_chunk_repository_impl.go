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

type KbChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KbMapper
}

func NewKbChunkRepository(db *gorm.DB) contract.KbChunkRepository {
	return &KbChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewKbMapper(),
	}
}

func (r *KbChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KbChunkRepositoryImpl) CreateBatch(ctx context.Context, chunks []*entity.KbChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.KbChunk, 0, len(chunks))
	for _, c := range chunks {
		models = append(models, r.mapper.ChunkToModel(c))
	}
	return r.db.WithContext(ctx).CreateInBatches(&models, 100).Error
}

func (r *KbChunkRepositoryImpl) DeleteAllByDocId(ctx context.Context, docId int64) error {
	return r.db.WithContext(ctx).Where("doc_id = ?", docId).Delete(&model.KbChunk{}).Error
}

func (r *KbChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KbChunk, error) {
	var models []*model.KbChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.KbChunk, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.mapper.ChunkToEntity(m))
	}
	return entities, nil
}

func (r *KbChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KbChunk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
