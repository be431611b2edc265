package mapper

import (
	"encoding/json"
	"time"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/model"

	"gorm.io/datatypes"
)

type KbMapper struct{}

func NewKbMapper() *KbMapper {
	return &KbMapper{}
}

func (m *KbMapper) DocToEntity(d *model.KbDoc) *entity.KbDoc {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	e := &entity.KbDoc{
		Id:         d.Id,
		Path:       d.Path,
		Filename:   d.Filename,
		DocType:    d.DocType,
		Tenant:     d.Tenant,
		Department: d.Department,
		Country:    d.Country,
		Version:    d.Version,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  updatedAt,
	}

	for i := range d.Chunks {
		e.Chunks = append(e.Chunks, m.ChunkToEntity(&d.Chunks[i]))
	}

	return e
}

func (m *KbMapper) DocToModel(d *entity.KbDoc) *model.KbDoc {
	if d == nil {
		return nil
	}

	return &model.KbDoc{
		Id:         d.Id,
		Path:       d.Path,
		Filename:   d.Filename,
		DocType:    d.DocType,
		Tenant:     d.Tenant,
		Department: d.Department,
		Country:    d.Country,
		Version:    d.Version,
	}
}

func (m *KbMapper) ChunkToEntity(c *model.KbChunk) *entity.KbChunk {
	if c == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(c.Metadata) > 0 {
		// Best effort; a corrupt metadata blob should not fail a read
		_ = json.Unmarshal(c.Metadata, &metadata)
	}

	return &entity.KbChunk{
		Id:         c.Id,
		DocId:      c.DocId,
		Content:    c.Content,
		ChunkIndex: c.ChunkIndex,
		PageNumber: c.PageNumber,
		Metadata:   metadata,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *KbMapper) ChunkToModel(c *entity.KbChunk) *model.KbChunk {
	if c == nil {
		return nil
	}

	var metadata datatypes.JSON
	if c.Metadata != nil {
		if raw, err := json.Marshal(c.Metadata); err == nil {
			metadata = raw
		}
	}

	return &model.KbChunk{
		Id:         c.Id,
		DocId:      c.DocId,
		Content:    c.Content,
		ChunkIndex: c.ChunkIndex,
		PageNumber: c.PageNumber,
		Metadata:   metadata,
	}
}
