package mapper

import (
	"time"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/model"
)

type ChannelMapper struct{}

func NewChannelMapper() *ChannelMapper {
	return &ChannelMapper{}
}

func (m *ChannelMapper) ToEntity(c *model.Channel) *entity.Channel {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Channel{
		Id:          c.Id,
		Name:        c.Name,
		ChannelType: c.ChannelType,
		Department:  c.Department,
		Status:      c.Status,
		Tenant:      c.Tenant,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}

	for i := range c.Details {
		e.Details = append(e.Details, m.DetailToEntity(&c.Details[i]))
	}

	return e
}

func (m *ChannelMapper) ToEntities(models []*model.Channel) []*entity.Channel {
	entities := make([]*entity.Channel, 0, len(models))
	for _, c := range models {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}

func (m *ChannelMapper) ToModel(c *entity.Channel) *model.Channel {
	if c == nil {
		return nil
	}

	return &model.Channel{
		Id:          c.Id,
		Name:        c.Name,
		ChannelType: c.ChannelType,
		Department:  c.Department,
		Status:      c.Status,
		Tenant:      c.Tenant,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ChannelMapper) DetailToEntity(d *model.ChannelDetail) *entity.ChannelDetail {
	if d == nil {
		return nil
	}

	return &entity.ChannelDetail{
		Id:        d.Id,
		ChannelId: d.ChannelId,
		Key:       d.Key,
		Value:     d.Value,
		SourceDoc: d.SourceDoc,
		Citation:  d.Citation,
		CreatedAt: d.CreatedAt,
	}
}

func (m *ChannelMapper) DetailToEntities(models []*model.ChannelDetail) []*entity.ChannelDetail {
	entities := make([]*entity.ChannelDetail, 0, len(models))
	for _, d := range models {
		entities = append(entities, m.DetailToEntity(d))
	}
	return entities
}

func (m *ChannelMapper) DetailToModel(d *entity.ChannelDetail) *model.ChannelDetail {
	if d == nil {
		return nil
	}

	return &model.ChannelDetail{
		Id:        d.Id,
		ChannelId: d.ChannelId,
		Key:       d.Key,
		Value:     d.Value,
		SourceDoc: d.SourceDoc,
		Citation:  d.Citation,
	}
}
