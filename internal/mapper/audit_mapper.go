package mapper

import (
	"encoding/json"

	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/model"

	"gorm.io/datatypes"
)

type AuditMapper struct{}

func NewAuditMapper() *AuditMapper {
	return &AuditMapper{}
}

func (m *AuditMapper) ToEntity(e *model.AuditEvent) *entity.AuditEvent {
	if e == nil {
		return nil
	}

	var entities map[string]interface{}
	if len(e.Entities) > 0 {
		_ = json.Unmarshal(e.Entities, &entities)
	}

	return &entity.AuditEvent{
		Id:         e.Id,
		TraceId:    e.TraceId,
		EventType:  e.EventType,
		Tenant:     e.Tenant,
		Channel:    e.Channel,
		Utterance:  e.Utterance,
		Intent:     e.Intent,
		Confidence: e.Confidence,
		Entities:   entities,
		Status:     e.Status,
		Error:      e.Error,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *AuditMapper) ToModel(e *entity.AuditEvent) *model.AuditEvent {
	if e == nil {
		return nil
	}

	var entities datatypes.JSON
	if e.Entities != nil {
		if raw, err := json.Marshal(e.Entities); err == nil {
			entities = raw
		}
	}

	return &model.AuditEvent{
		Id:         e.Id,
		TraceId:    e.TraceId,
		EventType:  e.EventType,
		Tenant:     e.Tenant,
		Channel:    e.Channel,
		Utterance:  e.Utterance,
		Intent:     e.Intent,
		Confidence: e.Confidence,
		Entities:   entities,
		Status:     e.Status,
		Error:      e.Error,
	}
}
