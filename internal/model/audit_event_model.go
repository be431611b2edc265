package model

import (
	"time"

	"gorm.io/datatypes"
)

type AuditEvent struct {
	Id         int64          `gorm:"primaryKey;autoIncrement"`
	TraceId    string         `gorm:"type:varchar(50);not null;index"`
	EventType  string         `gorm:"type:varchar(50);not null"`
	Tenant     string         `gorm:"type:varchar(100);not null;index"`
	Channel    *string        `gorm:"type:varchar(50)"`
	Utterance  *string        `gorm:"type:text"`
	Intent     *string        `gorm:"type:varchar(100)"`
	Confidence *float64       `gorm:"type:float"`
	Entities   datatypes.JSON `gorm:"type:jsonb"`
	Status     string         `gorm:"type:varchar(20);not null"`
	Error      *string        `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
