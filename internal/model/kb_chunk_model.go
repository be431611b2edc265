package model

import (
	"time"

	"gorm.io/datatypes"
)

type KbChunk struct {
	Id         int64          `gorm:"primaryKey;autoIncrement"`
	DocId      int64          `gorm:"not null;index"`
	Content    string         `gorm:"type:text;not null"`
	ChunkIndex int            `gorm:"not null"`
	PageNumber *int           `gorm:""`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`

	Doc *KbDoc `gorm:"foreignKey:DocId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (KbChunk) TableName() string {
	return "kb_chunks"
}
