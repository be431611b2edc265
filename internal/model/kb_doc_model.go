package model

import "time"

type KbDoc struct {
	Id         int64     `gorm:"primaryKey;autoIncrement"`
	Path       string    `gorm:"type:varchar(500);not null"`
	Filename   string    `gorm:"type:varchar(255);not null"`
	DocType    string    `gorm:"type:varchar(50);not null"`
	Tenant     string    `gorm:"type:varchar(100);not null;index"`
	Department *string   `gorm:"type:varchar(100)"`
	Country    *string   `gorm:"type:varchar(10)"`
	Version    *string   `gorm:"type:varchar(50)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Chunks []KbChunk `gorm:"foreignKey:DocId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (KbDoc) TableName() string {
	return "kb_docs"
}
