package model

import "time"

type ChannelDetail struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	ChannelId string    `gorm:"type:varchar(50);not null;index"`
	Key       string    `gorm:"type:varchar(100);not null"`
	Value     string    `gorm:"type:text;not null"`
	SourceDoc *string   `gorm:"type:varchar(500)"`
	Citation  *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Channel *Channel `gorm:"foreignKey:ChannelId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (ChannelDetail) TableName() string {
	return "channel_details"
}
