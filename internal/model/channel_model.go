package model

import "time"

type Channel struct {
	Id          string    `gorm:"type:varchar(50);primaryKey"`
	Name        string    `gorm:"type:varchar(200);not null"`
	ChannelType string    `gorm:"type:varchar(50);not null"`
	Department  *string   `gorm:"type:varchar(100)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	Tenant      string    `gorm:"type:varchar(100);not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Details []ChannelDetail `gorm:"foreignKey:ChannelId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Channel) TableName() string {
	return "channels"
}
