package model

type ChannelSequence struct {
	Tenant  string `gorm:"type:varchar(100);primaryKey"`
	SeqDate string `gorm:"type:varchar(8);primaryKey;column:seq_date"`
	Counter int    `gorm:"not null;default:0"`
}

func (ChannelSequence) TableName() string {
	return "channel_sequences"
}
