package entity

import "time"

type Channel struct {
	Id          string // CH-<yyyymmdd>-<seq>, assigned by the writer
	Name        string
	ChannelType string
	Department  *string
	Status      string
	Tenant      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	Details []*ChannelDetail
}
