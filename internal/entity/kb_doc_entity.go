package entity

import "time"

type KbDoc struct {
	Id         int64
	Path       string
	Filename   string
	DocType    string
	Tenant     string
	Department *string
	Country    *string
	Version    *string
	CreatedAt  time.Time
	UpdatedAt  *time.Time

	Chunks []*KbChunk
}
