package dto

import "time"

// ChannelDetailDTO is a denormalized detail row on a channel record.
type ChannelDetailDTO struct {
	Key       string  `json:"key"`
	Value     string  `json:"value"`
	SourceDoc *string `json:"source_doc"`
	Citation  *string `json:"citation"`
}

type ChannelRecordDTO struct {
	Id          string             `json:"id"`
	Name        string             `json:"name"`
	ChannelType string             `json:"channel_type"`
	Department  *string            `json:"department"`
	Status      string             `json:"status"`
	Tenant      string             `json:"tenant"`
	Details     []ChannelDetailDTO `json:"details"`
	CreatedAt   time.Time          `json:"created_at"`
}

type ListChannelsRequest struct {
	Tenant string `query:"tenant"`
	Status string `query:"status"`
	Limit  int    `query:"limit"`
}

type ListChannelsResponse struct {
	Channels []ChannelRecordDTO `json:"channels"`
	Total    int                `json:"total"`
}
