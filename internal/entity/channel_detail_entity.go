package entity

import "time"

// ChannelDetail is one extracted attribute of a channel, with best-effort
// citation provenance pointing back to the knowledge base.
type ChannelDetail struct {
	Id        int64
	ChannelId string
	Key       string
	Value     string
	SourceDoc *string
	Citation  *string
	CreatedAt time.Time
}
