package entity

import "time"

// AuditEvent records one classification or understand-and-open request.
// The raw utterance is redacted before it ever reaches this struct.
type AuditEvent struct {
	Id         int64
	TraceId    string
	EventType  string
	Tenant     string
	Channel    *string
	Utterance  *string
	Intent     *string
	Confidence *float64
	Entities   map[string]interface{}
	Status     string
	Error      *string
	CreatedAt  time.Time
}
