package dto

// AuditEventMessage travels over the in-process bus; the consumer persists
// it. Utterance must already be redacted by the publisher.
type AuditEventMessage struct {
	TraceId    string                 `json:"trace_id"`
	EventType  string                 `json:"event_type"`
	Tenant     string                 `json:"tenant"`
	Channel    *string                `json:"channel"`
	Utterance  *string                `json:"utterance"`
	Intent     *string                `json:"intent"`
	Confidence *float64               `json:"confidence"`
	Entities   map[string]interface{} `json:"entities"`
	Status     string                 `json:"status"`
	Error      *string                `json:"error"`
}
