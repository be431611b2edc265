package dto

// EntitySchema is the typed entity set the classifier and extractor fill.
// Pointer fields distinguish "absent" from "zero"; nil fields are dropped
// from every downstream rendering.
type EntitySchema struct {
	ChannelType *string  `json:"channel_type,omitempty"`
	Department  *string  `json:"department,omitempty"`
	Product     *string  `json:"product,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Urgency     *string  `json:"urgency,omitempty"`
	Operations  []string `json:"operations,omitempty"`
}

// Merge overlays other onto e; a non-nil field in other always wins.
func (e *EntitySchema) Merge(other *EntitySchema) {
	if other == nil {
		return
	}
	if other.ChannelType != nil {
		e.ChannelType = other.ChannelType
	}
	if other.Department != nil {
		e.Department = other.Department
	}
	if other.Product != nil {
		e.Product = other.Product
	}
	if other.Country != nil {
		e.Country = other.Country
	}
	if other.Urgency != nil {
		e.Urgency = other.Urgency
	}
	if len(other.Operations) > 0 {
		e.Operations = other.Operations
	}
}

// EntityPair is one non-null entity in declaration order.
type EntityPair struct {
	Key   string
	Value string
}

// Pairs returns the non-null entities in schema declaration order.
// List values are comma-joined into a single fragment.
func (e *EntitySchema) Pairs() []EntityPair {
	if e == nil {
		return nil
	}
	var pairs []EntityPair
	add := func(key string, v *string) {
		if v != nil && *v != "" {
			pairs = append(pairs, EntityPair{Key: key, Value: *v})
		}
	}
	add("channel_type", e.ChannelType)
	add("department", e.Department)
	add("product", e.Product)
	add("country", e.Country)
	add("urgency", e.Urgency)
	if len(e.Operations) > 0 {
		value := ""
		for i, op := range e.Operations {
			if i > 0 {
				value += ","
			}
			value += op
		}
		pairs = append(pairs, EntityPair{Key: "operations", Value: value})
	}
	return pairs
}

// CitationDTO points at the KB evidence behind a pipeline decision.
type CitationDTO struct {
	Doc     string   `json:"doc"`
	Page    *int     `json:"page"`
	Snippet string   `json:"snippet"`
	Score   *float64 `json:"score,omitempty"`
}

// IntentResult is the classifier output surfaced by /detect.
// Fallback is internal bookkeeping and never serialized.
type IntentResult struct {
	Intent     string        `json:"intent"`
	Confidence float64       `json:"confidence"`
	Entities   *EntitySchema `json:"entities"`
	OOD        bool          `json:"ood"`
	TraceId    string        `json:"traceId"`

	Fallback       bool   `json:"-"`
	FallbackReason string `json:"-"`
}

type DetectIntentRequest struct {
	Utterance string `json:"utterance" validate:"required"`
	Tenant    string `json:"tenant" validate:"required"`
	Channel   string `json:"channel"`
	Locale    string `json:"locale"`
}

type ChannelDefaults struct {
	Status string `json:"status"`
}

type UnderstandAndOpenRequest struct {
	Utterance string           `json:"utterance" validate:"required"`
	Tenant    string           `json:"tenant" validate:"required"`
	Channel   string           `json:"channel"`
	Locale    string           `json:"locale"`
	Defaults  *ChannelDefaults `json:"defaults"`
}

type UnderstandAndOpenResponse struct {
	Intent          string            `json:"intent"`
	Confidence      float64           `json:"confidence"`
	Entities        *EntitySchema     `json:"entities"`
	ValidatedFromKB bool              `json:"validated_from_kb"`
	Citations       []CitationDTO     `json:"citations"`
	ChannelRecord   *ChannelRecordDTO `json:"channel_record"`
	TraceId         string            `json:"traceId"`
	Error           *string           `json:"error"`
}

type SimulateRequest struct {
	Utterances []string `json:"utterances" validate:"required,min=1"`
	Tenant     string   `json:"tenant" validate:"required"`
	Channel    string   `json:"channel"`
	Locale     string   `json:"locale"`
}

type SimulateItemResult struct {
	Utterance  string        `json:"utterance"`
	Intent     string        `json:"intent"`
	Confidence float64       `json:"confidence"`
	Entities   *EntitySchema `json:"entities"`
	OOD        bool          `json:"ood"`
	Error      *string       `json:"error,omitempty"`
}

type SimulateResponse struct {
	Results []SimulateItemResult `json:"results"`
	TraceId string               `json:"traceId"`
}
