package pipeline

import (
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/pkg/rag/retrieval"
)

// State is the single mutable value threaded through every stage.
type State struct {
	// Inputs
	Utterance     string
	Tenant        string
	Channel       string
	Locale        string
	TraceID       string
	DefaultStatus string

	// Classification
	Intent     string
	Confidence float64
	Entities   *dto.EntitySchema
	OOD        bool
	Fallback   bool

	// Retrieval and validation
	KbResults []retrieval.Chunk
	Citations []dto.CitationDTO
	Validated bool

	// Outcome
	ChannelCreated *dto.ChannelRecordDTO
	Error          string
}

func (s *State) failed() bool {
	return s.Error != ""
}
