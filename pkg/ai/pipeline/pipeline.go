package pipeline

import (
	"context"
	"log"
	"strings"

	"ai-bankassist-be/internal/constant"
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/pkg/policy"
	"ai-bankassist-be/pkg/rag/retrieval"
)

const (
	extractContextChunks  = 3
	extractContextCharCap = 300
)

// IntentDetector classifies utterances and re-extracts entities.
type IntentDetector interface {
	DetectIntent(ctx context.Context, utterance, channel, locale, traceID string) *dto.IntentResult
	ExtractEntities(ctx context.Context, utterance, intentName, kbContext string) *dto.EntitySchema
}

// Retriever pulls KB chunks for a query within one tenant.
type Retriever interface {
	Retrieve(ctx context.Context, query, tenant string, k int, filters map[string]interface{}) ([]retrieval.Chunk, []dto.CitationDTO, error)
}

// Validator checks entities against the tenant's KB.
type Validator interface {
	ValidateEntities(ctx context.Context, entities *dto.EntitySchema, tenant string) (bool, []dto.CitationDTO, error)
}

// ChannelWriter persists a channel record from validated pipeline output.
type ChannelWriter interface {
	OpenChannel(ctx context.Context, tenant string, entities *dto.EntitySchema, citations []dto.CitationDTO, status string) (*dto.ChannelRecordDTO, error)
}

type stage struct {
	name string
	run  func(ctx context.Context, s *State)
}

// Pipeline runs the fixed stage list:
// plan → detect_intent → retrieve_kb → extract_entities → validate_kb →
// route_policy → open_channel → respond.
// Once a stage records an error, later stages (except respond) are skipped.
type Pipeline struct {
	detector  IntentDetector
	retriever Retriever
	validator Validator
	writer    ChannelWriter
	policy    *policy.Policy
	topK      int
	logger    *log.Logger
	stages    []stage
}

func NewPipeline(
	detector IntentDetector,
	retriever Retriever,
	validator Validator,
	writer ChannelWriter,
	pol *policy.Policy,
	topK int,
	logger *log.Logger,
) *Pipeline {
	p := &Pipeline{
		detector:  detector,
		retriever: retriever,
		validator: validator,
		writer:    writer,
		policy:    pol,
		topK:      topK,
		logger:    logger,
	}
	p.stages = []stage{
		{"plan", p.plan},
		{"detect_intent", p.detectIntent},
		{"retrieve_kb", p.retrieveKB},
		{"extract_entities", p.extractEntities},
		{"validate_kb", p.validateKB},
		{"route_policy", p.routePolicy},
		{"open_channel", p.openChannel},
		{"respond", p.respond},
	}
	return p
}

// Execute runs every stage in order over the shared state.
func (p *Pipeline) Execute(ctx context.Context, s *State) *State {
	for _, st := range p.stages {
		if s.failed() && st.name != "plan" && st.name != "respond" {
			continue
		}
		st.run(ctx, s)
	}
	return s
}

func (p *Pipeline) plan(ctx context.Context, s *State) {
	if s.Entities == nil {
		s.Entities = &dto.EntitySchema{}
	}
	p.logger.Printf("[PLAN] trace=%s tenant=%s channel=%s", s.TraceID, s.Tenant, s.Channel)
}

func (p *Pipeline) detectIntent(ctx context.Context, s *State) {
	result := p.detector.DetectIntent(ctx, s.Utterance, s.Channel, s.Locale, s.TraceID)
	s.Intent = result.Intent
	s.Confidence = result.Confidence
	s.OOD = result.OOD
	s.Fallback = result.Fallback
	if result.Entities != nil {
		s.Entities = result.Entities
	}
}

func (p *Pipeline) retrieveKB(ctx context.Context, s *State) {
	query := buildRetrievalQuery(s.Intent, s.Entities)
	chunks, citations, err := p.retriever.Retrieve(ctx, query, s.Tenant, p.topK, nil)
	if err != nil {
		s.Error = "kb retrieval failed: " + err.Error()
		return
	}
	s.KbResults = chunks
	s.Citations = citations
}

// buildRetrievalQuery joins the intent with every non-null entity as a
// "key:value" fragment in schema declaration order.
func buildRetrievalQuery(intent string, entities *dto.EntitySchema) string {
	parts := []string{intent}
	for _, pair := range entities.Pairs() {
		parts = append(parts, pair.Key+":"+pair.Value)
	}
	return strings.Join(parts, " ")
}

// extractEntities always runs a second pass, with an empty context when
// retrieval found nothing for the tenant.
func (p *Pipeline) extractEntities(ctx context.Context, s *State) {
	second := p.detector.ExtractEntities(ctx, s.Utterance, s.Intent, buildExtractContext(s.KbResults))
	s.Entities.Merge(second)
}

// buildExtractContext joins the first chunks, each capped to a fixed prefix.
func buildExtractContext(chunks []retrieval.Chunk) string {
	limit := extractContextChunks
	if limit > len(chunks) {
		limit = len(chunks)
	}
	parts := make([]string, 0, limit)
	for _, chunk := range chunks[:limit] {
		content := chunk.Content
		if runes := []rune(content); len(runes) > extractContextCharCap {
			content = string(runes[:extractContextCharCap])
		}
		parts = append(parts, content)
	}
	return strings.Join(parts, "\n")
}

func (p *Pipeline) validateKB(ctx context.Context, s *State) {
	if !p.policy.RequiresKBValidation(s.Intent) {
		s.Validated = true
		return
	}
	valid, citations, err := p.validator.ValidateEntities(ctx, s.Entities, s.Tenant)
	if err != nil {
		s.Error = "kb validation failed: " + err.Error()
		return
	}
	s.Validated = valid
	s.Citations = append(s.Citations, citations...)
}

func (p *Pipeline) routePolicy(ctx context.Context, s *State) {
	if !p.policy.ShouldRoute(s.Intent, s.Confidence) {
		s.Error = "policy gate rejected intent '" + s.Intent + "'"
		return
	}
	if p.policy.RequiresKBValidation(s.Intent) && !s.Validated {
		s.Error = "kb validation did not pass for intent '" + s.Intent + "'"
	}
}

func (p *Pipeline) openChannel(ctx context.Context, s *State) {
	if s.Intent != constant.IntentOpenChannel && s.Intent != constant.IntentModifyChannel {
		return
	}
	record, err := p.writer.OpenChannel(ctx, s.Tenant, s.Entities, s.Citations, s.DefaultStatus)
	if err != nil {
		s.Error = "channel write failed: " + err.Error()
		return
	}
	s.ChannelCreated = record
	p.logger.Printf("[CHANNEL] trace=%s created=%s", s.TraceID, record.Id)
}

func (p *Pipeline) respond(ctx context.Context, s *State) {
	if s.failed() {
		p.logger.Printf("[RESPOND] trace=%s error=%s", s.TraceID, s.Error)
		return
	}
	p.logger.Printf("[RESPOND] trace=%s intent=%s validated=%v", s.TraceID, s.Intent, s.Validated)
}
