package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-bankassist-be/internal/constant"
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/pkg/ai/intent"
	"ai-bankassist-be/pkg/ai/pipeline"

	"github.com/google/uuid"
)

type IIntentService interface {
	Detect(ctx context.Context, req *dto.DetectIntentRequest) (*dto.IntentResult, error)
	UnderstandAndOpen(ctx context.Context, req *dto.UnderstandAndOpenRequest) (*dto.UnderstandAndOpenResponse, error)
	Simulate(ctx context.Context, req *dto.SimulateRequest) (*dto.SimulateResponse, error)
}

type intentService struct {
	classifier       *intent.Classifier
	pipeline         *pipeline.Pipeline
	publisherService IPublisherService
	defaultChannel   string
	defaultLocale    string
	logger           *log.Logger
}

func NewIntentService(
	classifier *intent.Classifier,
	pl *pipeline.Pipeline,
	publisherService IPublisherService,
	defaultChannel string,
	defaultLocale string,
	logger *log.Logger,
) IIntentService {
	return &intentService{
		classifier:       classifier,
		pipeline:         pl,
		publisherService: publisherService,
		defaultChannel:   defaultChannel,
		defaultLocale:    defaultLocale,
		logger:           logger,
	}
}

// newTraceID is the short request correlator carried through logs, audit
// events and responses.
func newTraceID() string {
	return uuid.NewString()[:8]
}

func (s *intentService) Detect(ctx context.Context, req *dto.DetectIntentRequest) (*dto.IntentResult, error) {
	channel, locale := s.applyDefaults(req.Channel, req.Locale)
	traceID := newTraceID()

	result := s.classifier.DetectIntent(ctx, req.Utterance, channel, locale, traceID)

	s.publishAudit(ctx, dto.AuditEventMessage{
		TraceId:    traceID,
		EventType:  constant.EventIntentDetection,
		Tenant:     req.Tenant,
		Channel:    &channel,
		Utterance:  redacted(),
		Intent:     &result.Intent,
		Confidence: &result.Confidence,
		Entities:   entitiesToMap(result.Entities),
		Status:     constant.EventStatusSuccess,
	})

	return result, nil
}

func (s *intentService) UnderstandAndOpen(ctx context.Context, req *dto.UnderstandAndOpenRequest) (*dto.UnderstandAndOpenResponse, error) {
	channel, locale := s.applyDefaults(req.Channel, req.Locale)
	traceID := newTraceID()

	status := ""
	if req.Defaults != nil {
		status = req.Defaults.Status
	}

	state := &pipeline.State{
		Utterance:     req.Utterance,
		Tenant:        req.Tenant,
		Channel:       channel,
		Locale:        locale,
		TraceID:       traceID,
		DefaultStatus: status,
	}
	s.pipeline.Execute(ctx, state)

	resp := &dto.UnderstandAndOpenResponse{
		Intent:          state.Intent,
		Confidence:      state.Confidence,
		Entities:        state.Entities,
		ValidatedFromKB: state.Validated,
		Citations:       state.Citations,
		ChannelRecord:   state.ChannelCreated,
		TraceId:         traceID,
	}
	if resp.Citations == nil {
		resp.Citations = []dto.CitationDTO{}
	}

	eventStatus := constant.EventStatusSuccess
	var errText *string
	if state.Error != "" {
		e := state.Error
		errText = &e
		resp.Error = &e
		eventStatus = constant.EventStatusError
	}

	var channelID *string
	if state.ChannelCreated != nil {
		channelID = &state.ChannelCreated.Id
	}

	s.publishAudit(ctx, dto.AuditEventMessage{
		TraceId:    traceID,
		EventType:  constant.EventUnderstandAndOpen,
		Tenant:     req.Tenant,
		Channel:    channelID,
		Utterance:  redacted(),
		Intent:     &state.Intent,
		Confidence: &state.Confidence,
		Entities:   entitiesToMap(state.Entities),
		Status:     eventStatus,
		Error:      errText,
	})

	return resp, nil
}

// Simulate runs detection over a batch of utterances, preserving input
// order. One bad utterance records its own error and the batch continues.
func (s *intentService) Simulate(ctx context.Context, req *dto.SimulateRequest) (*dto.SimulateResponse, error) {
	channel, locale := s.applyDefaults(req.Channel, req.Locale)
	traceID := newTraceID()

	results := make([]dto.SimulateItemResult, 0, len(req.Utterances))
	for _, utterance := range req.Utterances {
		if utterance == "" {
			errText := "utterance must not be empty"
			results = append(results, dto.SimulateItemResult{Utterance: utterance, Error: &errText})
			continue
		}
		r := s.classifier.DetectIntent(ctx, utterance, channel, locale, traceID)
		item := dto.SimulateItemResult{
			Utterance:  utterance,
			Intent:     r.Intent,
			Confidence: r.Confidence,
			Entities:   r.Entities,
			OOD:        r.OOD,
		}
		if r.Fallback {
			reason := r.FallbackReason
			item.Error = &reason
		}
		results = append(results, item)
	}

	s.publishAudit(ctx, dto.AuditEventMessage{
		TraceId:   traceID,
		EventType: constant.EventSimulate,
		Tenant:    req.Tenant,
		Channel:   &channel,
		Utterance: redacted(),
		Status:    constant.EventStatusSuccess,
	})

	return &dto.SimulateResponse{Results: results, TraceId: traceID}, nil
}

func (s *intentService) applyDefaults(channel, locale string) (string, string) {
	if channel == "" {
		channel = s.defaultChannel
	}
	if locale == "" {
		locale = s.defaultLocale
	}
	return channel, locale
}

// publishAudit never fails the request; a dead audit bus is logged and
// skipped.
func (s *intentService) publishAudit(ctx context.Context, event dto.AuditEventMessage) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Printf("[AUDIT] marshal failed: %v", err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Printf("[AUDIT] publish failed trace=%s: %v", event.TraceId, err)
	}
}

func redacted() *string {
	r := constant.RedactedUtterance
	return &r
}

func entitiesToMap(entities *dto.EntitySchema) map[string]interface{} {
	if entities == nil {
		return nil
	}
	raw, err := json.Marshal(entities)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
