package intent

import (
	"context"
	"log"

	"ai-bankassist-be/internal/constant"
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/pkg/llm"
	"ai-bankassist-be/pkg/prompt"
)

// Classifier performs pure LLM-based intent and entity resolution.
// No retrieval happens here; the pipeline feeds KB context back in through
// ExtractEntities.
type Classifier struct {
	llmProvider  llm.LLMProvider
	prompts      *prompt.Store
	oodThreshold float64
	logger       *log.Logger
}

func NewClassifier(llmProvider llm.LLMProvider, prompts *prompt.Store, oodThreshold float64, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider:  llmProvider,
		prompts:      prompts,
		oodThreshold: oodThreshold,
		logger:       logger,
	}
}

// classifierReply is the raw model JSON before clamping.
type classifierReply struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Entities   *dto.EntitySchema `json:"entities"`
}

// DetectIntent classifies the utterance. Any failure along the way — prompt
// load, LLM call, JSON decode — degrades to the out-of-domain fallback
// rather than surfacing an error; the result carries an internal fallback
// tag so logs can tell "model said ood" from "call failed".
func (c *Classifier) DetectIntent(ctx context.Context, utterance, channel, locale, traceID string) *dto.IntentResult {
	result := c.classify(ctx, utterance, channel, locale)
	result.TraceId = traceID
	result.OOD = result.Intent == constant.IntentOOD || result.Confidence < c.oodThreshold

	if result.Fallback {
		c.logger.Printf("[INTENT] trace=%s classifier fallback: %s", traceID, result.FallbackReason)
	} else {
		c.logger.Printf("[INTENT] trace=%s intent=%s confidence=%.2f ood=%v", traceID, result.Intent, result.Confidence, result.OOD)
	}
	return result
}

func (c *Classifier) classify(ctx context.Context, utterance, channel, locale string) *dto.IntentResult {
	p, err := c.prompts.Get(constant.PromptRouter)
	if err != nil {
		return fallbackResult("prompt load failed: " + err.Error())
	}

	history := []llm.Message{{Role: "system", Content: p.System}}
	for _, example := range p.FewShot {
		history = append(history,
			llm.Message{Role: "user", Content: example.User},
			llm.Message{Role: "assistant", Content: example.Assistant},
		)
	}
	history = append(history, llm.Message{Role: "user", Content: p.Format(map[string]string{
		"utterance": utterance,
		"channel":   channel,
		"locale":    locale,
	})})

	reply, err := c.llmProvider.Chat(ctx, history, llm.WithTemperature(0.0))
	if err != nil {
		return fallbackResult("llm call failed: " + err.Error())
	}

	var parsed classifierReply
	if err := llm.DecodeJSON(reply, &parsed); err != nil {
		return fallbackResult("decode failed: " + err.Error())
	}
	if parsed.Intent == "" {
		return fallbackResult("model returned empty intent")
	}

	confidence := parsed.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	entities := parsed.Entities
	if entities == nil {
		entities = &dto.EntitySchema{}
	}

	return &dto.IntentResult{
		Intent:     parsed.Intent,
		Confidence: confidence,
		Entities:   entities,
	}
}

func fallbackResult(reason string) *dto.IntentResult {
	return &dto.IntentResult{
		Intent:         constant.IntentOOD,
		Confidence:     constant.FallbackConfidence,
		Entities:       &dto.EntitySchema{},
		Fallback:       true,
		FallbackReason: reason,
	}
}

// ExtractEntities re-runs entity extraction with KB context folded in.
// Failures are silent: the caller keeps whatever the first pass produced.
func (c *Classifier) ExtractEntities(ctx context.Context, utterance, intentName, kbContext string) *dto.EntitySchema {
	p, err := c.prompts.Get(constant.PromptEntities)
	if err != nil {
		return &dto.EntitySchema{}
	}

	history := []llm.Message{
		{Role: "system", Content: p.System},
		{Role: "user", Content: p.Format(map[string]string{
			"utterance": utterance,
			"intent":    intentName,
			"context":   kbContext,
		})},
	}

	reply, err := c.llmProvider.Chat(ctx, history, llm.WithTemperature(0.0))
	if err != nil {
		return &dto.EntitySchema{}
	}

	var entities dto.EntitySchema
	if err := llm.DecodeJSON(reply, &entities); err != nil {
		return &dto.EntitySchema{}
	}
	return &entities
}
