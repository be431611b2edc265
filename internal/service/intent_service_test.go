package service

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ai-bankassist-be/internal/constant"
	"ai-bankassist-be/internal/dto"
	"ai-bankassist-be/pkg/ai/intent"
	"ai-bankassist-be/pkg/llm"
	"ai-bankassist-be/pkg/prompt"
)

// scriptedLLM answers per utterance; unknown utterances get a non-JSON
// reply so the classifier degrades to its fallback.
type scriptedLLM struct {
	replies map[string]string
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	last := history[len(history)-1].Content
	for needle, reply := range s.replies {
		if strings.Contains(last, needle) {
			return reply, nil
		}
	}
	return "no idea, sorry", nil
}

func (s *scriptedLLM) Generate(ctx context.Context, p string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: p}}, opts...)
}

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func simulatePromptStore(t *testing.T) *prompt.Store {
	t.Helper()
	dir := t.TempDir()
	router := `
system: Classify banking intents.
template: "Utterance: {utterance}"
`
	if err := os.WriteFile(filepath.Join(dir, "router.yaml"), []byte(router), 0o644); err != nil {
		t.Fatal(err)
	}
	return prompt.NewStore(dir)
}

func newSimulateService(t *testing.T, provider llm.LLMProvider, publisher IPublisherService) IIntentService {
	t.Helper()
	logger := log.New(os.Stderr, "", 0)
	classifier := intent.NewClassifier(provider, simulatePromptStore(t), 0.6, logger)
	return NewIntentService(classifier, nil, publisher, "web", "en-IN", logger)
}

// A batch of N utterances yields exactly N results in input order, each
// tagged with its own utterance; a bad utterance records its error and
// the batch continues.
func TestSimulatePreservesOrderAndCount(t *testing.T) {
	provider := &scriptedLLM{replies: map[string]string{
		"open a savings channel": `{"intent": "open_channel", "confidence": 0.92, "entities": {"channel_type": "savings"}}`,
		"check my channel":       `{"intent": "check_status", "confidence": 0.8}`,
	}}
	publisher := &capturingPublisher{}
	svc := newSimulateService(t, provider, publisher)

	utterances := []string{
		"open a savings channel",
		"",
		"colorless green ideas",
		"check my channel",
	}
	res, err := svc.Simulate(context.Background(), &dto.SimulateRequest{
		Utterances: utterances,
		Tenant:     "bank-asia",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Results) != len(utterances) {
		t.Fatalf("got %d results, want %d", len(res.Results), len(utterances))
	}
	for i, item := range res.Results {
		if item.Utterance != utterances[i] {
			t.Errorf("result %d tagged %q, want %q", i, item.Utterance, utterances[i])
		}
	}

	if res.Results[0].Intent != "open_channel" || res.Results[0].Error != nil {
		t.Errorf("result 0 = %+v", res.Results[0])
	}
	if res.Results[1].Error == nil {
		t.Error("empty utterance must record an error")
	}
	// The unknown utterance degrades to the classifier fallback; its error
	// must not abort the rest of the batch.
	if res.Results[2].Error == nil {
		t.Error("fallback utterance must carry its error")
	}
	if res.Results[2].Intent != constant.IntentOOD {
		t.Errorf("result 2 intent = %s", res.Results[2].Intent)
	}
	if res.Results[3].Intent != "check_status" {
		t.Errorf("result 3 intent = %s, batch aborted early?", res.Results[3].Intent)
	}

	if res.TraceId == "" {
		t.Error("missing trace id")
	}
}

func TestSimulateAuditIsRedacted(t *testing.T) {
	publisher := &capturingPublisher{}
	svc := newSimulateService(t, &scriptedLLM{}, publisher)

	_, err := svc.Simulate(context.Background(), &dto.SimulateRequest{
		Utterances: []string{"my account number is 12345"},
		Tenant:     "bank-asia",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(publisher.payloads) != 1 {
		t.Fatalf("got %d audit events, want 1", len(publisher.payloads))
	}
	var event dto.AuditEventMessage
	if err := json.Unmarshal(publisher.payloads[0], &event); err != nil {
		t.Fatal(err)
	}
	if event.EventType != constant.EventSimulate {
		t.Errorf("event type = %s", event.EventType)
	}
	if event.Utterance == nil || *event.Utterance != constant.RedactedUtterance {
		t.Errorf("utterance = %v, must be redacted", event.Utterance)
	}
}
