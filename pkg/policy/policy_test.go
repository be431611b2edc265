package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func loadTestPolicy(t *testing.T) *Policy {
	t.Helper()
	content := `
min_confidence: 0.7
intent_routes:
  open_channel:
    tool: channel_writer
    require_kb_validation: true
  modify_channel:
    tool: channel_writer
    require_kb_validation: true
  check_status:
    tool: status_reader
  faq:
    tool: kb_answer
fallback:
  tool: human_handoff
`
	path := filepath.Join(t.TempDir(), "router.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestShouldRoute(t *testing.T) {
	p := loadTestPolicy(t)

	tests := []struct {
		name       string
		intent     string
		confidence float64
		want       bool
	}{
		{"routed above floor", "open_channel", 0.9, true},
		{"routed at floor", "open_channel", 0.7, true},
		{"routed below floor", "open_channel", 0.69, false},
		{"unrouted intent", "ood", 0.99, false},
		{"fallback confidence", "open_channel", 0.3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ShouldRoute(tt.intent, tt.confidence); got != tt.want {
				t.Errorf("ShouldRoute(%s, %f) = %v, want %v", tt.intent, tt.confidence, got, tt.want)
			}
		})
	}
}

func TestRequiresKBValidation(t *testing.T) {
	p := loadTestPolicy(t)

	if !p.RequiresKBValidation("open_channel") {
		t.Error("open_channel must require validation")
	}
	if p.RequiresKBValidation("check_status") {
		t.Error("check_status must not require validation")
	}
	if p.RequiresKBValidation("ood") {
		t.Error("unrouted intent must not require validation")
	}
}

func TestRoute(t *testing.T) {
	p := loadTestPolicy(t)

	if got := p.Route("faq"); got != "kb_answer" {
		t.Errorf("Route(faq) = %s", got)
	}
	if got := p.Route("ood"); got != "human_handoff" {
		t.Errorf("Route(ood) = %s, want fallback", got)
	}
	if got := p.FallbackTool(); got != "human_handoff" {
		t.Errorf("FallbackTool() = %s", got)
	}
}

func TestLoadRejectsMissingFloor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "router.yaml")
	if err := os.WriteFile(path, []byte("intent_routes: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for zero min_confidence")
	}
}
