package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Route is the action bound to one intent.
type Route struct {
	Tool                 string `yaml:"tool"`
	RequireKBValidation  bool   `yaml:"require_kb_validation"`
}

// Policy is the routing table loaded once at startup.
type Policy struct {
	MinConfidence float64          `yaml:"min_confidence"`
	IntentRoutes  map[string]Route `yaml:"intent_routes"`
	Fallback      struct {
		Tool string `yaml:"tool"`
	} `yaml:"fallback"`
}

func Load(path string) (*Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	var p Policy
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}
	if p.MinConfidence <= 0 {
		return nil, fmt.Errorf("policy min_confidence must be positive")
	}
	return &p, nil
}

// ShouldRoute reports whether the intent may proceed: it must have a route
// and clear the confidence floor.
func (p *Policy) ShouldRoute(intent string, confidence float64) bool {
	if confidence < p.MinConfidence {
		return false
	}
	_, ok := p.IntentRoutes[intent]
	return ok
}

// RequiresKBValidation reports whether the intent's route demands a KB
// validation pass before any write.
func (p *Policy) RequiresKBValidation(intent string) bool {
	route, ok := p.IntentRoutes[intent]
	return ok && route.RequireKBValidation
}

// Route returns the tool bound to the intent, or the fallback tool when the
// intent has no route.
func (p *Policy) Route(intent string) string {
	if route, ok := p.IntentRoutes[intent]; ok {
		return route.Tool
	}
	return p.Fallback.Tool
}

func (p *Policy) FallbackTool() string {
	return p.Fallback.Tool
}
