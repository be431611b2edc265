package service

import (
	"testing"

	"ai-bankassist-be/internal/dto"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestBuildChannelID(t *testing.T) {
	tests := []struct {
		seqDate string
		counter int64
		want    string
	}{
		{"20260831", 1, "CH-20260831-0001"},
		{"20260831", 42, "CH-20260831-0042"},
		{"20261231", 9999, "CH-20261231-9999"},
		{"20260101", 12345, "CH-20260101-12345"},
	}
	for _, tt := range tests {
		if got := BuildChannelID(tt.seqDate, tt.counter); got != tt.want {
			t.Errorf("BuildChannelID(%s, %d) = %s, want %s", tt.seqDate, tt.counter, got, tt.want)
		}
	}
}

func TestBuildChannelName(t *testing.T) {
	if got := BuildChannelName("savings", strPtr("retail")); got != "savings-retail" {
		t.Errorf("got %s", got)
	}
	if got := BuildChannelName("savings", nil); got != "savings-general" {
		t.Errorf("got %s", got)
	}
	if got := BuildChannelName("savings", strPtr("")); got != "savings-general" {
		t.Errorf("got %s", got)
	}
}

func TestFormatCitation(t *testing.T) {
	if got := FormatCitation(dto.CitationDTO{Doc: "products.pdf", Page: intPtr(7)}); got != "products.pdf (page 7)" {
		t.Errorf("got %s", got)
	}
	if got := FormatCitation(dto.CitationDTO{Doc: "faq.md"}); got != "faq.md" {
		t.Errorf("got %s", got)
	}
}

// Every detail row carries the FIRST citation, regardless of which chunk
// actually grounded that entity. Pinned on purpose: provenance stays
// coarse-grained until per-entity attribution exists.
func TestBuildDetailsFirstCitationOnEveryRow(t *testing.T) {
	entities := &dto.EntitySchema{
		ChannelType: strPtr("savings"),
		Department:  strPtr("retail"),
		Operations:  []string{"deposit", "withdraw"},
	}
	citations := []dto.CitationDTO{
		{Doc: "products.pdf", Page: intPtr(3)},
		{Doc: "terms.pdf", Page: intPtr(9)},
	}

	details := BuildDetails("CH-20260831-0001", entities, citations)
	if len(details) != 3 {
		t.Fatalf("got %d details, want 3", len(details))
	}

	for _, d := range details {
		if d.ChannelId != "CH-20260831-0001" {
			t.Errorf("detail %s has channel %s", d.Key, d.ChannelId)
		}
		if d.SourceDoc == nil || *d.SourceDoc != "products.pdf" {
			t.Errorf("detail %s source = %v, want first citation's doc", d.Key, d.SourceDoc)
		}
		if d.Citation == nil || *d.Citation != "products.pdf (page 3)" {
			t.Errorf("detail %s citation = %v", d.Key, d.Citation)
		}
	}

	var ops *string
	for _, d := range details {
		if d.Key == "operations" {
			ops = &d.Value
		}
	}
	if ops == nil || *ops != "deposit,withdraw" {
		t.Errorf("operations detail = %v, want comma-joined list", ops)
	}
}

func TestBuildDetailsNoCitations(t *testing.T) {
	details := BuildDetails("CH-X", &dto.EntitySchema{ChannelType: strPtr("current")}, nil)
	if len(details) != 1 {
		t.Fatalf("got %d details", len(details))
	}
	if details[0].SourceDoc != nil || details[0].Citation != nil {
		t.Error("no citations means nil provenance")
	}
}

func TestBuildDetailsSkipsNullEntities(t *testing.T) {
	details := BuildDetails("CH-X", &dto.EntitySchema{}, nil)
	if len(details) != 0 {
		t.Fatalf("empty schema must produce no rows, got %d", len(details))
	}
}
