package llm

import "testing"

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
	}

	tests := []struct {
		name       string
		reply      string
		wantIntent string
		wantErr    bool
	}{
		{
			name:       "plain json",
			reply:      `{"intent": "open_channel", "confidence": 0.92}`,
			wantIntent: "open_channel",
		},
		{
			name:       "fenced json",
			reply:      "```json\n{\"intent\": \"faq\", \"confidence\": 0.8}\n```",
			wantIntent: "faq",
		},
		{
			name:       "fenced without language tag",
			reply:      "```\n{\"intent\": \"check_status\", \"confidence\": 0.7}\n```",
			wantIntent: "check_status",
		},
		{
			name:       "surrounding whitespace",
			reply:      "  \n{\"intent\": \"ood\", \"confidence\": 0.3}\n  ",
			wantIntent: "ood",
		},
		{
			name:    "prose instead of json",
			reply:   "I am not able to classify that.",
			wantErr: true,
		},
		{
			name:    "empty reply",
			reply:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			err := DecodeJSON(tt.reply, &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Intent != tt.wantIntent {
				t.Errorf("intent = %q, want %q", got.Intent, tt.wantIntent)
			}
		})
	}
}
