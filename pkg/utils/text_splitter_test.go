package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitText(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		chunks := SplitText("short", 800, 120)
		if len(chunks) != 1 || chunks[0] != "short" {
			t.Fatalf("got %v", chunks)
		}
	})

	t.Run("chunks respect size and overlap", func(t *testing.T) {
		text := strings.Repeat("a", 2000)
		chunks := SplitText(text, 800, 120)

		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks, got %d", len(chunks))
		}
		for i, c := range chunks {
			if len([]rune(c)) > 800 {
				t.Errorf("chunk %d has %d runes", i, len([]rune(c)))
			}
		}

		// Reconstruct by stripping the overlap from every chunk after the
		// first; the original text must come back exactly.
		var rebuilt strings.Builder
		rebuilt.WriteString(chunks[0])
		for _, c := range chunks[1:] {
			runes := []rune(c)
			if len(runes) > 120 {
				rebuilt.WriteString(string(runes[120:]))
			}
		}
		if rebuilt.String() != text {
			t.Error("chunks do not reconstruct the input")
		}
	})

	t.Run("overlap larger than size falls back", func(t *testing.T) {
		text := strings.Repeat("b", 50)
		chunks := SplitText(text, 10, 20)
		if len(chunks) != 5 {
			t.Fatalf("expected 5 disjoint chunks, got %d", len(chunks))
		}
	})

	t.Run("multibyte runes are not split", func(t *testing.T) {
		text := strings.Repeat("日本語テキスト", 100)
		chunks := SplitText(text, 100, 10)
		var total int
		for i, c := range chunks {
			if !utf8.ValidString(c) {
				t.Errorf("chunk %d cuts a rune in half", i)
			}
			total += len([]rune(c))
		}
		if total < len([]rune(text)) {
			t.Error("runes lost while chunking")
		}
	})
}
