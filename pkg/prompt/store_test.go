package prompt

import (
	"os"
	"path/filepath"
	"testing"
)

func writePrompt(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStoreGet(t *testing.T) {
	dir := t.TempDir()
	writePrompt(t, dir, "router", `
system: You are an intent classifier for a banking assistant.
template: "Utterance: {utterance}\nLocale: {locale}"
few_shot:
  - user: I want to open a savings account channel
    assistant: '{"intent": "open_channel", "confidence": 0.95}'
`)

	store := NewStore(dir)
	p, err := store.Get("router")
	if err != nil {
		t.Fatal(err)
	}
	if p.System == "" {
		t.Error("system prompt missing")
	}
	if len(p.FewShot) != 1 {
		t.Fatalf("few_shot = %d, want 1", len(p.FewShot))
	}

	got := p.Format(map[string]string{"utterance": "hello", "locale": "en-IN"})
	want := "Utterance: hello\nLocale: en-IN"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestStoreGetCaches(t *testing.T) {
	dir := t.TempDir()
	writePrompt(t, dir, "entities", "template: extract {utterance}\n")

	store := NewStore(dir)
	if _, err := store.Get("entities"); err != nil {
		t.Fatal(err)
	}

	// Delete the backing file; the cached copy must still serve.
	if err := os.Remove(filepath.Join(dir, "entities.yaml")); err != nil {
		t.Fatal(err)
	}
	p, err := store.Get("entities")
	if err != nil {
		t.Fatalf("cached prompt not served: %v", err)
	}
	if p.Template == "" {
		t.Error("cached template empty")
	}
}

func TestStoreGetMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, err := store.Get("nope"); err == nil {
		t.Fatal("expected error for missing prompt")
	}
}

func TestFormatUnknownPlaceholderLeftIntact(t *testing.T) {
	p := &Prompt{Template: "a {known} b {unknown}"}
	got := p.Format(map[string]string{"known": "X"})
	if got != "a X b {unknown}" {
		t.Errorf("got %q", got)
	}
}
