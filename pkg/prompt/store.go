package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gopkg.in/yaml.v3"
)

// FewShot is one worked example appended to the chat history.
type FewShot struct {
	User      string `yaml:"user"`
	Assistant string `yaml:"assistant"`
}

// Prompt is one named prompt definition loaded from <dir>/<name>.yaml.
type Prompt struct {
	System   string    `yaml:"system"`
	Template string    `yaml:"template"`
	FewShot  []FewShot `yaml:"few_shot"`
}

// Format substitutes {placeholder} occurrences in the template.
func (p *Prompt) Format(vars map[string]string) string {
	out := p.Template
	for key, value := range vars {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}

// Store loads prompts from a directory with an in-memory cache in front.
type Store struct {
	dir   string
	cache *gocache.Cache
}

func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: gocache.New(10*time.Minute, 15*time.Minute),
	}
}

func (s *Store) Get(name string) (*Prompt, error) {
	if cached, ok := s.cache.Get(name); ok {
		return cached.(*Prompt), nil
	}

	path := filepath.Join(s.dir, name+".yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt %s: %w", name, err)
	}

	var p Prompt
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse prompt %s: %w", name, err)
	}

	s.cache.Set(name, &p, gocache.DefaultExpiration)
	return &p, nil
}
