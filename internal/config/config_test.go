package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("Server.Address = %q", cfg.Server.Address)
	}
	if cfg.Search.Similarity != "COSINE" {
		t.Errorf("Search.Similarity = %q", cfg.Search.Similarity)
	}
	if cfg.Search.TopK != 10 {
		t.Errorf("Search.TopK = %d", cfg.Search.TopK)
	}
	if cfg.Embedder.Type != "hashing" || cfg.Embedder.Hashing == nil || cfg.Embedder.Hashing.Dimension != 512 {
		t.Errorf("unexpected embedder defaults: %+v", cfg.Embedder)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
search:
  similarity: EUCLIDEAN
embedder:
  type: openai
  openai:
    model: custom-embed
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Search.Similarity != "EUCLIDEAN" {
		t.Errorf("Search.Similarity = %q", cfg.Search.Similarity)
	}
	if cfg.Search.TopK != 10 {
		t.Errorf("Search.TopK default not applied: %d", cfg.Search.TopK)
	}
	if cfg.Embedder.OpenAI == nil {
		t.Fatal("openai config missing")
	}
	if cfg.Embedder.OpenAI.Model != "custom-embed" {
		t.Errorf("Model = %q", cfg.Embedder.OpenAI.Model)
	}
	if cfg.Embedder.OpenAI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL default not applied: %q", cfg.Embedder.OpenAI.BaseURL)
	}
	if cfg.Embedder.OpenAI.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("APIKeyEnv default not applied: %q", cfg.Embedder.OpenAI.APIKeyEnv)
	}
	if cfg.Embedder.OpenAI.TimeoutSecs != 30 {
		t.Errorf("TimeoutSecs default not applied: %d", cfg.Embedder.OpenAI.TimeoutSecs)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &AppConfig{
		Server: ServerConfig{Address: ":9090"},
		Search: SearchConfig{Similarity: "DOT", TopK: 3},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Server.Address != ":9090" || got.Search.Similarity != "DOT" || got.Search.TopK != 3 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
