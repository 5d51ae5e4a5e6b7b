package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"docsearch/internal/config"
	"docsearch/internal/domain"
	"docsearch/internal/embedding/hashing"
	"docsearch/internal/embedding/openai"
	"docsearch/internal/extractor"
	"docsearch/internal/search"
	"docsearch/internal/session"
	"docsearch/internal/similarity"
	"docsearch/internal/tui"
)

// sessionPort binds the search engine to one session for the TUI.
type sessionPort struct {
	engine    *search.Engine
	sessionID string
}

func (p sessionPort) Search(query string, topK int) ([]domain.Match, error) {
	return p.engine.SearchTopK(context.Background(), p.sessionID, query, topK)
}

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/docsearch/config.yaml if not provided)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: docsearch-tui [--config=config.yaml] file1.txt [file2.txt ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	fn, err := similarity.Parse(cfg.Search.Similarity)
	if err != nil {
		log.Fatalf("invalid similarity function: %v", err)
	}

	// Assemble components
	var emb domain.Embedder
	switch cfg.Embedder.Type {
	case "hashing", "":
		dim := 512
		if cfg.Embedder.Hashing != nil {
			dim = cfg.Embedder.Hashing.Dimension
		}
		emb, err = hashing.NewEmbedder(dim)
		if err != nil {
			log.Fatalf("hashing embedder init failed: %v", err)
		}
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			log.Fatalf("openai embedder config missing")
		}
		emb, err = openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
		})
		if err != nil {
			log.Fatalf("openai embedder init failed: %v", err)
		}
	default:
		log.Fatalf("unknown embedder: %s", cfg.Embedder.Type)
	}

	store := session.NewStore()
	engine := search.NewEngine(store, emb, fn, cfg.Search.TopK, nil)
	ext := extractor.New(cfg.Extract.SentencesPerPage, prometheus.NewRegistry())

	sess := store.Create()
	ctx := context.Background()
	pages := 0
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read %s: %v", path, err)
		}
		doc, err := ext.Extract(data)
		if err != nil {
			log.Fatalf("failed to extract %s: %v", path, err)
		}
		doc.Filename = path
		if err := engine.AddDocument(ctx, sess.ID(), doc); err != nil {
			log.Fatalf("failed to index %s: %v", path, err)
		}
		pages += doc.TotalPages
	}

	summary := fmt.Sprintf("session %s · %d document(s), %d page(s) · %s", sess.ID(), sess.Len(), pages, fn)
	m := tui.New(sessionPort{engine: engine, sessionID: sess.ID()}, summary)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
