package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"docsearch/internal/config"
	"docsearch/internal/domain"
	"docsearch/internal/embedding/hashing"
	"docsearch/internal/embedding/openai"
	"docsearch/internal/extractor"
	"docsearch/internal/search"
	"docsearch/internal/server"
	"docsearch/internal/session"
	"docsearch/internal/similarity"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/docsearch/config.yaml if not provided)")
	flag.Parse()

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

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	fn, err := similarity.Parse(cfg.Search.Similarity)
	if err != nil {
		logger.Fatal("invalid similarity function", zap.Error(err))
	}

	emb, err := buildEmbedder(cfg)
	if err != nil {
		logger.Fatal("embedder init failed", zap.Error(err))
	}

	store := session.NewStore()
	engine := search.NewEngine(store, emb, fn, cfg.Search.TopK, logger)
	ext := extractor.New(cfg.Extract.SentencesPerPage, prometheus.DefaultRegisterer)
	srv := server.New(store, engine, ext, cfg.Extract, logger)

	e := srv.Router()
	go func() {
		logger.Info("listening",
			zap.String("address", cfg.Server.Address),
			zap.String("similarity", fn.String()),
			zap.String("embedder", emb.Name()))
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server exited", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func buildEmbedder(cfg *config.AppConfig) (domain.Embedder, error) {
	switch cfg.Embedder.Type {
	case "hashing", "":
		dim := 512
		if cfg.Embedder.Hashing != nil {
			dim = cfg.Embedder.Hashing.Dimension
		}
		return hashing.NewEmbedder(dim)
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			return nil, errors.New("openai embedder config missing")
		}
		return openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
	default:
		return nil, errors.New("unknown embedder: " + cfg.Embedder.Type)
	}
}
