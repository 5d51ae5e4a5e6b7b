package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"docsearch/internal/config"
	"docsearch/internal/domain"
	"docsearch/internal/search"
	"docsearch/internal/session"
)

// Server wires the session store, the search engine and the extraction
// adapter to the HTTP surface. It is the only layer that converts typed
// failures into transport status codes.
type Server struct {
	store     *session.Store
	engine    *search.Engine
	extractor domain.Extractor
	extract   config.ExtractConfig
	log       *zap.Logger
}

// New creates a Server over explicitly passed dependencies.
func New(store *session.Store, engine *search.Engine, extractor domain.Extractor, extract config.ExtractConfig, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{store: store, engine: engine, extractor: extractor, extract: extract, log: log}
}

// Router builds the echo instance with all routes mounted.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/session/start", s.startSession)
	e.GET("/session/:id", s.checkSession)
	e.PUT("/session/end/:id", s.endSession)

	e.POST("/extract/upload", s.uploadFile)

	e.POST("/session/:id/documents", s.addDocument)
	e.POST("/session/:id/search", s.searchSession)

	return e
}

// fail maps a typed failure to its transport status and a message that does
// not leak internals beyond the error kind.
func (s *Server) fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
		msg = "session not found"
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		msg = "invalid input"
	case errors.Is(err, domain.ErrExtraction):
		status = http.StatusExpectationFailed
		msg = "could not extract text from the uploaded file"
	case errors.Is(err, domain.ErrEmbedding):
		status = http.StatusBadGateway
		msg = "embedding provider failed"
	}
	s.log.Warn("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path),
		zap.Int("status", status),
		zap.Error(err))
	return c.JSON(status, map[string]string{"error": msg})
}
