package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"docsearch/internal/domain"
)

// startSession creates a new search session and points the caller at the
// session resource.
func (s *Server) startSession(c echo.Context) error {
	sess := s.store.Create()
	s.log.Info("session created", zap.String("session_id", sess.ID()))
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/session/%s", sess.ID()))
	return c.String(http.StatusCreated, sess.ID())
}

// checkSession reports whether the session id refers to a live session.
func (s *Server) checkSession(c echo.Context) error {
	id := c.Param("id")
	if !s.store.Exists(id) {
		return s.fail(c, domain.ErrSessionNotFound)
	}
	return c.String(http.StatusOK, id)
}

// endSession deletes the session and all its documents and vectors.
func (s *Server) endSession(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return s.fail(c, fmt.Errorf("%w: session id is required", domain.ErrInvalidInput))
	}
	if err := s.store.End(id); err != nil {
		return s.fail(c, err)
	}
	s.log.Info("session ended", zap.String("session_id", id))
	return c.NoContent(http.StatusOK)
}
