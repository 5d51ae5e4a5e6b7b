package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"docsearch/internal/domain"
)

type addDocumentResponse struct {
	ID         string `json:"id"`
	Title      string `json:"doc_title"`
	TotalPages int    `json:"total_pages"`
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Results []domain.Match `json:"results"`
}

// addDocument embeds and indexes an extracted document into the session.
func (s *Server) addDocument(c echo.Context) error {
	id := c.Param("id")
	var doc domain.XDoc
	if err := c.Bind(&doc); err != nil {
		return s.fail(c, fmt.Errorf("%w: malformed document body", domain.ErrInvalidInput))
	}
	if len(doc.Pages) == 0 {
		return s.fail(c, fmt.Errorf("%w: document has no pages", domain.ErrInvalidInput))
	}
	if err := s.engine.AddDocument(c.Request().Context(), id, &doc); err != nil {
		return s.fail(c, err)
	}
	s.log.Info("document indexed",
		zap.String("session_id", id),
		zap.String("doc_id", doc.ID),
		zap.Int("pages", len(doc.Pages)))
	return c.JSON(http.StatusCreated, addDocumentResponse{
		ID:         doc.ID,
		Title:      doc.Title,
		TotalPages: doc.TotalPages,
	})
}

// searchSession embeds the query and returns ranked matches from the
// session's indexed pages.
func (s *Server) searchSession(c echo.Context) error {
	id := c.Param("id")
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, fmt.Errorf("%w: malformed search body", domain.ErrInvalidInput))
	}
	if req.Query == "" {
		return s.fail(c, fmt.Errorf("%w: query is required", domain.ErrInvalidInput))
	}
	matches, err := s.engine.SearchTopK(c.Request().Context(), id, req.Query, req.TopK)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, searchResponse{Query: req.Query, Results: matches})
}
