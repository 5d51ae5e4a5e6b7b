package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"docsearch/internal/domain"
)

// uploadFile extracts text from a multipart upload and returns the document
// as a structured object. Depending on configuration the payload is either
// processed in memory or spooled to the temp folder first.
func (s *Server) uploadFile(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return s.fail(c, fmt.Errorf("%w: please upload a file", domain.ErrInvalidInput))
	}
	if fh.Size == 0 {
		return s.fail(c, fmt.Errorf("%w: uploaded file is empty", domain.ErrInvalidInput))
	}

	src, err := fh.Open()
	if err != nil {
		return s.fail(c, err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return s.fail(c, err)
	}

	if !s.extract.InMemory {
		path := filepath.Join(s.extract.TempFolder, uuid.NewString()+".txt")
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return s.fail(c, err)
		}
		defer os.Remove(path)
		if data, err = os.ReadFile(path); err != nil {
			return s.fail(c, err)
		}
	}

	doc, err := s.extractor.Extract(data)
	if err != nil {
		return s.fail(c, err)
	}
	doc.Filename = fh.Filename
	if doc.Metadata != nil {
		doc.Metadata["filename"] = fh.Filename
	}
	s.log.Info("document extracted",
		zap.String("doc_id", doc.ID),
		zap.String("filename", doc.Filename),
		zap.Int("pages", doc.TotalPages))
	return c.JSON(http.StatusOK, doc)
}
