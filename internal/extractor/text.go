package extractor

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"docsearch/internal/domain"
)

// TextExtractor turns UTF-8 text payloads into XDocs with ordered pages.
// Pages are delimited by form feeds; a page whose sentence count exceeds the
// configured budget is paginated further so that very long uploads still
// yield page-sized units for embedding.
type TextExtractor struct {
	sentencesPerPage int
	splitter         *regexp.Regexp

	extractDuration    prometheus.Histogram
	successfulExtracts prometheus.Counter
}

// New creates a TextExtractor and registers its metrics with reg.
// sentencesPerPage <= 0 disables sentence-based pagination.
func New(sentencesPerPage int, reg prometheus.Registerer) *TextExtractor {
	e := &TextExtractor{
		sentencesPerPage: sentencesPerPage,
		splitter:         regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
		extractDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "docsearch_extract_duration_seconds",
			Help: "Time taken to extract text from an uploaded document.",
		}),
		successfulExtracts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docsearch_extracts_total",
			Help: "Number of successful text extracts.",
		}),
	}
	if reg != nil {
		reg.MustRegister(e.extractDuration, e.successfulExtracts)
	}
	return e
}

// Extract parses the payload into an XDoc. A nil payload or one that is not
// valid UTF-8 fails with ErrExtraction. The document title falls back to the
// first page's text with newlines flattened, so an empty document titles as
// a single space.
func (e *TextExtractor) Extract(data []byte) (*domain.XDoc, error) {
	start := time.Now()
	if data == nil {
		return nil, fmt.Errorf("%w: file is nil", domain.ErrExtraction)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: payload is not valid UTF-8 text", domain.ErrExtraction)
	}

	pages := e.paginate(string(data))
	doc := &domain.XDoc{
		ID:         uuid.NewString(),
		Filename:   "file.txt",
		TotalPages: len(pages),
		Pages:      pages,
	}
	doc.Title = strings.ReplaceAll(pages[0].Text, "\n", " ")
	doc.Metadata = map[string]any{
		"doc_title": doc.Title,
		"filename":  doc.Filename,
		"pages":     doc.TotalPages,
	}

	e.extractDuration.Observe(time.Since(start).Seconds())
	e.successfulExtracts.Inc()
	return doc, nil
}

// paginate splits raw text into 1-based pages. Form feeds are hard page
// breaks; within each segment the sentence budget applies. Every page's
// stored text carries a trailing newline, matching the stripper behavior the
// title fallback depends on.
func (e *TextExtractor) paginate(text string) []domain.XPage {
	var out []domain.XPage
	for _, segment := range strings.Split(text, "\f") {
		for _, body := range e.splitSegment(segment) {
			out = append(out, domain.XPage{
				Number: len(out) + 1,
				Text:   body + "\n",
			})
		}
	}
	return out
}

func (e *TextExtractor) splitSegment(segment string) []string {
	if e.sentencesPerPage <= 0 {
		return []string{segment}
	}
	sentences := e.splitter.FindAllString(segment, -1)
	if len(sentences) <= e.sentencesPerPage {
		return []string{segment}
	}
	for i := range sentences {
		sentences[i] = strings.TrimSpace(sentences[i])
	}
	var bodies []string
	for i := 0; i < len(sentences); i += e.sentencesPerPage {
		end := i + e.sentencesPerPage
		if end > len(sentences) {
			end = len(sentences)
		}
		bodies = append(bodies, strings.Join(sentences[i:end], " "))
	}
	return bodies
}
