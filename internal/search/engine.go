package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docsearch/internal/domain"
	"docsearch/internal/session"
	"docsearch/internal/similarity"
)

// Engine maintains per-session vector indices and answers similarity
// queries. Candidate scoring is deliberately brute-force over the session's
// page list: sessions are small and ephemeral, so no index structure beyond
// the list is kept.
type Engine struct {
	store    *session.Store
	embedder domain.Embedder
	fn       similarity.Function
	topK     int
	snip     *Snippeter
	log      *zap.Logger
}

// NewEngine creates a search engine over the given store and embedder.
// topK caps result counts when positive; zero returns all candidates.
func NewEngine(store *session.Store, embedder domain.Embedder, fn similarity.Function, topK int, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		store:    store,
		embedder: embedder,
		fn:       fn,
		topK:     topK,
		snip:     NewSnippeter(),
		log:      log,
	}
}

// Function returns the active similarity function.
func (e *Engine) Function() similarity.Function { return e.fn }

// AddDocument embeds every page of doc that lacks a vector and appends the
// document to the session. The add is atomic: any embedding failure leaves
// the session unchanged. Embedding happens before any session lock is taken.
func (e *Engine) AddDocument(ctx context.Context, sessionID string, doc *domain.XDoc) error {
	sess, err := e.store.Get(sessionID)
	if err != nil {
		return err
	}
	pages := make([]domain.XPage, len(doc.Pages))
	copy(pages, doc.Pages)
	for i := range pages {
		if pages[i].Vector != nil {
			continue
		}
		vec, err := e.embedder.Embed(ctx, pages[i].Text)
		if err != nil {
			return fmt.Errorf("embedding page %d: %w", pages[i].Number, err)
		}
		pages[i].Vector = vec
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.TotalPages == 0 {
		doc.TotalPages = len(pages)
	}
	committed := *doc
	committed.Pages = pages
	sess.Append(&committed)
	return nil
}

// Search embeds the query and ranks every vectorized page in the session
// under the configured similarity function, using the engine's default
// result cap.
func (e *Engine) Search(ctx context.Context, sessionID, query string) ([]domain.Match, error) {
	return e.SearchTopK(ctx, sessionID, query, e.topK)
}

// SearchTopK is Search with an explicit result cap; topK <= 0 falls back to
// the engine default. An empty session yields an empty result list, not an
// error. Ties rank by insertion order: document order, then page number.
func (e *Engine) SearchTopK(ctx context.Context, sessionID, query string, topK int) ([]domain.Match, error) {
	sess, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	qvec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	docs := sess.Documents()
	matches := make([]domain.Match, 0)
	for _, d := range docs {
		for _, p := range d.Pages {
			if p.Vector == nil {
				continue
			}
			score, err := e.fn.Score(qvec, p.Vector)
			if err != nil {
				e.log.Error("scoring candidate page failed",
					zap.String("session_id", sessionID),
					zap.String("doc_id", d.ID),
					zap.Int("page", p.Number),
					zap.Error(err))
				return nil, err
			}
			matches = append(matches, domain.Match{
				DocID:      d.ID,
				DocTitle:   d.Title,
				PageNumber: p.Number,
				Text:       p.Text,
				Snippet:    e.snip.Build(p.Text, 2),
				Score:      score,
			})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return e.fn.Better(matches[i].Score, matches[j].Score)
	})
	if topK <= 0 {
		topK = e.topK
	}
	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}
