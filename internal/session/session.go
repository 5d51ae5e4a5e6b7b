package session

import (
	"sync"
	"time"

	"docsearch/internal/domain"
)

// Session is a bounded-lifetime container isolating one client's documents
// and their vectors from all other clients. It is created and destroyed by
// the Store; documents are appended by the search engine.
//
// The document list is guarded by the session's own lock so appends from
// concurrent uploads serialize per session while unrelated sessions proceed
// in parallel. A Session stays usable after Store.End for callers that
// already hold a reference; End only removes it from the lookup table.
type Session struct {
	id        string
	createdAt time.Time

	mu   sync.RWMutex
	docs []*domain.XDoc
}

func (s *Session) ID() string           { return s.id }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Append adds a fully vectorized document to the end of the session's list.
// Insertion order is preserved; no deduplication is performed.
func (s *Session) Append(doc *domain.XDoc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
}

// Documents returns a stable snapshot of the document list. Callers scoring
// the snapshot are unaffected by concurrent appends.
func (s *Session) Documents() []*domain.XDoc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.XDoc, len(s.docs))
	copy(out, s.docs)
	return out
}

// Len reports the current number of documents in the session.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
