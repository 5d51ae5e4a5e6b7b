package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"docsearch/internal/domain"
)

// Store owns the table of live sessions and is the sole authority on session
// existence. All mutations are immediately visible to subsequent lookups.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new empty session under a fresh unique id.
func (st *Store) Create() *Session {
	sess := &Session{id: uuid.NewString(), createdAt: time.Now()}
	st.mu.Lock()
	st.sessions[sess.id] = sess
	st.mu.Unlock()
	return sess
}

// Exists reports whether a live session with the given id is registered.
func (st *Store) Exists(id string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	_, ok := st.sessions[id]
	return ok
}

// Get returns the live session with the given id, or ErrSessionNotFound if
// it was never created or already ended.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// End removes the session from the table, releasing its documents and
// vectors to the collector once no caller holds a reference. Ending an
// unknown id returns ErrSessionNotFound.
func (st *Store) End(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
