package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/domain"
)

func TestLifecycle(t *testing.T) {
	st := NewStore()

	sess := st.Create()
	require.NotEmpty(t, sess.ID())
	assert.True(t, st.Exists(sess.ID()))

	got, err := st.Get(sess.ID())
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, st.End(sess.ID()))
	assert.False(t, st.Exists(sess.ID()))

	_, err = st.Get(sess.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, st.End(sess.ID()), domain.ErrSessionNotFound)
}

func TestGetUnknown(t *testing.T) {
	st := NewStore()
	_, err := st.Get("nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestIDsAreUnique(t *testing.T) {
	st := NewStore()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := st.Create().ID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = struct{}{}
	}
	assert.Equal(t, 100, st.Len())
}

func TestAppendAndSnapshot(t *testing.T) {
	st := NewStore()
	sess := st.Create()

	sess.Append(&domain.XDoc{ID: "d1"})
	sess.Append(&domain.XDoc{ID: "d2"})

	snap := sess.Documents()
	require.Len(t, snap, 2)
	assert.Equal(t, "d1", snap[0].ID)
	assert.Equal(t, "d2", snap[1].ID)

	// snapshot is stable across later appends
	sess.Append(&domain.XDoc{ID: "d3"})
	assert.Len(t, snap, 2)
	assert.Equal(t, 3, sess.Len())
}

func TestEndedSessionStaysUsableWhileReferenced(t *testing.T) {
	st := NewStore()
	sess := st.Create()
	sess.Append(&domain.XDoc{ID: "d1"})

	require.NoError(t, st.End(sess.ID()))

	// a caller holding the reference completes against the detached object
	sess.Append(&domain.XDoc{ID: "d2"})
	assert.Equal(t, 2, sess.Len())

	_, err := st.Get(sess.ID())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestConcurrentCreateEndLookup(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := st.Create()
			if !st.Exists(sess.ID()) {
				t.Error("created session not visible")
			}
			if err := st.End(sess.ID()); err != nil {
				t.Errorf("end failed: %v", err)
			}
			if st.Exists(sess.ID()) {
				t.Error("ended session still visible")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, st.Len())
}

func TestConcurrentAppendsSingleSession(t *testing.T) {
	st := NewStore()
	sess := st.Create()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.Append(&domain.XDoc{})
		}()
	}
	wg.Wait()
	assert.Equal(t, 32, sess.Len())
}

func TestErrorsAreTyped(t *testing.T) {
	st := NewStore()
	err := st.End("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}
