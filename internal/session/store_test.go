package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trayafront/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(time.Hour)
	t.Cleanup(store.Close)
	return store
}

func TestGetOrCreate(t *testing.T) {
	store := newTestStore(t)

	sess := store.GetOrCreate("")
	require.NotEmpty(t, sess.ID)

	again := store.GetOrCreate(sess.ID)
	assert.Equal(t, sess.ID, again.ID)
	assert.Equal(t, 1, store.Len())

	other := store.GetOrCreate("unknown-id")
	assert.NotEqual(t, "unknown-id", other.ID)
	assert.Equal(t, 2, store.Len())
}

func TestBeginTurnAppendsOptimistically(t *testing.T) {
	store := newTestStore(t)
	sess := store.GetOrCreate("")

	transcript, err := store.BeginTurn(sess.ID, "my hair is falling")
	require.NoError(t, err)
	require.Len(t, transcript, 1)
	assert.Equal(t, domain.RoleUser, transcript[0].Role)
	assert.Equal(t, "my hair is falling", transcript[0].Content)

	snap, err := store.Snapshot(sess.ID)
	require.NoError(t, err)
	assert.True(t, snap.Pending)
	require.Len(t, snap.Bubbles, 1)
	assert.Equal(t, domain.RoleUser, snap.Bubbles[0].Role)
}

func TestBeginTurnSingleFlight(t *testing.T) {
	store := newTestStore(t)
	sess := store.GetOrCreate("")

	_, err := store.BeginTurn(sess.ID, "first")
	require.NoError(t, err)

	_, err = store.BeginTurn(sess.ID, "second")
	assert.ErrorIs(t, err, domain.ErrTurnInFlight)

	// The rejected turn left no trace
	transcript, err := store.Transcript(sess.ID)
	require.NoError(t, err)
	assert.Len(t, transcript, 1)
}

func TestCompleteTurn(t *testing.T) {
	store := newTestStore(t)
	sess := store.GetOrCreate("")

	_, err := store.BeginTurn(sess.ID, "dry scalp")
	require.NoError(t, err)

	enrichments := []domain.Enrichment{
		{Product: domain.Product{ID: 3, Title: "Scalp Oil"}, Reason: "hydrates"},
	}
	require.NoError(t, store.CompleteTurn(sess.ID, "Try the scalp oil.", enrichments))

	transcript, err := store.Transcript(sess.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, domain.RoleAssistant, transcript[1].Role)
	assert.Equal(t, "Try the scalp oil.", transcript[1].Content)

	snap, err := store.Snapshot(sess.ID)
	require.NoError(t, err)
	assert.False(t, snap.Pending)
	require.Len(t, snap.Bubbles, 2)
	assert.Len(t, snap.Bubbles[1].Enrichments, 1)
}

func TestFailTurnKeepsUserEntries(t *testing.T) {
	store := newTestStore(t)
	sess := store.GetOrCreate("")

	_, err := store.BeginTurn(sess.ID, "hello")
	require.NoError(t, err)
	require.NoError(t, store.FailTurn(sess.ID, "chat: backend returned status 502"))

	transcript, err := store.Transcript(sess.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 1)
	assert.Equal(t, domain.RoleUser, transcript[0].Role)

	snap, err := store.Snapshot(sess.ID)
	require.NoError(t, err)
	assert.False(t, snap.Pending)
	assert.Equal(t, "chat: backend returned status 502", snap.LastError)
	assert.Len(t, snap.Bubbles, 1)
}

func TestErrorClearedOnNextTurn(t *testing.T) {
	store := newTestStore(t)
	sess := store.GetOrCreate("")

	_, err := store.BeginTurn(sess.ID, "hello")
	require.NoError(t, err)
	require.NoError(t, store.FailTurn(sess.ID, "boom"))

	_, err = store.BeginTurn(sess.ID, "hello again")
	require.NoError(t, err)

	snap, err := store.Snapshot(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.LastError)
}

func TestEvictIdle(t *testing.T) {
	store := newTestStore(t)
	idle := store.GetOrCreate("")
	pending := store.GetOrCreate("")
	_, err := store.BeginTurn(pending.ID, "still going")
	require.NoError(t, err)

	store.evictIdle(time.Now().Add(2 * time.Hour))

	_, err = store.Snapshot(idle.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// A pending session is never evicted mid-turn
	_, err = store.Snapshot(pending.ID)
	assert.NoError(t, err)
}
