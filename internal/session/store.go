// Package session keeps per-visitor chat state in memory. State lives
// only for the life of the process and is evicted after a period of
// inactivity; nothing is ever persisted.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"trayafront/internal/domain"
)

// Session is one visitor's conversation state. Transcript is the
// logical, text-only history resent to the backend on every turn;
// Bubbles is the display history, a superset carrying enrichments.
// Both are append-only.
type Session struct {
	ID         string
	Transcript []domain.ChatMessage
	Bubbles    []domain.Bubble
	Pending    bool
	LastError  string
	LastActive time.Time
}

// Snapshot is a copy of a session's renderable state, safe to use
// outside the store's lock.
type Snapshot struct {
	ID        string
	Bubbles   []domain.Bubble
	Pending   bool
	LastError string
}

// Store holds all live sessions.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
	closed   sync.Once
}

// NewStore creates a session store that evicts sessions idle longer
// than ttl.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// GetOrCreate returns the session with the given id, creating a fresh
// one (with a new id if the given id is empty or unknown).
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.LastActive = time.Now()
		return sess
	}
	sess := &Session{
		ID:         uuid.NewString(),
		LastActive: time.Now(),
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Snapshot returns a copy of the session's renderable state, or
// ErrSessionNotFound for an unknown id.
func (s *Store) Snapshot(id string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	bubbles := make([]domain.Bubble, len(sess.Bubbles))
	copy(bubbles, sess.Bubbles)
	return &Snapshot{
		ID:        sess.ID,
		Bubbles:   bubbles,
		Pending:   sess.Pending,
		LastError: sess.LastError,
	}, nil
}

// BeginTurn marks a turn in flight and optimistically appends the user's
// message to both the transcript and the display bubbles. It returns a
// copy of the full transcript (including the new user turn) to send to
// the backend. Fails with ErrTurnInFlight if the session already has a
// pending turn — at most one turn is ever in flight per session.
func (s *Store) BeginTurn(id, content string) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if sess.Pending {
		return nil, domain.ErrTurnInFlight
	}

	sess.Pending = true
	sess.LastError = ""
	sess.LastActive = time.Now()
	sess.Transcript = append(sess.Transcript, domain.ChatMessage{
		Role:    domain.RoleUser,
		Content: content,
	})
	sess.Bubbles = append(sess.Bubbles, domain.Bubble{
		Role:    domain.RoleUser,
		Content: content,
	})

	transcript := make([]domain.ChatMessage, len(sess.Transcript))
	copy(transcript, sess.Transcript)
	return transcript, nil
}

// CompleteTurn appends the assistant's reply: one display bubble carrying
// the resolved enrichments and one text-only transcript entry. Clears
// the pending flag.
func (s *Store) CompleteTurn(id, reply string, enrichments []domain.Enrichment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.Transcript = append(sess.Transcript, domain.ChatMessage{
		Role:    domain.RoleAssistant,
		Content: reply,
	})
	sess.Bubbles = append(sess.Bubbles, domain.Bubble{
		Role:        domain.RoleAssistant,
		Content:     reply,
		Enrichments: enrichments,
	})
	sess.Pending = false
	sess.LastActive = time.Now()
	return nil
}

// FailTurn records a failed chat call. The user's optimistic entries are
// kept (a failed turn still counts as said); only the error surface and
// the pending flag change.
func (s *Store) FailTurn(id, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.LastError = message
	sess.Pending = false
	sess.LastActive = time.Now()
	return nil
}

// Transcript returns a copy of the session's logical transcript.
func (s *Store) Transcript(id string) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	transcript := make([]domain.ChatMessage, len(sess.Transcript))
	copy(transcript, sess.Transcript)
	return transcript, nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close stops the eviction sweep.
func (s *Store) Close() {
	s.closed.Do(func() { close(s.done) })
}

func (s *Store) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.evictIdle(now)
		}
	}
}

func (s *Store) evictIdle(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		// Never evict mid-turn
		if !sess.Pending && now.Sub(sess.LastActive) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
