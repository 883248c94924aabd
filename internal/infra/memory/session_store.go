package memory

import (
	"context"
	"sync"
	"time"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"
)

// session pairs one session's state with the mutex that serializes access
// to it. The per-session lock means two requests for the same session never
// interleave while requests for different sessions proceed in parallel.
type session struct {
	mu    sync.Mutex
	state entity.SessionState
}

// SessionStore is the in-memory SessionRepository.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionStore builds an empty session store.
func NewSessionStore() repository.SessionRepository {
	return &SessionStore{
		sessions: make(map[string]*session),
	}
}

// Execute runs fn with exclusive access to the session's state, creating the
// session on first use.
func (s *SessionStore) Execute(ctx context.Context, sessionID string, fn func(state *entity.SessionState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{state: entity.SessionState{CreatedAt: time.Now()}}
		s.sessions[sessionID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return fn(&sess.state)
}

// Delete drops a session and all of its state.
func (s *SessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)

	return nil
}
