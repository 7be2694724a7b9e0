package session

import (
	"sync"

	"github.com/google/uuid"

	"studio/internal/domain"
)

// Session owns one browser session's state: the append-only artifact history
// (newest first) and the busy flag that keeps a single generation in flight
// at a time, mirroring the front-end's disabled-while-pending controls.
type Session struct {
	ID string

	mu      sync.Mutex
	busy    bool
	history []domain.GeneratedArtifact
}

// Begin marks the session busy. It fails when a generation is already in
// flight; the caller must End once the call settles.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return domain.ErrSessionBusy
	}
	s.busy = true
	return nil
}

// End clears the busy flag.
func (s *Session) End() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// Append inserts an artifact at the front of the history.
func (s *Session) Append(artifact domain.GeneratedArtifact) {
	s.mu.Lock()
	s.history = append([]domain.GeneratedArtifact{artifact}, s.history...)
	s.mu.Unlock()
}

// History returns a copy of the history, newest first.
func (s *Session) History() []domain.GeneratedArtifact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.GeneratedArtifact, len(s.history))
	copy(out, s.history)
	return out
}

// Store hands out sessions by ID, creating them on first sight. Sessions
// live for the process lifetime; nothing is persisted.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, minting a fresh ID when none is supplied.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	s, ok := st.sessions[id]
	if !ok {
		s = &Session{ID: id}
		st.sessions[id] = s
	}
	return s
}
