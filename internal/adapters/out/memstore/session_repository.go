// Package memstore provides the in-memory session repository. Session state
// is authoritative only for the lifetime of the process; the order state
// itself is owned by the remote order endpoint, so losing sessions on restart
// costs nothing beyond a reload.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"
)

// SessionRepository is a mutex-guarded in-memory implementation of
// ports.SessionRepository. The single mutex also serializes the fulfillment
// in-flight flag, which makes BeginFulfillment an atomic test-and-set.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session.Session
}

// NewSessionRepository creates an empty in-memory session repository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[uuid.UUID]*session.Session),
	}
}

// Add stores a new session.
func (r *SessionRepository) Add(_ context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID()] = s
	return nil
}

// Get retrieves a session by identifier and refreshes its last-seen time.
func (r *SessionRepository) Get(_ context.Context, id uuid.UUID) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionId", id.String())
	}

	s.Touch(time.Now())
	return s, nil
}

// Update persists changes made to a session's aggregate. The aggregate is
// mutated in place, so Update only refreshes the last-seen time and confirms
// the session still exists.
func (r *SessionRepository) Update(_ context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID()]; !ok {
		return errs.NewObjectNotFoundError("sessionId", s.ID().String())
	}

	s.Touch(time.Now())
	return nil
}

// BeginFulfillment atomically flips the session's fulfillment in-flight flag.
func (r *SessionRepository) BeginFulfillment(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return false, errs.NewObjectNotFoundError("sessionId", id.String())
	}

	return s.TryBeginFulfillment(), nil
}

// EndFulfillment releases the session's fulfillment in-flight flag.
func (r *SessionRepository) EndFulfillment(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return errs.NewObjectNotFoundError("sessionId", id.String())
	}

	s.EndFulfillment()
	return nil
}

// DeleteIdleBefore removes sessions not accessed since the cutoff and returns
// how many were removed. A session whose fulfillment flag is held is kept
// regardless of idleness; evicting it would strand the running pass.
func (r *SessionRepository) DeleteIdleBefore(_ context.Context, cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.FulfillmentInFlight() {
			continue
		}
		if s.IdleSince(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed
}
