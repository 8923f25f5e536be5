package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/session"
)

// SessionRepository stores the viewing sessions that own order aggregates.
// Implementations must serialize access to each session's fulfillment
// in-flight flag, so BeginFulfillment acts as an atomic test-and-set.
type SessionRepository interface {
	// Add stores a new session.
	Add(ctx context.Context, s *session.Session) error

	// Get retrieves a session by identifier and marks it as accessed.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*session.Session, error)

	// Update persists changes made to a session's aggregate.
	Update(ctx context.Context, s *session.Session) error

	// BeginFulfillment atomically flips the session's fulfillment in-flight
	// flag. Returns false when a fulfillment pass is already running.
	BeginFulfillment(ctx context.Context, id uuid.UUID) (bool, error)

	// EndFulfillment releases the session's fulfillment in-flight flag.
	EndFulfillment(ctx context.Context, id uuid.UUID) error

	// DeleteIdleBefore removes sessions not accessed since the cutoff and
	// returns how many were removed.
	DeleteIdleBefore(ctx context.Context, cutoff time.Time) int
}
