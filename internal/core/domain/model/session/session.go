// Package session provides the viewing session that owns one order aggregate.
// A session is created when an order is loaded for fulfillment and owns the
// aggregate exclusively until it expires; all selection and fulfillment
// operations address the aggregate through its session.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/order"
)

// ErrSessionIsNotConstructed is returned when a Session instance was not
// created through the NewSession constructor.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session binds one order aggregate to one viewing session.
//
// The fulfillment in-flight flag serializes orchestration attempts: at most
// one fulfillment pass may run per order at a time, so callers flip the flag
// before orchestrating and release it afterwards. Flag access must be
// serialized by the session repository.
type Session struct {
	id       uuid.UUID
	order    *order.Order
	lastSeen time.Time

	fulfillmentInFlight bool

	isConstructed bool
}

// NewSession creates a session owning the given order aggregate.
func NewSession(ord *order.Order) (*Session, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		id:            uuid.New(),
		order:         ord,
		lastSeen:      time.Now(),
		isConstructed: true,
	}, nil
}

// Validate ensures the session was created through the constructor.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Order returns the order aggregate owned by this session.
func (s *Session) Order() *order.Order { return s.order }

// LastSeen returns the time of the last access to this session.
func (s *Session) LastSeen() time.Time { return s.lastSeen }

// Touch records an access, deferring expiry.
func (s *Session) Touch(now time.Time) { s.lastSeen = now }

// IdleSince reports whether the session has not been touched since cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	return s.lastSeen.Before(cutoff)
}

// TryBeginFulfillment flips the in-flight flag. Returns false when a
// fulfillment pass is already running for this session's order.
func (s *Session) TryBeginFulfillment() bool {
	if s.fulfillmentInFlight {
		return false
	}
	s.fulfillmentInFlight = true
	return true
}

// EndFulfillment releases the in-flight flag.
func (s *Session) EndFulfillment() { s.fulfillmentInFlight = false }

// FulfillmentInFlight reports whether a fulfillment pass currently holds the
// flag.
func (s *Session) FulfillmentInFlight() bool { return s.fulfillmentInFlight }
