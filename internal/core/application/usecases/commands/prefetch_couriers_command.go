package commands

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/pkg/guard"
)

var ErrPrefetchCouriersCommandIsNotConstructed = errors.New(
	"PrefetchCouriersCommand must be created via NewPrefetchCouriersCommand constructor",
)

// PrefetchCouriersCommand requests courier quotes for every line item that
// has a chosen supplier but no courier candidate list yet.
type PrefetchCouriersCommand struct { //nolint:recvcheck //using for validation
	sessionID uuid.UUID

	guard guard.ConstructorGuard
}

// NewPrefetchCouriersCommand creates a command to prefetch courier quotes for
// an open session.
func NewPrefetchCouriersCommand(sessionID uuid.UUID) (PrefetchCouriersCommand, error) {
	cmd := PrefetchCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return PrefetchCouriersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PrefetchCouriersCommand) Validate() error {
	return c.guard.Validate(ErrPrefetchCouriersCommandIsNotConstructed)
}

// SessionID returns the viewing session identifier.
func (c PrefetchCouriersCommand) SessionID() uuid.UUID {
	return c.sessionID
}

func (c *PrefetchCouriersCommand) setSessionID(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
