package commands

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/pkg/guard"
)

var ErrGenerateManifestsCommandIsNotConstructed = errors.New(
	"GenerateManifestsCommand must be created via NewGenerateManifestsCommand constructor",
)

// GenerateManifestsCommand triggers one fulfillment pass: group the order's
// pending line items by chosen (supplier, courier) pair and generate a
// manifest and a label for each group.
type GenerateManifestsCommand struct { //nolint:recvcheck //using for validation
	sessionID uuid.UUID

	guard guard.ConstructorGuard
}

// NewGenerateManifestsCommand creates a command to run a fulfillment pass for
// an open session.
func NewGenerateManifestsCommand(sessionID uuid.UUID) (GenerateManifestsCommand, error) {
	cmd := GenerateManifestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return GenerateManifestsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateManifestsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateManifestsCommandIsNotConstructed)
}

// SessionID returns the viewing session identifier.
func (c GenerateManifestsCommand) SessionID() uuid.UUID {
	return c.sessionID
}

func (c *GenerateManifestsCommand) setSessionID(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
