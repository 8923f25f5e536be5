package commands

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrChooseCourierCommandIsNotConstructed = errors.New(
		"ChooseCourierCommand must be created via NewChooseCourierCommand constructor",
	)
	ErrCourierIDIsRequired = errors.New("courier id is required")
)

// ChooseCourierCommand records the courier choice for one line item.
type ChooseCourierCommand struct { //nolint:recvcheck //using for validation
	sessionID  uuid.UUID
	lineItemID string
	courierID  string

	guard guard.ConstructorGuard
}

// NewChooseCourierCommand creates a command to choose a courier for a line
// item within an open session.
func NewChooseCourierCommand(sessionID uuid.UUID, lineItemID, courierID string) (ChooseCourierCommand, error) {
	cmd := ChooseCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineItemID(lineItemID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ChooseCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChooseCourierCommand) Validate() error {
	return c.guard.Validate(ErrChooseCourierCommandIsNotConstructed)
}

// SessionID returns the viewing session identifier.
func (c ChooseCourierCommand) SessionID() uuid.UUID {
	return c.sessionID
}

// LineItemID returns the identifier of the line item being selected for.
func (c ChooseCourierCommand) LineItemID() string {
	return c.lineItemID
}

// CourierID returns the chosen courier's identifier.
func (c ChooseCourierCommand) CourierID() string {
	return c.courierID
}

func (c *ChooseCourierCommand) setSessionID(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *ChooseCourierCommand) setLineItemID(lineItemID string) error {
	if lineItemID == "" {
		return ErrLineItemIDIsRequired
	}

	c.lineItemID = lineItemID
	return nil
}

func (c *ChooseCourierCommand) setCourierID(courierID string) error {
	if courierID == "" {
		return ErrCourierIDIsRequired
	}

	c.courierID = courierID
	return nil
}
