package commands

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrChooseSupplierCommandIsNotConstructed = errors.New(
		"ChooseSupplierCommand must be created via NewChooseSupplierCommand constructor",
	)
	ErrSessionIDIsRequired  = errors.New("session id is required")
	ErrLineItemIDIsRequired = errors.New("line item id is required")
	ErrSupplierIDIsRequired = errors.New("supplier id is required")
)

// ChooseSupplierCommand records the supplier choice for one line item and
// triggers the origin-dependent courier quote fetch for that line.
type ChooseSupplierCommand struct { //nolint:recvcheck //using for validation
	sessionID  uuid.UUID
	lineItemID string
	supplierID string

	guard guard.ConstructorGuard
}

// NewChooseSupplierCommand creates a command to choose a supplier for a line
// item within an open session.
func NewChooseSupplierCommand(sessionID uuid.UUID, lineItemID, supplierID string) (ChooseSupplierCommand, error) {
	cmd := ChooseSupplierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineItemID(lineItemID),
		cmd.setSupplierID(supplierID),
	); err != nil {
		return ChooseSupplierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChooseSupplierCommand) Validate() error {
	return c.guard.Validate(ErrChooseSupplierCommandIsNotConstructed)
}

// SessionID returns the viewing session identifier.
func (c ChooseSupplierCommand) SessionID() uuid.UUID {
	return c.sessionID
}

// LineItemID returns the identifier of the line item being selected for.
func (c ChooseSupplierCommand) LineItemID() string {
	return c.lineItemID
}

// SupplierID returns the chosen supplier's identifier.
func (c ChooseSupplierCommand) SupplierID() string {
	return c.supplierID
}

func (c *ChooseSupplierCommand) setSessionID(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *ChooseSupplierCommand) setLineItemID(lineItemID string) error {
	if lineItemID == "" {
		return ErrLineItemIDIsRequired
	}

	c.lineItemID = lineItemID
	return nil
}

func (c *ChooseSupplierCommand) setSupplierID(supplierID string) error {
	if supplierID == "" {
		return ErrSupplierIDIsRequired
	}

	c.supplierID = supplierID
	return nil
}
