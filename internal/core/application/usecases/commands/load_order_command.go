// Package commands contains business operations that modify fulfillment
// state. All commands follow a consistent pattern: constructor validation,
// session access, domain mutation, and store write-back.
package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrLoadOrderCommandIsNotConstructed = errors.New(
		"LoadOrderCommand must be created via NewLoadOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// LoadOrderCommand represents a request to load one order for fulfillment and
// open a viewing session that owns its aggregate.
//
// Example:
//
//	cmd, err := NewLoadOrderCommand("2023614909")
//	if err != nil {
//	    return fmt.Errorf("invalid order reference: %w", err)
//	}
//
//	sessionID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to load order: %w", err)
//	}
type LoadOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewLoadOrderCommand creates a command to load the given order.
// The order identifier is externally issued and must not be empty.
func NewLoadOrderCommand(orderID string) (LoadOrderCommand, error) {
	cmd := LoadOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return LoadOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadOrderCommand) Validate() error {
	return c.guard.Validate(ErrLoadOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to load.
func (c LoadOrderCommand) OrderID() string {
	return c.orderID
}

func (c *LoadOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
