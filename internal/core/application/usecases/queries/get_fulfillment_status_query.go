// Package queries contains read operations over open fulfillment sessions.
// Queries return read models shaped for status display and never mutate the
// aggregate.
package queries

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetFulfillmentStatusQueryIsNotConstructed = errors.New(
		"GetFulfillmentStatusQuery must be created via NewGetFulfillmentStatusQuery constructor",
	)
	ErrSessionIDIsRequired = errors.New("session id is required")
)

// GetFulfillmentStatusQuery retrieves the fulfillment view of one session's
// order: per-line status and selections plus the order-level roll-ups.
type GetFulfillmentStatusQuery struct { //nolint:recvcheck //using for validation
	sessionID uuid.UUID

	guard guard.ConstructorGuard
}

// NewGetFulfillmentStatusQuery creates a query for the given session.
func NewGetFulfillmentStatusQuery(sessionID uuid.UUID) (GetFulfillmentStatusQuery, error) {
	q := GetFulfillmentStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setSessionID(sessionID); err != nil {
		return GetFulfillmentStatusQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFulfillmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfillmentStatusQueryIsNotConstructed)
}

// SessionID returns the viewing session identifier.
func (q GetFulfillmentStatusQuery) SessionID() uuid.UUID {
	return q.sessionID
}

func (q *GetFulfillmentStatusQuery) setSessionID(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return ErrSessionIDIsRequired
	}

	q.sessionID = sessionID
	return nil
}

// LineItemStatus is the per-line slice of the fulfillment read model.
type LineItemStatus struct {
	ID         string
	Product    string
	SKU        string
	Quantity   int
	UnitPrice  float64
	Status     string
	SupplierID string
	CourierID  string
}

// GetFulfillmentStatusQueryResponse is the fulfillment read model for one
// order: what the status bar and the product table render.
type GetFulfillmentStatusQueryResponse struct {
	OrderID       string
	OrderName     string
	AllGenerated  bool
	TotalQuantity int
	TotalAmount   float64
	Lines         []LineItemStatus
}
