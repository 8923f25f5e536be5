// Package ports defines the contracts between the fulfillment core and its
// collaborators: the remote order endpoint, the courier quoting service, the
// document generation capabilities, and the session store.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderClient retrieves the authoritative order state from the remote order
// endpoint. The aggregate it returns carries the customer record and every
// line item with its externally supplied supplier candidates.
type OrderClient interface {
	// FetchOrder retrieves one order with its line items and customer.
	FetchOrder(ctx context.Context, orderID string) (*order.Order, error)
}
