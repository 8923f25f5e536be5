package manifest

import (
	"fmt"

	"fulfillment/internal/core/domain/model/order"
)

// GroupKey identifies a shipment group by its chosen supplier and courier.
// A structured key rules out the separator-collision risk of concatenated
// identifiers.
type GroupKey struct {
	SupplierID string
	CourierID  string
}

// String renders the key for logs and error context. The rendered form is
// display-only; grouping always compares the structured key.
func (k GroupKey) String() string {
	return fmt.Sprintf("%s_%s", k.SupplierID, k.CourierID)
}

// Group is the ordered set of line items sharing one (supplier, courier)
// pair. Item order is preserved from the source order, since manifest line
// ordering is customer-visible.
type Group struct {
	Key   GroupKey
	Items []*order.LineItem
}
