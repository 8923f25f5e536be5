package manifest

import (
	"fulfillment/internal/core/domain/model/order"
)

// Request carries everything a document generation collaborator needs to
// produce a shipping manifest or label for one group: the supplier identity
// and contact fields, the courier identity, the full customer record, and the
// group's line items. Manifests and labels share this shape.
type Request struct {
	SupplierID      string
	SupplierName    string
	SupplierAddress string
	SupplierPhone   string
	CourierID       string
	CourierName     string
	Customer        order.Customer
	Items           []*order.LineItem
}

// NewRequest builds the generation request for one group.
//
// Supplier and courier details are resolved against the candidate lists of
// the group's first line item. Resolution is deliberately lenient: when a
// chosen identifier no longer matches any candidate, the display fields stay
// empty rather than failing the whole batch.
func NewRequest(group Group, customer order.Customer) Request {
	req := Request{
		SupplierID: group.Key.SupplierID,
		CourierID:  group.Key.CourierID,
		Customer:   customer,
		Items:      group.Items,
	}

	if len(group.Items) == 0 {
		return req
	}

	first := group.Items[0]
	if supplier, ok := first.SupplierByID(group.Key.SupplierID); ok {
		req.SupplierName = supplier.Name
		req.SupplierAddress = supplier.Address
		req.SupplierPhone = supplier.Phone
	}
	if courier, ok := first.CourierByID(group.Key.CourierID); ok {
		req.CourierName = courier.Name
	}

	return req
}
