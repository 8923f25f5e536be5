package order

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder constructor.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for one purchase order being fulfilled. It owns
// the order's line items and the customer reference for the lifetime of one
// viewing session.
//
// The order's own fields are immutable after load; only the per-line
// fulfillment status changes, and only through MarkManifestGenerated on the
// line items.
type Order struct {
	id                 string
	name               string
	orderDate          time.Time
	description        string
	totalValue         float64
	customerPostalCode string

	customer  Customer
	lineItems []*LineItem

	isConstructed bool
}

// NewOrder creates an Order aggregate from externally fetched order data.
//
// Parameters:
//   - id: externally issued order identifier (required)
//   - name: display name of the order
//   - orderDate: date the order was placed (zero when the source omits it)
//   - description: free-text description
//   - totalValue: total monetary value of the order
//   - customerPostalCode: destination postal code as recorded on the order
//   - customer: the shipping recipient (must be constructed via NewCustomer)
//   - lineItems: the order's line items
func NewOrder(
	id, name string,
	orderDate time.Time,
	description string,
	totalValue float64,
	customerPostalCode string,
	customer Customer,
	lineItems []*LineItem,
) (*Order, error) {
	o := &Order{
		name:               name,
		orderDate:          orderDate,
		description:        description,
		totalValue:         totalValue,
		customerPostalCode: customerPostalCode,
		lineItems:          lineItems,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.validateLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() string { return o.id }

// Name returns the order's display name.
func (o *Order) Name() string { return o.name }

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// Description returns the order's free-text description.
func (o *Order) Description() string { return o.description }

// TotalValue returns the total monetary value recorded on the order.
func (o *Order) TotalValue() float64 { return o.totalValue }

// CustomerPostalCode returns the destination postal code recorded on the
// order.
func (o *Order) CustomerPostalCode() string { return o.customerPostalCode }

// Customer returns the shipping recipient of the order.
func (o *Order) Customer() Customer { return o.customer }

// LineItems returns the order's line items in their original order.
func (o *Order) LineItems() []*LineItem { return o.lineItems }

// LineItem retrieves a line item by identifier.
// Returns an ObjectNotFoundError when the order has no such line.
func (o *Order) LineItem(id string) (*LineItem, error) {
	id = normalizeID(id)
	for _, li := range o.lineItems {
		if normalizeID(li.ID()) == id {
			return li, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineItemId", id)
}

// TotalQuantity returns the summed quantity across all line items.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, li := range o.lineItems {
		total += li.Quantity()
	}
	return total
}

// TotalAmount returns the summed line totals across all line items.
func (o *Order) TotalAmount() float64 {
	total := 0.0
	for _, li := range o.lineItems {
		total += li.Amount()
	}
	return total
}

// AllManifestsGenerated reports whether every line item reached its terminal
// status. An order with no line items counts as fully generated.
func (o *Order) AllManifestsGenerated() bool {
	for _, li := range o.lineItems {
		if !li.Status().IsTerminal() {
			return false
		}
	}
	return true
}

// HasFulfillableSelection reports whether at least one pending line item has
// both a supplier and a courier chosen. Callers must block fulfillment when
// this is false.
func (o *Order) HasFulfillableSelection() bool {
	for _, li := range o.lineItems {
		if li.IsFulfillable() {
			return true
		}
	}
	return false
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) validateLineItems(lineItems []*LineItem) error {
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	return nil
}
