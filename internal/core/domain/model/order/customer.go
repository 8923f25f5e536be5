package order

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the shipping recipient of an order. Exactly one customer exists
// per order; every manifest built for that order references (never owns) it.
//
// The customer's postal code is the quote destination for every courier quote
// requested for the order's line items.
type Customer struct {
	id         string
	name       string
	email      string
	phone      string
	address    string
	postalCode string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer value object. The identifier and postal code
// are required; the remaining contact fields are display-only and may be
// empty.
func NewCustomer(id, name, email, phone, address, postalCode string) (Customer, error) {
	if id == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer id")
	}
	if postalCode == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer postal code")
	}

	return Customer{
		id:         id,
		name:       name,
		email:      email,
		phone:      phone,
		address:    address,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c Customer) ID() string { return c.id }

// Name returns the customer's display name.
func (c Customer) Name() string { return c.name }

// Email returns the customer's email address.
func (c Customer) Email() string { return c.email }

// Phone returns the customer's phone number.
func (c Customer) Phone() string { return c.phone }

// Address returns the customer's shipping address.
func (c Customer) Address() string { return c.address }

// PostalCode returns the destination postal code for courier quotes.
func (c Customer) PostalCode() string { return c.postalCode }
