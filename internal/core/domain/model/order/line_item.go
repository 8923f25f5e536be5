package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/candidate"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem constructor.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrLineItemIsTerminal is returned when a selection mutation is attempted
	// on a line item whose manifest was already generated.
	ErrLineItemIsTerminal = errors.New("line item is in Manifest Generated status and cannot be modified")
)

// LineItem is one orderable unit of a purchase order. Each line requires its
// own supplier and courier selection; lines sharing a (supplier, courier)
// pair are fulfilled together as one shipment group.
//
// LineItem follows these invariants:
//   - Quantity must be positive and unit price non-negative
//   - Once the status is ManifestGenerated the supplier/courier choice and
//     the candidate lists are frozen
//   - Courier candidates can only exist after a supplier is chosen
type LineItem struct {
	id        string
	product   string
	sku       string
	quantity  int
	unitPrice float64
	status    Status

	supplierID string
	courierID  string

	suppliers         []candidate.Supplier
	availableCouriers []candidate.Courier

	isConstructed bool
}

// NewLineItem creates a LineItem in Pending status with the externally
// supplied supplier candidate list.
//
// Parameters:
//   - id: externally issued line item identifier (required)
//   - product: product reference for display
//   - sku: stock keeping unit
//   - quantity: ordered quantity (must be positive)
//   - unitPrice: price per unit (must be non-negative)
//   - suppliers: candidate suppliers for this line, best first
func NewLineItem(
	id, product, sku string,
	quantity int,
	unitPrice float64,
	suppliers []candidate.Supplier,
) (*LineItem, error) {
	item := &LineItem{
		status:        Pending,
		suppliers:     suppliers,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProduct(product, sku),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the LineItem instance was properly constructed through
// NewLineItem.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li *LineItem) ID() string { return li.id }

// Product returns the product reference.
func (li *LineItem) Product() string { return li.product }

// SKU returns the stock keeping unit.
func (li *LineItem) SKU() string { return li.sku }

// Quantity returns the ordered quantity.
func (li *LineItem) Quantity() int { return li.quantity }

// UnitPrice returns the price per unit.
func (li *LineItem) UnitPrice() float64 { return li.unitPrice }

// Amount returns the line total (quantity times unit price).
func (li *LineItem) Amount() float64 { return float64(li.quantity) * li.unitPrice }

// Status returns the line item's current fulfillment status.
func (li *LineItem) Status() Status { return li.status }

// SupplierID returns the chosen supplier identifier, or an empty string when
// no supplier is chosen yet.
func (li *LineItem) SupplierID() string { return li.supplierID }

// CourierID returns the chosen courier identifier, or an empty string when no
// courier is chosen yet.
func (li *LineItem) CourierID() string { return li.courierID }

// Suppliers returns the candidate supplier list for this line.
func (li *LineItem) Suppliers() []candidate.Supplier { return li.suppliers }

// AvailableCouriers returns the candidate courier list quoted for this line.
// Empty until a supplier is chosen and quotes were fetched.
func (li *LineItem) AvailableCouriers() []candidate.Courier { return li.availableCouriers }

// HasCompleteSelection reports whether both a supplier and a courier are
// chosen for this line.
func (li *LineItem) HasCompleteSelection() bool {
	return li.supplierID != "" && li.courierID != ""
}

// IsFulfillable reports whether this line would be part of the next
// fulfillment pass: complete selection and not yet terminal.
func (li *LineItem) IsFulfillable() bool {
	return li.HasCompleteSelection() && !li.status.IsTerminal()
}

// ChooseSupplier records the supplier choice for this line.
// Returns ErrLineItemIsTerminal once the manifest was generated.
func (li *LineItem) ChooseSupplier(supplierID string) error {
	if li.status.IsTerminal() {
		return ErrLineItemIsTerminal
	}

	supplierID = normalizeID(supplierID)
	if supplierID == "" {
		return errs.NewValueIsRequiredError("supplierId")
	}

	li.supplierID = supplierID
	return nil
}

// ChooseCourier records the courier choice for this line. A supplier must be
// chosen first, since the courier quotes are origin-dependent.
// Returns ErrLineItemIsTerminal once the manifest was generated.
func (li *LineItem) ChooseCourier(courierID string) error {
	if li.status.IsTerminal() {
		return ErrLineItemIsTerminal
	}

	courierID = normalizeID(courierID)
	if courierID == "" {
		return errs.NewValueIsRequiredError("courierId")
	}
	if li.supplierID == "" {
		return errs.NewValueIsRequiredError("chosen supplier")
	}

	li.courierID = courierID
	return nil
}

// SetSuppliers replaces the candidate supplier list, typically with the
// rank-annotated copy produced by the ranking engine.
// Returns ErrLineItemIsTerminal once the manifest was generated.
func (li *LineItem) SetSuppliers(suppliers []candidate.Supplier) error {
	if li.status.IsTerminal() {
		return ErrLineItemIsTerminal
	}

	li.suppliers = suppliers
	return nil
}

// SetAvailableCouriers attaches the quoted courier candidate list for this
// line. Returns ErrLineItemIsTerminal once the manifest was generated.
func (li *LineItem) SetAvailableCouriers(couriers []candidate.Courier) error {
	if li.status.IsTerminal() {
		return ErrLineItemIsTerminal
	}

	li.availableCouriers = couriers
	return nil
}

// MarkManifestGenerated transitions the line into its terminal
// ManifestGenerated status. Only Pending lines can be marked.
func (li *LineItem) MarkManifestGenerated() error {
	newStatus, err := li.status.MarkManifestGenerated()
	if err != nil {
		return err
	}

	li.status = newStatus
	return nil
}

// SupplierByID resolves a supplier candidate by identifier using
// trimmed-string comparison. Returns false when no candidate matches.
func (li *LineItem) SupplierByID(supplierID string) (candidate.Supplier, bool) {
	supplierID = normalizeID(supplierID)
	for _, s := range li.suppliers {
		if normalizeID(s.ID) == supplierID {
			return s, true
		}
	}
	return candidate.Supplier{}, false
}

// CourierByID resolves a courier candidate by identifier using trimmed-string
// comparison. Returns false when no candidate matches.
func (li *LineItem) CourierByID(courierID string) (candidate.Courier, bool) {
	courierID = normalizeID(courierID)
	for _, c := range li.availableCouriers {
		if normalizeID(c.ID) == courierID {
			return c, true
		}
	}
	return candidate.Courier{}, false
}

func (li *LineItem) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("line item id")
	}
	li.id = id
	return nil
}

func (li *LineItem) setProduct(product, sku string) error {
	li.product = product
	li.sku = sku
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%g is negative", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}

// normalizeID brings an externally issued identifier into canonical form for
// comparison. Collaborators deliver the same identifier as a number in one
// payload and a padded string in another.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}
