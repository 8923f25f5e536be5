package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the fulfillment state of a line item.
// It implements a state machine with a single transition:
//
//	Pending ──> ManifestGenerated
//
// ManifestGenerated is terminal. Failures are reported to the caller, never
// recorded on the line item, so there is no failure state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every line item. Pending lines are
	// eligible for supplier/courier selection and manifest generation.
	Pending

	// ManifestGenerated indicates the manifest and label for the line's
	// shipment group were generated. This is a final state.
	ManifestGenerated
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Pending:           "Pending",
		ManifestGenerated: "Manifest Generated",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:           "Pending",
		ManifestGenerated: "Manifest Generated",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending and ManifestGenerated.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. ManifestGenerated
// renders as "Manifest Generated", the form the order endpoint uses on the
// wire. Safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses the wire representation of a status.
// Unrecognized strings map to Pending, so lines arriving with no status (or
// an unknown one) stay eligible for fulfillment.
func StatusFromString(s string) Status {
	if s == "Manifest Generated" {
		return ManifestGenerated
	}
	return Pending
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == ManifestGenerated
}

// MarkManifestGenerated transitions the status to ManifestGenerated.
//
// Valid transitions:
//   - Pending -> ManifestGenerated
//
// Returns an error when the line is already in ManifestGenerated status or
// the status is invalid.
func (s Status) MarkManifestGenerated() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark manifest generated", s.String()),
		)
	}

	return ManifestGenerated, nil
}
