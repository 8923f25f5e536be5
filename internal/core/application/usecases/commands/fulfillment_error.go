package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/manifest"
)

// Stage names the orchestration step at which a fulfillment batch failed.
type Stage string

const (
	// StageManifest is the manifest generation call for a group.
	StageManifest Stage = "manifest"

	// StageLabel is the label generation call for a group.
	StageLabel Stage = "label"
)

// ErrGenerationFailed is the sentinel wrapped by every FulfillmentError, so
// callers can classify remote generation failures with errors.Is.
var ErrGenerationFailed = errors.New("document generation failed")

// FulfillmentError reports which stage of which shipment group aborted a
// fulfillment batch. Groups processed before the failing one have already
// produced manifests and labels in the external system; those side effects
// are not rolled back (at-least-once, not exactly-once). Because completed
// lines are excluded from grouping, re-invoking fulfillment retries only the
// groups that never reached terminal status.
type FulfillmentError struct {
	Stage    Stage
	GroupKey manifest.GroupKey
	Cause    error
}

// NewFulfillmentError creates a FulfillmentError for the given stage and
// group.
func NewFulfillmentError(stage Stage, key manifest.GroupKey, cause error) *FulfillmentError {
	return &FulfillmentError{
		Stage:    stage,
		GroupKey: key,
		Cause:    cause,
	}
}

func (e *FulfillmentError) Error() string {
	return fmt.Sprintf("%s generation failed for group %s: %s", e.Stage, e.GroupKey, e.Cause)
}

func (e *FulfillmentError) Unwrap() []error {
	return []error{ErrGenerationFailed, e.Cause}
}
