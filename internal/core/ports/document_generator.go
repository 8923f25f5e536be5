package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/manifest"
)

// ManifestGenerator produces the shipping manifest for one shipment group.
// A non-nil error means the document was not generated and the fulfillment
// batch must abort at this group.
type ManifestGenerator interface {
	GenerateManifest(ctx context.Context, req manifest.Request) error
}

// LabelGenerator produces the shipping label for one shipment group. The
// request shape is identical to the manifest request.
type LabelGenerator interface {
	GenerateLabel(ctx context.Context, req manifest.Request) error
}
