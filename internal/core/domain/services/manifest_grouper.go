package services

import (
	"fulfillment/internal/core/domain/model/manifest"
	"fulfillment/internal/core/domain/model/order"
)

// ManifestGrouper is a domain service that partitions fulfillable line items
// into shipment groups keyed by their chosen (supplier, courier) pair.
//
// Grouping rules:
//   - Lines missing either selection are silently excluded, not an error
//   - Lines already in ManifestGenerated status are excluded, so re-running
//     fulfillment never re-bills or re-labels completed lines
//   - Item order within a group and first-seen group order are preserved,
//     since manifest line ordering is customer-visible
//
// Group is a pure function: no I/O, no mutation of inputs.
type ManifestGrouper struct{}

// NewManifestGrouper creates a new ManifestGrouper instance.
func NewManifestGrouper() ManifestGrouper {
	return ManifestGrouper{}
}

// Group partitions the given line items into manifest groups.
func (g ManifestGrouper) Group(items []*order.LineItem) []manifest.Group {
	var groups []manifest.Group
	index := make(map[manifest.GroupKey]int)

	for _, item := range items {
		if !item.IsFulfillable() {
			continue
		}

		key := manifest.GroupKey{
			SupplierID: item.SupplierID(),
			CourierID:  item.CourierID(),
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, manifest.Group{Key: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
