// Package order provides the Order aggregate for the fulfillment core.
// The aggregate holds one purchase order, its line items, and the customer it
// ships to; it supplies data to the ranking and grouping engines and receives
// per-line status updates after manifests and labels are generated.
//
// The package includes:
//   - Order: the aggregate root, immutable after load except for derived status
//   - LineItem: one orderable unit requiring its own supplier and courier choice
//   - Customer: the shipping recipient, referenced by every manifest
//   - Status: the per-line fulfillment state machine
//
// Key business rules:
//   - A line item's status moves Pending -> ManifestGenerated and nothing else;
//     ManifestGenerated is terminal
//   - A terminal line item never has its supplier or courier choice mutated again
//   - Supplier and courier identifiers are externally issued opaque strings and
//     are compared in trimmed-string form, since collaborators deliver them in
//     different primitive representations
package order
