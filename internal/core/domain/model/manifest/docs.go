// Package manifest provides the transient shipment grouping model.
// A manifest group is the set of line items sharing one chosen
// (supplier, courier) pair; each group is processed as one shipment unit and
// yields exactly one manifest and one label.
//
// Groups are derived views: they are built fresh on every fulfillment attempt
// from the order's line items, are never persisted, and never mutate the
// lines they reference.
package manifest
