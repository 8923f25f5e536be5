// Package services contains stateless domain services of the fulfillment
// core: the ranking engine that annotates candidate lists with display ranks,
// and the grouping engine that partitions fulfillable line items into
// shipment groups. Both are pure computations with no I/O and no shared
// mutable state.
package services
