// Package services provides domain services that work across aggregates of
// the parcel service.
//
// The package includes:
//   - RoutePlanner: finds the cheapest sequence of legs between two locations
//     for a parcel of a given weight and declared value
//
// RoutePlanner is read-only over an immutable leg.Catalog and holds no other
// state, so a single instance serves concurrent callers without locking.
package services
