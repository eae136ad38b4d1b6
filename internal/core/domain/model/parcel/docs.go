// Package parcel provides the Parcel aggregate and its append-only event log.
//
// The package includes:
//   - Parcel: the aggregate root holding the physical attributes, the planned
//     route and the event history of one shipment
//   - Item, Dimensions, Route: immutable value objects fixed at registration
//   - Event and History: the tagged lifecycle events and their ordered log
//   - NextExpectedLeg, TotalStops, RenderTimeline, DeriveStatus: pure
//     projections computing the current state from a history
//   - Status: the derived lifecycle state reported to clients
//
// Key business rules:
//   - The history is only ever appended to; events are never reordered or removed
//   - A departure is accepted only on the next leg of the route
//   - Arrivals are accepted at any location and do not advance the route
//   - A pickup is terminal: nothing can be recorded after it
//   - Route, dimensions and items never change after registration
//
// State is never stored apart from the history. A Parcel caches the number of
// departures to answer next-leg checks in O(1), and that cache always agrees
// with the scan performed by NextExpectedLeg.
package parcel
