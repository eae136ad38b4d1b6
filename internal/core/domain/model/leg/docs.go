// Package leg provides the transport network of the parcel service: the Leg
// entity and the Catalog that indexes legs by origin.
//
// The package includes:
//   - Leg: a directed transport segment with a weight capacity, transit time and tariff
//   - Tariff: the cost formula base + weightFactor*weight + valueFactor*value
//   - Catalog: an immutable directed multigraph of legs, built once at start-up
//   - BuiltinLegs: the default network used when no external source is configured
//
// Key business rules:
//   - A leg cannot carry a parcel heavier than its maximum weight; its cost is then +Inf
//   - Tariff components are non-negative, so accumulated route cost never decreases
//   - Leg identifiers are unique within a catalog
//   - Nothing mutates or removes a leg once the catalog is built
package leg
