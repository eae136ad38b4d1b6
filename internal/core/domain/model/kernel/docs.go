// Package kernel provides the shared domain primitives of the parcel service.
//
// The package includes:
//   - Location: a named place in the transport network (a city, hub or suburb)
//   - ParcelID: the opaque public identifier under which a parcel is registered
//
// Both are immutable value objects. Their zero values are invalid and fail
// Validate, so every aggregate that holds them can check it was handed a
// properly constructed value.
package kernel
