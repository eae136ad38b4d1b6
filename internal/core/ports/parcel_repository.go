// Package ports defines the contracts between the parcel core and its
// adapters: parcel storage, leg storage and transaction boundaries.
package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
)

// ParcelRepository stores parcel aggregates for the lifetime of the process.
// Parcels are mutated in place through their own methods, so there is no
// Update: the repository only owns membership.
type ParcelRepository interface {
	// Add inserts a fully built parcel. Returns *errs.ObjectAlreadyExistsError
	// when a parcel with the same ID is already stored; the stored parcel is
	// left untouched in that case.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Get returns the parcel with the given ID, or *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error)

	// GetAllAwaitingLeg returns the parcels whose next expected leg is legID,
	// ordered by parcel ID. A picked-up parcel expects no leg, so it is never
	// included.
	GetAllAwaitingLeg(ctx context.Context, legID string) ([]*parcel.Parcel, error)

	// CountAwaitingByLeg returns, for every leg that at least one parcel is
	// waiting for, the number of such parcels.
	CountAwaitingByLeg(ctx context.Context) (map[string]int, error)
}
