package ports

import (
	"context"

	"parcels/internal/core/domain/model/leg"
)

// LegSource loads the transport network the leg catalog is built from.
type LegSource interface {
	// LoadLegs returns every leg in definition order.
	LoadLegs(ctx context.Context) ([]*leg.Leg, error)
}

// LegRepository is the persistent store of the transport network.
type LegRepository interface {
	LegSource

	// Add persists a new leg. Returns *errs.ObjectAlreadyExistsError when the
	// leg ID is taken.
	Add(ctx context.Context, l *leg.Leg) error

	// Count returns the number of stored legs.
	Count(ctx context.Context) (int64, error)
}
