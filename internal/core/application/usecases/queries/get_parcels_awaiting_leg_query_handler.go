package queries

import (
	"context"

	"parcels/internal/core/ports"
)

// GetParcelsAwaitingLegQueryHandler answers leg queue queries.
type GetParcelsAwaitingLegQueryHandler struct {
	parcelRepo ports.ParcelRepository
}

// NewGetParcelsAwaitingLegQueryHandler creates a handler for leg queue queries.
func NewGetParcelsAwaitingLegQueryHandler(parcelRepo ports.ParcelRepository) GetParcelsAwaitingLegQueryHandler {
	return GetParcelsAwaitingLegQueryHandler{parcelRepo: parcelRepo}
}

// Handle returns the IDs of the waiting parcels, sorted. Never nil.
func (h GetParcelsAwaitingLegQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsAwaitingLegQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels, err := h.parcelRepo.GetAllAwaitingLeg(ctx, query.LegID())
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(parcels))
	for _, p := range parcels {
		ids = append(ids, p.ID().String())
	}
	return ids, nil
}
