package queries

import (
	"cmp"
	"context"
	"slices"

	"parcels/internal/core/ports"
)

// GetLegQueuesQueryHandler summarises leg queues for monitoring.
type GetLegQueuesQueryHandler struct {
	parcelRepo ports.ParcelRepository
}

// NewGetLegQueuesQueryHandler creates a handler for leg queue summaries.
func NewGetLegQueuesQueryHandler(parcelRepo ports.ParcelRepository) GetLegQueuesQueryHandler {
	return GetLegQueuesQueryHandler{parcelRepo: parcelRepo}
}

// Handle returns one entry per leg with at least one waiting parcel, longest
// queue first and by leg ID among equal lengths.
func (h GetLegQueuesQueryHandler) Handle(
	ctx context.Context,
	query GetLegQueuesQuery,
) ([]GetLegQueuesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts, err := h.parcelRepo.CountAwaitingByLeg(ctx)
	if err != nil {
		return nil, err
	}

	queues := make([]GetLegQueuesQueryResponse, 0, len(counts))
	for legID, n := range counts {
		queues = append(queues, GetLegQueuesQueryResponse{LegID: legID, Parcels: n})
	}
	slices.SortFunc(queues, func(a, b GetLegQueuesQueryResponse) int {
		if c := cmp.Compare(b.Parcels, a.Parcels); c != 0 {
			return c
		}
		return cmp.Compare(a.LegID, b.LegID)
	})

	return queues, nil
}
