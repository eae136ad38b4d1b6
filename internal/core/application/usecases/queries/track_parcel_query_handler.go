package queries

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
)

// TrackParcelQueryHandler renders the history and derived state of a parcel.
type TrackParcelQueryHandler struct {
	parcelRepo ports.ParcelRepository
}

// NewTrackParcelQueryHandler creates a handler for tracking queries.
func NewTrackParcelQueryHandler(parcelRepo ports.ParcelRepository) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{parcelRepo: parcelRepo}
}

// Handle returns the tracking view, or *errs.ObjectNotFoundError for an
// unknown parcel. Status, next leg and timeline are computed from one
// snapshot of the history, so they are always consistent with each other.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	p, err := h.parcelRepo.Get(ctx, query.ParcelID())
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	history := p.History()
	route := p.Route()

	resp := TrackParcelQueryResponse{
		ParcelID:   p.ID().String(),
		TotalStops: parcel.TotalStops(route),
		Status:     parcel.DeriveStatus(history),
		Cost:       route.Cost(),
		Time:       route.TransitTime(),
	}
	if next, ok := parcel.NextExpectedLeg(history, route); ok {
		resp.NextLegID = next
	}

	timeline := parcel.RenderTimeline(history)
	resp.History = make([]TimelineEntry, 0, len(timeline))
	for _, entry := range timeline {
		resp.History = append(resp.History, TimelineEntry{At: entry.At, Message: entry.Message})
	}

	return resp, nil
}
