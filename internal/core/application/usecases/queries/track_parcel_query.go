package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)
)

// TrackParcelQuery retrieves the tracking view of one parcel.
//
// Example:
//
//	query, _ := NewTrackParcelQuery(pickupIDHash)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, entry := range view.History {
//	    fmt.Println(entry.At.Unix(), entry.Message)
//	}
type TrackParcelQuery struct {
	parcelID kernel.ParcelID
	guard    guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking query for the given parcel ID.
func NewTrackParcelQuery(parcelID string) (TrackParcelQuery, error) {
	id, err := kernel.ParcelIDFromString(parcelID)
	if err != nil {
		return TrackParcelQuery{}, err
	}
	return TrackParcelQuery{parcelID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// ParcelID returns the tracked parcel.
func (q TrackParcelQuery) ParcelID() kernel.ParcelID {
	return q.parcelID
}

// TrackParcelQueryResponse is the tracking view of a parcel. NextLegID is
// empty when the parcel expects no further departure.
type TrackParcelQueryResponse struct {
	ParcelID   string
	TotalStops int
	Status     parcel.Status
	NextLegID  string
	Cost       int64
	Time       int
	History    []TimelineEntry
}

// TimelineEntry is one rendered event.
type TimelineEntry struct {
	At      time.Time
	Message string
}
