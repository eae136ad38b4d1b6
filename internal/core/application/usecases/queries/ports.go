// Package queries contains read-only operations of the CQRS architecture.
// Query handlers never modify parcels or the leg catalog.
package queries

import (
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/leg"
	"parcels/internal/core/domain/model/parcel"
)

// LegCatalog is the read side of the transport network.
type LegCatalog interface {
	Leg(id string) (*leg.Leg, bool)
	Legs() []*leg.Leg
	Locations() []string
}

// RoutePlanner plans routes without registering anything.
type RoutePlanner interface {
	Plan(origin, destination kernel.Location, weight float64, value int64) (parcel.Route, error)
}

// LegResponse describes one leg of the network.
type LegResponse struct {
	ID           string
	Operator     string
	From         string
	To           string
	MaxWeight    float64
	TransitTime  int
	BaseCost     float64
	WeightFactor float64
	ValueFactor  float64
}

func newLegResponse(l *leg.Leg) LegResponse {
	return LegResponse{
		ID:           l.ID(),
		Operator:     l.Operator(),
		From:         l.From().Name(),
		To:           l.To().Name(),
		MaxWeight:    l.MaxWeight(),
		TransitTime:  l.TransitTime(),
		BaseCost:     l.Tariff().BaseCost,
		WeightFactor: l.Tariff().WeightFactor,
		ValueFactor:  l.Tariff().ValueFactor,
	}
}
