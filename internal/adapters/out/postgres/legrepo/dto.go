// Package legrepo maps legs to the legs table.
package legrepo

import (
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/leg"
)

// LegDTO is a row of the legs table. Position keeps the definition order of
// the network, which the route planner relies on for tie-breaking.
type LegDTO struct {
	Position     int64   `gorm:"column:position;autoIncrement;<-:false"`
	ID           string  `gorm:"column:id;primaryKey"`
	Operator     string  `gorm:"column:operator"`
	FromLocation string  `gorm:"column:from_location;index"`
	ToLocation   string  `gorm:"column:to_location"`
	MaxWeight    float64 `gorm:"column:max_weight"`
	TransitTime  int     `gorm:"column:transit_time"`
	BaseCost     float64 `gorm:"column:base_cost"`
	WeightFactor float64 `gorm:"column:weight_factor"`
	ValueFactor  float64 `gorm:"column:value_factor"`
}

// TableName overrides GORM's default naming.
func (LegDTO) TableName() string {
	return "legs"
}

func fromDomain(l *leg.Leg) LegDTO {
	return LegDTO{
		ID:           l.ID(),
		Operator:     l.Operator(),
		FromLocation: l.From().Name(),
		ToLocation:   l.To().Name(),
		MaxWeight:    l.MaxWeight(),
		TransitTime:  l.TransitTime(),
		BaseCost:     l.Tariff().BaseCost,
		WeightFactor: l.Tariff().WeightFactor,
		ValueFactor:  l.Tariff().ValueFactor,
	}
}

// toDomain rebuilds a leg through its constructor, so rows that violate the
// domain rules are reported instead of loaded.
func toDomain(dto LegDTO) (*leg.Leg, error) {
	from, err := kernel.NewLocation(dto.FromLocation)
	if err != nil {
		return nil, err
	}
	to, err := kernel.NewLocation(dto.ToLocation)
	if err != nil {
		return nil, err
	}

	return leg.NewLeg(dto.ID, dto.Operator, from, to, dto.MaxWeight, dto.TransitTime, leg.Tariff{
		BaseCost:     dto.BaseCost,
		WeightFactor: dto.WeightFactor,
		ValueFactor:  dto.ValueFactor,
	})
}
