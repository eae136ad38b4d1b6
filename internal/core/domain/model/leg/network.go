package leg

import "parcels/internal/core/domain/model/kernel"

type definition struct {
	id          string
	operator    string
	from        string
	to          string
	maxWeight   float64
	transitTime int
	tariff      Tariff
}

// builtinNetwork is the default European network: rail and road freight,
// a few air links, the Hub_Central express loop and local courier legs.
var builtinNetwork = []definition{
	{"leg_berlin_leipzig", "DB_Cargo", "Berlin", "Leipzig", 1000, 3, Tariff{BaseCost: 50, WeightFactor: 0.3, ValueFactor: 0.005}},
	{"leg_berlin_hamburg", "DB_Cargo", "Berlin", "Hamburg", 1000, 4, Tariff{BaseCost: 60, WeightFactor: 0.35, ValueFactor: 0.006}},
	{"leg_berlin_frankfurt", "DB_Cargo", "Berlin", "Frankfurt", 1000, 5, Tariff{BaseCost: 70, WeightFactor: 0.4, ValueFactor: 0.007}},
	{"leg_leipzig_munich", "DB_Cargo", "Leipzig", "Munich", 800, 6, Tariff{BaseCost: 80, WeightFactor: 0.45, ValueFactor: 0.008}},
	{"leg_hamburg_cologne", "DB_Cargo", "Hamburg", "Cologne", 900, 5, Tariff{BaseCost: 65, WeightFactor: 0.38, ValueFactor: 0.006}},
	{"leg_frankfurt_stuttgart", "DB_Cargo", "Frankfurt", "Stuttgart", 700, 4, Tariff{BaseCost: 55, WeightFactor: 0.32, ValueFactor: 0.005}},
	{"leg_munich_stuttgart", "DB_Cargo", "Munich", "Stuttgart", 600, 3, Tariff{BaseCost: 40, WeightFactor: 0.28, ValueFactor: 0.004}},
	{"leg_cologne_dusseldorf", "DB_Cargo", "Cologne", "Dusseldorf", 500, 2, Tariff{BaseCost: 25, WeightFactor: 0.2, ValueFactor: 0.003}},
	{"leg_berlin_warsaw", "PKP_Cargo", "Berlin", "Warsaw", 1200, 8, Tariff{BaseCost: 120, WeightFactor: 0.5, ValueFactor: 0.01}},
	{"leg_warsaw_prague", "PKP_Cargo", "Warsaw", "Prague", 1100, 7, Tariff{BaseCost: 110, WeightFactor: 0.48, ValueFactor: 0.009}},
	{"leg_prague_vienna", "OBB_Cargo", "Prague", "Vienna", 900, 6, Tariff{BaseCost: 90, WeightFactor: 0.42, ValueFactor: 0.008}},
	{"leg_vienna_budapest", "OBB_Cargo", "Vienna", "Budapest", 800, 5, Tariff{BaseCost: 85, WeightFactor: 0.4, ValueFactor: 0.008}},
	{"leg_frankfurt_paris", "SNCF", "Frankfurt", "Paris", 1000, 8, Tariff{BaseCost: 150, WeightFactor: 0.55, ValueFactor: 0.012}},
	{"leg_paris_brussels", "SNCF", "Paris", "Brussels", 800, 4, Tariff{BaseCost: 80, WeightFactor: 0.35, ValueFactor: 0.007}},
	{"leg_brussels_amsterdam", "NMBS", "Brussels", "Amsterdam", 700, 3, Tariff{BaseCost: 60, WeightFactor: 0.3, ValueFactor: 0.006}},
	{"leg_hamburg_copenhagen", "DSB", "Hamburg", "Copenhagen", 900, 7, Tariff{BaseCost: 130, WeightFactor: 0.52, ValueFactor: 0.011}},
	{"leg_berlin_munich_air", "Lufthansa_Cargo", "Berlin", "Munich", 500, 2, Tariff{BaseCost: 300, WeightFactor: 1, ValueFactor: 0.02}},
	{"leg_frankfurt_london_air", "British_Airways_Cargo", "Frankfurt", "London", 400, 3, Tariff{BaseCost: 350, WeightFactor: 1.2, ValueFactor: 0.025}},
	{"leg_munich_rome_air", "Alitalia_Cargo", "Munich", "Rome", 450, 3, Tariff{BaseCost: 320, WeightFactor: 1.1, ValueFactor: 0.022}},
	{"leg_leipzig_hub", "DB_Express", "Leipzig", "Hub_Central", 2000, 4, Tariff{BaseCost: 40, WeightFactor: 0.25, ValueFactor: 0.004}},
	{"leg_hub_central_leipzig", "DB_Express", "Hub_Central", "Leipzig", 2000, 4, Tariff{BaseCost: 40, WeightFactor: 0.25, ValueFactor: 0.004}},
	{"leg_frankfurt_hub", "DB_Express", "Frankfurt", "Hub_Central", 2000, 3, Tariff{BaseCost: 35, WeightFactor: 0.22, ValueFactor: 0.004}},
	{"leg_hub_central_frankfurt", "DB_Express", "Hub_Central", "Frankfurt", 2000, 3, Tariff{BaseCost: 35, WeightFactor: 0.22, ValueFactor: 0.004}},
	{"leg_hub_central_munich", "DB_Express", "Hub_Central", "Munich", 2000, 6, Tariff{BaseCost: 60, WeightFactor: 0.35, ValueFactor: 0.006}},
	{"leg_munich_hub_central", "DB_Express", "Munich", "Hub_Central", 2000, 6, Tariff{BaseCost: 60, WeightFactor: 0.35, ValueFactor: 0.006}},
	{"leg_berlin_suburb", "Local_Courier", "Berlin", "Berlin_Suburb", 100, 2, Tariff{BaseCost: 20, WeightFactor: 0.4, ValueFactor: 0.008}},
	{"leg_munich_suburb", "Local_Courier", "Munich", "Munich_Suburb", 100, 2, Tariff{BaseCost: 20, WeightFactor: 0.4, ValueFactor: 0.008}},
	{"leg_frankfurt_suburb", "Local_Courier", "Frankfurt", "Frankfurt_Suburb", 100, 2, Tariff{BaseCost: 20, WeightFactor: 0.4, ValueFactor: 0.008}},
}

// BuiltinLegs returns a fresh copy of the default network in definition order.
func BuiltinLegs() []*Leg {
	legs := make([]*Leg, 0, len(builtinNetwork))
	for _, d := range builtinNetwork {
		l, err := NewLeg(d.id, d.operator,
			kernel.MustNewLocation(d.from), kernel.MustNewLocation(d.to),
			d.maxWeight, d.transitTime, d.tariff)
		if err != nil {
			panic(err)
		}
		legs = append(legs, l)
	}
	return legs
}

// NewBuiltinCatalog builds a catalog over BuiltinLegs.
func NewBuiltinCatalog() *Catalog {
	c, err := NewCatalog(BuiltinLegs())
	if err != nil {
		panic(err)
	}
	return c
}
