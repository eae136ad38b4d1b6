package http

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemInfo is one item of a registration request.
type ItemInfo struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// ParcelCreationInfo is the body of POST /register.
type ParcelCreationInfo struct {
	From   string     `json:"from"`
	To     string     `json:"to"`
	Length float64    `json:"length"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Weight float64    `json:"weight"`
	Items  []ItemInfo `json:"items"`
}

// DeliveryInfo is the quote returned by POST /register.
type DeliveryInfo struct {
	Cost         int64  `json:"cost"`
	Time         int    `json:"time"`
	PickupIDHash string `json:"pickupIdHash"`
}

// PickupInput is the body of POST /pickup.
type PickupInput struct {
	PickupIDHash string `json:"pickupIdHash"`
}

// HistoryEntry is one line of a tracking timeline. Timestamp is in Unix seconds.
type HistoryEntry struct {
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

// ParcelStatusHistory is the body of GET /track.
type ParcelStatusHistory struct {
	TotalStops int            `json:"totalStops"`
	Status     string         `json:"status"`
	NextLegID  string         `json:"nextLegId,omitempty"`
	History    []HistoryEntry `json:"history"`
}

// ParcelList is the body of GET /parcels/{legId}.
type ParcelList struct {
	ParcelIDs []string `json:"parcelIds"`
}

// TakeParcelInput is the body of POST /take/{parcelId}.
type TakeParcelInput struct {
	LegID string `json:"legId"`
}

// PutParcelInput is the body of POST /put/{parcelId}.
type PutParcelInput struct {
	Location string `json:"location"`
}

// ParcelDescription is the body of POST /route.
type ParcelDescription struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
	Value  int64   `json:"value"`
}

// LegID references a leg of a quoted route.
type LegID struct {
	ID string `json:"id"`
}

// LegList is the body of POST /route.
type LegList struct {
	Cost int64   `json:"cost"`
	Time int     `json:"time"`
	Legs []LegID `json:"legs"`
}

// DirectOption is a leg joining origin and destination directly, priced for
// the described parcel.
type DirectOption struct {
	Leg  Leg     `json:"leg"`
	Cost float64 `json:"cost"`
	Time int     `json:"time"`
}

// RouteDebug is the body of POST /route/debug.
type RouteDebug struct {
	Parcel        ParcelDescription `json:"parcel"`
	DirectOptions []DirectOption    `json:"direct_options"`
	OptimalRoute  *LegList          `json:"optimal_route"`
}

// Leg describes one leg of the network.
type Leg struct {
	ID           string  `json:"id"`
	Operator     string  `json:"operator"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	MaxWeight    float64 `json:"maxWeight"`
	Time         int     `json:"time"`
	BaseCost     float64 `json:"base_cost"`
	WeightFactor float64 `json:"weight_factor"`
	ValueFactor  float64 `json:"value_factor"`
}

// Legs is the body of GET /legs.
type Legs struct {
	Legs  []Leg `json:"legs"`
	Count int   `json:"count"`
}

// Locations is the body of GET /locations.
type Locations struct {
	Locations []string `json:"locations"`
	Count     int      `json:"count"`
}

// Health is the body of GET /health.
type Health struct {
	Status    string `json:"status"`
	Legs      int    `json:"legs"`
	Locations int    `json:"locations"`
}
