package queries

import (
	"errors"

	"parcels/internal/pkg/guard"
)

var (
	ErrGetNetworkQueryIsNotConstructed = errors.New(
		"GetNetworkQuery must be created via NewGetNetworkQuery constructor",
	)
)

// GetNetworkQuery retrieves the whole transport network.
type GetNetworkQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNetworkQuery creates a network query.
func NewGetNetworkQuery() GetNetworkQuery {
	return GetNetworkQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNetworkQuery) Validate() error {
	return q.guard.Validate(ErrGetNetworkQueryIsNotConstructed)
}

// GetNetworkQueryResponse lists the legs in definition order and the sorted
// location names.
type GetNetworkQueryResponse struct {
	Legs      []LegResponse
	Locations []string
}
