package queries

import (
	"errors"

	"parcels/internal/pkg/guard"
)

var (
	ErrGetLegQueuesQueryIsNotConstructed = errors.New(
		"GetLegQueuesQuery must be created via NewGetLegQueuesQuery constructor",
	)
)

// GetLegQueuesQuery counts the parcels waiting for each leg.
type GetLegQueuesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLegQueuesQuery creates a leg queue summary query.
func NewGetLegQueuesQuery() GetLegQueuesQuery {
	return GetLegQueuesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLegQueuesQuery) Validate() error {
	return q.guard.Validate(ErrGetLegQueuesQueryIsNotConstructed)
}

// GetLegQueuesQueryResponse is the queue length of one leg.
type GetLegQueuesQueryResponse struct {
	LegID   string
	Parcels int
}
