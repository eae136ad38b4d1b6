package queries

import (
	"errors"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrGetParcelsAwaitingLegQueryIsNotConstructed = errors.New(
		"GetParcelsAwaitingLegQuery must be created via NewGetParcelsAwaitingLegQuery constructor",
	)
)

// GetParcelsAwaitingLegQuery lists the parcels whose next expected leg is the
// given one: the loading list of a carrier about to run that leg.
type GetParcelsAwaitingLegQuery struct {
	legID string
	guard guard.ConstructorGuard
}

// NewGetParcelsAwaitingLegQuery creates the query. The leg need not exist in
// the catalog; an unknown leg simply has no parcels waiting.
func NewGetParcelsAwaitingLegQuery(legID string) (GetParcelsAwaitingLegQuery, error) {
	if strings.TrimSpace(legID) == "" {
		return GetParcelsAwaitingLegQuery{}, errs.NewValueIsRequiredError("leg id")
	}
	return GetParcelsAwaitingLegQuery{legID: legID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsAwaitingLegQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsAwaitingLegQueryIsNotConstructed)
}

// LegID returns the leg.
func (q GetParcelsAwaitingLegQuery) LegID() string {
	return q.legID
}
