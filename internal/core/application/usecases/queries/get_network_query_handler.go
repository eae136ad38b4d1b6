package queries

import (
	"context"
)

// GetNetworkQueryHandler reads the leg catalog.
type GetNetworkQueryHandler struct {
	catalog LegCatalog
}

// NewGetNetworkQueryHandler creates a handler for network queries.
func NewGetNetworkQueryHandler(catalog LegCatalog) GetNetworkQueryHandler {
	return GetNetworkQueryHandler{catalog: catalog}
}

// Handle returns every leg and location of the catalog.
func (h GetNetworkQueryHandler) Handle(_ context.Context, query GetNetworkQuery) (GetNetworkQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNetworkQueryResponse{}, err
	}

	legs := h.catalog.Legs()
	resp := GetNetworkQueryResponse{
		Legs:      make([]LegResponse, 0, len(legs)),
		Locations: h.catalog.Locations(),
	}
	for _, l := range legs {
		resp.Legs = append(resp.Legs, newLegResponse(l))
	}
	return resp, nil
}
