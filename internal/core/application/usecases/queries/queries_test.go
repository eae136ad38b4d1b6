package queries_test

import (
	"testing"
	"time"

	"parcels/internal/adapters/out/memory/parcelrepo"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/leg"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Unix(1_700_000_000, 0).UTC()

func addParcel(t *testing.T, repo *parcelrepo.Repository, id string, legIDs ...string) *parcel.Parcel {
	t.Helper()
	dims, err := parcel.NewDimensions(1, 1, 1, 5)
	require.NoError(t, err)
	route, err := parcel.NewRoute(legIDs, 160, 10)
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.MustParcelID(id), kernel.MustNewLocation("A"), kernel.MustNewLocation("C"),
		dims, nil, route)
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), p))
	return p
}

func TestTrackParcelQueryHandler_Handle(t *testing.T) {
	repo := parcelrepo.NewRepository()
	p := addParcel(t, repo, "p-1", "leg_AB", "leg_BC")
	handler := queries.NewTrackParcelQueryHandler(repo)

	t.Run("should render fresh parcel", func(t *testing.T) {
		query, err := queries.NewTrackParcelQuery("p-1")
		require.NoError(t, err)

		view, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "p-1", view.ParcelID)
		assert.Equal(t, 2, view.TotalStops)
		assert.Equal(t, parcel.Registered, view.Status)
		assert.Equal(t, "leg_AB", view.NextLegID)
		assert.Equal(t, int64(160), view.Cost)
		assert.Equal(t, 10, view.Time)
		assert.Empty(t, view.History)
	})

	t.Run("should render history in order", func(t *testing.T) {
		require.NoError(t, p.RecordArrival(kernel.MustNewLocation("A"), now))
		require.NoError(t, p.RecordDeparture("leg_AB", now.Add(time.Hour)))
		query, _ := queries.NewTrackParcelQuery("p-1")

		view, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, view.Status)
		assert.Equal(t, "leg_BC", view.NextLegID)
		assert.Equal(t, []queries.TimelineEntry{
			{At: now, Message: "Arrived at A"},
			{At: now.Add(time.Hour), Message: "Departed on leg leg_AB"},
		}, view.History)
	})

	t.Run("picked up parcel expects nothing", func(t *testing.T) {
		require.NoError(t, p.RecordPickup(now.Add(2*time.Hour)))
		query, _ := queries.NewTrackParcelQuery("p-1")

		view, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, parcel.PickedUp, view.Status)
		assert.Empty(t, view.NextLegID)
		assert.Len(t, view.History, 3)
	})

	t.Run("should return not found", func(t *testing.T) {
		query, _ := queries.NewTrackParcelQuery("unknown")

		_, err := handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.TrackParcelQuery{})

		require.ErrorIs(t, err, queries.ErrTrackParcelQueryIsNotConstructed)
	})
}

func TestGetParcelsAwaitingLegQueryHandler_Handle(t *testing.T) {
	repo := parcelrepo.NewRepository()
	p := addParcel(t, repo, "p-1", "leg_AB", "leg_BC")
	handler := queries.NewGetParcelsAwaitingLegQueryHandler(repo)

	awaiting := func(legID string) []string {
		query, err := queries.NewGetParcelsAwaitingLegQuery(legID)
		require.NoError(t, err)
		ids, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		return ids
	}

	assert.Equal(t, []string{"p-1"}, awaiting("leg_AB"))
	assert.Equal(t, []string{}, awaiting("leg_BC"))

	require.NoError(t, p.RecordDeparture("leg_AB", now))

	assert.Equal(t, []string{}, awaiting("leg_AB"))
	assert.Equal(t, []string{"p-1"}, awaiting("leg_BC"))

	_, err := queries.NewGetParcelsAwaitingLegQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetLegQueuesQueryHandler_Handle(t *testing.T) {
	repo := parcelrepo.NewRepository()
	addParcel(t, repo, "p-1", "leg_BC")
	addParcel(t, repo, "p-2", "leg_AB")
	addParcel(t, repo, "p-3", "leg_AB")
	addParcel(t, repo, "p-4", "leg_AA")

	queues, err := queries.NewGetLegQueuesQueryHandler(repo).Handle(t.Context(), queries.NewGetLegQueuesQuery())

	require.NoError(t, err)
	assert.Equal(t, []queries.GetLegQueuesQueryResponse{
		{LegID: "leg_AB", Parcels: 2},
		{LegID: "leg_AA", Parcels: 1},
		{LegID: "leg_BC", Parcels: 1},
	}, queues)
}

func TestPlanRouteQueryHandler_Handle(t *testing.T) {
	catalog := leg.NewBuiltinCatalog()
	handler := queries.NewPlanRouteQueryHandler(services.NewRoutePlanner(catalog), catalog)

	t.Run("should quote cheapest route with leg details", func(t *testing.T) {
		query, err := queries.NewPlanRouteQuery("Berlin", "Munich", 10, 100)
		require.NoError(t, err)

		resp, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, int64(138), resp.Cost)
		assert.Equal(t, 9, resp.Time)
		require.Len(t, resp.Legs, 2)
		assert.Equal(t, "leg_berlin_leipzig", resp.Legs[0].ID)
		assert.Equal(t, "DB_Cargo", resp.Legs[0].Operator)
		assert.Equal(t, "Leipzig", resp.Legs[1].From)
		assert.Equal(t, "Munich", resp.Legs[1].To)
	})

	t.Run("same location yields empty route", func(t *testing.T) {
		query, _ := queries.NewPlanRouteQuery("Berlin", "Berlin", 10, 0)

		resp, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.Cost)
		assert.Empty(t, resp.Legs)
	})

	t.Run("should return no route", func(t *testing.T) {
		query, _ := queries.NewPlanRouteQuery("Berlin", "Atlantis", 10, 0)

		_, err := handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, services.ErrNoRouteFound)
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		_, err := queries.NewPlanRouteQuery("", "Munich", 0, -1)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "weight")
		assert.Contains(t, err.Error(), "value")
	})
}

func TestPlanRouteQueryHandler_Explain(t *testing.T) {
	catalog := leg.NewBuiltinCatalog()
	handler := queries.NewPlanRouteQueryHandler(services.NewRoutePlanner(catalog), catalog)

	t.Run("should list direct legs next to the planned route", func(t *testing.T) {
		query, _ := queries.NewPlanRouteQuery("Berlin", "Munich", 10, 100)

		resp, err := handler.Explain(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, resp.DirectOptions, 1)
		assert.Equal(t, "leg_berlin_munich_air", resp.DirectOptions[0].Leg.ID)
		assert.InDelta(t, 312.0, resp.DirectOptions[0].Cost, 1e-9)
		assert.Equal(t, 2, resp.DirectOptions[0].Time)
		require.NotNil(t, resp.OptimalRoute)
		assert.Equal(t, int64(138), resp.OptimalRoute.Cost)
		assert.Equal(t, "leg_berlin_leipzig", resp.OptimalRoute.Legs[0].ID)
	})

	t.Run("should skip direct legs that cannot carry the weight", func(t *testing.T) {
		query, _ := queries.NewPlanRouteQuery("Berlin", "Munich", 600, 0)

		resp, err := handler.Explain(t.Context(), query)

		require.NoError(t, err)
		assert.Empty(t, resp.DirectOptions)
		require.NotNil(t, resp.OptimalRoute)
	})

	t.Run("unreachable destination has no optimal route", func(t *testing.T) {
		query, _ := queries.NewPlanRouteQuery("Berlin", "Atlantis", 10, 0)

		resp, err := handler.Explain(t.Context(), query)

		require.NoError(t, err)
		assert.Empty(t, resp.DirectOptions)
		assert.Nil(t, resp.OptimalRoute)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := handler.Explain(t.Context(), queries.PlanRouteQuery{})

		require.ErrorIs(t, err, queries.ErrPlanRouteQueryIsNotConstructed)
	})
}

func TestGetNetworkQueryHandler_Handle(t *testing.T) {
	handler := queries.NewGetNetworkQueryHandler(leg.NewBuiltinCatalog())

	resp, err := handler.Handle(t.Context(), queries.NewGetNetworkQuery())

	require.NoError(t, err)
	assert.Len(t, resp.Legs, 28)
	assert.Len(t, resp.Locations, 22)
	assert.Equal(t, "Amsterdam", resp.Locations[0])
	assert.Equal(t, queries.LegResponse{
		ID:           "leg_berlin_leipzig",
		Operator:     "DB_Cargo",
		From:         "Berlin",
		To:           "Leipzig",
		MaxWeight:    1000,
		TransitTime:  3,
		BaseCost:     50,
		WeightFactor: 0.3,
		ValueFactor:  0.005,
	}, resp.Legs[0])

	_, err = handler.Handle(t.Context(), queries.GetNetworkQuery{})
	require.ErrorIs(t, err, queries.ErrGetNetworkQueryIsNotConstructed)
}
