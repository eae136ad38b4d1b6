package parcel_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T, legIDs ...string) *parcel.Parcel {
	t.Helper()
	dims, err := parcel.NewDimensions(10, 10, 10, 5)
	require.NoError(t, err)
	item, err := parcel.NewItem("Book", 1000)
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.MustParcelID("p-1"),
		kernel.MustNewLocation("CityA"), kernel.MustNewLocation("CityC"),
		dims, []parcel.Item{item}, mustRoute(t, legIDs...))
	require.NoError(t, err)
	return p
}

func assertCursorMatchesScan(t *testing.T, p *parcel.Parcel) {
	t.Helper()
	cached, cachedOK := p.NextExpectedLeg()
	scanned, scannedOK := parcel.NextExpectedLeg(p.History(), p.Route())
	assert.Equal(t, scannedOK, cachedOK)
	assert.Equal(t, scanned, cached)
}

func TestNewParcel(t *testing.T) {
	t.Run("should create parcel with empty history", func(t *testing.T) {
		p := newTestParcel(t, "leg_AB", "leg_BC")

		require.NoError(t, p.Validate())
		assert.Equal(t, "p-1", p.ID().String())
		assert.Equal(t, "CityA", p.Origin().Name())
		assert.Equal(t, "CityC", p.Destination().Name())
		assert.InDelta(t, 5.0, p.Dimensions().Weight(), 0)
		assert.Len(t, p.Items(), 1)
		assert.Equal(t, []string{"leg_AB", "leg_BC"}, p.Route().LegIDs())
		assert.Equal(t, 0, p.History().Len())
		assert.Equal(t, parcel.Registered, p.Status())
	})

	t.Run("should report every zero-value argument", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.ParcelID{}, kernel.Location{}, kernel.Location{},
			parcel.Dimensions{}, []parcel.Item{{}}, parcel.Route{})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, kernel.ErrParcelIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
		assert.ErrorIs(t, err, parcel.ErrDimensionsAreNotConstructed)
		assert.ErrorIs(t, err, parcel.ErrItemIsNotConstructed)
		assert.ErrorIs(t, err, parcel.ErrRouteIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var p *parcel.Parcel
		assert.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
		assert.ErrorIs(t, (&parcel.Parcel{}).Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_RecordDeparture(t *testing.T) {
	t.Run("should advance through the route in order", func(t *testing.T) {
		p := newTestParcel(t, "leg_AB", "leg_BC")

		require.NoError(t, p.RecordDeparture("leg_AB", t0))
		next, ok := p.NextExpectedLeg()
		assert.True(t, ok)
		assert.Equal(t, "leg_BC", next)
		assert.Equal(t, parcel.InTransit, p.Status())
		assertCursorMatchesScan(t, p)

		require.NoError(t, p.RecordDeparture("leg_BC", t0.Add(time.Hour)))
		_, ok = p.NextExpectedLeg()
		assert.False(t, ok)
		assertCursorMatchesScan(t, p)
	})

	t.Run("mismatched leg leaves history unchanged", func(t *testing.T) {
		p := newTestParcel(t, "leg_AB", "leg_BC")
		require.NoError(t, p.RecordArrival(kernel.MustNewLocation("CityA"), t0))
		before := p.History()

		err := p.RecordDeparture("leg_BC", t0.Add(time.Minute))

		require.ErrorIs(t, err, parcel.ErrLegMismatch)
		var mismatch *parcel.LegMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "leg_BC", mismatch.LegID)
		assert.Equal(t, "leg_AB", mismatch.ExpectedLegID)
		assert.Equal(t, "p-1", mismatch.ParcelID)
		assert.Equal(t, before, p.History())
		assertCursorMatchesScan(t, p)
	})

	t.Run("departure after route is complete is a mismatch", func(t *testing.T) {
		p := newTestParcel(t, "leg_AB")
		require.NoError(t, p.RecordDeparture("leg_AB", t0))

		err := p.RecordDeparture("leg_AB", t0)

		var mismatch *parcel.LegMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Empty(t, mismatch.ExpectedLegID)
		assert.Contains(t, err.Error(), "route is complete")
		assert.Equal(t, 1, p.History().Len())
	})

	t.Run("empty route accepts no departure", func(t *testing.T) {
		p := newTestParcel(t)

		require.ErrorIs(t, p.RecordDeparture("leg_AB", t0), parcel.ErrLegMismatch)
	})

	t.Run("blank leg is invalid input", func(t *testing.T) {
		p := newTestParcel(t, "leg_AB")

		err := p.RecordDeparture("", t0)

		require.True(t, errs.IsInvalidInput(err))
		assert.Equal(t, 0, p.History().Len())
	})
}

func TestParcel_RecordArrival(t *testing.T) {
	p := newTestParcel(t, "leg_AB", "leg_BC")

	require.NoError(t, p.RecordArrival(kernel.MustNewLocation("Elsewhere"), t0))
	require.NoError(t, p.RecordArrival(kernel.MustNewLocation("Elsewhere"), t0))

	next, ok := p.NextExpectedLeg()
	assert.True(t, ok)
	assert.Equal(t, "leg_AB", next, "arrivals never advance the route")
	assert.Equal(t, parcel.Arrived, p.Status())
	assert.Equal(t, 2, p.History().Len())
}

func TestParcel_RecordPickup(t *testing.T) {
	t.Run("should allow pickup before the route is complete", func(t *testing.T) {
		p := newTestParcel(t, "leg_AB", "leg_BC")

		require.NoError(t, p.RecordPickup(t0))
		assert.Equal(t, parcel.PickedUp, p.Status())

		_, ok := p.NextExpectedLeg()
		assert.False(t, ok, "a picked-up parcel expects no leg")
		assertCursorMatchesScan(t, p)
	})

	t.Run("pickup is terminal", func(t *testing.T) {
		p := newTestParcel(t, "leg_AB")
		require.NoError(t, p.RecordDeparture("leg_AB", t0))
		require.NoError(t, p.RecordArrival(kernel.MustNewLocation("CityB"), t0))
		require.NoError(t, p.RecordPickup(t0))

		require.ErrorIs(t, p.RecordPickup(t0), parcel.ErrParcelPickedUp)
		require.ErrorIs(t, p.RecordArrival(kernel.MustNewLocation("CityB"), t0), parcel.ErrParcelPickedUp)
		require.ErrorIs(t, p.RecordDeparture("leg_AB", t0), parcel.ErrParcelPickedUp)

		h := p.History()
		assert.Equal(t, 3, h.Len())
		last, _ := h.Last()
		assert.Equal(t, parcel.KindPickup, last.Kind())
	})
}

func TestParcel_AwaitsLeg(t *testing.T) {
	p := newTestParcel(t, "leg_AB", "leg_BC")

	assert.True(t, p.AwaitsLeg("leg_AB"))
	assert.False(t, p.AwaitsLeg("leg_BC"))

	require.NoError(t, p.RecordDeparture("leg_AB", t0))
	assert.False(t, p.AwaitsLeg("leg_AB"))
	assert.True(t, p.AwaitsLeg("leg_BC"))

	require.NoError(t, p.RecordPickup(t0))
	assert.False(t, p.AwaitsLeg("leg_BC"))
}

func TestParcel_ConcurrentDeparturesOnSameLeg(t *testing.T) {
	p := newTestParcel(t, "leg_AB", "leg_BC")

	var accepted, rejected atomic.Int32
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.RecordDeparture("leg_AB", t0); err != nil {
				assert.ErrorIs(t, err, parcel.ErrLegMismatch)
				rejected.Add(1)
				return
			}
			accepted.Add(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, int32(31), rejected.Load())
	assert.Equal(t, 1, p.History().Departures())
	assertCursorMatchesScan(t, p)
}

func TestParcel_ConcurrentMixedEvents(t *testing.T) {
	p := newTestParcel(t, "leg_AB")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = p.RecordArrival(kernel.MustNewLocation("CityB"), t0)
		}()
		go func() {
			defer wg.Done()
			_ = p.RecordDeparture("leg_AB", t0)
			_ = p.Status()
		}()
	}
	wg.Wait()

	h := p.History()
	assert.Equal(t, 51, h.Len())
	assert.Equal(t, 1, h.Departures())
	assertCursorMatchesScan(t, p)
}
