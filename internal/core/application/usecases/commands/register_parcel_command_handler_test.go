package commands_test

import (
	"errors"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterCommand(t *testing.T) commands.RegisterParcelCommand {
	t.Helper()
	cmd, err := commands.NewRegisterParcelCommand(kernel.MustParcelID("p-1"), "CityA", "CityB", 1, 1, 1, 5,
		[]commands.ItemInput{{Name: "Book", Value: 600}, {Name: "Pen", Value: 400}})
	require.NoError(t, err)
	return cmd
}

func TestRegisterParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t)
	route, _ := parcel.NewRoute([]string{"leg_AB"}, 160, 10)

	planner := new(MockRoutePlanner)
	planner.On("Plan", cmd.Origin(), cmd.Destination(), 5.0, int64(1000)).Return(route, nil).Once()

	repo := new(MockParcelRepository)
	repo.On("Add", ctx, mock.MatchedBy(func(p *parcel.Parcel) bool {
		return p.ID().String() == "p-1" &&
			p.Route().Cost() == 160 &&
			p.History().Len() == 0
	})).Return(nil).Once()

	h := commands.NewRegisterParcelCommandHandler(planner, repo)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.RegisterParcelResult{ParcelID: "p-1", Cost: 160, Time: 10}, result)
	planner.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestRegisterParcelCommandHandler_Handle_NoRoute(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t)

	planner := new(MockRoutePlanner)
	planner.On("Plan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(parcel.Route{}, services.ErrNoRouteFound).Once()
	repo := new(MockParcelRepository)

	h := commands.NewRegisterParcelCommandHandler(planner, repo)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNoRouteFound)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRegisterParcelCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t)
	route, _ := parcel.NewRoute(nil, 0, 0)

	planner := new(MockRoutePlanner)
	planner.On("Plan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(route, nil).Once()
	repo := new(MockParcelRepository)
	repo.On("Add", ctx, mock.Anything).Return(errs.NewObjectAlreadyExistsError("parcel", "p-1")).Once()

	h := commands.NewRegisterParcelCommandHandler(planner, repo)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestRegisterParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewRegisterParcelCommandHandler(new(MockRoutePlanner), new(MockParcelRepository))

	_, err := h.Handle(t.Context(), commands.RegisterParcelCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterParcelCommandIsNotConstructed)
}

func TestRegisterParcelCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t)
	route, _ := parcel.NewRoute([]string{"leg_AB"}, 1, 1)

	planner := new(MockRoutePlanner)
	planner.On("Plan", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(route, nil).Once()
	repo := new(MockParcelRepository)
	repo.On("Add", ctx, mock.Anything).Return(errors.New("storage down")).Once()

	h := commands.NewRegisterParcelCommandHandler(planner, repo)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "storage down")
}
