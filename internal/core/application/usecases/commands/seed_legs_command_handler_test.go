package commands_test

import (
	"errors"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/leg"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSeedLegsCommand(t *testing.T) {
	cmd, err := commands.NewSeedLegsCommand(leg.BuiltinLegs())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Len(t, cmd.Legs(), 28)

	_, err = commands.NewSeedLegsCommand(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewSeedLegsCommand([]*leg.Leg{{}})
	require.ErrorIs(t, err, leg.ErrLegIsNotConstructed)
}

func TestSeedLegsCommandHandler_Handle_EmptyStore(t *testing.T) {
	ctx := t.Context()
	legs := leg.BuiltinLegs()[:3]
	cmd, _ := commands.NewSeedLegsCommand(legs)

	repo := new(MockLegRepository)
	uow := new(MockLegUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LegRepository").Return(repo).Once(),
		repo.On("Count", ctx).Return(int64(0), nil).Once(),
		repo.On("Add", ctx, legs[0]).Return(nil).Once(),
		repo.On("Add", ctx, legs[1]).Return(nil).Once(),
		repo.On("Add", ctx, legs[2]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockLegUoWFactory)
	factory.On("Create").Return(uow).Once()

	n, err := commands.NewSeedLegsCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSeedLegsCommandHandler_Handle_AlreadySeeded(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSeedLegsCommand(leg.BuiltinLegs())

	repo := new(MockLegRepository)
	uow := new(MockLegUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LegRepository").Return(repo).Once(),
		repo.On("Count", ctx).Return(int64(28), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockLegUoWFactory)
	factory.On("Create").Return(uow).Once()

	n, err := commands.NewSeedLegsCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSeedLegsCommandHandler_Handle_AddErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	legs := leg.BuiltinLegs()[:2]
	cmd, _ := commands.NewSeedLegsCommand(legs)

	repo := new(MockLegRepository)
	uow := new(MockLegUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LegRepository").Return(repo).Once(),
		repo.On("Count", ctx).Return(int64(0), nil).Once(),
		repo.On("Add", ctx, legs[0]).Return(nil).Once(),
		repo.On("Add", ctx, legs[1]).Return(errs.NewObjectAlreadyExistsError("leg", legs[1].ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockLegUoWFactory)
	factory.On("Create").Return(uow).Once()

	n, err := commands.NewSeedLegsCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.Equal(t, 0, n)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSeedLegsCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSeedLegsCommand(leg.BuiltinLegs())

	uow := new(MockLegUoW)
	factory := new(MockLegUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err := commands.NewSeedLegsCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
