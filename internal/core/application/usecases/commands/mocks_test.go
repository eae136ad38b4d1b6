package commands_test

import (
	"context"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/leg"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.ParcelID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*parcel.Parcel); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockParcelRepository) GetAllAwaitingLeg(ctx context.Context, legID string) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, legID)
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) CountAwaitingByLeg(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockRoutePlanner struct{ mock.Mock }

func (m *MockRoutePlanner) Plan(
	origin, destination kernel.Location,
	weight float64,
	value int64,
) (parcel.Route, error) {
	args := m.Called(origin, destination, weight, value)
	return args.Get(0).(parcel.Route), args.Error(1)
}

type MockLegRepository struct{ mock.Mock }

func (m *MockLegRepository) LoadLegs(ctx context.Context) ([]*leg.Leg, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*leg.Leg), args.Error(1)
}

func (m *MockLegRepository) Add(ctx context.Context, l *leg.Leg) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLegRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockLegUoW struct{ mock.Mock }

func (m *MockLegUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLegUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLegUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLegUoW) LegRepository() ports.LegRepository {
	args := m.Called()
	return args.Get(0).(ports.LegRepository)
}

type MockLegUoWFactory struct{ mock.Mock }

func (m *MockLegUoWFactory) Create() commands.LegUoW {
	args := m.Called()
	return args.Get(0).(commands.LegUoW)
}
