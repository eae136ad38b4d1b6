// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command is built by its constructor, validated, and executed by a
// handler exposing Handle(ctx, cmd).
package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LegRepoFactory provides access to the leg repository within a transaction.
	LegRepoFactory interface {
		LegRepository() ports.LegRepository
	}

	// LegUoW manages transactions for operations on the leg store.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   legRepo := uow.LegRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	LegUoW interface {
		TxManager
		LegRepoFactory
	}

	// LegUoWFactory creates new leg unit of work instances.
	LegUoWFactory interface {
		Create() LegUoW
	}
)

// RoutePlanner prices and plans the route of a new parcel.
type RoutePlanner interface {
	Plan(origin, destination kernel.Location, weight float64, value int64) (parcel.Route, error)
}

// Clock returns the time recorded on lifecycle events.
type Clock func() time.Time

// SystemClock is the Clock used outside of tests.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
