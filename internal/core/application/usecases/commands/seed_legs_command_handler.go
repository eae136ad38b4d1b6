package commands

import (
	"context"
)

// SeedLegsCommandHandler stores a network in an empty leg store in one
// transaction. A store that already holds legs is left untouched, so seeding
// at every start-up is safe.
type SeedLegsCommandHandler struct {
	uowFactory LegUoWFactory
}

// NewSeedLegsCommandHandler creates a handler for seeding the leg store.
func NewSeedLegsCommandHandler(uowFactory LegUoWFactory) SeedLegsCommandHandler {
	return SeedLegsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of legs inserted: zero when the store was not
// empty, len(cmd.Legs()) otherwise. A duplicate leg ID rolls back the whole seed.
func (h SeedLegsCommandHandler) Handle(ctx context.Context, cmd SeedLegsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	legRepo := uow.LegRepository()
	count, err := legRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, l := range cmd.Legs() {
		if err = legRepo.Add(ctx, l); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(cmd.Legs()), nil
}
