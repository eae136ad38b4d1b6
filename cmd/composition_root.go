package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "parcels/internal/adapters/in/http"
	"parcels/internal/adapters/out/legfile"
	"parcels/internal/adapters/out/memory/parcelrepo"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/leg"
	"parcels/internal/core/domain/services"
	"parcels/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *leg.Catalog
	planner    *services.RoutePlanner
	parcelRepo *parcelrepo.Repository
}

// NewCompositionRoot loads the leg network from the configured source and
// builds the long-lived dependencies. With the postgres source the schema is
// migrated first and, when LegSeed is set, an empty store is seeded with the
// built-in network.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:     config,
		logger:     logger,
		parcelRepo: parcelrepo.NewRepository(),
	}

	legs, err := c.loadLegs(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}

	catalog, err := leg.NewCatalog(legs)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("build leg catalog: %w", err)
	}
	c.catalog = catalog
	c.planner = services.NewRoutePlanner(catalog)

	logger.InfoContext(ctx, "Leg network loaded",
		"source", config.LegSource,
		"legs", catalog.Len(),
		"locations", len(catalog.Locations()))

	return c, nil
}

func (c *CompositionRoot) loadLegs(ctx context.Context) ([]*leg.Leg, error) {
	switch c.config.LegSource {
	case LegSourceFile:
		return legfile.NewSource(c.config.LegFile).LoadLegs(ctx)
	case LegSourcePostgres:
		return c.loadLegsFromPostgres(ctx)
	default:
		return leg.BuiltinLegs(), nil
	}
}

func (c *CompositionRoot) loadLegsFromPostgres(ctx context.Context) ([]*leg.Leg, error) {
	db, err := postgres.Open(c.config.Postgres().DSN())
	if err != nil {
		return nil, err
	}
	c.gormDB = db
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)

	applied, err := postgres.Migrate(ctx, db)
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "Migrations applied", "count", applied)

	if c.config.LegSeed {
		cmd, cmdErr := commands.NewSeedLegsCommand(leg.BuiltinLegs())
		if cmdErr != nil {
			return nil, cmdErr
		}
		seeded, seedErr := c.CreateSeedLegsCommandHandler().Handle(ctx, cmd)
		if seedErr != nil {
			return nil, fmt.Errorf("seed leg store: %w", seedErr)
		}
		c.logger.InfoContext(ctx, "Leg store seeded", "legs", seeded)
	}

	return c.uowFactory.Create().LegRepository().LoadLegs(ctx)
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() {
	if c.gormDB == nil {
		return
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (c *CompositionRoot) CreateSeedLegsCommandHandler() commands.SeedLegsCommandHandler {
	var f commands.LegUoWFactory = FuncLegUoWFactory(func() commands.LegUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedLegsCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	return commands.NewRegisterParcelCommandHandler(c.planner, c.parcelRepo)
}

func (c *CompositionRoot) CreateRecordDepartureCommandHandler() commands.RecordDepartureCommandHandler {
	return commands.NewRecordDepartureCommandHandler(c.parcelRepo, commands.SystemClock)
}

func (c *CompositionRoot) CreateRecordArrivalCommandHandler() commands.RecordArrivalCommandHandler {
	return commands.NewRecordArrivalCommandHandler(c.parcelRepo, commands.SystemClock)
}

func (c *CompositionRoot) CreateRecordPickupCommandHandler() commands.RecordPickupCommandHandler {
	return commands.NewRecordPickupCommandHandler(c.parcelRepo, commands.SystemClock)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.parcelRepo)
}

func (c *CompositionRoot) CreateGetParcelsAwaitingLegQueryHandler() queries.GetParcelsAwaitingLegQueryHandler {
	return queries.NewGetParcelsAwaitingLegQueryHandler(c.parcelRepo)
}

func (c *CompositionRoot) CreatePlanRouteQueryHandler() queries.PlanRouteQueryHandler {
	return queries.NewPlanRouteQueryHandler(c.planner, c.catalog)
}

func (c *CompositionRoot) CreateGetNetworkQueryHandler() queries.GetNetworkQueryHandler {
	return queries.NewGetNetworkQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetLegQueuesQueryHandler() queries.GetLegQueuesQueryHandler {
	return queries.NewGetLegQueuesQueryHandler(c.parcelRepo)
}

// CreateEcho wires the HTTP adapter.
func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpadapter.LoadContract(ctx)
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(
		c.CreateRegisterParcelCommandHandler(),
		c.CreateRecordDepartureCommandHandler(),
		c.CreateRecordArrivalCommandHandler(),
		c.CreateRecordPickupCommandHandler(),
		c.CreateTrackParcelQueryHandler(),
		c.CreateGetParcelsAwaitingLegQueryHandler(),
		c.CreatePlanRouteQueryHandler(),
		c.CreateGetNetworkQueryHandler(),
		c.logger,
	)
	return httpadapter.NewEcho(server, doc)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetLegQueuesQueryHandler(), c.config.LegQueueReportSchedule, c.logger)
}

type FuncLegUoWFactory func() commands.LegUoW

func (f FuncLegUoWFactory) Create() commands.LegUoW {
	return f()
}
