package components

import (
	"railbook/internal/domain/fare"
	"railbook/internal/domain/inventory"
	"railbook/internal/domain/train"
	"railbook/internal/infra/db"
	"railbook/internal/infra/quotestore"
	"railbook/internal/infra/readstore"
	repo_impl "railbook/internal/infra/repository"
	"railbook/internal/infra/schedule"
	"railbook/internal/pkg/clock"
	"railbook/internal/pkg/config"
	"railbook/internal/usecase/commands"
	"railbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewFareTable,
		NewCapacityPlan,
		NewQuoteStore,
		fx.Annotate(
			repo_impl.NewTrainRepository,
			fx.As(new(commands.TrainRepository)),
		),
		fx.Annotate(
			repo_impl.NewInventoryRepository,
			fx.As(new(commands.InventoryRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewPNRReadStore,
			fx.As(new(queries.PNRViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.AvailabilityViewRepo)),
		),
		fx.Annotate(
			readstore.NewTrainReadStore,
			fx.As(new(queries.TrainViewRepo)),
		),
		// Upserts need the concrete type for the schedule import
		repo_impl.NewTrainRepository,
		schedule.NewImporter,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewFareTable() *fare.Table {
	return fare.NewTable()
}

func NewCapacityPlan(cfg config.Config) *inventory.CapacityPlan {
	plan := inventory.DefaultCapacityPlan()
	for class, confirmed := range cfg.Booking.CapacityOverrides {
		plan.Override(train.Class(class), confirmed)
	}
	return plan
}

func NewQuoteStore(client *redis.Client, cfg config.Config, clk clock.Clock) quotestore.Store {
	return quotestore.NewRedisStore(client, cfg.Quote.TTL, cfg.Quote.ConsumedMarkerTTL, clk)
}
