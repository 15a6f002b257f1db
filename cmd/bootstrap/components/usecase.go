package components

import (
	"railbook/internal/domain/fare"
	"railbook/internal/domain/inventory"
	"railbook/internal/infra/quotestore"
	"railbook/internal/infra/uow"
	"railbook/internal/pkg/clock"
	"railbook/internal/pkg/config"
	"railbook/internal/usecase/commands"
	"railbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewQuoteCommands,
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPNRQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewTrainQueries,
	),
)

func NewQuoteCommands(
	u uow.UnitOfWork,
	trains commands.TrainRepository,
	inv commands.InventoryRepository,
	quotes quotestore.Store,
	fares *fare.Table,
	caps *inventory.CapacityPlan,
	cfg config.Config,
	clk clock.Clock,
) commands.QuoteCommands {
	return commands.NewQuoteUseCase(u, trains, inv, quotes, fares, caps, cfg.Quote.TTL, clk)
}
