package bootstrap

import (
	"context"

	"railbook/internal/infra/db"
	"railbook/internal/infra/uow"
	"railbook/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewUnitOfWork,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) uow.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.Booking.LockTimeout)
}
