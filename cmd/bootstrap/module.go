package bootstrap

import (
	"context"

	"railbook/cmd/bootstrap/components"
	"railbook/internal/infra/schedule"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	KafkaModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.Invoke(importTimetable),
)

// Runs before the server accepts traffic; upserts make repeat boots safe.
func importTimetable(lc fx.Lifecycle, importer *schedule.Importer) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return importer.Run(ctx)
		},
	})
}
