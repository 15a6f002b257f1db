package bootstrap

import (
	"context"
	"log/slog"

	"railbook/internal/infra/notification"
	"railbook/internal/pkg/config"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when Kafka is
// disabled, so local setups run without a broker.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (notification.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		slog.Info("kafka disabled, booking events will not be published")
		return notification.NopPublisher{}, nil
	}

	pub, cleanup, err := notification.NewSaramaPublisher(cfg.Kafka.Brokers, cfg.Kafka.BookingTopic)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pub, nil
}
