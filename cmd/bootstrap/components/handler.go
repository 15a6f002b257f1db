package components

import (
	"railbook/internal/handler"
	"railbook/internal/handler/api"
	"railbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewBookingHandler,
		api.NewPNRHandler,
		api.NewTrainHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
