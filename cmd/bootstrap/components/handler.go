package components

import (
	"tiffintime-api/internal/handler"
	"tiffintime-api/internal/handler/api"
	"tiffintime-api/internal/handler/middleware"
	"tiffintime-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVendorHandler,
		api.NewMenuHandler,
		api.NewAvailabilityHandler,
		api.NewOrderHandler,
		api.NewSubscriptionHandler,
		api.NewFeedbackHandler,
		api.NewUploadHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
