package bootstrap

import (
	"context"

	"tiffintime-api/internal/infra/gateway"
	"tiffintime-api/internal/infra/mailer"
	"tiffintime-api/internal/infra/notify"
	"tiffintime-api/internal/infra/storage"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"go.uber.org/fx"
)

// ClientsModule provides the outbound adapters: object storage, the
// payment gateway, the mailer and the delivery notice dispatcher.
var ClientsModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			storage.NewObjectStore,
			fx.As(new(commands.ObjectStore)),
			fx.As(new(queries.ImageSigner)),
		),
		fx.Annotate(
			gateway.NewClient,
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(queries.TransactionStatusReader)),
		),
		fx.Annotate(
			mailer.NewClient,
			fx.As(new(notify.Sender)),
		),
		fx.Annotate(
			NewDispatcher,
			fx.As(new(commands.DeliveryNotifier)),
		),
	),
)

func NewDispatcher(lc fx.Lifecycle, sender notify.Sender, cfg config.Config) *notify.Dispatcher {
	d := notify.NewDispatcher(sender, cfg)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return d.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}
