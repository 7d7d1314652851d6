package bootstrap

import (
	"tiffintime-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	ClientsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
