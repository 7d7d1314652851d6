package bootstrap

import (
	"time"

	"tiffintime-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the zone "today" is computed in for listings and specials.
func NewLocation(cfg config.Config) *time.Location {
	return cfg.App.Location()
}
