package bootstrap

import (
	"hotel-booking-core/cmd/bootstrap/components"
	"hotel-booking-core/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module wires the whole application except the HTTP server itself, which
// main and the e2e setup own.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
