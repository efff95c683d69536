package components

import (
	"hotel-booking-core/internal/infra/db"
	"hotel-booking-core/internal/infra/readstore"
	"hotel-booking-core/internal/infra/repository"
	"hotel-booking-core/internal/infra/uow"
	"hotel-booking-core/internal/pkg/cache"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

// catalog reads outside a transaction go straight to the pool
var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(readstore.RoomSource)),
		),
		fx.Annotate(
			repository.NewPricingRuleRepository,
			fx.As(new(readstore.PricingRuleSource)),
		),
		fx.Annotate(
			repository.NewExtraRepository,
			fx.As(new(readstore.ExtraSource)),
		),
		fx.Annotate(
			NewCatalogReadStore,
			fx.As(new(shared.CatalogReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCatalogReadStore(
	store cache.Store,
	rooms readstore.RoomSource,
	rules readstore.PricingRuleSource,
	extras readstore.ExtraSource,
	cfg config.Config,
) *readstore.CatalogReadStore {
	return readstore.NewCatalogReadStore(store, rooms, rules, extras, cfg.Cache)
}
