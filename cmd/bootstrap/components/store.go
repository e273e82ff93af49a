package components

import (
	"storefront/internal/infra/cartstore"
	"storefront/internal/infra/feed"
	"storefront/internal/infra/gateway"
	"storefront/internal/infra/kv"
	"storefront/internal/infra/pendingstore"
	"storefront/internal/infra/repository"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			kv.NewRedisStore,
			fx.As(new(kv.Store)),
		),
		// Cart snapshots
		fx.Annotate(
			cartstore.NewStore,
			fx.As(new(commands.CartSnapshots)),
			fx.As(new(queries.CartSnapshotReadStore)),
		),
		// Pending actions
		fx.Annotate(
			NewPendingStore,
			fx.As(new(commands.PendingActions)),
			fx.As(new(queries.PendingActionReadStore)),
		),
		// Commerce backend
		fx.Annotate(
			NewCommerceGateway,
			fx.As(new(commands.CommerceGateway)),
		),
		// Event feed (also consumed directly by the notification handler)
		feed.NewFeed,
		fx.Annotate(
			func(f *feed.Feed) *feed.Feed { return f },
			fx.As(new(commands.EventSink)),
		),
		// Users
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewPendingStore(kvStore kv.Store, cfg config.Config) *pendingstore.Store {
	return pendingstore.NewStore(kvStore, cfg.Replay.ClaimTTL)
}

func NewCommerceGateway(cfg config.Config) *gateway.CommerceGateway {
	return gateway.NewCommerceGateway(cfg.Backend)
}
