package components

import (
	"storefront/internal/pkg/config"
	"storefront/internal/usecase"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		NewPendingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCartQueries,
		queries.NewPendingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		fx.Annotate(
			usecase.NewSessionVerifier,
			fx.As(new(commands.AuthVerifier)),
		),
	),
)

func NewPendingCommands(
	actions commands.PendingActions,
	gateway commands.CommerceGateway,
	events commands.EventSink,
	auth commands.AuthVerifier,
	cfg config.Config,
) commands.PendingCommands {
	return commands.NewPendingCommands(actions, gateway, events, auth, cfg.Replay.SettleDelay)
}
