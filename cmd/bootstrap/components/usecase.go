package components

import (
	"tiffintime-api/internal/pkg/clock"
	"tiffintime-api/internal/pkg/jwt"
	"tiffintime-api/internal/usecase"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVendorCommands,
		commands.NewMenuCommands,
		commands.NewSpecialCommands,
		commands.NewWeeklyCommands,
		commands.NewOrderCommands,
		commands.NewSubscriptionCommands,
		commands.NewRatingCommands,
		commands.NewReviewCommands,
		commands.NewUploadCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewVendorQueries,
		queries.NewMenuQueries,
		queries.NewListingQueries,
		queries.NewSpecialQueries,
		queries.NewWeeklyQueries,
		queries.NewOrderQueries,
		queries.NewSubscriptionQueries,
		queries.NewRatingQueries,
		queries.NewReviewQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
