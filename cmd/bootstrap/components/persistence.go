package components

import (
	"tiffintime-api/internal/infra/readstore"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/infra/uow"
	"tiffintime-api/internal/usecase/queries"
	"tiffintime-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work,
// so only the read stores and the UoW itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Account
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AccountReadQueries)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
		// Vendor
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VendorReadQueries)),
		),
		fx.Annotate(
			readstore.NewVendorReadStore,
			fx.As(new(queries.VendorReadStore)),
		),
		// Menu
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MenuReadQueries)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuReadStore)),
		),
		// Listing sources
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ListingSourceQueries)),
		),
		fx.Annotate(
			readstore.NewListingSourceStore,
			fx.As(new(queries.ListingSourceStore)),
		),
		// Date specials
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SpecialReadQueries)),
		),
		fx.Annotate(
			readstore.NewSpecialReadStore,
			fx.As(new(queries.SpecialReadStore)),
		),
		// Weekly rules
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WeeklyReadQueries)),
		),
		fx.Annotate(
			readstore.NewWeeklyReadStore,
			fx.As(new(queries.WeeklyReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Subscription
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SubscriptionReadQueries)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionReadStore)),
		),
		// Rating
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RatingReadQueries)),
		),
		fx.Annotate(
			readstore.NewRatingReadStore,
			fx.As(new(queries.RatingReadStore)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewReadQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
