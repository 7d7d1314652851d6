package shared

import (
	"context"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/domain/order"
	"tiffintime-api/internal/domain/payment"
	"tiffintime-api/internal/domain/rating"
	"tiffintime-api/internal/domain/review"
	"tiffintime-api/internal/domain/subscription"
	"tiffintime-api/internal/domain/vendor"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Accounts() AccountRepository
	Vendors() VendorRepository
	MenuItems() MenuItemRepository
	Specials() DateSpecialRepository
	WeeklyRules() WeeklyRuleRepository
	Orders() OrderRepository
	Subscriptions() SubscriptionRepository
	Payments() PaymentRepository
	Ratings() RatingRepository
	Reviews() ReviewRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	AccountByEmail(ctx context.Context, role account.Role, email string) (*AccountSnapshot, error)
	VendorExists(ctx context.Context, id uuid.UUID) (bool, error)
	MenuItemByID(ctx context.Context, id uuid.UUID) (*MenuItemSnapshot, error)
	OrderNotice(ctx context.Context, orderID uuid.UUID) (*OrderNoticeSnapshot, error)
}

type AccountRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, acc *account.Account) error
}

type VendorRepository interface {
	FindProfileForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*vendor.Profile, error)
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, p *vendor.Profile) error
}

type MenuItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, item *menu.Item) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*menu.Item, error)
	Update(ctx context.Context, tx sqlc.DBTX, item *menu.Item) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type DateSpecialRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *availability.DateSpecial) error
	// FindForUpdate also returns the vendor owning the special's item.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*availability.DateSpecial, uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *availability.DateSpecial) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type WeeklyRuleRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, rule *availability.WeeklyRule) (*WeeklyRuleSnapshot, error)
	Delete(ctx context.Context, tx sqlc.DBTX, rule *availability.WeeklyRule) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error)
	UpdateDelivered(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	OwnersOf(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	LinkPayment(ctx context.Context, tx sqlc.DBTX, paymentID uuid.UUID, orderIDs []uuid.UUID) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *subscription.Subscription) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*subscription.Subscription, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment, sessionKey string) error
	FindByTranIDForUpdate(ctx context.Context, tx sqlc.DBTX, tranID string) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment, valID, gatewayStatus *string) error
}

type RatingRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, userID, vendorID uuid.UUID, v rating.Value) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (int64, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*review.Review, error)
	SaveReply(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
}
