package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/infra/readstore"
	"tiffintime-api/internal/infra/repository"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/errs"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries  = 3
	retryBaseWait = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn in a read-committed transaction, retrying on
// serialization failures and deadlocks.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt == maxTxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// attempt keeps Begin/Rollback in one call frame so retries never stack defers.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", err.Error())
	}
}

func backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * retryBaseWait
	return wait + time.Duration(jitter(int64(wait/5)))
}

func jitter(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// #nosec G115 -- high bit masked off
	return int64(binary.BigEndian.Uint64(buf[:])&0x7FFFFFFFFFFFFFFF) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

// pgTx hands out repositories bound to one transaction. Each is built on
// first use.
type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	accounts      shared.AccountRepository
	vendors       shared.VendorRepository
	menuItems     shared.MenuItemRepository
	specials      shared.DateSpecialRepository
	weeklyRules   shared.WeeklyRuleRepository
	orders        shared.OrderRepository
	subscriptions shared.SubscriptionRepository
	payments      shared.PaymentRepository
	ratings       shared.RatingRepository
	reviews       shared.ReviewRepository
	reads         shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX { return t.dbtx }

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accounts == nil {
		t.accounts = repository.NewAccountRepository(t.q)
	}
	return t.accounts
}

func (t *pgTx) Vendors() shared.VendorRepository {
	if t.vendors == nil {
		t.vendors = repository.NewVendorRepository(t.q)
	}
	return t.vendors
}

func (t *pgTx) MenuItems() shared.MenuItemRepository {
	if t.menuItems == nil {
		t.menuItems = repository.NewMenuItemRepository(t.q)
	}
	return t.menuItems
}

func (t *pgTx) Specials() shared.DateSpecialRepository {
	if t.specials == nil {
		t.specials = repository.NewDateSpecialRepository(t.q)
	}
	return t.specials
}

func (t *pgTx) WeeklyRules() shared.WeeklyRuleRepository {
	if t.weeklyRules == nil {
		t.weeklyRules = repository.NewWeeklyRuleRepository(t.q)
	}
	return t.weeklyRules
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orders == nil {
		t.orders = repository.NewOrderRepository(t.q)
	}
	return t.orders
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptions == nil {
		t.subscriptions = repository.NewSubscriptionRepository(t.q)
	}
	return t.subscriptions
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.payments == nil {
		t.payments = repository.NewPaymentRepository(t.q)
	}
	return t.payments
}

func (t *pgTx) Ratings() shared.RatingRepository {
	if t.ratings == nil {
		t.ratings = repository.NewRatingRepository(t.q)
	}
	return t.ratings
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviews == nil {
		t.reviews = repository.NewReviewRepository(t.q)
	}
	return t.reviews
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = newCommandReads(t.q, t.dbtx)
	}
	return t.reads
}

// commandReads serves the lookups commands need before they write, on
// whichever connection it was created with.
type commandReads struct {
	accounts *readstore.AccountReadStore
	vendors  *readstore.VendorReadStore
	menu     *readstore.MenuReadStore
	orders   *readstore.OrderReadStore
}

func newCommandReads(q *sqlc.Queries, db sqlc.DBTX) *commandReads {
	return &commandReads{
		accounts: readstore.NewAccountReadStore(q, db),
		vendors:  readstore.NewVendorReadStore(q, db),
		menu:     readstore.NewMenuReadStore(q, db),
		orders:   readstore.NewOrderReadStore(q, db),
	}
}

func (r *commandReads) AccountByEmail(ctx context.Context, role account.Role, email string) (*shared.AccountSnapshot, error) {
	view, hash, err := r.accounts.FindByEmail(ctx, role, email)
	if err != nil {
		return nil, err
	}
	return &shared.AccountSnapshot{
		ID:           view.ID,
		Role:         view.Role,
		Name:         view.Name,
		Email:        view.Email,
		PasswordHash: hash,
	}, nil
}

func (r *commandReads) VendorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.vendors.Exists(ctx, id)
}

func (r *commandReads) MenuItemByID(ctx context.Context, id uuid.UUID) (*shared.MenuItemSnapshot, error) {
	row, err := r.menu.FindSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, errs.Wrap(err, "menu item price")
	}
	return &shared.MenuItemSnapshot{
		ID:       row.ID,
		VendorID: row.VendorID,
		Name:     row.Name,
		Price:    price,
	}, nil
}

func (r *commandReads) OrderNotice(ctx context.Context, orderID uuid.UUID) (*shared.OrderNoticeSnapshot, error) {
	row, err := r.orders.FindNotice(ctx, orderID)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.Float64FromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrap(err, "order total")
	}
	return &shared.OrderNoticeSnapshot{
		OrderID:    row.OrderID,
		Pickup:     row.Pickup,
		TotalPrice: total,
		UserEmail:  row.UserEmail,
		UserName:   row.UserName,
		ItemName:   row.ItemName,
		VendorName: row.VendorName,
	}, nil
}
