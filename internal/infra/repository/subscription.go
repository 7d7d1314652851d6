package repository

import (
	"context"

	"tiffintime-api/internal/domain/subscription"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SubscriptionQueries interface {
	CreateSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSubscriptionParams) error
	GetSubscriptionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Subscription, error)
	DeleteSubscription(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SubscriptionRepository struct {
	queries SubscriptionQueries
}

func NewSubscriptionRepository(queries SubscriptionQueries) *SubscriptionRepository {
	return &SubscriptionRepository{queries: queries}
}

func (r *SubscriptionRepository) Create(ctx context.Context, tx sqlc.DBTX, s *subscription.Subscription) error {
	err := r.queries.CreateSubscription(ctx, tx, sqlc.CreateSubscriptionParams{
		ID:        s.ID(),
		UserID:    s.UserID(),
		VendorID:  s.VendorID(),
		Plan:      s.Plan().String(),
		StartDate: pgconv.TimeToPgtype(s.StartDate()),
		EndDate:   pgconv.TimeToPgtype(s.EndDate()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create subscription", err)
	}
	return nil
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*subscription.Subscription, error) {
	row, err := r.queries.GetSubscriptionByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get subscription", err)
	}
	return subscription.Reconstruct(
		row.ID,
		row.UserID,
		row.VendorID,
		subscription.Plan(row.Plan),
		pgconv.TimeFromPgtype(row.StartDate),
		pgconv.TimeFromPgtype(row.EndDate),
	), nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteSubscription(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete subscription", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}
