package readstore

import (
	"context"

	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionReadQueries interface {
	ListSubscriptionsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListSubscriptionsByUserRow, error)
	ListSubscriptionsByVendor(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) ([]sqlc.ListSubscriptionsByVendorRow, error)
}

type SubscriptionReadStore struct {
	queries SubscriptionReadQueries
	db      sqlc.DBTX
}

func NewSubscriptionReadStore(queries SubscriptionReadQueries, db sqlc.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.SubscriptionView, error) {
	rows, err := r.queries.ListSubscriptionsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions by user", err)
	}
	result := make([]*queries.SubscriptionView, len(rows))
	for i, row := range rows {
		result[i] = &queries.SubscriptionView{
			ID:         row.ID,
			VendorID:   row.VendorID,
			VendorName: row.VendorName,
			Plan:       row.Plan,
			StartDate:  pgconv.TimeFromPgtype(row.StartDate),
			EndDate:    pgconv.TimeFromPgtype(row.EndDate),
		}
	}
	return result, nil
}

func (r *SubscriptionReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*queries.SubscriberView, error) {
	rows, err := r.queries.ListSubscriptionsByVendor(ctx, r.db, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscribers", err)
	}
	result := make([]*queries.SubscriberView, len(rows))
	for i, row := range rows {
		result[i] = &queries.SubscriberView{
			ID:        row.ID,
			UserID:    row.UserID,
			UserName:  row.UserName,
			Plan:      row.Plan,
			StartDate: pgconv.TimeFromPgtype(row.StartDate),
			EndDate:   pgconv.TimeFromPgtype(row.EndDate),
		}
	}
	return result, nil
}
