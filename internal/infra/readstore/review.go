package readstore

import (
	"context"

	"tiffintime-api/internal/domain/review"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	ListReviewsByVendor(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) ([]sqlc.ListReviewsByVendorRow, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByVendor(ctx, r.db, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by vendor", err)
	}
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewView{
			ReviewID:           row.ReviewID,
			UserID:             row.UserID,
			Username:           review.DisplayName(pgconv.StringPtrFromPgtype(row.UserName)),
			FoodQuality:        row.FoodQuality,
			DeliveryExperience: row.DeliveryExperience,
			Comment:            pgconv.StringPtrFromPgtype(row.Comment),
			Reply:              pgconv.StringPtrFromPgtype(row.Reply),
			IsReplied:          row.IsReplied,
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
