package repository

import (
	"context"

	"tiffintime-api/internal/domain/rating"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RatingQueries interface {
	UpsertRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRatingParams) (sqlc.Rating, error)
}

type RatingRepository struct {
	queries RatingQueries
}

func NewRatingRepository(queries RatingQueries) *RatingRepository {
	return &RatingRepository{queries: queries}
}

// Upsert keeps one rating per (user, vendor); a new value replaces the old one.
func (r *RatingRepository) Upsert(ctx context.Context, tx sqlc.DBTX, userID, vendorID uuid.UUID, v rating.Value) error {
	_, err := r.queries.UpsertRating(ctx, tx, sqlc.UpsertRatingParams{
		UserID:    userID,
		VendorID:  vendorID,
		RatingVal: int16(v.Int()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert rating", err)
	}
	return nil
}
