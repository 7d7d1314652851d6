package readstore

import (
	"context"

	"tiffintime-api/internal/domain/rating"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatingReadQueries interface {
	GetRating(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRatingParams) (sqlc.Rating, error)
	GetVendorRatingTotals(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) (sqlc.GetVendorRatingTotalsRow, error)
}

type RatingReadStore struct {
	queries RatingReadQueries
	db      sqlc.DBTX
}

func NewRatingReadStore(queries RatingReadQueries, db sqlc.DBTX) *RatingReadStore {
	return &RatingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RatingReadStore) Stats(ctx context.Context, vendorID uuid.UUID) (rating.Stats, error) {
	row, err := r.queries.GetVendorRatingTotals(ctx, r.db, vendorID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return rating.Stats{}, nil
		}
		return rating.Stats{}, infra.WrapRepoErr("failed to get rating totals", err)
	}
	return rating.NewStats(row.Total, row.Count), nil
}

func (r *RatingReadStore) Find(ctx context.Context, userID, vendorID uuid.UUID) (*queries.RatingView, error) {
	row, err := r.queries.GetRating(ctx, r.db, sqlc.GetRatingParams{UserID: userID, VendorID: vendorID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rating not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get rating", err)
	}
	return &queries.RatingView{VendorID: row.VendorID, Rating: int(row.RatingVal)}, nil
}
