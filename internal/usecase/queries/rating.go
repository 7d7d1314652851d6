package queries

import (
	"context"

	"tiffintime-api/internal/domain/rating"
	"tiffintime-api/internal/infra"

	"github.com/google/uuid"
)

type RatingReadStore interface {
	Stats(ctx context.Context, vendorID uuid.UUID) (rating.Stats, error)
	Find(ctx context.Context, userID, vendorID uuid.UUID) (*RatingView, error)
}

type RatingQueries interface {
	Stats(ctx context.Context, vendorID uuid.UUID) (*RatingStatsView, error)
	Mine(ctx context.Context, userID, vendorID uuid.UUID) (*RatingView, error)
}

type ratingQueriesImpl struct {
	store RatingReadStore
}

func NewRatingQueries(store RatingReadStore) RatingQueries {
	return &ratingQueriesImpl{store: store}
}

func (q *ratingQueriesImpl) Stats(ctx context.Context, vendorID uuid.UUID) (*RatingStatsView, error) {
	stats, err := q.store.Stats(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return &RatingStatsView{VendorID: vendorID, Average: stats.Average, Count: stats.Count}, nil
}

func (q *ratingQueriesImpl) Mine(ctx context.Context, userID, vendorID uuid.UUID) (*RatingView, error) {
	r, err := q.store.Find(ctx, userID, vendorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return r, nil
}
