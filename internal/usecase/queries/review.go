package queries

import (
	"context"

	"github.com/google/uuid"
)

// ReviewReadStore lists newest reviews first.
type ReviewReadStore interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*ReviewView, error)
}

type ReviewQueries interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*ReviewView, error) {
	return q.store.ListByVendor(ctx, vendorID)
}
