package queries

import (
	"context"

	"github.com/google/uuid"
)

// WeeklyReadStore lists rules ordered by weekday, then item name.
type WeeklyReadStore interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*WeeklyRuleView, error)
}

type WeeklyQueries interface {
	Mine(ctx context.Context, vendorID uuid.UUID) ([]*WeeklyRuleView, error)
}

type weeklyQueriesImpl struct {
	store WeeklyReadStore
}

func NewWeeklyQueries(store WeeklyReadStore) WeeklyQueries {
	return &weeklyQueriesImpl{store: store}
}

func (q *weeklyQueriesImpl) Mine(ctx context.Context, vendorID uuid.UUID) ([]*WeeklyRuleView, error) {
	return q.store.ListByVendor(ctx, vendorID)
}
