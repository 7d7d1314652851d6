package queries

import (
	"context"
	"time"

	"tiffintime-api/internal/domain/subscription"
	"tiffintime-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type SubscriptionReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*SubscriptionView, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*SubscriberView, error)
}

type SubscriptionQueries interface {
	Mine(ctx context.Context, userID uuid.UUID) ([]SubscriptionView, error)
	Subscribers(ctx context.Context, vendorID uuid.UUID) ([]*SubscriberView, error)
}

type subscriptionQueriesImpl struct {
	store SubscriptionReadStore
	clock clock.Clock
}

func NewSubscriptionQueries(store SubscriptionReadStore, clk clock.Clock) SubscriptionQueries {
	return &subscriptionQueriesImpl{store: store, clock: clk}
}

func (q *subscriptionQueriesImpl) Mine(ctx context.Context, userID uuid.UUID) ([]SubscriptionView, error) {
	subs, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	views := make([]SubscriptionView, 0, len(subs))
	for _, s := range subs {
		views = append(views, withRemainingDays(*s, now))
	}
	return views, nil
}

func (q *subscriptionQueriesImpl) Subscribers(ctx context.Context, vendorID uuid.UUID) ([]*SubscriberView, error) {
	return q.store.ListByVendor(ctx, vendorID)
}

func withRemainingDays(v SubscriptionView, now time.Time) SubscriptionView {
	v.RemainingDays = subscription.RemainingDays(v.EndDate, now)
	return v
}
