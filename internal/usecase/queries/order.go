package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserOrderView, error)
	// ListByVendor filters on delivery status only when delivered is set.
	ListByVendor(ctx context.Context, vendorID uuid.UUID, delivered *bool) ([]*VendorOrderView, error)
}

type OrderQueries interface {
	Mine(ctx context.Context, userID uuid.UUID) ([]*UserOrderView, error)
	ForVendor(ctx context.Context, vendorID uuid.UUID, delivered *bool) ([]*VendorOrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) Mine(ctx context.Context, userID uuid.UUID) ([]*UserOrderView, error) {
	return q.store.ListByUser(ctx, userID)
}

func (q *orderQueriesImpl) ForVendor(ctx context.Context, vendorID uuid.UUID, delivered *bool) ([]*VendorOrderView, error) {
	return q.store.ListByVendor(ctx, vendorID, delivered)
}
