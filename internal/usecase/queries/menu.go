package queries

import (
	"context"

	"tiffintime-api/internal/infra"

	"github.com/google/uuid"
)

// MenuReadStore fills AvailableDays from the item's weekly rules.
type MenuReadStore interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*MenuItemView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type MenuQueries interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*MenuItemView, error)
	Get(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type menuQueriesImpl struct {
	store  MenuReadStore
	signer ImageSigner
}

func NewMenuQueries(store MenuReadStore, signer ImageSigner) MenuQueries {
	return &menuQueriesImpl{store: store, signer: signer}
}

func (q *menuQueriesImpl) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*MenuItemView, error) {
	items, err := q.store.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		it.ImgURL = signImage(ctx, q.signer, it.Image, it.ID.String())
	}
	return items, nil
}

func (q *menuQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*MenuItemView, error) {
	item, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	item.ImgURL = signImage(ctx, q.signer, item.Image, item.ID.String())
	return item, nil
}
