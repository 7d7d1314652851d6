package queries

import (
	"context"

	"tiffintime-api/internal/infra"

	"github.com/google/uuid"
)

type VendorReadStore interface {
	List(ctx context.Context) ([]*VendorView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VendorView, error)
}

type VendorQueries interface {
	List(ctx context.Context) ([]*VendorView, error)
	Get(ctx context.Context, id uuid.UUID) (*VendorView, error)
}

type vendorQueriesImpl struct {
	store  VendorReadStore
	signer ImageSigner
}

func NewVendorQueries(store VendorReadStore, signer ImageSigner) VendorQueries {
	return &vendorQueriesImpl{store: store, signer: signer}
}

func (q *vendorQueriesImpl) List(ctx context.Context) ([]*VendorView, error) {
	vendors, err := q.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range vendors {
		v.ImgURL = signImage(ctx, q.signer, v.Image, v.ID.String())
	}
	return vendors, nil
}

func (q *vendorQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*VendorView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	v.ImgURL = signImage(ctx, q.signer, v.Image, v.ID.String())
	return v, nil
}
