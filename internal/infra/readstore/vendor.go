package readstore

import (
	"context"

	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/infra/converter"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type VendorReadQueries interface {
	ListVendors(ctx context.Context, db sqlc.DBTX) ([]sqlc.Vendors, error)
	GetVendorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vendors, error)
	VendorExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

type VendorReadStore struct {
	queries VendorReadQueries
	db      sqlc.DBTX
}

func NewVendorReadStore(queries VendorReadQueries, db sqlc.DBTX) *VendorReadStore {
	return &VendorReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VendorReadStore) List(ctx context.Context) ([]*queries.VendorView, error) {
	rows, err := r.queries.ListVendors(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendors", err)
	}
	result := make([]*queries.VendorView, len(rows))
	for i, row := range rows {
		result[i] = toVendorView(row)
	}
	return result, nil
}

func (r *VendorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VendorView, error) {
	row, err := r.queries.GetVendorByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get vendor", err)
	}
	return toVendorView(row), nil
}

func (r *VendorReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.VendorExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check vendor", err)
	}
	return ok, nil
}

func toVendorView(row sqlc.Vendors) *queries.VendorView {
	return &queries.VendorView{
		ID:              row.ID,
		Name:            row.Name,
		Description:     pgconv.StringPtrFromPgtype(row.Description),
		IsOpen:          row.IsOpen,
		Image:           converter.ImageFromColumns(row.ImgBucket, row.ImgPath),
		DeliveryTimeMin: row.DeliveryTimeMin,
		DeliveryTimeMax: row.DeliveryTimeMax,
	}
}
