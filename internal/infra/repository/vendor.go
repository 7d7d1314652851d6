package repository

import (
	"context"

	"tiffintime-api/internal/domain/vendor"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/infra/converter"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VendorQueries interface {
	GetVendorByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vendors, error)
	UpdateVendorProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVendorProfileParams) (int64, error)
}

type VendorRepository struct {
	queries VendorQueries
}

func NewVendorRepository(queries VendorQueries) *VendorRepository {
	return &VendorRepository{queries: queries}
}

func (r *VendorRepository) FindProfileForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*vendor.Profile, error) {
	row, err := r.queries.GetVendorByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock vendor", err)
	}
	return &vendor.Profile{
		ID:          row.ID,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		IsOpen:      row.IsOpen,
		Delivery:    vendor.DeliveryWindow{Min: row.DeliveryTimeMin, Max: row.DeliveryTimeMax},
		Image:       converter.ImageFromColumns(row.ImgBucket, row.ImgPath),
	}, nil
}

func (r *VendorRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, p *vendor.Profile) error {
	bucket, path := converter.ImageToColumns(p.Image)
	n, err := r.queries.UpdateVendorProfile(ctx, tx, sqlc.UpdateVendorProfileParams{
		ID:              p.ID,
		Description:     pgconv.StringPtrToPgtype(p.Description),
		IsOpen:          p.IsOpen,
		DeliveryTimeMin: p.Delivery.Min,
		DeliveryTimeMax: p.Delivery.Max,
		ImgBucket:       bucket,
		ImgPath:         path,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update vendor profile", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("vendor not found", nil, infra.KindNotFound)
	}
	return nil
}
