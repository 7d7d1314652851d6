package repository

import (
	"context"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/infra/converter"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DateSpecialQueries interface {
	CreateDateSpecial(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDateSpecialParams) error
	GetDateSpecialForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetDateSpecialForUpdateRow, error)
	UpdateDateSpecial(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDateSpecialParams) (int64, error)
	DeleteDateSpecial(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type DateSpecialRepository struct {
	queries DateSpecialQueries
}

func NewDateSpecialRepository(queries DateSpecialQueries) *DateSpecialRepository {
	return &DateSpecialRepository{queries: queries}
}

func (r *DateSpecialRepository) Create(ctx context.Context, tx sqlc.DBTX, s *availability.DateSpecial) error {
	if err := r.queries.CreateDateSpecial(ctx, tx, converter.DateSpecialToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create date special", err)
	}
	return nil
}

func (r *DateSpecialRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*availability.DateSpecial, uuid.UUID, error) {
	row, err := r.queries.GetDateSpecialForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, uuid.Nil, infra.WrapRepoErr("date special not found", err, infra.KindNotFound)
		}
		return nil, uuid.Nil, infra.WrapRepoErr("failed to lock date special", err)
	}
	special, err := converter.DateSpecialFromRow(row)
	if err != nil {
		return nil, uuid.Nil, infra.WrapRepoErr("failed to decode date special", err)
	}
	return special, row.VendorID, nil
}

func (r *DateSpecialRepository) Update(ctx context.Context, tx sqlc.DBTX, s *availability.DateSpecial) error {
	n, err := r.queries.UpdateDateSpecial(ctx, tx, sqlc.UpdateDateSpecialParams{
		ID:           s.ID(),
		Quantity:     pgconv.Int32PtrToPgtype(s.Quantity()),
		SpecialPrice: pgconv.Float64PtrToNumeric(s.SpecialPrice()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update date special", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("date special not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DateSpecialRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteDateSpecial(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete date special", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("date special not found", nil, infra.KindNotFound)
	}
	return nil
}
