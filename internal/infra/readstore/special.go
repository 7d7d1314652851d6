package readstore

import (
	"context"
	"time"

	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/infra/converter"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpecialReadQueries interface {
	GetDateSpecialView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetDateSpecialViewRow, error)
	ListDateSpecialViewsByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.ListDateSpecialViewsByDateRow, error)
	ListUpcomingDateSpecialViewsByVendor(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingDateSpecialViewsByVendorParams) ([]sqlc.ListUpcomingDateSpecialViewsByVendorRow, error)
}

type SpecialReadStore struct {
	queries SpecialReadQueries
	db      sqlc.DBTX
}

func NewSpecialReadStore(queries SpecialReadQueries, db sqlc.DBTX) *SpecialReadStore {
	return &SpecialReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpecialReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DateSpecialView, error) {
	row, err := r.queries.GetDateSpecialView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("date special not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get date special", err)
	}
	return toDateSpecialView(row)
}

func (r *SpecialReadStore) ListByDate(ctx context.Context, date time.Time) ([]*queries.DateSpecialView, error) {
	rows, err := r.queries.ListDateSpecialViewsByDate(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list date specials", err)
	}
	result := make([]*queries.DateSpecialView, len(rows))
	for i, row := range rows {
		if result[i], err = toDateSpecialView(sqlc.GetDateSpecialViewRow(row)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *SpecialReadStore) ListUpcomingByVendor(ctx context.Context, vendorID uuid.UUID, from time.Time) ([]*queries.DateSpecialView, error) {
	rows, err := r.queries.ListUpcomingDateSpecialViewsByVendor(ctx, r.db, sqlc.ListUpcomingDateSpecialViewsByVendorParams{
		VendorID: vendorID,
		FromDate: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming date specials", err)
	}
	result := make([]*queries.DateSpecialView, len(rows))
	for i, row := range rows {
		if result[i], err = toDateSpecialView(sqlc.GetDateSpecialViewRow(row)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// The three view queries share one column list, so their rows convert.
func toDateSpecialView(row sqlc.GetDateSpecialViewRow) (*queries.DateSpecialView, error) {
	base, err := pgconv.Float64FromNumeric(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode base price", err)
	}
	special, err := pgconv.Float64PtrFromNumeric(row.SpecialPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode special price", err)
	}
	var date time.Time
	if d := pgconv.DatePtrFromPgtype(row.Date); d != nil {
		date = *d
	}
	return &queries.DateSpecialView{
		ID:           row.ID,
		MenuItemID:   row.MenuItemID,
		VendorID:     row.VendorID,
		VendorName:   row.VendorName,
		ItemName:     row.ItemName,
		Category:     row.Category,
		BasePrice:    base,
		Date:         date,
		Quantity:     pgconv.Int32PtrFromPgtype(row.Quantity),
		SpecialPrice: special,
		Image:        converter.ImageFromColumns(row.ImgBucket, row.ImgPath),
	}, nil
}
