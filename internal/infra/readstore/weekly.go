package readstore

import (
	"context"

	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
	"tiffintime-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type WeeklyReadQueries interface {
	ListWeeklyAvailabilityByVendor(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) ([]sqlc.ListWeeklyAvailabilityByVendorRow, error)
}

type WeeklyReadStore struct {
	queries WeeklyReadQueries
	db      sqlc.DBTX
}

func NewWeeklyReadStore(queries WeeklyReadQueries, db sqlc.DBTX) *WeeklyReadStore {
	return &WeeklyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WeeklyReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*queries.WeeklyRuleView, error) {
	rows, err := r.queries.ListWeeklyAvailabilityByVendor(ctx, r.db, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list weekly menu", err)
	}
	result := make([]*queries.WeeklyRuleView, len(rows))
	for i, row := range rows {
		price, err := pgconv.Float64FromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode menu item price", err)
		}
		result[i] = &queries.WeeklyRuleView{
			ID:         row.ID,
			MenuItemID: row.MenuItemID,
			DayOfWeek:  int(row.DayOfWeek),
			ItemName:   row.ItemName,
			Price:      price,
		}
	}
	return result, nil
}
