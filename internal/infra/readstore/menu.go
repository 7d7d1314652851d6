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

type MenuReadQueries interface {
	GetMenuItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MenuItems, error)
	ListMenuItemsByVendor(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) ([]sqlc.MenuItems, error)
	ListWeekdaysByMenuItems(ctx context.Context, db sqlc.DBTX, menuItemIds []uuid.UUID) ([]sqlc.ListWeekdaysByMenuItemsRow, error)
}

type MenuReadStore struct {
	queries MenuReadQueries
	db      sqlc.DBTX
}

func NewMenuReadStore(queries MenuReadQueries, db sqlc.DBTX) *MenuReadStore {
	return &MenuReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MenuReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MenuItemView, error) {
	row, err := r.queries.GetMenuItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get menu item", err)
	}
	views, err := r.withDays(ctx, []sqlc.MenuItems{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *MenuReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*queries.MenuItemView, error) {
	rows, err := r.queries.ListMenuItemsByVendor(ctx, r.db, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	return r.withDays(ctx, rows)
}

// FindSnapshot is the command-side lookup: id, owner, name, price.
func (r *MenuReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (sqlc.MenuItems, error) {
	row, err := r.queries.GetMenuItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.MenuItems{}, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return sqlc.MenuItems{}, infra.WrapRepoErr("failed to get menu item", err)
	}
	return row, nil
}

func (r *MenuReadStore) withDays(ctx context.Context, rows []sqlc.MenuItems) ([]*queries.MenuItemView, error) {
	result := make([]*queries.MenuItemView, len(rows))
	if len(rows) == 0 {
		return result, nil
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	dayRows, err := r.queries.ListWeekdaysByMenuItems(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list weekly availability", err)
	}
	days := make(map[uuid.UUID][]int, len(rows))
	for _, d := range dayRows {
		days[d.MenuItemID] = append(days[d.MenuItemID], int(d.DayOfWeek))
	}

	for i, row := range rows {
		price, err := pgconv.Float64FromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode menu item price", err)
		}
		available := days[row.ID]
		if available == nil {
			available = []int{}
		}
		result[i] = &queries.MenuItemView{
			ID:            row.ID,
			VendorID:      row.VendorID,
			Name:          row.Name,
			Category:      row.Category,
			Price:         price,
			PrepTime:      row.PrepTime,
			Description:   pgconv.StringPtrFromPgtype(row.Description),
			Image:         converter.ImageFromColumns(row.ImgBucket, row.ImgPath),
			AvailableDays: available,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
