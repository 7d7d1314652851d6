package repository

import (
	"context"

	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/infra/converter"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MenuItemQueries interface {
	CreateMenuItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMenuItemParams) error
	GetMenuItemByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.MenuItems, error)
	UpdateMenuItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMenuItemParams) (int64, error)
	DeleteMenuItem(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type MenuItemRepository struct {
	queries MenuItemQueries
}

func NewMenuItemRepository(queries MenuItemQueries) *MenuItemRepository {
	return &MenuItemRepository{queries: queries}
}

func (r *MenuItemRepository) Create(ctx context.Context, tx sqlc.DBTX, item *menu.Item) error {
	if err := r.queries.CreateMenuItem(ctx, tx, converter.MenuItemToCreateParams(item)); err != nil {
		return infra.WrapRepoErr("failed to create menu item", err)
	}
	return nil
}

func (r *MenuItemRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*menu.Item, error) {
	row, err := r.queries.GetMenuItemByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock menu item", err)
	}
	item, err := converter.MenuItemFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode menu item", err)
	}
	return item, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, tx sqlc.DBTX, item *menu.Item) error {
	n, err := r.queries.UpdateMenuItem(ctx, tx, converter.MenuItemToUpdateParams(item))
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteMenuItem(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu item", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}
