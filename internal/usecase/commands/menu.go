package commands

import (
	"context"

	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/clock"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type MenuCommands interface {
	CreateItem(ctx context.Context, vendorID uuid.UUID, in menu.ItemInput) (uuid.UUID, error)
	UpdateItem(ctx context.Context, vendorID, itemID uuid.UUID, patch menu.ItemPatch) error
	DeleteItem(ctx context.Context, vendorID, itemID uuid.UUID) error
}

type menuCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMenuCommands(uow shared.UnitOfWork, clk clock.Clock) MenuCommands {
	return &menuCommandsImpl{uow: uow, clock: clk}
}

func (m *menuCommandsImpl) CreateItem(ctx context.Context, vendorID uuid.UUID, in menu.ItemInput) (uuid.UUID, error) {
	if err := ensureOwnImage(in.Image, vendorID); err != nil {
		return uuid.Nil, err
	}
	item, err := menu.NewItem(vendorID, in, m.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.MenuItems().Create(ctx, tx.DB(), item)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrVendorNotFound
		}
		return uuid.Nil, err
	}
	return item.ID(), nil
}

func (m *menuCommandsImpl) UpdateItem(ctx context.Context, vendorID, itemID uuid.UUID, patch menu.ItemPatch) error {
	if err := ensureOwnImage(patch.Image, vendorID); err != nil {
		return err
	}

	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := m.lockOwned(ctx, tx, vendorID, itemID)
		if err != nil {
			return err
		}
		if err := item.Apply(patch, m.clock.Now()); err != nil {
			return err
		}
		return tx.MenuItems().Update(ctx, tx.DB(), item)
	})
}

// DeleteItem relies on the schema to cascade to specials and weekly rules.
func (m *menuCommandsImpl) DeleteItem(ctx context.Context, vendorID, itemID uuid.UUID) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := m.lockOwned(ctx, tx, vendorID, itemID); err != nil {
			return err
		}
		return tx.MenuItems().Delete(ctx, tx.DB(), itemID)
	})
}

func (m *menuCommandsImpl) lockOwned(ctx context.Context, tx shared.Tx, vendorID, itemID uuid.UUID) (*menu.Item, error) {
	item, err := tx.MenuItems().FindForUpdate(ctx, tx.DB(), itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	if err := item.EnsureOwnedBy(vendorID); err != nil {
		return nil, err
	}
	return item, nil
}

// ownedItem checks ownership outside a transaction for commands that only
// reference an item.
func ownedItem(ctx context.Context, reads shared.CommandReads, vendorID, itemID uuid.UUID) (*shared.MenuItemSnapshot, error) {
	item, err := reads.MenuItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	if item.VendorID != vendorID {
		return nil, menu.ErrNotOwner
	}
	return item, nil
}
