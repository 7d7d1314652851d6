package commands

import (
	"context"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SetWeeklyInput struct {
	MenuItemID  uuid.UUID
	DayOfWeek   int
	IsAvailable bool
}

type WeeklyCommands interface {
	// Set upserts the rule when available and removes it otherwise. The
	// returned snapshot is nil after a removal.
	Set(ctx context.Context, vendorID uuid.UUID, in SetWeeklyInput) (*shared.WeeklyRuleSnapshot, error)
}

type weeklyCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewWeeklyCommands(uow shared.UnitOfWork) WeeklyCommands {
	return &weeklyCommandsImpl{uow: uow}
}

func (w *weeklyCommandsImpl) Set(ctx context.Context, vendorID uuid.UUID, in SetWeeklyInput) (*shared.WeeklyRuleSnapshot, error) {
	rule, err := availability.NewWeeklyRule(in.MenuItemID, in.DayOfWeek)
	if err != nil {
		return nil, err
	}
	if _, err := ownedItem(ctx, w.uow.CommandReads(), vendorID, in.MenuItemID); err != nil {
		return nil, err
	}

	var snap *shared.WeeklyRuleSnapshot
	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if !in.IsAvailable {
			return tx.WeeklyRules().Delete(ctx, tx.DB(), rule)
		}
		s, err := tx.WeeklyRules().Upsert(ctx, tx.DB(), rule)
		if err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return snap, nil
}
