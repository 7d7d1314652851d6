package commands

import (
	"context"
	"time"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/clock"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSpecialInput struct {
	MenuItemID   uuid.UUID
	Date         string
	Quantity     *int32
	SpecialPrice *float64
}

type SpecialCommands interface {
	Create(ctx context.Context, vendorID uuid.UUID, in CreateSpecialInput) (uuid.UUID, error)
	Update(ctx context.Context, vendorID, specialID uuid.UUID, patch availability.SpecialPatch) error
	Delete(ctx context.Context, vendorID, specialID uuid.UUID) error
}

type specialCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewSpecialCommands(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) SpecialCommands {
	return &specialCommandsImpl{uow: uow, clock: clk, loc: loc}
}

func (s *specialCommandsImpl) Create(ctx context.Context, vendorID uuid.UUID, in CreateSpecialInput) (uuid.UUID, error) {
	date, err := availability.ParseDate(in.Date, s.loc)
	if err != nil {
		return uuid.Nil, err
	}
	special, err := availability.NewDateSpecial(in.MenuItemID, date, in.Quantity, in.SpecialPrice, clock.Today(s.clock, s.loc))
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := ownedItem(ctx, s.uow.CommandReads(), vendorID, in.MenuItemID); err != nil {
		return uuid.Nil, err
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Specials().Create(ctx, tx.DB(), special)
	})
	switch {
	case err == nil:
		return special.ID(), nil
	case infra.IsKind(err, infra.KindDuplicateKey):
		return uuid.Nil, ErrDuplicateSpecial
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return uuid.Nil, ErrMenuItemNotFound
	default:
		return uuid.Nil, err
	}
}

func (s *specialCommandsImpl) Update(ctx context.Context, vendorID, specialID uuid.UUID, patch availability.SpecialPatch) error {
	if patch.IsEmpty() {
		return availability.ErrEmptySpecialPatch
	}
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		special, err := lockOwnedSpecial(ctx, tx, vendorID, specialID)
		if err != nil {
			return err
		}
		if err := special.Apply(patch); err != nil {
			return err
		}
		return tx.Specials().Update(ctx, tx.DB(), special)
	})
}

func (s *specialCommandsImpl) Delete(ctx context.Context, vendorID, specialID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockOwnedSpecial(ctx, tx, vendorID, specialID); err != nil {
			return err
		}
		return tx.Specials().Delete(ctx, tx.DB(), specialID)
	})
}

func lockOwnedSpecial(ctx context.Context, tx shared.Tx, vendorID, specialID uuid.UUID) (*availability.DateSpecial, error) {
	special, owner, err := tx.Specials().FindForUpdate(ctx, tx.DB(), specialID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpecialNotFound
		}
		return nil, err
	}
	if owner != vendorID {
		return nil, ErrSpecialNotOwned
	}
	return special, nil
}
