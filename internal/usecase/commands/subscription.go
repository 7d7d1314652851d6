package commands

import (
	"context"
	"time"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/domain/subscription"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/clock"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionResult struct {
	ID        uuid.UUID
	VendorID  uuid.UUID
	Plan      string
	StartDate time.Time
	EndDate   time.Time
}

type SubscriptionCommands interface {
	Subscribe(ctx context.Context, userID, vendorID uuid.UUID, plan string) (*SubscriptionResult, error)
	Cancel(ctx context.Context, actor account.Subject, subscriptionID uuid.UUID) error
}

type subscriptionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSubscriptionCommands(uow shared.UnitOfWork, clk clock.Clock) SubscriptionCommands {
	return &subscriptionCommandsImpl{uow: uow, clock: clk}
}

func (s *subscriptionCommandsImpl) Subscribe(ctx context.Context, userID, vendorID uuid.UUID, plan string) (*SubscriptionResult, error) {
	p, err := subscription.NewPlan(plan)
	if err != nil {
		return nil, err
	}
	if err := ensureVendor(ctx, s.uow.CommandReads(), vendorID); err != nil {
		return nil, err
	}

	sub := subscription.New(userID, vendorID, p, s.clock.Now())
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Subscriptions().Create(ctx, tx.DB(), sub)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	return &SubscriptionResult{
		ID:        sub.ID(),
		VendorID:  sub.VendorID(),
		Plan:      sub.Plan().String(),
		StartDate: sub.StartDate(),
		EndDate:   sub.EndDate(),
	}, nil
}

func (s *subscriptionCommandsImpl) Cancel(ctx context.Context, actor account.Subject, subscriptionID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sub, err := tx.Subscriptions().FindByID(ctx, tx.DB(), subscriptionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSubscriptionNotFound
			}
			return err
		}
		if err := subscription.CanCancel(sub.UserID(), sub.VendorID(), actor.ID, actor.IsAdmin()); err != nil {
			return err
		}
		err = tx.Subscriptions().Delete(ctx, tx.DB(), subscriptionID)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSubscriptionNotFound
		}
		return err
	})
}

func ensureVendor(ctx context.Context, reads shared.CommandReads, vendorID uuid.UUID) error {
	exists, err := reads.VendorExists(ctx, vendorID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrVendorNotFound
	}
	return nil
}
