package commands

import (
	"context"
	"time"

	"tiffintime-api/internal/domain/review"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/clock"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewResult struct {
	ReviewID           int64
	VendorID           uuid.UUID
	FoodQuality        string
	DeliveryExperience string
	Comment            *string
	CreatedAt          time.Time
}

type ReviewCommands interface {
	Create(ctx context.Context, userID uuid.UUID, in review.Input) (*CreateReviewResult, error)
	Reply(ctx context.Context, vendorID uuid.UUID, reviewID int64, text string) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (r *reviewCommandsImpl) Create(ctx context.Context, userID uuid.UUID, in review.Input) (*CreateReviewResult, error) {
	rev, err := review.NewReview(userID, in, r.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := ensureVendor(ctx, r.uow.CommandReads(), in.VendorID); err != nil {
		return nil, err
	}

	var id int64
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	return &CreateReviewResult{
		ReviewID:           id,
		VendorID:           rev.VendorID(),
		FoodQuality:        string(rev.FoodQuality()),
		DeliveryExperience: string(rev.DeliveryExperience()),
		Comment:            rev.Comment().Ptr(),
		CreatedAt:          rev.CreatedAt(),
	}, nil
}

func (r *reviewCommandsImpl) Reply(ctx context.Context, vendorID uuid.UUID, reviewID int64, text string) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindForUpdate(ctx, tx.DB(), reviewID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReviewNotFound
			}
			return err
		}
		if err := rev.AttachReply(vendorID, text); err != nil {
			return err
		}
		return tx.Reviews().SaveReply(ctx, tx.DB(), rev)
	})
}
