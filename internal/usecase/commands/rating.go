package commands

import (
	"context"

	"tiffintime-api/internal/domain/rating"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RatingResult struct {
	VendorID uuid.UUID
	Rating   int
}

type RatingCommands interface {
	// Rate keeps one rating per (user, vendor); a second call overwrites it.
	Rate(ctx context.Context, userID, vendorID uuid.UUID, value int) (*RatingResult, error)
}

type ratingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRatingCommands(uow shared.UnitOfWork) RatingCommands {
	return &ratingCommandsImpl{uow: uow}
}

func (r *ratingCommandsImpl) Rate(ctx context.Context, userID, vendorID uuid.UUID, value int) (*RatingResult, error) {
	v, err := rating.NewValue(value)
	if err != nil {
		return nil, err
	}
	if err := ensureVendor(ctx, r.uow.CommandReads(), vendorID); err != nil {
		return nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Ratings().Upsert(ctx, tx.DB(), userID, vendorID, v)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &RatingResult{VendorID: vendorID, Rating: v.Int()}, nil
}
