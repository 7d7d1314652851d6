package repository

import (
	"context"

	"tiffintime-api/internal/domain/review"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/pgconv"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (int64, error)
	GetReviewForUpdate(ctx context.Context, db sqlc.DBTX, reviewID int64) (sqlc.Review, error)
	SetReviewReply(ctx context.Context, db sqlc.DBTX, arg sqlc.SetReviewReplyParams) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (int64, error) {
	id, err := r.queries.CreateReview(ctx, tx, sqlc.CreateReviewParams{
		UserID:             rev.UserID(),
		VendorID:           rev.VendorID(),
		FoodQuality:        string(rev.FoodQuality()),
		DeliveryExperience: string(rev.DeliveryExperience()),
		Comment:            pgconv.StringPtrToPgtype(rev.Comment().Ptr()),
		CreatedAt:          pgconv.TimeToPgtype(rev.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*review.Review, error) {
	row, err := r.queries.GetReviewForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock review", err)
	}
	return review.ReconstructReview(
		row.ReviewID,
		row.UserID,
		row.VendorID,
		row.FoodQuality,
		row.DeliveryExperience,
		pgconv.StringPtrFromPgtype(row.Comment),
		pgconv.StringPtrFromPgtype(row.Reply),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

// SaveReply writes the reply only while the row is still unreplied.
func (r *ReviewRepository) SaveReply(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	reply := rev.Reply()
	if reply == nil {
		return infra.WrapRepoErr("review has no reply to save", nil)
	}
	n, err := r.queries.SetReviewReply(ctx, tx, sqlc.SetReviewReplyParams{
		ReviewID: rev.ID(),
		Reply:    pgconv.StringToPgtype(reply.String()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save review reply", err)
	}
	if n == 0 {
		return review.ErrAlreadyReplied
	}
	return nil
}
