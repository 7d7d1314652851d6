//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tiffintime-api/internal/domain/review"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/ptr"
	"tiffintime-api/internal/usecase/commands"
	sharedmock "tiffintime-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewCommands_Create(t *testing.T) {
	vendorID := uuid.New()
	in := review.Input{
		VendorID:           vendorID,
		FoodQuality:        "good",
		DeliveryExperience: "on_time",
		Comment:            ptr.Of("Rice was warm"),
	}

	t.Run("stores and echoes the review", func(t *testing.T) {
		h := newTxHarness(t)
		reviews := sharedmock.NewMockReviewRepository(h.ctrl)
		h.tx.EXPECT().Reviews().Return(reviews).AnyTimes()
		cmds := commands.NewReviewCommands(h.uow, fixedClock())

		h.reads.EXPECT().VendorExists(gomock.Any(), vendorID).Return(true, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(42), nil)

		result, err := cmds.Create(context.Background(), uuid.New(), in)

		require.NoError(t, err)
		assert.Equal(t, int64(42), result.ReviewID)
		assert.Equal(t, "good", result.FoodQuality)
		assert.Equal(t, "on_time", result.DeliveryExperience)
		assert.Equal(t, ptr.Of("Rice was warm"), result.Comment)
	})

	t.Run("vendor removed concurrently", func(t *testing.T) {
		h := newTxHarness(t)
		reviews := sharedmock.NewMockReviewRepository(h.ctrl)
		h.tx.EXPECT().Reviews().Return(reviews).AnyTimes()
		cmds := commands.NewReviewCommands(h.uow, fixedClock())

		h.reads.EXPECT().VendorExists(gomock.Any(), vendorID).Return(true, nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to create review", nil, infra.KindForeignKeyViolated))

		_, err := cmds.Create(context.Background(), uuid.New(), in)
		assert.ErrorIs(t, err, commands.ErrVendorNotFound)
	})

	t.Run("invalid rating words never reach the store", func(t *testing.T) {
		h := newTxHarness(t)
		cmds := commands.NewReviewCommands(h.uow, fixedClock())

		bad := in
		bad.FoodQuality = "divine"
		_, err := cmds.Create(context.Background(), uuid.New(), bad)
		assert.ErrorIs(t, err, review.ErrInvalidFoodQuality)
	})
}

func TestReviewCommands_Reply(t *testing.T) {
	vendorID := uuid.New()
	createdAt := time.Date(2025, 3, 8, 14, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*sharedmock.MockReviewRepository, commands.ReviewCommands) {
		h := newTxHarness(t)
		reviews := sharedmock.NewMockReviewRepository(h.ctrl)
		h.tx.EXPECT().Reviews().Return(reviews).AnyTimes()
		return reviews, commands.NewReviewCommands(h.uow, fixedClock())
	}

	t.Run("first reply is saved", func(t *testing.T) {
		reviews, cmds := setup(t)
		stored := review.ReconstructReview(7, uuid.New(), vendorID, "average", "late", nil, nil, createdAt)
		reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(7)).Return(stored, nil)
		reviews.EXPECT().SaveReply(gomock.Any(), gomock.Any(), stored).DoAndReturn(
			func(_ context.Context, _ any, rev *review.Review) error {
				require.NotNil(t, rev.Reply())
				assert.Equal(t, "Sorry, we'll be quicker", rev.Reply().String())
				return nil
			})

		err := cmds.Reply(context.Background(), vendorID, 7, "  Sorry, we'll be quicker ")
		assert.NoError(t, err)
	})

	t.Run("second reply is rejected", func(t *testing.T) {
		reviews, cmds := setup(t)
		stored := review.ReconstructReview(8, uuid.New(), vendorID, "good", "on_time", nil, ptr.Of("Thanks!"), createdAt)
		reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(8)).Return(stored, nil)

		err := cmds.Reply(context.Background(), vendorID, 8, "Thanks again")
		assert.ErrorIs(t, err, review.ErrAlreadyReplied)
	})

	t.Run("another vendor's review", func(t *testing.T) {
		reviews, cmds := setup(t)
		stored := review.ReconstructReview(9, uuid.New(), uuid.New(), "good", "on_time", nil, nil, createdAt)
		reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(9)).Return(stored, nil)

		err := cmds.Reply(context.Background(), vendorID, 9, "Hello")
		assert.ErrorIs(t, err, review.ErrNotVendorReview)
	})

	t.Run("unknown review", func(t *testing.T) {
		reviews, cmds := setup(t)
		reviews.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(10)).Return(nil, notFound("review"))

		err := cmds.Reply(context.Background(), vendorID, 10, "Hello")
		assert.ErrorIs(t, err, commands.ErrReviewNotFound)
	})
}
