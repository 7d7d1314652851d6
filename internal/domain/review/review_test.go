//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"tiffintime-api/internal/domain/review"
	"tiffintime-api/internal/pkg/errs"
	"tiffintime-api/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*review.Input)
	errIs  error
}

func baseInput() review.Input {
	return review.Input{
		VendorID:           uuid.New(),
		FoodQuality:        "excellent",
		DeliveryExperience: "on_time",
		Comment:            ptr.Of("  Loved the khichuri  "),
	}
}

func TestNewReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		now := time.Now()
		userID := uuid.New()

		r, err := review.NewReview(userID, baseInput(), now)
		require.NoError(t, err)

		assert.Equal(t, userID, r.UserID())
		assert.Equal(t, review.FoodExcellent, r.FoodQuality())
		assert.Equal(t, review.DeliveryOnTime, r.DeliveryExperience())
		assert.Equal(t, "Loved the khichuri", r.Comment().String())
		assert.False(t, r.IsReplied())
		assert.Equal(t, now, r.CreatedAt())
	})

	runCases(t, []testCase{
		{
			name:   "unknown food quality",
			mutate: func(in *review.Input) { in.FoodQuality = "superb" },
			errIs:  review.ErrInvalidFoodQuality,
		},
		{
			name:   "unknown delivery experience",
			mutate: func(in *review.Input) { in.DeliveryExperience = "early" },
			errIs:  review.ErrInvalidDeliveryExperience,
		},
		{
			name:   "comment over the limit",
			mutate: func(in *review.Input) { in.Comment = ptr.Of(strings.Repeat("a", review.MaxCommentLength+1)) },
			errIs:  review.ErrCommentTooLong,
		},
		{
			name:   "comment at the limit",
			mutate: func(in *review.Input) { in.Comment = ptr.Of(strings.Repeat("a", review.MaxCommentLength)) },
		},
		{
			name:   "no comment",
			mutate: func(in *review.Input) { in.Comment = nil },
		},
	})
}

func TestAttachReply(t *testing.T) {
	vendorID := uuid.New()
	stored := func(reply *string) *review.Review {
		return review.ReconstructReview(7, uuid.New(), vendorID, "good", "late", nil, reply, time.Now())
	}

	t.Run("first reply is stored trimmed", func(t *testing.T) {
		r := stored(nil)
		require.NoError(t, r.AttachReply(vendorID, "  Thanks, we'll be quicker!  "))
		assert.True(t, r.IsReplied())
		assert.Equal(t, "Thanks, we'll be quicker!", r.Reply().String())
	})

	t.Run("second reply conflicts", func(t *testing.T) {
		err := stored(ptr.Of("earlier")).AttachReply(vendorID, "again")
		assert.ErrorIs(t, err, review.ErrAlreadyReplied)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("other vendor is forbidden", func(t *testing.T) {
		err := stored(nil).AttachReply(uuid.New(), "hi")
		assert.ErrorIs(t, err, review.ErrNotVendorReview)
	})

	t.Run("blank reply is rejected", func(t *testing.T) {
		err := stored(nil).AttachReply(vendorID, "   ")
		assert.ErrorIs(t, err, review.ErrEmptyReply)
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Anonymous", review.DisplayName(nil))
	assert.Equal(t, "Anonymous", review.DisplayName(ptr.Of(" ")))
	assert.Equal(t, "Rafi", review.DisplayName(ptr.Of("Rafi")))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			tc.mutate(&in)

			actual, err := review.NewReview(uuid.New(), in, time.Now())
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
