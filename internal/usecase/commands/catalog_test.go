//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tiffintime-api/internal/domain/availability"
	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/domain/rating"
	"tiffintime-api/internal/domain/vendor"
	"tiffintime-api/internal/infra"
	sqlc "tiffintime-api/internal/infra/sqlc/generated"
	"tiffintime-api/internal/pkg/ptr"
	"tiffintime-api/internal/usecase/commands"
	"tiffintime-api/internal/usecase/shared"
	sharedmock "tiffintime-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWeeklyCommands_Set(t *testing.T) {
	vendorID, itemID := uuid.New(), uuid.New()
	ownItem := &shared.MenuItemSnapshot{ID: itemID, VendorID: vendorID, Name: "Beef Curry", Price: 150}

	setup := func(t *testing.T) (*txHarness, *sharedmock.MockWeeklyRuleRepository, commands.WeeklyCommands) {
		h := newTxHarness(t)
		rules := sharedmock.NewMockWeeklyRuleRepository(h.ctrl)
		h.tx.EXPECT().WeeklyRules().Return(rules).AnyTimes()
		return h, rules, commands.NewWeeklyCommands(h.uow)
	}

	t.Run("available upserts the rule", func(t *testing.T) {
		h, rules, cmds := setup(t)
		h.reads.EXPECT().MenuItemByID(gomock.Any(), itemID).Return(ownItem, nil)
		want := &shared.WeeklyRuleSnapshot{ID: uuid.New(), MenuItemID: itemID, DayOfWeek: 3}
		rules.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, r *availability.WeeklyRule) (*shared.WeeklyRuleSnapshot, error) {
				assert.Equal(t, availability.Weekday(3), r.Weekday())
				return want, nil
			})

		got, err := cmds.Set(context.Background(), vendorID, commands.SetWeeklyInput{MenuItemID: itemID, DayOfWeek: 3, IsAvailable: true})

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unavailable deletes the rule", func(t *testing.T) {
		h, rules, cmds := setup(t)
		h.reads.EXPECT().MenuItemByID(gomock.Any(), itemID).Return(ownItem, nil)
		rules.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		got, err := cmds.Set(context.Background(), vendorID, commands.SetWeeklyInput{MenuItemID: itemID, DayOfWeek: 0})

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("item of another vendor", func(t *testing.T) {
		h, _, cmds := setup(t)
		h.reads.EXPECT().MenuItemByID(gomock.Any(), itemID).
			Return(&shared.MenuItemSnapshot{ID: itemID, VendorID: uuid.New()}, nil)

		_, err := cmds.Set(context.Background(), vendorID, commands.SetWeeklyInput{MenuItemID: itemID, DayOfWeek: 1, IsAvailable: true})
		assert.ErrorIs(t, err, menu.ErrNotOwner)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		_, _, cmds := setup(t)
		_, err := cmds.Set(context.Background(), vendorID, commands.SetWeeklyInput{MenuItemID: itemID, DayOfWeek: 7, IsAvailable: true})
		assert.ErrorIs(t, err, availability.ErrInvalidWeekday)
	})

	t.Run("unknown item", func(t *testing.T) {
		h, _, cmds := setup(t)
		h.reads.EXPECT().MenuItemByID(gomock.Any(), itemID).Return(nil, notFound("menu item"))

		_, err := cmds.Set(context.Background(), vendorID, commands.SetWeeklyInput{MenuItemID: itemID, DayOfWeek: 1, IsAvailable: true})
		assert.ErrorIs(t, err, commands.ErrMenuItemNotFound)
	})
}

func TestVendorCommands_UpdateProfile(t *testing.T) {
	vendorID := uuid.New()
	profile := func() *vendor.Profile {
		return &vendor.Profile{ID: vendorID, IsOpen: true, Delivery: vendor.DeliveryWindow{Min: 20, Max: 40}}
	}

	setup := func(t *testing.T) (*sharedmock.MockVendorRepository, commands.VendorCommands) {
		h := newTxHarness(t)
		vendors := sharedmock.NewMockVendorRepository(h.ctrl)
		h.tx.EXPECT().Vendors().Return(vendors).AnyTimes()
		return vendors, commands.NewVendorCommands(h.uow)
	}

	t.Run("closes the storefront with an own image", func(t *testing.T) {
		vendors, cmds := setup(t)
		image := &menu.ImageRef{Bucket: "vendor-images", Path: vendorID.String() + "/front.png"}
		vendors.EXPECT().FindProfileForUpdate(gomock.Any(), gomock.Any(), vendorID).Return(profile(), nil)
		vendors.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, p *vendor.Profile) error {
				assert.False(t, p.IsOpen)
				assert.Equal(t, image, p.Image)
				return nil
			})

		err := cmds.UpdateProfile(context.Background(), vendorID, vendor.ProfilePatch{IsOpen: ptr.Of(false), Image: image})
		assert.NoError(t, err)
	})

	t.Run("image from another vendor's folder", func(t *testing.T) {
		_, cmds := setup(t)
		image := &menu.ImageRef{Bucket: "vendor-images", Path: uuid.New().String() + "/front.png"}

		err := cmds.UpdateProfile(context.Background(), vendorID, vendor.ProfilePatch{Image: image})
		assert.ErrorIs(t, err, commands.ErrForeignImage)
	})

	t.Run("inverted delivery window writes nothing", func(t *testing.T) {
		vendors, cmds := setup(t)
		vendors.EXPECT().FindProfileForUpdate(gomock.Any(), gomock.Any(), vendorID).Return(profile(), nil)

		err := cmds.UpdateProfile(context.Background(), vendorID, vendor.ProfilePatch{DeliveryMin: ptr.Of(int32(50))})
		assert.ErrorIs(t, err, vendor.ErrInvalidDeliveryWindow)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		vendors, cmds := setup(t)
		vendors.EXPECT().FindProfileForUpdate(gomock.Any(), gomock.Any(), vendorID).Return(nil, notFound("vendor"))

		err := cmds.UpdateProfile(context.Background(), vendorID, vendor.ProfilePatch{IsOpen: ptr.Of(true)})
		assert.ErrorIs(t, err, commands.ErrVendorNotFound)
	})
}

func TestRatingCommands_Rate(t *testing.T) {
	userID, vendorID := uuid.New(), uuid.New()

	setup := func(t *testing.T) (*txHarness, *sharedmock.MockRatingRepository, commands.RatingCommands) {
		h := newTxHarness(t)
		ratings := sharedmock.NewMockRatingRepository(h.ctrl)
		h.tx.EXPECT().Ratings().Return(ratings).AnyTimes()
		return h, ratings, commands.NewRatingCommands(h.uow)
	}

	t.Run("upserts one rating per user and vendor", func(t *testing.T) {
		h, ratings, cmds := setup(t)
		h.reads.EXPECT().VendorExists(gomock.Any(), vendorID).Return(true, nil)
		ratings.EXPECT().Upsert(gomock.Any(), gomock.Any(), userID, vendorID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ uuid.UUID, v rating.Value) error {
				assert.Equal(t, 4, v.Int())
				return nil
			})

		got, err := cmds.Rate(context.Background(), userID, vendorID, 4)

		require.NoError(t, err)
		assert.Equal(t, &commands.RatingResult{VendorID: vendorID, Rating: 4}, got)
	})

	t.Run("out of range never reaches the store", func(t *testing.T) {
		_, _, cmds := setup(t)
		_, err := cmds.Rate(context.Background(), userID, vendorID, 6)
		assert.ErrorIs(t, err, rating.ErrInvalidRating)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		h, _, cmds := setup(t)
		h.reads.EXPECT().VendorExists(gomock.Any(), vendorID).Return(false, nil)

		_, err := cmds.Rate(context.Background(), userID, vendorID, 3)
		assert.ErrorIs(t, err, commands.ErrVendorNotFound)
	})

	t.Run("vendor removed concurrently", func(t *testing.T) {
		h, ratings, cmds := setup(t)
		h.reads.EXPECT().VendorExists(gomock.Any(), vendorID).Return(true, nil)
		ratings.EXPECT().Upsert(gomock.Any(), gomock.Any(), userID, vendorID, gomock.Any()).
			Return(infra.WrapRepoErr("failed to upsert rating", nil, infra.KindForeignKeyViolated))

		_, err := cmds.Rate(context.Background(), userID, vendorID, 3)
		assert.ErrorIs(t, err, commands.ErrVendorNotFound)
	})
}
