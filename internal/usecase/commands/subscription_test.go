//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/domain/subscription"
	"tiffintime-api/internal/usecase/commands"
	sharedmock "tiffintime-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionCommands_Subscribe(t *testing.T) {
	h := newTxHarness(t)
	subs := sharedmock.NewMockSubscriptionRepository(h.ctrl)
	h.tx.EXPECT().Subscriptions().Return(subs).AnyTimes()
	clk := fixedClock()
	cmds := commands.NewSubscriptionCommands(h.uow, clk)

	userID, vendorID := uuid.New(), uuid.New()
	ctx := context.Background()

	t.Run("weekly plan runs seven days", func(t *testing.T) {
		h.reads.EXPECT().VendorExists(ctx, vendorID).Return(true, nil)
		subs.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := cmds.Subscribe(ctx, userID, vendorID, "weekly")

		require.NoError(t, err)
		assert.Equal(t, "weekly", result.Plan)
		assert.Equal(t, clk.Now(), result.StartDate)
		assert.Equal(t, clk.Now().Add(7*24*time.Hour), result.EndDate)
	})

	t.Run("unknown plan", func(t *testing.T) {
		_, err := cmds.Subscribe(ctx, userID, vendorID, "yearly")
		assert.ErrorIs(t, err, subscription.ErrInvalidPlan)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		h.reads.EXPECT().VendorExists(ctx, vendorID).Return(false, nil)
		_, err := cmds.Subscribe(ctx, userID, vendorID, "monthly")
		assert.ErrorIs(t, err, commands.ErrVendorNotFound)
	})
}

func TestSubscriptionCommands_Cancel(t *testing.T) {
	subscriberID, vendorID := uuid.New(), uuid.New()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	stored := subscription.Reconstruct(uuid.New(), subscriberID, vendorID, subscription.PlanMonthly, start, start.AddDate(0, 0, 30))

	tests := []struct {
		name    string
		actor   account.Subject
		wantErr error
	}{
		{name: "subscriber", actor: account.Subject{ID: subscriberID, Role: account.RoleStudent}},
		{name: "vendor", actor: account.Subject{ID: vendorID, Role: account.RoleVendor}},
		{name: "admin", actor: account.Subject{ID: uuid.New(), Role: account.RoleAdmin}},
		{name: "another student", actor: account.Subject{ID: uuid.New(), Role: account.RoleStudent}, wantErr: subscription.ErrNotSubscriber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTxHarness(t)
			subs := sharedmock.NewMockSubscriptionRepository(h.ctrl)
			h.tx.EXPECT().Subscriptions().Return(subs).AnyTimes()
			cmds := commands.NewSubscriptionCommands(h.uow, fixedClock())

			subs.EXPECT().FindByID(gomock.Any(), gomock.Any(), stored.ID()).Return(stored, nil)
			if tt.wantErr == nil {
				subs.EXPECT().Delete(gomock.Any(), gomock.Any(), stored.ID()).Return(nil)
			}

			err := cmds.Cancel(context.Background(), tt.actor, stored.ID())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("unknown subscription", func(t *testing.T) {
		h := newTxHarness(t)
		subs := sharedmock.NewMockSubscriptionRepository(h.ctrl)
		h.tx.EXPECT().Subscriptions().Return(subs).AnyTimes()
		cmds := commands.NewSubscriptionCommands(h.uow, fixedClock())

		id := uuid.New()
		subs.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFound("subscription"))

		err := cmds.Cancel(context.Background(), account.Subject{ID: subscriberID, Role: account.RoleStudent}, id)
		assert.ErrorIs(t, err, commands.ErrSubscriptionNotFound)
	})
}
