//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"tiffintime-api/internal/domain/subscription"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		plan    string
		wantEnd time.Time
	}{
		{plan: "weekly", wantEnd: now.AddDate(0, 0, 7)},
		{plan: "monthly", wantEnd: now.AddDate(0, 0, 30)},
	}
	for _, tc := range testCases {
		t.Run(tc.plan, func(t *testing.T) {
			plan, err := subscription.NewPlan(tc.plan)
			require.NoError(t, err)

			s := subscription.New(uuid.New(), uuid.New(), plan, now)
			assert.Equal(t, now, s.StartDate())
			assert.Equal(t, tc.wantEnd, s.EndDate())
		})
	}

	t.Run("unknown plan", func(t *testing.T) {
		_, err := subscription.NewPlan("yearly")
		assert.ErrorIs(t, err, subscription.ErrInvalidPlan)
	})
}

func TestRemainingDays(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, subscription.RemainingDays(now.AddDate(0, 0, 7), now))
	assert.Equal(t, 6, subscription.RemainingDays(now.AddDate(0, 0, 7).Add(-time.Minute), now))
	assert.Equal(t, 0, subscription.RemainingDays(now.Add(time.Hour), now))
	assert.Equal(t, 0, subscription.RemainingDays(now.AddDate(0, 0, -2), now))
}

func TestCanCancel(t *testing.T) {
	student, vendor, stranger := uuid.New(), uuid.New(), uuid.New()

	assert.NoError(t, subscription.CanCancel(student, vendor, student, false))
	assert.NoError(t, subscription.CanCancel(student, vendor, vendor, false))
	assert.NoError(t, subscription.CanCancel(student, vendor, uuid.Nil, true))
	assert.ErrorIs(t, subscription.CanCancel(student, vendor, stranger, false), subscription.ErrNotSubscriber)
}
