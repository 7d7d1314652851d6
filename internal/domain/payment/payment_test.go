//go:build unit

package payment_test

import (
	"strings"
	"testing"
	"time"

	"tiffintime-api/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPending(t *testing.T) {
	now := time.Now()
	orderID := uuid.New()

	t.Run("dedupes orders and issues a prefixed tran id", func(t *testing.T) {
		p, err := payment.NewPending(uuid.New(), 136.499, "BDT", []uuid.UUID{orderID, orderID}, now)
		require.NoError(t, err)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, []uuid.UUID{orderID}, p.OrderIDs())
		assert.Equal(t, 136.50, p.Amount())
		assert.True(t, strings.HasPrefix(p.TranID(), "TT-"))
	})

	t.Run("rejects empty orders and non-positive amounts", func(t *testing.T) {
		_, err := payment.NewPending(uuid.New(), 10, "BDT", nil, now)
		assert.ErrorIs(t, err, payment.ErrNoOrders)

		_, err = payment.NewPending(uuid.New(), 0, "BDT", []uuid.UUID{orderID}, now)
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	})
}

func TestTransition(t *testing.T) {
	testCases := []struct {
		name        string
		from, to    payment.Status
		wantChanged bool
		wantErr     error
	}{
		{name: "pending to success", from: payment.StatusPending, to: payment.StatusSuccess, wantChanged: true},
		{name: "pending to failed", from: payment.StatusPending, to: payment.StatusFailed, wantChanged: true},
		{name: "pending to cancelled", from: payment.StatusPending, to: payment.StatusCancelled, wantChanged: true},
		{name: "repeated success is a no-op", from: payment.StatusSuccess, to: payment.StatusSuccess},
		{name: "success to failed is rejected", from: payment.StatusSuccess, to: payment.StatusFailed, wantErr: payment.ErrInvalidTransition},
		{name: "failed to success is rejected", from: payment.StatusFailed, to: payment.StatusSuccess, wantErr: payment.ErrInvalidTransition},
		{name: "final back to pending is rejected", from: payment.StatusCancelled, to: payment.StatusPending, wantErr: payment.ErrInvalidTransition},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := payment.ReconstructPayment(uuid.New(), uuid.New(), "TT-x", 10, "BDT", tc.from, time.Now())

			changed, err := p.MoveTo(tc.to)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.from, p.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, changed)
			assert.Equal(t, tc.to, p.Status())
		})
	}
}

func TestStatusFromValidation(t *testing.T) {
	assert.Equal(t, payment.StatusSuccess, payment.StatusFromValidation("VALID"))
	assert.Equal(t, payment.StatusSuccess, payment.StatusFromValidation("validated"))
	assert.Equal(t, payment.StatusCancelled, payment.StatusFromValidation("CANCELLED"))
	assert.Equal(t, payment.StatusFailed, payment.StatusFromValidation("INVALID_TRANSACTION"))
	assert.Equal(t, payment.StatusFailed, payment.StatusFromValidation(""))
}

func TestEnsureVisibleTo(t *testing.T) {
	owner := uuid.New()
	p := payment.ReconstructPayment(uuid.New(), owner, "TT-x", 10, "BDT", payment.StatusPending, time.Now())

	assert.NoError(t, p.EnsureVisibleTo(owner, false))
	assert.NoError(t, p.EnsureVisibleTo(uuid.Nil, true))
	assert.ErrorIs(t, p.EnsureVisibleTo(uuid.New(), false), payment.ErrNotPayer)
}
