//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tiffintime-api/internal/domain/account"
	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/ptr"
	"tiffintime-api/internal/usecase/queries"
	queriesmock "tiffintime-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentQueries_Status(t *testing.T) {
	payerID := uuid.New()
	stored := func() *queries.PaymentView {
		return &queries.PaymentView{
			ID:        uuid.New(),
			UserID:    payerID,
			TranID:    "TT-1",
			Amount:    250,
			Currency:  "BDT",
			Status:    "success",
			ValID:     ptr.Of("val-1"),
			CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		}
	}

	setup := func(t *testing.T) (*queriesmock.MockPaymentReadStore, *queriesmock.MockTransactionStatusReader, queries.PaymentQueries) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPaymentReadStore(ctrl)
		gw := queriesmock.NewMockTransactionStatusReader(ctrl)
		return store, gw, queries.NewPaymentQueries(store, gw)
	}

	t.Run("payer sees stored and gateway status", func(t *testing.T) {
		store, gw, q := setup(t)
		store.EXPECT().FindByTranID(gomock.Any(), "TT-1").Return(stored(), nil)
		gw.EXPECT().TransactionStatus(gomock.Any(), "TT-1").Return("VALID", nil)

		view, err := q.Status(context.Background(), "TT-1", account.Subject{ID: payerID, Role: account.RoleStudent})

		require.NoError(t, err)
		assert.Equal(t, "success", view.Status)
		assert.Equal(t, ptr.Of("VALID"), view.GatewayStatus)
	})

	t.Run("gateway outage falls back to stored status", func(t *testing.T) {
		store, gw, q := setup(t)
		store.EXPECT().FindByTranID(gomock.Any(), "TT-1").Return(stored(), nil)
		gw.EXPECT().TransactionStatus(gomock.Any(), "TT-1").Return("", errors.New("timeout"))

		view, err := q.Status(context.Background(), "TT-1", account.Subject{ID: payerID, Role: account.RoleStudent})

		require.NoError(t, err)
		assert.Equal(t, "success", view.Status)
		assert.Nil(t, view.GatewayStatus)
	})

	t.Run("admin may look at any payment", func(t *testing.T) {
		store, gw, q := setup(t)
		store.EXPECT().FindByTranID(gomock.Any(), "TT-1").Return(stored(), nil)
		gw.EXPECT().TransactionStatus(gomock.Any(), "TT-1").Return("VALID", nil)

		_, err := q.Status(context.Background(), "TT-1", account.Subject{ID: uuid.New(), Role: account.RoleAdmin})
		assert.NoError(t, err)
	})

	t.Run("another student is refused before the gateway is asked", func(t *testing.T) {
		store, _, q := setup(t)
		store.EXPECT().FindByTranID(gomock.Any(), "TT-1").Return(stored(), nil)

		_, err := q.Status(context.Background(), "TT-1", account.Subject{ID: uuid.New(), Role: account.RoleStudent})
		assert.ErrorIs(t, err, queries.ErrPaymentAccess)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		store, _, q := setup(t)
		store.EXPECT().FindByTranID(gomock.Any(), "TT-404").
			Return(nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound))

		_, err := q.Status(context.Background(), "TT-404", account.Subject{ID: payerID, Role: account.RoleStudent})
		assert.ErrorIs(t, err, queries.ErrPaymentNotFound)
	})
}
