//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tiffintime-api/internal/infra"
	"tiffintime-api/internal/pkg/clock"
	"tiffintime-api/internal/usecase/shared"
	sharedmock "tiffintime-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txHarness runs every Within callback against one mocked transaction.
type txHarness struct {
	ctrl  *gomock.Controller
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	reads *sharedmock.MockCommandReads
}

func newTxHarness(t *testing.T) *txHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &txHarness{
		ctrl:  ctrl,
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		reads: sharedmock.NewMockCommandReads(ctrl),
	}

	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	return h
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func fixedClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC))
}
