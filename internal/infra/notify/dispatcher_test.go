//go:build unit

package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tiffintime-api/internal/infra/notify"
	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu     sync.Mutex
	sent   []uuid.UUID
	failOn map[uuid.UUID]bool
}

func (s *recordingSender) SendDeliveryNotice(_ context.Context, n shared.OrderNoticeSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn[n.OrderID] {
		return errors.New("smtp down")
	}
	s.sent = append(s.sent, n.OrderID)
	return nil
}

func (s *recordingSender) Sent() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.sent...)
}

func newDispatcher(sender notify.Sender, queueSize int) *notify.Dispatcher {
	cfg := config.NewTestConfig()
	cfg.Notify.QueueSize = queueSize
	cfg.Notify.DrainTimeout = 2 * time.Second
	return notify.NewDispatcher(sender, cfg)
}

func noticeFor(id uuid.UUID) shared.OrderNoticeSnapshot {
	return shared.OrderNoticeSnapshot{OrderID: id, UserEmail: "rafi@campus.edu"}
}

func TestDispatcher_DeliversQueuedNotices(t *testing.T) {
	sender := &recordingSender{}
	d := newDispatcher(sender, 4)
	require.NoError(t, d.Start(context.Background()))

	first, second := uuid.New(), uuid.New()
	assert.True(t, d.Enqueue(noticeFor(first)))
	assert.True(t, d.Enqueue(noticeFor(second)))

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, []uuid.UUID{first, second}, sender.Sent())
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sender := &recordingSender{}
	d := newDispatcher(sender, 1)

	assert.True(t, d.Enqueue(noticeFor(uuid.New())))
	assert.False(t, d.Enqueue(noticeFor(uuid.New())), "second notice must be dropped without blocking")
}

func TestDispatcher_RejectsAfterStop(t *testing.T) {
	d := newDispatcher(&recordingSender{}, 2)
	require.NoError(t, d.Start(context.Background()))
	require.NoError(t, d.Stop(context.Background()))

	assert.False(t, d.Enqueue(noticeFor(uuid.New())))
	assert.NoError(t, d.Stop(context.Background()), "second stop is a no-op")
}

func TestDispatcher_FailedSendDoesNotStopWorker(t *testing.T) {
	bad, good := uuid.New(), uuid.New()
	sender := &recordingSender{failOn: map[uuid.UUID]bool{bad: true}}
	d := newDispatcher(sender, 4)
	require.NoError(t, d.Start(context.Background()))

	d.Enqueue(noticeFor(bad))
	d.Enqueue(noticeFor(good))

	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, []uuid.UUID{good}, sender.Sent())
}
