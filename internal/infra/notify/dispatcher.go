package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tiffintime-api/internal/pkg/config"
	"tiffintime-api/internal/pkg/metrics"
	"tiffintime-api/internal/usecase/shared"
)

type Sender interface {
	SendDeliveryNotice(ctx context.Context, n shared.OrderNoticeSnapshot) error
}

// Dispatcher delivers order notices on a single background worker.
// Notices are at-most-once: a full queue drops, a failed send is logged.
type Dispatcher struct {
	sender       Sender
	queue        chan shared.OrderNoticeSnapshot
	drainTimeout time.Duration
	sendTimeout  time.Duration

	mu      sync.RWMutex
	closed  bool
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

func NewDispatcher(sender Sender, cfg config.Config) *Dispatcher {
	size := cfg.Notify.QueueSize
	if size <= 0 {
		size = 1
	}
	sendTimeout := cfg.Mail.Timeout
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &Dispatcher{
		sender:       sender,
		queue:        make(chan shared.OrderNoticeSnapshot, size),
		drainTimeout: cfg.Notify.DrainTimeout,
		sendTimeout:  sendTimeout,
		done:         make(chan struct{}),
	}
}

// Enqueue never blocks. It reports whether the notice was accepted.
func (d *Dispatcher) Enqueue(n shared.OrderNoticeSnapshot) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		slog.Warn("Notifier stopped, dropping delivery notice", "order_id", n.OrderID.String())
		metrics.RecordNotification(metrics.OutcomeDropped)
		return false
	}

	select {
	case d.queue <- n:
		metrics.RecordNotification(metrics.OutcomeEnqueued)
		return true
	default:
		slog.Warn("Notifier queue full, dropping delivery notice", "order_id", n.OrderID.String())
		metrics.RecordNotification(metrics.OutcomeDropped)
		return false
	}
}

func (d *Dispatcher) Start(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return nil
	}
	d.started = true

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	go d.run(ctx)
	slog.Info("Notifier started", "queue_size", cap(d.queue))
	return nil
}

// Stop closes the queue and waits for the worker to drain it, bounded by the
// drain timeout and ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	timer := time.NewTimer(d.drainTimeout)
	defer timer.Stop()

	select {
	case <-d.done:
	case <-timer.C:
		slog.Warn("Notifier drain timed out", "pending", len(d.queue))
	case <-ctx.Done():
		slog.Warn("Notifier drain interrupted", "pending", len(d.queue))
	}
	d.cancel()
	return nil
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)
	for n := range d.queue {
		if ctx.Err() != nil {
			metrics.RecordNotification(metrics.OutcomeDropped)
			continue
		}
		d.deliver(ctx, n)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n shared.OrderNoticeSnapshot) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.sender.SendDeliveryNotice(sendCtx, n); err != nil {
		slog.Warn("Failed to send delivery notice",
			"order_id", n.OrderID.String(),
			"error", err.Error(),
		)
		metrics.RecordNotification(metrics.OutcomeFailed)
		return
	}
	slog.Info("Delivery notice sent", "order_id", n.OrderID.String())
	metrics.RecordNotification(metrics.OutcomeSent)
}
