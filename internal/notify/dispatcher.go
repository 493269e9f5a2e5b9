package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/OfkoloBai/Osenotify/internal/metrics"
)

// Backoff applied between delivery attempts for one notification.
const (
	defaultBackoffInitial = 4 * time.Second
	defaultBackoffMax     = 10 * time.Second
)

// Dispatcher fans accepted triggers out to a fixed pool of delivery workers
// over a bounded queue, so a burst of triggers cannot pile up goroutines or
// memory. Enqueue never blocks the ingestion path: when the queue is full
// the oldest pending notification is evicted in favor of the newest.
type Dispatcher struct {
	pusher   Pusher
	attempts int
	workers  int
	queue    chan Notification

	backoffInitial time.Duration // shortened in tests
	backoffMax     time.Duration
}

// NewDispatcher creates a Dispatcher delivering through p. attempts is the
// per-notification budget; queueSize and workers are validated by config.
func NewDispatcher(p Pusher, attempts, queueSize, workers int) *Dispatcher {
	return &Dispatcher{
		pusher:         p,
		attempts:       attempts,
		workers:        workers,
		queue:          make(chan Notification, queueSize),
		backoffInitial: defaultBackoffInitial,
		backoffMax:     defaultBackoffMax,
	}
}

// Enqueue queues n for delivery and returns immediately.
func (d *Dispatcher) Enqueue(n Notification) {
	select {
	case d.queue <- n:
		return
	default:
	}

	// Queue full: evict the oldest pending notification in favor of n.
	select {
	case <-d.queue:
		metrics.NotificationsDropped.Inc()
		slog.Warn("notify: queue full, evicted oldest pending notification",
			"queue_cap", cap(d.queue))
	default:
	}
	select {
	case d.queue <- n:
	default:
		// A concurrent producer took the freed slot; drop n rather than
		// block ingestion.
		metrics.NotificationsDropped.Inc()
		slog.Warn("notify: queue full, dropped notification", "title", n.Title)
	}
}

// Run starts the delivery workers and blocks until ctx is cancelled and all
// workers have returned. Notifications still queued at cancellation are
// abandoned.
func (d *Dispatcher) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.work(ctx)
		}()
	}
	wg.Wait()
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.queue:
			d.deliver(ctx, n)
		}
	}
}

// deliver pushes n with bounded retry. Delivery is best effort: after the
// attempt budget the notification is dropped and the failure recorded, with
// no effect on trigger state.
func (d *Dispatcher) deliver(ctx context.Context, n Notification) {
	err := Retry(ctx, d.attempts, d.backoffInitial, d.backoffMax, func() error {
		return d.pusher.Push(ctx, n)
	})
	if err != nil {
		metrics.NotificationFailures.Inc()
		slog.Error("notify: delivery failed, dropping notification",
			"title", n.Title,
			"attempts", d.attempts,
			"err", err,
		)
		return
	}
	metrics.NotificationsSent.Inc()
	slog.Info("notify: delivered", "title", n.Title)
}
