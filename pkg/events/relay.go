package events

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/superma0035/zapdine/pkg/metrics"
	"github.com/superma0035/zapdine/pkg/types"
)

const (
	DefaultQueueSize      = 256
	DefaultPublishTimeout = 5 * time.Second
)

// Relay moves lease events from the lease manager's synchronous observer
// callback onto a publisher without blocking lease operations. Events that
// arrive while the queue is full are dropped and counted.
type Relay struct {
	pub     Publisher
	queue   chan types.LockEvent
	timeout time.Duration
	done    chan struct{}
}

func NewRelay(pub Publisher, queueSize int, timeout time.Duration) *Relay {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &Relay{
		pub:     pub,
		queue:   make(chan types.LockEvent, queueSize),
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

// Observe enqueues an event. It matches lease.Observer.
func (r *Relay) Observe(event types.LockEvent) {
	select {
	case r.queue <- event:
	default:
		metrics.EventsPublishedTotal.WithLabelValues("dropped").Inc()
		log.Warn().
			Str("event", event.Type.String()).
			Str("table_id", event.TableID).
			Msg("event queue full, dropping lease event")
	}
}

// Run publishes queued events until ctx is cancelled, then flushes what is
// left in the queue.
func (r *Relay) Run(ctx context.Context) {
	defer close(r.done)
	for {
		select {
		case <-ctx.Done():
			r.flush()
			return
		case event := <-r.queue:
			r.publish(event)
		}
	}
}

// Done is closed once Run has returned.
func (r *Relay) Done() <-chan struct{} {
	return r.done
}

func (r *Relay) flush() {
	for {
		select {
		case event := <-r.queue:
			r.publish(event)
		default:
			return
		}
	}
}

func (r *Relay) publish(event types.LockEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.pub.Publish(ctx, event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues("failure").Inc()
		log.Error().Err(err).
			Str("event", event.Type.String()).
			Str("table_id", event.TableID).
			Msg("failed to publish lease event")
		return
	}
	metrics.EventsPublishedTotal.WithLabelValues("success").Inc()
}
