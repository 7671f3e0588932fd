package speech

import (
	"context"
	"log/slog"
	"sync"
)

// Queue is an ordered output queue drained by a single delivery worker, so
// the turn controller never blocks on playback. A priority delivery flushes
// queued-but-undelivered items; the item currently being delivered always
// finishes. Delivery failures are logged and never propagate.
type Queue struct {
	engine Engine
	logger *slog.Logger

	mu         sync.Mutex
	cond       *sync.Cond
	pending    []string
	delivering bool
	closed     bool
}

// NewQueue creates a Queue for the given engine. The caller runs the worker
// via Run, typically in a goroutine or errgroup.
func NewQueue(engine Engine) *Queue {
	q := &Queue{engine: engine, logger: slog.Default()}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Deliver enqueues text for delivery. priority discards every pending item
// that has not started delivering so the message is heard next.
func (q *Queue) Deliver(text string, priority bool) {
	if text == "" {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	if priority {
		q.pending = q.pending[:0]
	}
	q.pending = append(q.pending, text)
	q.cond.Broadcast()
}

// Run drains the queue until Close is called and the backlog is empty, or
// ctx is cancelled. Exactly one Run per Queue.
func (q *Queue) Run(ctx context.Context) {
	// cond.Wait does not observe ctx; wake the worker on cancellation.
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.cond.Broadcast()
		q.mu.Unlock()
	})
	defer stop()

	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed && ctx.Err() == nil {
			q.cond.Wait()
		}
		if ctx.Err() != nil || (q.closed && len(q.pending) == 0) {
			q.pending = nil
			q.cond.Broadcast()
			q.mu.Unlock()
			return
		}
		text := q.pending[0]
		q.pending = q.pending[1:]
		q.delivering = true
		q.mu.Unlock()

		if err := q.engine.Say(ctx, text); err != nil {
			q.logger.Warn("delivery failed", "error", err)
		}

		q.mu.Lock()
		q.delivering = false
		q.cond.Broadcast()
		q.mu.Unlock()
	}
}

// Wait blocks until every queued item has been delivered.
func (q *Queue) Wait() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.pending) > 0 || q.delivering {
		q.cond.Wait()
	}
}

// Close stops accepting new items; the worker exits once the backlog is
// drained. The in-flight item, if any, completes.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
}
