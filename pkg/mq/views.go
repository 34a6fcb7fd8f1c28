package mq

import (
	"context"
	"time"
)

// Producer is a capability-restricted view over a shared Queue that exposes
// only enqueue operations. It holds a non-owning reference and must not
// outlive the queue.
type Producer[T any] struct {
	q *Queue[T]
}

// NewProducer creates a producer view over q.
func NewProducer[T any](q *Queue[T]) *Producer[T] {
	return &Producer[T]{q: q}
}

// Enqueue inserts msg, blocking while the queue is full.
func (p *Producer[T]) Enqueue(ctx context.Context, msg T) (bool, error) {
	return p.q.Enqueue(ctx, msg)
}

// TryEnqueue inserts msg without blocking.
func (p *Producer[T]) TryEnqueue(msg T) bool {
	return p.q.TryEnqueue(msg)
}

// Receiver is a capability-restricted view over a shared Queue that exposes
// only conditional dequeue operations.
type Receiver[T any] struct {
	q *Queue[T]
}

// NewReceiver creates a receiver view over q.
func NewReceiver[T any](q *Queue[T]) *Receiver[T] {
	return &Receiver[T]{q: q}
}

// DequeueIf blocks until an element is available and removes it only if pred
// accepts it.
func (r *Receiver[T]) DequeueIf(ctx context.Context, pred Predicate[T]) (T, bool, error) {
	return r.q.DequeueIf(ctx, pred)
}

// TryDequeueIf is DequeueIf without blocking.
func (r *Receiver[T]) TryDequeueIf(pred Predicate[T]) (T, bool) {
	return r.q.TryDequeueIf(pred)
}

// BlockingReceiver is a Receiver whose waits are bounded by a fixed timeout
// instead of blocking indefinitely.
type BlockingReceiver[T any] struct {
	r       Receiver[T]
	timeout time.Duration
}

// NewBlockingReceiver creates a receiver view whose DequeueIf waits at most
// timeout per call.
func NewBlockingReceiver[T any](q *Queue[T], timeout time.Duration) *BlockingReceiver[T] {
	return &BlockingReceiver[T]{r: Receiver[T]{q: q}, timeout: timeout}
}

// DequeueIf waits up to the receiver's timeout for an element; on expiry it
// returns (zero, false, context.DeadlineExceeded).
func (b *BlockingReceiver[T]) DequeueIf(pred Predicate[T]) (T, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	return b.r.DequeueIf(ctx, pred)
}

// Timeout returns the per-call wait bound.
func (b *BlockingReceiver[T]) Timeout() time.Duration {
	return b.timeout
}
