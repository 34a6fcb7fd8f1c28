package mq

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"

	"github.com/huynhanx03/go-mq/pkg/datastructs/deque"
)

// DefaultCapacity is the capacity used by NewDefault.
const DefaultCapacity = 1000

// Predicate decides whether DequeueIf may remove the element it inspected.
type Predicate[T any] func(msg T) bool

// Queue is a bounded, thread-safe message queue. Producers block while the
// queue is full and consumers block while it is empty; the removal discipline
// (FIFO or LIFO) is switchable at runtime, while insertion always happens at
// the back of the backing deque.
//
// Capacity is tracked by two counting semaphores: fillable permits (slots a
// producer may still fill) and drainable permits (elements a consumer may
// drain). Outside a critical section the two always sum to the capacity.
// Blocking happens on the semaphores, never while holding the mutex.
//
// A Queue must not be copied after first use.
type Queue[T any] struct {
	mu       sync.Mutex
	backing  deque.Deque[T]
	mode     Mode
	capacity int

	fillable  *semaphore.Weighted
	drainable *semaphore.Weighted
}

// New creates a bounded queue over the given backing deque. The queue takes
// exclusive ownership of the deque; callers must not touch it afterwards.
// Elements already present in the deque count against capacity and are
// immediately drainable.
func New[T any](backing deque.Deque[T], mode Mode, capacity int) (*Queue[T], error) {
	if backing == nil {
		return nil, ErrNilBacking
	}
	if !mode.valid() {
		return nil, ErrInvalidMode
	}
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	if n := backing.Len(); n > capacity {
		return nil, errors.Wrapf(ErrBackingOverflow, "%d elements, capacity %d", n, capacity)
	}

	q := &Queue[T]{
		backing:   backing,
		mode:      mode,
		capacity:  capacity,
		fillable:  semaphore.NewWeighted(int64(capacity)),
		drainable: semaphore.NewWeighted(int64(capacity)),
	}

	// Drainable permits start all held (nothing to consume). Pre-existing
	// elements convert one fillable permit each into a drainable one.
	q.drainable.TryAcquire(int64(capacity))
	if n := int64(backing.Len()); n > 0 {
		q.fillable.TryAcquire(n)
		q.drainable.Release(n)
	}
	return q, nil
}

// NewDefault creates a bounded queue with DefaultCapacity.
func NewDefault[T any](backing deque.Deque[T], mode Mode) (*Queue[T], error) {
	return New(backing, mode, DefaultCapacity)
}

// Enqueue inserts msg at the back of the queue, blocking while the queue is
// full. A nil ctx waits indefinitely. Returns true once the element is
// inserted, or (false, ctx.Err()) if the wait was cancelled.
func (q *Queue[T]) Enqueue(ctx context.Context, msg T) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := q.fillable.Acquire(ctx, 1); err != nil {
		return false, err
	}
	return q.push(msg), nil
}

// TryEnqueue inserts msg without blocking. Returns false if the queue is full.
func (q *Queue[T]) TryEnqueue(msg T) bool {
	if !q.fillable.TryAcquire(1) {
		return false
	}
	return q.push(msg)
}

// DequeueIf blocks until an element is available, inspects the element the
// active mode designates as next, and removes it only if pred accepts it. On
// a miss the element stays in place and (zero, false, nil) is returned; the
// same element will be offered to the next call. A nil ctx waits
// indefinitely; a cancelled wait returns (zero, false, ctx.Err()).
func (q *Queue[T]) DequeueIf(ctx context.Context, pred Predicate[T]) (T, bool, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}
	if err := q.drainable.Acquire(ctx, 1); err != nil {
		return zero, false, err
	}
	msg, ok := q.take(pred)
	return msg, ok, nil
}

// TryDequeueIf is DequeueIf without blocking. Returns (zero, false) if the
// queue is empty or pred rejects the next element.
func (q *Queue[T]) TryDequeueIf(pred Predicate[T]) (T, bool) {
	if !q.drainable.TryAcquire(1) {
		var zero T
		return zero, false
	}
	return q.take(pred)
}

// Dequeue removes the next element unconditionally, blocking while the queue
// is empty.
func (q *Queue[T]) Dequeue(ctx context.Context) (T, bool, error) {
	return q.DequeueIf(ctx, func(T) bool { return true })
}

// SetMode switches the removal discipline. The switch takes effect with the
// next dequeue; elements already enqueued keep their positions.
func (q *Queue[T]) SetMode(mode Mode) error {
	if !mode.valid() {
		return ErrInvalidMode
	}
	q.mu.Lock()
	q.mode = mode
	q.mu.Unlock()
	return nil
}

// Mode returns the active removal discipline.
func (q *Queue[T]) Mode() Mode {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.mode
}

// Len returns the number of elements currently queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.backing.Len()
}

// Capacity returns the fixed capacity bound.
func (q *Queue[T]) Capacity() int { return q.capacity }

// push inserts msg at the back. The caller must hold one fillable permit;
// push converts it into a drainable permit on success and returns it
// otherwise. The permit hand-off happens in a deferred function so a
// panicking backing deque still leaves the accounting consistent and the
// mutex unlocked.
func (q *Queue[T]) push(msg T) bool {
	q.mu.Lock()
	pushed := false
	defer func() {
		q.mu.Unlock()
		if pushed {
			q.drainable.Release(1)
		} else {
			q.fillable.Release(1)
		}
	}()

	// Permits and container size agree by construction; this guards a
	// backing deque that was mutated behind the queue's back.
	if q.backing.Len() >= q.capacity {
		return false
	}
	q.backing.PushBack(msg)
	pushed = true
	return true
}

// take inspects the mode-designated element and removes it if pred accepts
// it. The caller must hold one drainable permit; take converts it into a
// fillable permit on removal and returns it otherwise, so a predicate miss
// leaves the element drainable. A panicking predicate propagates after the
// mutex is unlocked and the permit restored.
func (q *Queue[T]) take(pred Predicate[T]) (T, bool) {
	var zero T

	q.mu.Lock()
	removed := false
	defer func() {
		q.mu.Unlock()
		if removed {
			q.fillable.Release(1)
		} else {
			q.drainable.Release(1)
		}
	}()

	msg, ok := q.peekLocked()
	if !ok || !pred(msg) {
		return zero, false
	}
	q.popLocked()
	removed = true
	return msg, true
}

// peekLocked returns the element the active mode designates as next. The
// peek end and the pop end are always the same for a given mode.
func (q *Queue[T]) peekLocked() (T, bool) {
	if q.mode == LIFO {
		return q.backing.Back()
	}
	return q.backing.Front()
}

// popLocked removes the element peekLocked designated.
func (q *Queue[T]) popLocked() {
	if q.mode == LIFO {
		q.backing.PopBack()
		return
	}
	q.backing.PopFront()
}
