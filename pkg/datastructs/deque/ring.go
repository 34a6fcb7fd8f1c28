package deque

import (
	"github.com/huynhanx03/go-mq/pkg/utils"
)

var _ Deque[int] = (*Ring[int])(nil)

// minRingCapacity is the smallest slot count a Ring allocates.
const minRingCapacity = 8

// Ring is a growable double-ended queue backed by a circular slice.
// Capacity is kept at a power of two so index wrapping is a single mask.
// It is NOT thread-safe.
type Ring[T any] struct {
	data []T
	head int // index of the front element
	size int
	mask int
}

// NewRing creates a ring deque with room for at least capacity elements
// before the first grow.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < minRingCapacity {
		capacity = minRingCapacity
	}
	capacity = utils.CeilToPowerOfTwo(capacity)

	return &Ring[T]{
		data: make([]T, capacity),
		mask: capacity - 1,
	}
}

// PushBack appends v at the back, growing the ring if it is full.
func (r *Ring[T]) PushBack(v T) {
	if r.size == len(r.data) {
		r.grow()
	}
	r.data[(r.head+r.size)&r.mask] = v
	r.size++
}

// PopFront removes and returns the front element.
func (r *Ring[T]) PopFront() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	v := r.data[r.head]
	r.data[r.head] = zero // release reference for GC
	r.head = (r.head + 1) & r.mask
	r.size--
	return v, true
}

// PopBack removes and returns the back element.
func (r *Ring[T]) PopBack() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	idx := (r.head + r.size - 1) & r.mask
	v := r.data[idx]
	r.data[idx] = zero
	r.size--
	return v, true
}

// Front returns the front element without removing it.
func (r *Ring[T]) Front() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	return r.data[r.head], true
}

// Back returns the back element without removing it.
func (r *Ring[T]) Back() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	return r.data[(r.head+r.size-1)&r.mask], true
}

// Len returns the number of elements currently stored.
func (r *Ring[T]) Len() int { return r.size }

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool { return r.size == 0 }

// Cap returns the current slot count.
func (r *Ring[T]) Cap() int { return len(r.data) }

// grow doubles the backing slice and unwraps the elements so the front
// lands at index 0.
func (r *Ring[T]) grow() {
	newData := make([]T, len(r.data)*2)
	n := copy(newData, r.data[r.head:])
	copy(newData[n:], r.data[:r.head])
	r.data = newData
	r.head = 0
	r.mask = len(newData) - 1
}
