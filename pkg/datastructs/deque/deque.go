package deque

// Deque is the minimal capability set a backing container must satisfy to be
// usable as bounded-queue storage: append at the back, remove or peek at either
// end, and report its size. Implementations are not required to be thread-safe;
// the bounded queue serializes access. Implementations never enforce a capacity
// bound of their own.
type Deque[T any] interface {
	// PushBack appends v at the back of the deque.
	PushBack(v T)

	// PopFront removes and returns the front element.
	// Returns (zero, false) if the deque is empty.
	PopFront() (T, bool)

	// PopBack removes and returns the back element.
	// Returns (zero, false) if the deque is empty.
	PopBack() (T, bool)

	// Front returns the front element without removing it.
	// Returns (zero, false) if the deque is empty.
	Front() (T, bool)

	// Back returns the back element without removing it.
	// Returns (zero, false) if the deque is empty.
	Back() (T, bool)

	// Len returns the number of elements currently stored.
	Len() int

	// IsEmpty reports whether the deque holds no elements.
	IsEmpty() bool
}
