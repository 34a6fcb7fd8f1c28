package deque

var _ Deque[int] = (*List[int])(nil)

// listNode is a single node in the doubly-linked deque.
type listNode[T any] struct {
	value T
	prev  *listNode[T]
	next  *listNode[T]
}

// List is a double-ended queue backed by a doubly-linked list. Every push
// allocates a node, so it trades throughput for stable per-element cost and no
// large backing array. It is NOT thread-safe.
type List[T any] struct {
	head *listNode[T]
	tail *listNode[T]
	size int
}

// NewList creates an empty list deque.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// PushBack appends v at the back.
func (l *List[T]) PushBack(v T) {
	n := &listNode[T]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the front element.
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	n.next = nil
	l.size--
	return n.value, true
}

// PopBack removes and returns the back element.
func (l *List[T]) PopBack() (T, bool) {
	var zero T
	if l.tail == nil {
		return zero, false
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	n.prev = nil
	l.size--
	return n.value, true
}

// Front returns the front element without removing it.
func (l *List[T]) Front() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	return l.head.value, true
}

// Back returns the back element without removing it.
func (l *List[T]) Back() (T, bool) {
	var zero T
	if l.tail == nil {
		return zero, false
	}
	return l.tail.value, true
}

// Len returns the number of elements currently stored.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }
