package mq

import (
	"github.com/pkg/errors"
)

// Construction errors. Runtime outcomes are never errors: a full queue blocks,
// a predicate miss returns (zero, false, nil), and a cancelled wait returns
// the context's error.
var (
	// ErrInvalidCapacity is returned when a queue is constructed with a
	// capacity that is not strictly positive.
	ErrInvalidCapacity = errors.New("mq: capacity must be greater than zero")

	// ErrInvalidMode is returned for a mode value that is neither FIFO nor LIFO.
	ErrInvalidMode = errors.New("mq: unknown queue mode")

	// ErrNilBacking is returned when the backing deque is nil.
	ErrNilBacking = errors.New("mq: backing deque must not be nil")

	// ErrBackingOverflow is returned when the initial backing deque already
	// holds more elements than the requested capacity.
	ErrBackingOverflow = errors.New("mq: backing deque exceeds capacity")
)
