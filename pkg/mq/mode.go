package mq

// Mode selects which end of the backing deque a dequeue reads and removes.
// Insertion always happens at the back, regardless of mode.
type Mode uint8

const (
	// FIFO removes the oldest element first (front of the deque).
	FIFO Mode = iota
	// LIFO removes the newest element first (back of the deque).
	LIFO
)

// String returns the mode name, or "unknown" for an invalid value.
func (m Mode) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return "unknown"
	}
}

// valid reports whether m is one of the supported disciplines.
func (m Mode) valid() bool {
	return m == FIFO || m == LIFO
}

// ParseMode converts a mode name ("fifo" or "lifo") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "fifo", "FIFO":
		return FIFO, nil
	case "lifo", "LIFO":
		return LIFO, nil
	default:
		return 0, ErrInvalidMode
	}
}
