package deque

import (
	"testing"
)

// Interface compliance checks
var _ Deque[int] = (*Ring[int])(nil)
var _ Deque[string] = (*List[string])(nil)

// dequeFactory creates an empty Deque[int] for the shared contract tests.
type dequeFactory func() Deque[int]

// implementations holds all deque implementations under test.
var implementations = map[string]dequeFactory{
	"Ring": func() Deque[int] { return NewRing[int](8) },
	"List": func() Deque[int] { return NewList[int]() },
}

// =============================================================================
// Shared Contract Tests
// =============================================================================

func TestDeque_EmptyBehavior(t *testing.T) {
	for name, factory := range implementations {
		t.Run(name, func(t *testing.T) {
			d := factory()
			if !d.IsEmpty() {
				t.Error("new deque should be empty")
			}
			if got := d.Len(); got != 0 {
				t.Errorf("Len() = %d, want 0", got)
			}
			if _, ok := d.PopFront(); ok {
				t.Error("PopFront on empty deque should report false")
			}
			if _, ok := d.PopBack(); ok {
				t.Error("PopBack on empty deque should report false")
			}
			if _, ok := d.Front(); ok {
				t.Error("Front on empty deque should report false")
			}
			if _, ok := d.Back(); ok {
				t.Error("Back on empty deque should report false")
			}
		})
	}
}

func TestDeque_PushBackPopFront(t *testing.T) {
	tests := []struct {
		name  string
		items []int
	}{
		{"single", []int{42}},
		{"several", []int{1, 2, 3, 4, 5}},
		{"zero_values", []int{0, 0, 0}},
	}

	for name, factory := range implementations {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				d := factory()
				for _, v := range tt.items {
					d.PushBack(v)
				}
				if got := d.Len(); got != len(tt.items) {
					t.Fatalf("Len() = %d, want %d", got, len(tt.items))
				}
				for i, want := range tt.items {
					got, ok := d.PopFront()
					if !ok {
						t.Fatalf("PopFront #%d reported empty", i)
					}
					if got != want {
						t.Errorf("PopFront #%d = %d, want %d", i, got, want)
					}
				}
				if !d.IsEmpty() {
					t.Error("deque should be empty after draining")
				}
			})
		}
	}
}

func TestDeque_PushBackPopBack(t *testing.T) {
	for name, factory := range implementations {
		t.Run(name, func(t *testing.T) {
			d := factory()
			for _, v := range []int{1, 2, 3} {
				d.PushBack(v)
			}
			// LIFO order from the back.
			for i, want := range []int{3, 2, 1} {
				got, ok := d.PopBack()
				if !ok {
					t.Fatalf("PopBack #%d reported empty", i)
				}
				if got != want {
					t.Errorf("PopBack #%d = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestDeque_PeekDoesNotRemove(t *testing.T) {
	for name, factory := range implementations {
		t.Run(name, func(t *testing.T) {
			d := factory()
			d.PushBack(10)
			d.PushBack(20)

			for i := 0; i < 3; i++ {
				if got, ok := d.Front(); !ok || got != 10 {
					t.Errorf("Front() = %d, %v; want 10, true", got, ok)
				}
				if got, ok := d.Back(); !ok || got != 20 {
					t.Errorf("Back() = %d, %v; want 20, true", got, ok)
				}
			}
			if got := d.Len(); got != 2 {
				t.Errorf("Len() = %d after peeks, want 2", got)
			}
		})
	}
}

func TestDeque_MixedEnds(t *testing.T) {
	for name, factory := range implementations {
		t.Run(name, func(t *testing.T) {
			d := factory()
			d.PushBack(1)
			d.PushBack(2)
			d.PushBack(3)

			if got, _ := d.PopFront(); got != 1 {
				t.Errorf("PopFront = %d, want 1", got)
			}
			if got, _ := d.PopBack(); got != 3 {
				t.Errorf("PopBack = %d, want 3", got)
			}
			if got, _ := d.PopFront(); got != 2 {
				t.Errorf("PopFront = %d, want 2", got)
			}
			if _, ok := d.PopBack(); ok {
				t.Error("deque should be empty")
			}
		})
	}
}

func TestDeque_ReuseAfterDrain(t *testing.T) {
	for name, factory := range implementations {
		t.Run(name, func(t *testing.T) {
			d := factory()
			for cycle := 0; cycle < 3; cycle++ {
				for i := 0; i < 5; i++ {
					d.PushBack(cycle*10 + i)
				}
				for i := 0; i < 5; i++ {
					want := cycle*10 + i
					if got, _ := d.PopFront(); got != want {
						t.Fatalf("cycle %d: PopFront = %d, want %d", cycle, got, want)
					}
				}
			}
		})
	}
}
