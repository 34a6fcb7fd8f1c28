package deque

import (
	"testing"
)

// =============================================================================
// Ring-specific Tests
// =============================================================================

func TestNewRing_Capacity(t *testing.T) {
	tests := []struct {
		name    string
		cap     int
		wantCap int
	}{
		{"power_of_two", 16, 16},
		{"rounds_up", 100, 128},
		{"below_minimum", 2, 8},
		{"zero_uses_minimum", 0, 8},
		{"negative_uses_minimum", -5, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRing[int](tt.cap)
			if got := r.Cap(); got != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", got, tt.wantCap)
			}
		})
	}
}

func TestRing_GrowPreservesOrder(t *testing.T) {
	r := NewRing[int](8)

	// Shift head off zero so growth has to unwrap.
	for i := 0; i < 5; i++ {
		r.PushBack(i)
	}
	for i := 0; i < 5; i++ {
		r.PopFront()
	}

	n := 50 // forces multiple grows
	for i := 0; i < n; i++ {
		r.PushBack(i)
	}
	if r.Len() != n {
		t.Fatalf("Len() = %d, want %d", r.Len(), n)
	}
	for i := 0; i < n; i++ {
		got, ok := r.PopFront()
		if !ok || got != i {
			t.Fatalf("PopFront #%d = %d, %v; want %d, true", i, got, ok, i)
		}
	}
}

func TestRing_WrapAround(t *testing.T) {
	r := NewRing[int](8)

	// Push/pop repeatedly so indices wrap the mask many times.
	for i := 0; i < 100; i++ {
		r.PushBack(i)
		got, ok := r.PopFront()
		if !ok || got != i {
			t.Fatalf("iteration %d: PopFront = %d, %v", i, got, ok)
		}
	}
	if !r.IsEmpty() {
		t.Error("ring should be empty")
	}
}

func TestRing_PointerValuesReleased(t *testing.T) {
	r := NewRing[*int](8)
	v := 7
	r.PushBack(&v)
	r.PopFront()

	// The slot must have been zeroed; pushing again should not resurrect it.
	if got, ok := r.Front(); ok || got != nil {
		t.Errorf("Front() = %v, %v on empty ring", got, ok)
	}
}
