package runtime

import (
	_ "unsafe" // for go:linkname
)

// Uint32 returns a fast random uint32 value.
//
//go:linkname Uint32 runtime.fastrand
func Uint32() uint32

// Uint32n returns a fast random uint32 value in [0, n).
//
//go:linkname Uint32n runtime.fastrandn
func Uint32n(n uint32) uint32

// IntRange returns a fast random int in [min, max]. It is not suitable for
// anything requiring statistical quality or reproducible seeds.
func IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(Uint32n(uint32(max-min+1)))
}
