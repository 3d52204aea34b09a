package zdd

import "encoding/binary"

// Return codes a Spec's Root/Step use to steer construction.
const (
	// Reject routes the current edge to ⊥.
	Reject = 0
	// Accept routes the current edge to ⊤.
	Accept = -1
)

// Spec is the contract a constraint implements to drive top-down ZDD
// construction. Implementations are value objects: all state needed
// across a construction lives in the caller-owned state array, never in
// the Spec itself, so a single Spec value can drive many concurrent
// constructions against independent state slices.
type Spec interface {
	// Width returns S, the number of int64 cells of this spec's frontier
	// state.
	Width() int

	// Root initialises state (zeroed on entry) and returns the top level
	// N, or Reject/Accept to short-circuit the whole construction.
	Root(state []int64) int

	// Step mutates state in place to reflect deciding level under take,
	// and returns Reject, Accept, or a next level in [1, level) to visit.
	// A next level below level-1 declares the intervening levels
	// irrelevant to this spec (a level skip).
	Step(state []int64, level int, take bool) int
}

// encodeState renders a frontier-state array as an opaque byte string
// suitable as a map key: the state is hashed as opaque bytes of length
// len(state)*8, never by field, so two Specs can share a memo map without
// knowing each other's state layout.
func encodeState(state []int64) string {
	buf := make([]byte, len(state)*8)
	for i, v := range state {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return string(buf)
}
