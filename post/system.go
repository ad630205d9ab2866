package post

// A System is a two-symbol tag system in one of its concrete representations.
// A System is built exclusively from a compressed initial string in which
// every boolean stands for the three-symbol block [b, 0, 0].
//
// Whether a System can evolve depends only on its current length: a call to
// Evolve on a string shorter than three symbols reports a halt and leaves
// the string untouched.
type System interface {
	// Length returns the current number of symbols. It is O(1).
	Length() int

	// List returns the symbols in order. It is meant for inspection and
	// testing and may be O(n).
	List() []bool

	// Evolve advances the system by one step. It reports whether the system
	// evolved; false means it halted and nothing was modified.
	Evolve() bool

	// PreferredTimestep returns the number of steps the representation
	// prefers to take at once. It is a performance hint only: evolving
	// through EvolvePreferred is indistinguishable from single steps.
	PreferredTimestep() int

	// EvolvePreferred advances the system by at most PreferredTimestep
	// steps, returning the exact number of steps applied and whether the
	// system halted.
	EvolvePreferred() (int, bool)

	// Clone returns an independent deep copy of the system.
	Clone() System
}

// EvolveN advances s by up to n steps, using batched evolution whenever the
// remaining step count allows it. It returns the exact number of steps
// applied and whether the system halted. The final content and the halt
// point are identical to calling Evolve n times.
func EvolveN(s System, n int) (int, bool) {
	t := s.PreferredTimestep()
	steps := 0
	for steps < n {
		if n-steps >= t {
			k, halted := s.EvolvePreferred()
			steps += k
			if halted {
				return steps, true
			}
			continue
		}
		if !s.Evolve() {
			return steps, true
		}
		steps++
	}
	return steps, false
}

// Equal reports whether x and y hold the same symbol sequence. Two packed
// systems are compared word-wise without materializing; any other pairing
// falls back to comparing canonical lists.
func Equal(x, y System) bool {
	if a, ok := x.(*BitString); ok {
		if b, ok := y.(*BitString); ok {
			return a.Equal(b)
		}
	}
	if x.Length() != y.Length() {
		return false
	}
	xs, ys := x.List(), y.List()
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}
