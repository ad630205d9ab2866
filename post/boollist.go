package post

// A BoolList is the naive representation of a tag system, keeping one
// symbol per slice element. It trades speed for obviousness and serves as a
// reference for BitString.
type BoolList struct {
	bits []bool
}

// NewBoolList creates a BoolList from a compressed initial string: every
// boolean in compressed expands to the three-symbol block [b, 0, 0]. It
// never fails; an empty input yields an empty string.
func NewBoolList(compressed []bool) *BoolList {
	bits := make([]bool, 0, len(compressed)*3)
	for _, b := range compressed {
		bits = append(bits, b, false, false)
	}
	return &BoolList{bits: bits}
}

// Length returns the current number of symbols.
func (l *BoolList) Length() int {
	return len(l.bits)
}

// List returns the symbols in order.
func (l *BoolList) List() []bool {
	list := make([]bool, len(l.bits))
	copy(list, l.bits)
	return list
}

// Evolve advances the system by one step.
func (l *BoolList) Evolve() bool {
	if len(l.bits) < 3 {
		return false
	}
	lead := l.bits[0]
	l.bits = l.bits[3:]
	if lead {
		l.bits = append(l.bits, true, true, false, true)
	} else {
		l.bits = append(l.bits, false, false)
	}
	return true
}

// PreferredTimestep returns 1: the naive representation has no batching
// optimization.
func (l *BoolList) PreferredTimestep() int {
	return 1
}

// EvolvePreferred advances the system by at most one step.
func (l *BoolList) EvolvePreferred() (int, bool) {
	if !l.Evolve() {
		return 0, true
	}
	return 1, false
}

// Clone returns an independent deep copy.
func (l *BoolList) Clone() System {
	clone := make([]bool, len(l.bits))
	copy(clone, l.bits)
	return &BoolList{bits: clone}
}
