package post

import (
	"math/bits"
	"sync"
)

const (
	// wordBits is the width of a storage word.
	wordBits = 64

	// bitStringTimestep is the number of steps collapsed into one lookup of
	// the transition table. It is a tuning constant with no semantic effect;
	// any value whose worst-case output fits the entry packing below works.
	bitStringTimestep = 11

	lutSize       = 1 << bitStringTimestep
	lutCountShift = 48
	lutBitsMask   = 1<<lutCountShift - 1
)

// A BitString is the packed representation of a tag system. The symbols are
// stored as bits in little-endian order across words: the earliest symbols
// live in the lowest positions of the first word. There is always at least
// one word, even when the string is empty.
//
// Invariants: the first word holds no bits below start, the last word holds
// no bits at or above end, and length always equals
// (len(words)-1)*wordBits + end - start.
type BitString struct {
	words []uint64

	// start is the index of the first live bit in the first word, end the
	// index one past the last live bit in the last word. Both stay in
	// [0, wordBits).
	start uint
	end   uint

	// length caches the number of live bits so Length stays O(1).
	length int
}

// NewBitString creates a BitString from a compressed initial string: every
// boolean in compressed expands to the three-symbol block [b, 0, 0]. It
// never fails; an empty input yields an empty string.
func NewBitString(compressed []bool) *BitString {
	b := &BitString{words: make([]uint64, 1, 1+len(compressed)*3/wordBits)}
	for _, x := range compressed {
		if x {
			b.append(0b001, 3)
		} else {
			b.append(0b000, 3)
		}
	}
	return b
}

// Length returns the current number of symbols.
func (b *BitString) Length() int {
	return b.length
}

// List returns the symbols in order.
func (b *BitString) List() []bool {
	list := make([]bool, 0, len(b.words)*wordBits)
	for _, w := range b.words {
		for i := 0; i < wordBits; i++ {
			list = append(list, (w>>i)&1 == 1)
		}
	}
	return list[b.start : uint(len(list))-(wordBits-b.end)]
}

// Evolve advances the system by one step.
func (b *BitString) Evolve() bool {
	if b.length < 3 {
		return false
	}
	switch b.delete(3) & 1 {
	case 0:
		b.append(0b00, 2)
	default:
		b.append(0b1011, 4)
	}
	return true
}

// PreferredTimestep returns the batched step count of the packed
// representation.
func (b *BitString) PreferredTimestep() int {
	return bitStringTimestep
}

// EvolvePreferred advances the system by up to bitStringTimestep steps.
// With enough lookahead the steps collapse into one delete, one transition
// table lookup and one append; a shorter string falls back to single steps.
func (b *BitString) EvolvePreferred() (int, bool) {
	if b.length < 3*bitStringTimestep {
		for i := 0; i < bitStringTimestep; i++ {
			if !b.Evolve() {
				return i, true
			}
		}
		return bitStringTimestep, false
	}

	deleted := b.delete(3 * bitStringTimestep)

	// The leading symbol of the i-th collapsed step sits at bit 3*i of the
	// deleted block.
	var key uint64
	for i := 0; i < bitStringTimestep; i++ {
		key |= ((deleted >> (3 * i)) & 1) << i
	}

	entry := transitions()[key]
	b.append(entry&lutBitsMask, uint(entry>>lutCountShift))
	return bitStringTimestep, false
}

// Clone returns an independent deep copy.
func (b *BitString) Clone() System {
	clone := &BitString{
		words:  make([]uint64, len(b.words)),
		start:  b.start,
		end:    b.end,
		length: b.length,
	}
	copy(clone.words, b.words)
	return clone
}

// Equal reports whether b and o hold the same symbols, regardless of how
// the two strings are aligned within their words.
func (b *BitString) Equal(o *BitString) bool {
	if b.length != o.length {
		return false
	}
	if b.start > o.start {
		return o.Equal(b)
	}

	offset := o.start - b.start
	overflowMask := uint64(1)<<offset - 1

	// Bits rotated past the top of a b word, to be compared with the low
	// bits of the following o word. With equal lengths and b.start at most
	// o.start, o never has fewer words than b.
	overflowed := o.words[0] & overflowMask
	for i, w := range b.words {
		rotated := bits.RotateLeft64(w, int(offset))
		if overflowed|(rotated&^overflowMask) != o.words[i] {
			return false
		}
		overflowed = rotated & overflowMask
	}
	if len(o.words) > len(b.words) && o.words[len(o.words)-1]&overflowMask != overflowed {
		return false
	}
	return true
}

// append adds the low count bits of v, least significant first, to the end
// of the string. count must be at most wordBits and v must have no bits set
// at or above count.
func (b *BitString) append(v uint64, count uint) {
	rotated := bits.RotateLeft64(v, int(b.end))
	lower := ^uint64(0) << b.end

	b.words[len(b.words)-1] |= rotated & lower
	b.end += count
	if b.end >= wordBits {
		b.end -= wordBits
		b.words = append(b.words, rotated&^lower)
	}
	b.length += int(count)
}

// delete removes the first count bits of the string and returns them, least
// significant first. count must be strictly less than wordBits. Deleting
// more bits than the string holds truncates the result, with only the bits
// that were live being meaningful, and leaves the string empty.
func (b *BitString) delete(count uint) uint64 {
	mask := ^uint64(0) >> (wordBits - count)

	v := b.words[0] >> b.start
	b.start += count

	if b.start >= wordBits {
		b.start -= wordBits
		b.words = b.words[1:]
		if len(b.words) == 0 {
			b.words = append(b.words, 0)
			b.start, b.end = 0, 0
		}
		v |= b.words[0] << (count - b.start)
	}
	if len(b.words) == 1 && b.start > b.end {
		// A truncating delete ran past the live bits; collapse to the
		// well-formed empty state.
		b.end = b.start
	}

	// Keep the consumed positions of the first word zeroed so that equality
	// never sees stale bits below start.
	b.words[0] &^= uint64(1)<<b.start - 1

	b.length -= int(count)
	if b.length < 0 {
		b.length = 0
	}
	return v & mask
}

var (
	lutOnce sync.Once
	lut     [lutSize]uint64
)

// transitions returns the batched transition table, building it on first
// use. Entry k holds the exact output of bitStringTimestep consecutive
// steps whose leading symbols spell k: the low 48 bits are the appended
// pattern, the high 16 bits its length. The table is immutable once built
// and shared by every BitString in the process.
func transitions() *[lutSize]uint64 {
	lutOnce.Do(func() {
		for key := range lut {
			var pattern, n uint64
			for i := 0; i < bitStringTimestep; i++ {
				if (key>>i)&1 == 1 {
					pattern |= 0b1011 << n
					n += 4
				} else {
					n += 2
				}
			}
			lut[key] = pattern | n<<lutCountShift
		}
	})
	return &lut
}
