// Package bitword implements the 128-bit triangular-index bit algebra that
// every other package in this module builds on: a Word packs the upper
// triangle of an adjacency matrix (or any same-shaped bitmask) into two
// uint64 halves, with the arithmetic (shift, mask, popcount, compare) that
// the canonicalizer and enumerator need to treat it as one wide integer.
package bitword

import (
	"fmt"
	"math/bits"
)

// Word is an unsigned 128-bit value, Hi being the high 64 bits and Lo the
// low 64 bits. Bit i (0-indexed from the low end) lives in Lo if i < 64,
// else in Hi at position i-64.
type Word struct {
	Hi, Lo uint64
}

// Zero is the empty word; also used as the seeker's cancellation sentinel.
var Zero = Word{}

// FromUint64 builds a Word whose value fits entirely in the low 64 bits.
func FromUint64(lo uint64) Word { return Word{Lo: lo} }

func (w Word) IsZero() bool { return w.Hi == 0 && w.Lo == 0 }

func (w Word) And(o Word) Word { return Word{w.Hi & o.Hi, w.Lo & o.Lo} }
func (w Word) Or(o Word) Word  { return Word{w.Hi | o.Hi, w.Lo | o.Lo} }
func (w Word) Xor(o Word) Word { return Word{w.Hi ^ o.Hi, w.Lo ^ o.Lo} }

// AndNot returns w &^ o, i.e. w & ~o.
func (w Word) AndNot(o Word) Word { return Word{w.Hi &^ o.Hi, w.Lo &^ o.Lo} }

// Shl returns w << k for 0 <= k <= 128. Bits shifted past bit 127 are lost.
func (w Word) Shl(k int) Word {
	switch {
	case k <= 0:
		return w
	case k >= 128:
		return Zero
	case k < 64:
		return Word{Hi: w.Hi<<k | w.Lo>>(64-k), Lo: w.Lo << k}
	default:
		return Word{Hi: w.Lo << (k - 64), Lo: 0}
	}
}

// Shr returns w >> k (logical) for 0 <= k <= 128.
func (w Word) Shr(k int) Word {
	switch {
	case k <= 0:
		return w
	case k >= 128:
		return Zero
	case k < 64:
		return Word{Hi: w.Hi >> k, Lo: w.Lo>>k | w.Hi<<(64-k)}
	default:
		return Word{Hi: 0, Lo: w.Hi >> (k - 64)}
	}
}

// Popcount returns the number of set bits.
func (w Word) Popcount() int {
	return bits.OnesCount64(w.Hi) + bits.OnesCount64(w.Lo)
}

// Cmp compares w and o as unsigned 128-bit integers: -1, 0, or 1.
func (w Word) Cmp(o Word) int {
	if w.Hi != o.Hi {
		if w.Hi < o.Hi {
			return -1
		}
		return 1
	}
	switch {
	case w.Lo < o.Lo:
		return -1
	case w.Lo > o.Lo:
		return 1
	default:
		return 0
	}
}

func (w Word) Less(o Word) bool { return w.Cmp(o) < 0 }
func (w Word) Equal(o Word) bool { return w.Hi == o.Hi && w.Lo == o.Lo }

// Bit reports whether bit i is set. i must be in [0, 128).
func (w Word) Bit(i int) bool {
	if i < 64 {
		return w.Lo&(1<<uint(i)) != 0
	}
	return w.Hi&(1<<uint(i-64)) != 0
}

// SetBit returns w with bit i set.
func (w Word) SetBit(i int) Word {
	if i < 64 {
		w.Lo |= 1 << uint(i)
	} else {
		w.Hi |= 1 << uint(i-64)
	}
	return w
}

// One returns the word with only bit i set.
func One(i int) Word { return Zero.SetBit(i) }

// Low returns the mask with the low n bits set. n must be in [0, 128].
func Low(n int) Word {
	switch {
	case n <= 0:
		return Zero
	case n >= 128:
		return Word{Hi: ^uint64(0), Lo: ^uint64(0)}
	case n < 64:
		return Word{Lo: (uint64(1) << uint(n)) - 1}
	default:
		return Word{Hi: (uint64(1) << uint(n-64)) - 1, Lo: ^uint64(0)}
	}
}

// assertf guards against internal integrity violations: conditions the
// caller is responsible for ruling out, never a recoverable input error.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
