package bitword

import (
	"math"
	"math/bits"
	"sync"
)

// RawIndex returns the triangle-bit position for edge (a,b) with a<b.
func RawIndex(a, b int) int { return b*(b-1)/2 + a }

// Index normalises (a,b) to a<b before computing RawIndex.
func Index(a, b int) int {
	if a < b {
		return RawIndex(a, b)
	}
	return RawIndex(b, a)
}

// RevHiIndex returns the higher endpoint b of the pair whose RawIndex is i.
func RevHiIndex(i int) int {
	return (int(math.Sqrt(float64(8*i+1))) + 1) / 2
}

// RevIndex inverts RawIndex: given a triangle-bit position, returns (a, b).
func RevIndex(i int) (a, b int) {
	b = RevHiIndex(i)
	a = i - b*(b-1)/2
	return a, b
}

// Triangle is the number of triangle bits for an order-sz graph.
func Triangle(sz int) int { return sz * (sz - 1) / 2 }

// HiBitIx returns the position of the highest set bit of w. w must be
// nonzero; callers are responsible for ensuring that.
func HiBitIx(w Word) int {
	assertf(!w.IsZero(), "HiBitIx called on zero word")
	if w.Hi != 0 {
		return 64 + 63 - bits.LeadingZeros64(w.Hi)
	}
	return 63 - bits.LeadingZeros64(w.Lo)
}

// InferSize infers the smallest graph order whose triangle could hold the
// highest set bit of edges, i.e. the order implied by a raw bitword with no
// explicit size tag.
func InferSize(edges Word) int {
	if edges.IsZero() {
		return 1
	}
	return RevHiIndex(HiBitIx(edges)) + 1
}

// GetBreaks computes the break positions of w: a 1 at position i means
// bit i was 0 and bit i+1 (the next column up) was 1 — a boundary a
// previous row imposes on further column permutation.
func GetBreaks(w Word) Word {
	return w.Shr(1).AndNot(w)
}

// Smoosh packs the set bits of each maximal break-delimited run in row to
// the bottom of that run — the lexicographically smallest value achievable
// by permuting columns within runs. It repeatedly finds the run containing
// the current highest set bit, counts how many bits of row fall in it, and
// packs that many 1s at the lowest positions of the run.
func Smoosh(row, breaks Word) Word {
	var result Word
	for !row.IsZero() {
		start := HiBitIx(row)
		find := 0
		for i := 1; i <= start; i++ {
			j := start - i
			if breaks.Bit(j) {
				find = j + 1
				break
			}
		}
		mask := Low(find)
		cnt := row.AndNot(mask).Popcount()
		row = row.And(mask)
		result = result.Or(Low(cnt).Shl(find))
	}
	return result
}

var edgeVecsOnce sync.Once
var edgeVecsTable [16]Word

// EdgeVecs returns the precomputed incidence masks: EdgeVecs()[v] has every
// triangle bit incident to vertex v set, for v in 0..16. Computed once on
// first use and cached.
func EdgeVecs() [16]Word {
	edgeVecsOnce.Do(func() {
		for v := 0; v < 16; v++ {
			var w Word
			for b := 1; b < 16; b++ {
				for a := 0; a < b; a++ {
					if a == v || b == v {
						w = w.SetBit(RawIndex(a, b))
					}
				}
			}
			edgeVecsTable[v] = w
		}
	})
	return edgeVecsTable
}
