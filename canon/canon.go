// Package canon implements deciding whether a graph equals the
// lexicographically minimum of its n! relabellings (IsCanonical), and
// computing that minimum (ToCanonical). The shared recursive search is
// split into two concrete functions, recurseDecision and recurseMinimize,
// rather than one generic routine, since nothing else in this module
// reaches for generics.
package canon

import (
	"github.com/galenhuntington/ingraphs/bitword"
	"github.com/galenhuntington/ingraphs/graph"
	"github.com/galenhuntington/ingraphs/perm"
)

// IsCanonical decides whether g equals the lexicographically minimum of all
// n! relabellings (decision mode: any strictly-smaller relabelling found
// during the search fails fast).
func IsCanonical(g graph.Graph) bool {
	if g.Size() <= 1 {
		return true
	}
	return recurseDecision(g.Bits(), g.Size()-1, bitword.Zero, g.Bits())
}

// ToCanonical returns that lexicographic minimum (minimization mode: the
// caller iterates the recursion to a fixed point. Convergence is
// guaranteed because recurseMinimize never returns a value greater than
// its input over a finite value space).
func ToCanonical(g graph.Graph) graph.Graph {
	if g.Size() <= 1 {
		return g
	}
	last := g.Bits()
	for {
		next := recurseMinimize(last, g.Size()-1, bitword.Zero, last)
		if next.Equal(last) {
			return graph.FromBits(g.Size(), last)
		}
		last = next
	}
}

// Step performs one fixed-point iteration of the minimization recursion,
// exposed for EnumerateMiddle's inline complement-comparison loop, which
// needs the same step-and-compare-to-a-moving-target pattern ToCanonical
// uses internally but interleaved with its own early-exit check.
func Step(last bitword.Word, size int) bitword.Word {
	if size <= 1 {
		return last
	}
	return recurseMinimize(last, size-1, bitword.Zero, last)
}

// sliceAtSwap computes the row of vertex `swap` restricted to columns
// 0..pt, with column `swap` replaced by column `pt` — the common "slice"
// construction shared by both recursion modes.
func sliceAtSwap(cur bitword.Word, pt, swap int) bitword.Word {
	if swap == pt {
		return cur.Shr(bitword.Triangle(pt)).And(bitword.Low(pt))
	}
	var slice bitword.Word
	for bit := 0; bit < pt; bit++ {
		col := bit
		if bit == swap {
			col = pt
		}
		if cur.Bit(bitword.Index(swap, col)) {
			slice = slice.SetBit(bit)
		}
	}
	return slice
}

// recurseDecision is the fail-fast form of the search: any candidate
// strictly less than the running basis is a witness that g is not
// canonical, and the whole search returns false immediately.
func recurseDecision(cur bitword.Word, pt int, breakBits bitword.Word, cutoff bitword.Word) bool {
	if pt == 0 {
		return true
	}
	basis := cutoff.Shr(bitword.Triangle(pt)).And(bitword.Low(pt))
	nextBreak := breakBits.Or(basis.AndNot(basis.Shr(1)))
	for swap := pt; swap >= 0; swap-- {
		if pt != swap && breakBits.Bit(swap) {
			break
		}
		slice := sliceAtSwap(cur, pt, swap)
		cand := bitword.Smoosh(slice, breakBits)
		switch cand.Cmp(basis) {
		case -1:
			return false
		case 1:
			continue
		}
		newCur := newPermute(cur, pt, swap, slice, cand)
		if newCur.Less(cutoff) {
			return false
		}
		if !recurseDecision(newCur, pt-1, nextBreak, cutoff) {
			return false
		}
	}
	return true
}

// recurseMinimize is the exhaustive form of the search: it keeps the
// minimum bitword over every explored branch.
func recurseMinimize(cur bitword.Word, pt int, breakBits bitword.Word, cutoff bitword.Word) bitword.Word {
	if pt == 0 {
		return cur
	}
	basis := cutoff.Shr(bitword.Triangle(pt)).And(bitword.Low(pt))
	best := cur
	for swap := pt; swap >= 0; swap-- {
		if pt != swap && breakBits.Bit(swap) {
			break
		}
		slice := sliceAtSwap(cur, pt, swap)
		cand := bitword.Smoosh(slice, breakBits)
		if cand.Cmp(basis) > 0 {
			continue
		}
		newCur := newPermute(cur, pt, swap, slice, cand)
		newBreak := breakBits.Or(cand.AndNot(cand.Shr(1)))
		newVal := recurseMinimize(newCur, pt-1, newBreak, cutoff)
		if newVal.Less(best) {
			best = newVal
		}
	}
	return best
}

// newPermute builds an (pt+1)-wide permutation mapping each 0-bit position
// of slice to the next 0-bit position of target, and each 1-bit position to
// the next 1-bit position, then swaps p(swap)<->p(pt), and applies it to
// the low triangle(pt+1) bits of cur.
func newPermute(cur bitword.Word, pt, swap int, slice, target bitword.Word) bitword.Word {
	permVec := make([]int, pt+1)
	for _, bit := range [2]bool{false, true} {
		i, j := 0, 0
		for i <= pt {
			if slice.Bit(i) != bit {
				i++
				continue
			}
			if target.Bit(j) != bit {
				j++
				continue
			}
			permVec[i] = j
			i++
			j++
		}
	}
	permVec[pt], permVec[swap] = permVec[swap], pt
	mask := bitword.Low(bitword.Triangle(pt + 1))
	sub := graph.FromBits(pt+1, cur.And(mask))
	renumbered := sub.Renumber(perm.NewUnsafe(permVec))
	return cur.AndNot(mask).Or(renumbered.Bits())
}
