// Package enumerate implements top-down canonical generation of graphs of
// a given order, with edge-count filtering and incremental break-bits
// pruning against already-committed higher rows.
package enumerate

import (
	"github.com/galenhuntington/ingraphs/bitword"
	"github.com/galenhuntington/ingraphs/canon"
	"github.com/galenhuntington/ingraphs/graph"
)

type filterRange struct{ lo, hi int }

type fixedState struct {
	size     int
	line     []bitword.Word
	callback func(bitword.Word)
	filter   filterRange
}

type recursed struct {
	at        int
	breakBits bitword.Word
	soFar     bitword.Word
	recheck   bool
}

// Enumerate yields each canonical graph of order n exactly once, in no
// particular edge-count order, via callback.
func Enumerate(size int, callback func(bitword.Word)) {
	EnumerateFilter(size, 0, 128, callback)
}

// EnumerateFilter restricts output to graphs whose edge count lies in
// [lo, hi].
func EnumerateFilter(size, lo, hi int, callback func(bitword.Word)) {
	if size == 0 {
		return
	}
	fx := &fixedState{
		size:     size,
		callback: callback,
		filter:   filterRange{lo: lo, hi: hi},
	}
	recurse(fx, recursed{at: size - 1})
}

// EnumerateMiddle yields each canonical graph with exactly triangle(n)/2
// edges, deduplicated against its complement: G is emitted only if
// ToCanonical(Complement(G)) >= G.Bits(), checked via the same fixed-point
// iteration ToCanonical uses.
func EnumerateMiddle(size int, callback func(bitword.Word)) {
	half := bitword.Triangle(size) / 2
	EnumerateFilter(size, half, half, func(bn bitword.Word) {
		grc := graph.FromBits(size, bn).Complement()
		last := grc.Bits()
		for {
			if last.Less(bn) {
				return
			}
			next := canon.Step(last, size)
			if next.Equal(last) {
				callback(bn)
				return
			}
			last = next
		}
	})
}

func recurse(fx *fixedState, r recursed) {
	offset := bitword.Triangle(r.at)
	soFarOnes := r.soFar.Popcount()

rowLoop:
	for rowInt := 0; rowInt < (1 << uint(r.at)); rowInt++ {
		row := bitword.FromUint64(uint64(rowInt))
		recheck := r.recheck

		curOnes := soFarOnes + row.Popcount()
		if curOnes > fx.filter.hi || curOnes+offset < fx.filter.lo {
			continue
		}
		if !bitword.GetBreaks(row).AndNot(r.breakBits).IsZero() {
			continue
		}

		if !r.soFar.IsZero() {
			lowAt := bitword.Low(r.at)
			var breaksAcc bitword.Word
			for idx, other := range fx.line {
				alt := fx.size - 1 - idx
				mask := bitword.Low(alt).AndNot(lowAt)
				if breaksAcc.And(mask).IsZero() {
					var upper bitword.Word
					for b := r.at + 1; b < alt; b++ {
						if r.soFar.Bit(bitword.Index(b, r.at)) {
							upper = upper.SetBit(b)
						}
					}
					if r.soFar.Bit(bitword.Index(r.at, alt)) {
						upper = upper.SetBit(r.at)
					}
					rerow := bitword.Smoosh(upper.Or(row), breaksAcc)
					switch rerow.Cmp(other) {
					case -1:
						continue rowLoop
					case 0:
						recheck = true
					}
				}
				breaksAcc = breaksAcc.Or(other.AndNot(other.Shr(1)))
			}
		}

		newSoFar := r.soFar.Or(row.Shl(offset))
		if r.at == 0 {
			if !recheck || canon.IsCanonical(graph.FromBits(fx.size, newSoFar)) {
				fx.callback(newSoFar)
			}
			continue
		}

		fx.line = append(fx.line, row)
		recurse(fx, recursed{
			at:        r.at - 1,
			breakBits: r.breakBits.Or(row.AndNot(row.Shr(1))),
			soFar:     newSoFar,
			recheck:   recheck,
		})
		fx.line = fx.line[:len(fx.line)-1]
	}
}
