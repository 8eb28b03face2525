// Package seeker implements a parallel counterexample search: starting
// from a seed graph, explore one-edge-at-a-time extensions looking for a
// graph into whose complement the seed no longer embeds as a subgraph.
package seeker

import (
	"math"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/galenhuntington/ingraphs/bitword"
	"github.com/galenhuntington/ingraphs/canon"
	"github.com/galenhuntington/ingraphs/graph"
	"github.com/galenhuntington/ingraphs/subiso"
)

// Bump returns the canonicalized, deduplicated set of graphs one edge away
// from gr: retractions (extend=false) clear one currently-set bit at a
// time, extensions (extend=true) set one currently-clear bit at a time.
func Bump(gr graph.Graph, extend bool) []bitword.Word {
	seen := make(map[bitword.Word]struct{})
	base := gr.Bits()
	tri := bitword.Triangle(gr.Size())
	for bit := 0; bit < tri; bit++ {
		mask := bitword.One(bit)
		var val bitword.Word
		if extend {
			val = base.Or(mask)
		} else {
			val = base.AndNot(mask)
		}
		if val.Equal(base) {
			continue
		}
		best := canon.ToCanonical(graph.FromBits(gr.Size(), val))
		seen[best.Bits()] = struct{}{}
	}
	out := make([]bitword.Word, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// fixedState is the search-wide state shared across the worker goroutines
// spawned by Seek. Randomization draws from math/rand/v2's
// concurrency-safe global source rather than a per-worker rng.
type fixedState struct {
	gr      graph.Graph
	row     []subiso.VertexDeg
	bailout int

	mu   sync.Mutex
	seen map[bitword.Word]struct{}
}

// zero is the cancellation sentinel inserted into seen once any worker
// finds an answer, so sibling workers bail out promptly.
var zero bitword.Word

type verdict int

const (
	proceed verdict = iota
	skip
	abort
)

func (fx *fixedState) checkAndInsert(bits bitword.Word) verdict {
	fx.mu.Lock()
	defer fx.mu.Unlock()
	if _, stopped := fx.seen[zero]; stopped || len(fx.seen) >= fx.bailout {
		return abort
	}
	if _, already := fx.seen[bits]; already {
		return skip
	}
	fx.seen[bits] = struct{}{}
	if len(fx.seen) >= fx.bailout {
		return abort
	}
	return proceed
}

func (fx *fixedState) signalStop() {
	fx.mu.Lock()
	fx.seen[zero] = struct{}{}
	fx.mu.Unlock()
}

func (fx *fixedState) visitedCount() int {
	fx.mu.Lock()
	defer fx.mu.Unlock()
	return len(fx.seen)
}

// recurse grows ce one edge at a time. When fx.gr no longer embeds into
// ce's complement, ce itself is the witness. Otherwise every bit of the
// witness embedding is tried (in a randomly-rotated order, to spread the
// search across workers) as the next edge to add, skipping additions that
// would already let fx.gr embed into the result.
func recurse(fx *fixedState, ce graph.Graph) (graph.Graph, bool) {
	grtw, ok := subiso.FindSubIso(fx.gr, ce.Complement(), fx.row)
	if !ok {
		return ce, true
	}
	hi := bitword.HiBitIx(grtw.Bits()) + 1
	skew := rand.IntN(hi)
	for b := 0; b < hi; b++ {
		bb := b + skew
		if bb >= hi {
			bb -= hi
		}
		bit := bitword.One(bb)
		if grtw.Bits().And(bit).IsZero() {
			continue
		}
		grnext := graph.FromBits(fx.gr.Size(), ce.Bits().Or(bit))
		if subiso.IsSubIso(fx.gr, grnext, fx.row) {
			continue
		}
		grnext = canon.ToCanonical(grnext)
		switch fx.checkAndInsert(grnext.Bits()) {
		case abort:
			return graph.Graph{}, false
		case skip:
			continue
		}
		if ans, found := recurse(fx, grnext); found {
			fx.signalStop()
			return ans, true
		}
	}
	return graph.Graph{}, false
}

// Seek races one worker per one-edge retraction of gr, each growing its own
// candidate via recurse, and returns the first witness graph found (if
// any) along with the total number of canonical candidates visited across
// all workers. bailout caps the shared visited-set size as a safety valve.
func Seek(gr graph.Graph, bailout int) (graph.Graph, bool, int) {
	fx := &fixedState{
		gr:      gr,
		row:     subiso.BuildSortedRow(gr),
		bailout: bailout,
		seen:    make(map[bitword.Word]struct{}),
	}
	rets := Bump(gr, false)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result graph.Graph
		found  bool
	)
	for _, bits := range rets {
		seed := graph.FromBits(gr.Size(), bits)
		wg.Add(1)
		go func(seed graph.Graph) {
			defer wg.Done()
			ans, ok := recurse(fx, seed)
			if !ok {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if !found {
				found = true
				result = ans
			}
			fx.signalStop()
		}(seed)
	}
	wg.Wait()

	return result, found, fx.visitedCount()
}

// SeekFull is Seek with no bailout limit.
func SeekFull(gr graph.Graph) (graph.Graph, bool, int) {
	return Seek(gr, math.MaxInt)
}
