// Package satcheck provides a SAT-encoded subgraph-isomorphism oracle used
// as an independent cross-check against package subiso's backtracking
// matcher: two independent implementations of the same predicate should
// agree. The encoding is a permutation-matrix of placement variables plus
// adjacency clauses, solved with a general-purpose SAT solver.
package satcheck

import (
	"github.com/crillab/gophersat/solver"

	"github.com/galenhuntington/ingraphs/graph"
)

// IsSubIso decides, via SAT, whether there is an injection phi: V(sub) ->
// V(sup) such that every sub-edge maps to a sup-edge. sub and sup must
// have equal order — with equal order, an injection is automatically a
// bijection, so the encoding is a permutation matrix: each sub-vertex in
// exactly one sup-slot, each sup-slot holding exactly one sub-vertex.
func IsSubIso(sub, sup graph.Graph) bool {
	n := sub.Size()
	if n != sup.Size() {
		panic("satcheck: IsSubIso requires sub and sup of equal order")
	}
	if n == 0 {
		return true
	}

	// varIdx(v, j) is the 1-indexed SAT variable for "sub-vertex v sits at
	// sup-slot j".
	varIdx := func(v, j int) int { return v*n + j + 1 }

	var clauses [][]int

	// Each sub-vertex occupies at least one slot.
	for v := 0; v < n; v++ {
		clause := make([]int, n)
		for j := 0; j < n; j++ {
			clause[j] = varIdx(v, j)
		}
		clauses = append(clauses, clause)
	}
	// Each sub-vertex occupies at most one slot.
	for v := 0; v < n; v++ {
		for j1 := 0; j1 < n; j1++ {
			for j2 := j1 + 1; j2 < n; j2++ {
				clauses = append(clauses, []int{-varIdx(v, j1), -varIdx(v, j2)})
			}
		}
	}
	// Each slot holds at least one sub-vertex.
	for j := 0; j < n; j++ {
		clause := make([]int, n)
		for v := 0; v < n; v++ {
			clause[v] = varIdx(v, j)
		}
		clauses = append(clauses, clause)
	}
	// Each slot holds at most one sub-vertex.
	for j := 0; j < n; j++ {
		for v1 := 0; v1 < n; v1++ {
			for v2 := v1 + 1; v2 < n; v2++ {
				clauses = append(clauses, []int{-varIdx(v1, j), -varIdx(v2, j)})
			}
		}
	}
	// Adjacency-preserving: every sub-edge must land on a sup-edge.
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !sub.HasEdgeRaw(u, v) {
				continue
			}
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					if j == k || sup.HasEdge(j, k) {
						continue
					}
					clauses = append(clauses, []int{-varIdx(u, j), -varIdx(v, k)})
				}
			}
		}
	}

	problem := solver.ParseSlice(clauses)
	s := solver.New(problem)
	return s.Solve() == solver.Sat
}
