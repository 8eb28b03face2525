// Package subiso implements degree-ordered backtracking subgraph
// isomorphism between two graphs of equal order, plus the "ingraph"
// containment check built on top of it.
package subiso

import (
	"sort"

	"github.com/galenhuntington/ingraphs/bitword"
	"github.com/galenhuntington/ingraphs/graph"
	"github.com/galenhuntington/ingraphs/perm"
)

// unfilled is the sentinel for "no sub-vertex assigned to this slot".
const unfilled = -1

// VertexDeg pairs a vertex with its degree, as produced by BuildSortedRow.
type VertexDeg struct {
	Degree int
	Vertex int
}

// BuildSortedRow orders sub's vertices by degree descending (ties broken by
// vertex index descending), amortised once per sub across many matcher
// calls.
func BuildSortedRow(gr graph.Graph) []VertexDeg {
	n := gr.Size()
	row := make([]VertexDeg, n)
	for i := 0; i < n; i++ {
		row[i] = VertexDeg{Degree: gr.DegreeOf(i), Vertex: i}
	}
	sort.Slice(row, func(a, b int) bool {
		if row[a].Degree != row[b].Degree {
			return row[a].Degree < row[b].Degree
		}
		return row[a].Vertex < row[b].Vertex
	})
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
	return row
}

// search holds the mutable state of one backtracking attempt.
type search struct {
	sub, sup  graph.Graph
	subSorted []VertexDeg
	supRow    []int
	assign    []int // assign[j] = sub-vertex mapped to sup-slot j, or unfilled
}

func (s *search) step(i int) bool {
	vd := s.subSorted[i]
	elDeg, el := vd.Degree, vd.Vertex
	size := len(s.assign)
outer:
	for j := 0; j < size; j++ {
		if s.assign[j] != unfilled {
			continue
		}
		if elDeg > s.supRow[j] {
			continue
		}
		if i > 0 {
			for k := 0; k < size; k++ {
				v := s.assign[k]
				if v != unfilled && s.sub.HasEdge(el, v) && !s.sup.HasEdge(j, k) {
					continue outer
				}
			}
		}
		s.assign[j] = el
		if i == size-1 || s.step(i+1) {
			return true
		}
		s.assign[j] = unfilled
	}
	return false
}

// find runs the backtracking search; on success, returns the assignment
// (assign[j] = sub-vertex at sup-slot j) that both IsSubIso and FindSubIso
// derive their answer from.
func find(sub, sup graph.Graph, subSorted []VertexDeg) ([]int, bool) {
	size := sub.Size()
	if size == 0 {
		return []int{}, true
	}
	s := &search{
		sub:       sub,
		sup:       sup,
		subSorted: subSorted,
		supRow:    sup.DegreeRow(),
		assign:    make([]int, size),
	}
	for i := range s.assign {
		s.assign[i] = unfilled
	}
	if s.step(0) {
		return s.assign, true
	}
	return nil, false
}

// IsSubIso decides whether there is an injection phi: V(sub) -> V(sup) such
// that every sub-edge (u,v) maps to a sup-edge (phi(u),phi(v)). subSorted
// must be BuildSortedRow(sub).
func IsSubIso(sub, sup graph.Graph, subSorted []VertexDeg) bool {
	_, ok := find(sub, sup, subSorted)
	return ok
}

// IsSubgraphIso is IsSubIso with subSorted computed internally, for
// one-off callers.
func IsSubgraphIso(sub, sup graph.Graph) bool {
	return IsSubIso(sub, sup, BuildSortedRow(sub))
}

// FindSubIso returns the mapped graph sub.Unrenumber(phi) expressed in
// sup's vertex numbering, or ok=false if no embedding exists.
func FindSubIso(sub, sup graph.Graph, subSorted []VertexDeg) (graph.Graph, bool) {
	assign, ok := find(sub, sup, subSorted)
	if !ok {
		return graph.Graph{}, false
	}
	return sub.Unrenumber(perm.NewUnsafe(assign)), true
}

// IngraphCheck reports whether sub embeds into sup or into sup's
// complement.
func IngraphCheck(sup graph.Graph, subSorted []VertexDeg, sub graph.Graph) bool {
	isup := sup.Complement()
	return IsSubIso(sub, isup, subSorted) || IsSubIso(sub, sup, subSorted)
}

// Noncovers filters sups down to those with edge count >= ceil(triangle(n)/2)
// for which IngraphCheck fails against sub — i.e. candidate witnesses that
// sub is not an ingraph.
func Noncovers(sups []bitword.Word, sub graph.Graph) []bitword.Word {
	subSorted := BuildSortedRow(sub)
	minEdges := (bitword.Triangle(sub.Size()) + 1) / 2
	var out []bitword.Word
	for _, supBits := range sups {
		if supBits.Popcount() < minEdges {
			continue
		}
		supG := graph.FromBits(sub.Size(), supBits)
		if !IngraphCheck(supG, subSorted, sub) {
			out = append(out, supBits)
		}
	}
	return out
}
