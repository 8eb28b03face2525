// Package graph implements the immutable bit-packed graph value type: an
// order (vertex count) paired with a bitword.Word over the strict upper
// triangle of the adjacency matrix.
package graph

import (
	"fmt"
	"strings"

	"github.com/galenhuntington/ingraphs/bitword"
	"github.com/galenhuntington/ingraphs/perm"
)

// Graph is the pair (size, edges). Zero value is the edgeless graph of
// order 0; all transformations return new values.
type Graph struct {
	size  int
	edges bitword.Word
}

// FromBits constructs a Graph of the given order from a raw triangle
// bitword. It does not enforce bits < 2^triangle(size); callers (the
// enumerator, the canonicalizer) rely on higher bits being zero.
func FromBits(size int, bits bitword.Word) Graph { return Graph{size: size, edges: bits} }

// InferGraph builds a Graph from a raw bitword alone, inferring its order
// from the position of the highest set bit.
func InferGraph(bits bitword.Word) Graph {
	return Graph{size: bitword.InferSize(bits), edges: bits}
}

// FromFn builds a graph of the given order from a symmetric edge predicate.
func FromFn(size int, has func(a, b int) bool) Graph {
	var edges bitword.Word
	for b := 1; b < size; b++ {
		for a := 0; a < b; a++ {
			if has(a, b) {
				edges = edges.SetBit(bitword.RawIndex(a, b))
			}
		}
	}
	return Graph{size: size, edges: edges}
}

func (g Graph) Size() int          { return g.size }
func (g Graph) Bits() bitword.Word { return g.edges }

// HasEdge reports whether a and b are adjacent; false whenever a == b.
func (g Graph) HasEdge(a, b int) bool {
	return a != b && g.edges.Bit(bitword.Index(a, b))
}

// HasEdgeRaw assumes a < b (the caller guarantees ordering).
func (g Graph) HasEdgeRaw(a, b int) bool {
	return g.edges.Bit(bitword.RawIndex(a, b))
}

// EdgeCount is the popcount of the triangle bitword.
func (g Graph) EdgeCount() int { return g.edges.Popcount() }

// DegreeOfSlow computes deg(v) by scanning all other vertices; used to
// cross-check DegreeOf in tests.
func (g Graph) DegreeOfSlow(v int) int {
	n := 0
	for u := 0; u < g.size; u++ {
		if g.HasEdge(v, u) {
			n++
		}
	}
	return n
}

// DegreeOf computes deg(v) via the precomputed EDGE_VECS mask.
func (g Graph) DegreeOf(v int) int {
	return g.edges.And(bitword.EdgeVecs()[v]).Popcount()
}

// DegreeRow is deg(0..size).
func (g Graph) DegreeRow() []int {
	row := make([]int, g.size)
	for i := range row {
		row[i] = g.DegreeOf(i)
	}
	return row
}

// SortedDegreeRow is DegreeRow, sorted ascending.
func (g Graph) SortedDegreeRow() []int {
	row := g.DegreeRow()
	sortInts(row)
	return row
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// Unrenumber returns the graph G' such that, for all a<b,
// G'.edge(a,b) = G.edge(p(a), p(b)).
func (g Graph) Unrenumber(p perm.Perm) Graph {
	return FromFn(g.size, func(a, b int) bool {
		return g.HasEdge(p.Apply(a), p.Apply(b))
	})
}

// Renumber is Unrenumber(p.Inverse()): G'.edge(a,b) = G.edge(p^-1(a), p^-1(b)).
func (g Graph) Renumber(p perm.Perm) Graph { return g.Unrenumber(p.Inverse()) }

// Complement flips every triangle bit within the valid range.
func (g Graph) Complement() Graph {
	mask := bitword.Low(bitword.Triangle(g.size))
	return Graph{size: g.size, edges: g.edges.Xor(mask)}
}

// IsSubgraphBitwise is labelled containment: self.bits & ~other.bits == 0.
// Not isomorphic containment; see package subiso for that.
func (g Graph) IsSubgraphBitwise(other Graph) bool {
	return g.edges.AndNot(other.edges).IsZero()
}

// IsConnected, HasIsolatedVertex and MaxDegree are structural queries over
// the adjacency relation, generalized to the bitword.Word representation.
func (g Graph) IsConnected() bool {
	if g.size == 0 {
		return true
	}
	if g.size == 1 {
		return true
	}
	visited := uint32(1)
	queue := []int{0}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for u := 0; u < g.size; u++ {
			if g.HasEdge(v, u) && visited&(1<<uint(u)) == 0 {
				visited |= 1 << uint(u)
				queue = append(queue, u)
			}
		}
	}
	return visited == (uint32(1)<<uint(g.size))-1
}

func (g Graph) HasIsolatedVertex() bool {
	for v := 0; v < g.size; v++ {
		if g.DegreeOf(v) == 0 {
			return true
		}
	}
	return false
}

func (g Graph) MaxDegree() int {
	max := 0
	for v := 0; v < g.size; v++ {
		if d := g.DegreeOf(v); d > max {
			max = d
		}
	}
	return max
}

// String pretty-prints edges as "[a–b a–b ...]" (a<b) in ascending (b,a)
// lex order: by higher endpoint, then by lower endpoint.
func (g Graph) String() string {
	var parts []string
	for b := 1; b < g.size; b++ {
		for a := 0; a < b; a++ {
			if g.HasEdgeRaw(a, b) {
				parts = append(parts, fmt.Sprintf("%d–%d", a, b))
			}
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ShowBits is a grouped binary display of the triangle bits.
func (g Graph) ShowBits() string { return bitword.ShowBits(g.edges) }
