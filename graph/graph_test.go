package graph_test

import (
	"testing"

	"github.com/galenhuntington/ingraphs/bitword"
	"github.com/galenhuntington/ingraphs/graph"
	"github.com/galenhuntington/ingraphs/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleGraph() graph.Graph {
	// 0-1, 1-2, 0-2: a 3-cycle on 3 vertices.
	return graph.FromFn(3, func(a, b int) bool { return true })
}

func TestDegreeOfMatchesSlow(t *testing.T) {
	g := triangleGraph()
	for v := 0; v < g.Size(); v++ {
		assert.Equal(t, g.DegreeOfSlow(v), g.DegreeOf(v))
	}
}

func TestEdgeCount(t *testing.T) {
	g := triangleGraph()
	assert.Equal(t, 3, g.EdgeCount())
}

func TestComplementInvolution(t *testing.T) {
	g := graph.FromFn(5, func(a, b int) bool { return (a+b)%2 == 0 })
	assert.True(t, g.Complement().Complement().Bits().Equal(g.Bits()))
}

func TestComplementFlipsEdges(t *testing.T) {
	g := graph.FromFn(4, func(a, b int) bool { return false })
	c := g.Complement()
	assert.Equal(t, bitword.Triangle(4), c.EdgeCount())
}

func TestUnrenumberIdentity(t *testing.T) {
	g := graph.FromFn(4, func(a, b int) bool { return a == 0 })
	id := perm.Identity(4)
	require.True(t, g.Unrenumber(id).Bits().Equal(g.Bits()))
}

func TestUnrenumberRenumberRoundTrip(t *testing.T) {
	g := graph.FromFn(5, func(a, b int) bool { return (a*3+b)%2 == 0 })
	p := perm.NewUnsafe([]int{4, 3, 2, 1, 0})
	g2 := g.Unrenumber(p).Renumber(p)
	assert.True(t, g2.Bits().Equal(g.Bits()))
}

func TestIsSubgraphBitwiseReflexive(t *testing.T) {
	g := triangleGraph()
	assert.True(t, g.IsSubgraphBitwise(g))
}

func TestIsConnected(t *testing.T) {
	connected := graph.FromFn(3, func(a, b int) bool { return true })
	assert.True(t, connected.IsConnected())

	disconnected := graph.FromFn(3, func(a, b int) bool { return false })
	assert.False(t, disconnected.IsConnected())
}

func TestHasIsolatedVertex(t *testing.T) {
	g := graph.FromFn(3, func(a, b int) bool { return a == 0 || b == 0 })
	assert.False(t, g.HasIsolatedVertex())

	g2 := graph.FromFn(3, func(a, b int) bool { return false })
	assert.True(t, g2.HasIsolatedVertex())
}

func TestMaxDegree(t *testing.T) {
	star := graph.FromFn(4, func(a, b int) bool { return a == 0 || b == 0 })
	assert.Equal(t, 3, star.MaxDegree())
}

func TestStringFormatsEdges(t *testing.T) {
	g := graph.FromFn(3, func(a, b int) bool { return true })
	assert.Equal(t, "[0–1 0–2 1–2]", g.String())
}

func TestInferGraphMatchesFromBits(t *testing.T) {
	bits := bitword.One(bitword.RawIndex(0, 4))
	g := graph.InferGraph(bits)
	assert.Equal(t, 5, g.Size())
	assert.True(t, g.Bits().Equal(bits))
}

func TestCountSymmetriesTriangle(t *testing.T) {
	g := triangleGraph()
	assert.Equal(t, 6, g.CountSymmetries())
}

func TestCountSymmetriesPath(t *testing.T) {
	// Path 0-1-2-3: only automorphism besides identity is the reversal.
	path := graph.FromFn(4, func(a, b int) bool {
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		return hi == lo+1
	})
	assert.Equal(t, 2, path.CountSymmetries())
}

func TestCountSymmetriesEmpty(t *testing.T) {
	g := graph.FromFn(0, func(a, b int) bool { return false })
	assert.Equal(t, 1, g.CountSymmetries())
}
