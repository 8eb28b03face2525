package subiso_test

import (
	"testing"

	"github.com/galenhuntington/ingraphs/graph"
	"github.com/galenhuntington/ingraphs/subiso"
	"github.com/stretchr/testify/suite"
)

// IngraphCheckSuite exercises IngraphCheck across several sub/sup
// relationships: embeds directly, embeds only into the complement, and
// doesn't embed at all.
type IngraphCheckSuite struct {
	suite.Suite
}

func (s *IngraphCheckSuite) TestSelfEmbeds() {
	g := triangleFourCycle()
	row := subiso.BuildSortedRow(g)
	s.True(subiso.IngraphCheck(g, row, g))
}

func (s *IngraphCheckSuite) TestEmptyEmbedsIntoAnything() {
	sub := emptyGraph(4)
	sup := triangleFourCycle()
	row := subiso.BuildSortedRow(sub)
	s.True(subiso.IngraphCheck(sup, row, sub))
}

func (s *IngraphCheckSuite) TestTriangleEmbedsViaComplementOfEmpty() {
	sub := triangle()
	sup := emptyGraph(3)
	row := subiso.BuildSortedRow(sub)
	// sub embeds into sup's complement (the complement of the empty graph
	// is complete), so the check must succeed even though sub doesn't embed
	// into sup directly.
	s.True(subiso.IngraphCheck(sup, row, sub))
	s.False(subiso.IsSubgraphIso(sub, sup))
}

func (s *IngraphCheckSuite) TestTriangleFailsAgainstSparseGraphAndItsComplement() {
	sub := triangle()
	sup := graph.FromFn(3, func(a, b int) bool { return a == 0 && b == 1 })
	row := subiso.BuildSortedRow(sub)
	// sup has one edge, its complement has two: neither holds three mutual
	// edges, so sub (a triangle) can't embed into either.
	s.False(subiso.IngraphCheck(sup, row, sub))
}

func TestIngraphCheckSuite(t *testing.T) {
	suite.Run(t, new(IngraphCheckSuite))
}
