package seeker_test

import (
	"testing"

	"github.com/galenhuntington/ingraphs/graph"
	"github.com/galenhuntington/ingraphs/seeker"
	"github.com/galenhuntington/ingraphs/subiso"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SeekSuite exercises Seek against several small seed graphs, checking that
// the search always terminates and that the seed embeds neither into any
// witness it returns nor into that witness's complement.
type SeekSuite struct {
	suite.Suite
}

func (s *SeekSuite) checkWitness(seed graph.Graph, bailout int) {
	ans, found, visited := seeker.Seek(seed, bailout)
	require.LessOrEqual(s.T(), visited, bailout)
	if !found {
		return
	}
	row := subiso.BuildSortedRow(seed)
	require.False(s.T(), subiso.IsSubIso(seed, ans, row))
	require.False(s.T(), subiso.IsSubIso(seed, ans.Complement(), row))
}

func (s *SeekSuite) TestEmptySeed() {
	s.checkWitness(graph.FromFn(4, func(a, b int) bool { return false }), 200)
}

func (s *SeekSuite) TestTriangleSeed() {
	s.checkWitness(graph.FromFn(3, func(a, b int) bool { return true }), 200)
}

func (s *SeekSuite) TestPathSeed() {
	path := graph.FromFn(5, func(a, b int) bool {
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		return hi == lo+1
	})
	s.checkWitness(path, 200)
}

func TestSeekSuite(t *testing.T) {
	suite.Run(t, new(SeekSuite))
}
