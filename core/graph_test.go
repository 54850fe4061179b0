package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvopt/core"
)

// GraphSuite exercises vertex and edge lifecycle rules.
type GraphSuite struct {
	suite.Suite
}

func (s *GraphSuite) TestAddVertexValidation() {
	g := core.NewGraph()

	require.ErrorIs(s.T(), g.AddVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(s.T(), g.AddVertex("a b"), core.ErrInvalidVertexID)
	require.ErrorIs(s.T(), g.AddVertex("é"), core.ErrInvalidVertexID)
	require.NoError(s.T(), g.AddVertex("node_1-A"))
	require.ErrorIs(s.T(), g.AddVertex("node_1-A"), core.ErrDuplicateVertex)
	assert.Equal(s.T(), 1, g.VertexCount())
}

func (s *GraphSuite) TestAddEdgeRequiresEndpoints() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddVertex("A"))

	_, err := g.AddEdge("A", "B", 1)
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
	assert.False(s.T(), g.HasVertex("B"), "endpoints are never created implicitly")
	assert.Zero(s.T(), g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeWeights() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddVertex("A"))
	require.NoError(s.T(), g.AddVertex("B"))

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := g.AddEdge("A", "B", w)
		require.ErrorIs(s.T(), err, core.ErrBadWeight, "weight %v", w)
	}
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.SetEdgeWeight(eid, 2.5))
	require.ErrorIs(s.T(), g.SetEdgeWeight(eid, -2), core.ErrBadWeight)

	e, err := g.GetEdge(eid)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2.5, e.Weight)
}

func (s *GraphSuite) TestLoopsAndMultiEdges() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex("A"))
	require.NoError(s.T(), g.AddVertex("B"))

	_, err := g.AddEdge("A", "A", 1)
	require.ErrorIs(s.T(), err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 1)
	require.NoError(s.T(), err)
	// Undirected: B-A is the same pair.
	_, err = g.AddEdge("B", "A", 1)
	require.ErrorIs(s.T(), err, core.ErrMultiEdgeNotAllowed)

	m := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	require.NoError(s.T(), m.AddVertex("A"))
	require.NoError(s.T(), m.AddVertex("B"))
	_, err = m.AddEdge("A", "B", 1)
	require.NoError(s.T(), err)
	_, err = m.AddEdge("A", "B", 2)
	require.NoError(s.T(), err)
	_, err = m.AddEdge("A", "A", 3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 3, m.EdgeCount())
}

func (s *GraphSuite) TestUndirectedMirroring() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddVertex("A"))
	require.NoError(s.T(), g.AddVertex("B"))
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(s.T(), err)

	assert.True(s.T(), g.HasEdge("A", "B"))
	assert.True(s.T(), g.HasEdge("B", "A"))

	ids, err := g.NeighborIDs("B")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"A"}, ids)

	require.NoError(s.T(), g.RemoveEdgeBetween("B", "A"))
	assert.Zero(s.T(), g.EdgeCount())
	assert.False(s.T(), g.HasEdge("A", "B"))
	require.ErrorIs(s.T(), g.RemoveEdgeBetween("A", "B"), core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestDirectedNeighbors() {
	g := core.NewGraph(core.WithDirected(true))
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(s.T(), g.AddVertex(v))
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 1)

	out, err := g.Neighbors("A")
	require.NoError(s.T(), err)
	require.Len(s.T(), out, 1)
	assert.Equal(s.T(), "B", out[0].To)
	assert.False(s.T(), g.HasEdge("B", "A"))

	_, err = g.Neighbors("Z")
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestRenameVertex() {
	g := core.NewGraph(core.WithDirected(true))
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(s.T(), g.AddVertex(v))
	}
	ab, _ := g.AddEdge("A", "B", 1)
	cb, _ := g.AddEdge("C", "B", 2)

	require.ErrorIs(s.T(), g.RenameVertex("B", "A"), core.ErrDuplicateVertex)
	require.ErrorIs(s.T(), g.RenameVertex("Q", "R"), core.ErrVertexNotFound)
	require.ErrorIs(s.T(), g.RenameVertex("B", "bad name"), core.ErrInvalidVertexID)
	require.NoError(s.T(), g.RenameVertex("B", "B"))

	require.NoError(s.T(), g.RenameVertex("B", "Hub"))
	assert.False(s.T(), g.HasVertex("B"))
	assert.True(s.T(), g.HasEdge("A", "Hub"))
	assert.True(s.T(), g.HasEdge("C", "Hub"))

	e, err := g.GetEdge(ab)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Hub", e.To)
	e, err = g.GetEdge(cb)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2.0, e.Weight)
}

func (s *GraphSuite) TestRemoveVertexDropsIncidentEdges() {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(s.T(), g.AddVertex(v))
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "C", 1)

	require.NoError(s.T(), g.RemoveVertex("B"))
	require.ErrorIs(s.T(), g.RemoveVertex("B"), core.ErrVertexNotFound)
	assert.Equal(s.T(), []string{"A", "C"}, g.Vertices())
	assert.Equal(s.T(), 1, g.EdgeCount())
	assert.False(s.T(), g.HasEdge("C", "B"))
}

func (s *GraphSuite) TestEdgesInsertionOrder() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	require.NoError(s.T(), g.AddVertex("A"))
	require.NoError(s.T(), g.AddVertex("B"))
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B", float64(i))
		require.NoError(s.T(), err)
	}
	edges := g.Edges()
	require.Len(s.T(), edges, 12)
	for i, e := range edges {
		assert.Equal(s.T(), float64(i), e.Weight, "e10 must not sort before e2")
	}

	first, err := g.EdgeBetween("A", "B")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "e1", first.ID)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(s.T(), g.AddVertex("A"))
	require.NoError(s.T(), g.AddVertex("B"))
	eid, _ := g.AddEdge("A", "B", 1)

	c := g.Clone()
	require.NoError(s.T(), c.SetEdgeWeight(eid, 9))
	orig, _ := g.GetEdge(eid)
	assert.Equal(s.T(), 1.0, orig.Weight)
	assert.True(s.T(), c.Directed())

	next, err := c.AddEdge("B", "A", 1)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "e2", next)

	g.Clear()
	assert.Zero(s.T(), g.VertexCount())
	assert.Equal(s.T(), 2, c.VertexCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
