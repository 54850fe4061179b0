package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvopt/core"
	"github.com/katalvlaran/lvopt/dijkstra"
)

// graph builds a graph from "from,to,weight" triples, adding endpoints on demand.
func graph(t *testing.T, directed bool, edges ...[3]interface{}) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		from, to := e[0].(string), e[1].(string)
		for _, id := range []string{from, to} {
			if !g.HasVertex(id) {
				require.NoError(t, g.AddVertex(id))
			}
		}
		_, err := g.AddEdge(from, to, e[2].(float64))
		require.NoError(t, err)
	}

	return g
}

func triangle(t *testing.T, directed bool) *core.Graph {
	return graph(t, directed,
		[3]interface{}{"A", "B", 1.0},
		[3]interface{}{"B", "C", 2.0},
		[3]interface{}{"A", "C", 5.0},
	)
}

func TestValidation(t *testing.T) {
	g := triangle(t, false)

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource, "missing source is reported before nil graph")

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("Z"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

func TestTriangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t, false), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3}, dist)
}

func TestUndirectedEdgesWorkBothWays(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t, false), dijkstra.Source("C"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 3.0, dist["A"])
	assert.Equal(t, "B", prev["A"])
	assert.Equal(t, "C", prev["B"])
	assert.Equal(t, "", prev["C"])
}

func TestDirectedRespectsOrientation(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(triangle(t, true), dijkstra.Source("C"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist["C"])
	assert.True(t, math.IsInf(dist["A"], 1))
	assert.True(t, math.IsInf(dist["B"], 1))
}

func TestMaxDistance(t *testing.T) {
	g := graph(t, true,
		[3]interface{}{"A", "B", 1.0},
		[3]interface{}{"B", "C", 1.0},
		[3]interface{}{"C", "D", 1.0},
	)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["C"])
	assert.True(t, math.IsInf(dist["D"], 1))
	assert.Equal(t, "", prev["D"])
}

func TestInfEdgeThreshold(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(triangle(t, false), dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1), "both edges into C weigh >= 2")
}

func TestFractionalWeightsAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, id := range []string{"s", "m", "t"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range [][3]interface{}{{"s", "s", 0.0}, {"s", "m", 0.25}, {"m", "t", 0.5}, {"s", "t", 0.8}} {
		_, err := g.AddEdge(e[0].(string), e[1].(string), e[2].(float64))
		require.NoError(t, err)
	}

	path, total, err := dijkstra.ShortestPath(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "m", "t"}, path)
	assert.InDelta(t, 0.75, total, 1e-12)
}

func TestShortestPath(t *testing.T) {
	g := triangle(t, true)
	require.NoError(t, g.AddVertex("X"))

	path, total, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	assert.Equal(t, 3.0, total)

	path, total, err = dijkstra.ShortestPath(g, "B", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, path)
	assert.Equal(t, 0.0, total)

	_, _, err = dijkstra.ShortestPath(g, "A", "X")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, _, err = dijkstra.ShortestPath(g, "A", "nope")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}
