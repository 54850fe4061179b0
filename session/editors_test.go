package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvopt/allocation"
	"github.com/katalvlaran/lvopt/blend"
	"github.com/katalvlaran/lvopt/core"
	"github.com/katalvlaran/lvopt/linprog"
	"github.com/katalvlaran/lvopt/model"
	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/session"
	"github.com/katalvlaran/lvopt/shortestpath"
)

func TestGraphEditor(t *testing.T) {
	e := session.NewGraphEditor(core.WithDirected(true))
	require.NoError(t, e.AddNode(" A "))
	require.NoError(t, e.AddNode("B"))
	require.ErrorIs(t, e.AddNode("has space"), core.ErrInvalidVertexID)
	require.ErrorIs(t, e.AddNode("B"), core.ErrDuplicateVertex)

	require.ErrorIs(t, e.AddEdge("A", "B", "heavy"), session.ErrBadNumber)
	require.ErrorIs(t, e.AddEdge("A", "B", "-2"), core.ErrBadWeight)
	require.ErrorIs(t, e.AddEdge("A", "Z", "1"), core.ErrVertexNotFound)
	assert.Zero(t, e.Graph().EdgeCount(), "failed edits leave the graph unchanged")

	require.NoError(t, e.AddEdge("A", "B", "1.5"))
	require.NoError(t, e.SetEdgeWeight("A", "B", "4"))
	edge, err := e.Graph().EdgeBetween("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 4.0, edge.Weight)

	start, end := e.Endpoints()
	assert.Equal(t, shortestpath.Unselected, start)
	assert.Equal(t, shortestpath.Unselected, end)
	require.ErrorIs(t, e.SetStart("Z"), core.ErrVertexNotFound)
	require.NoError(t, e.SetStart("A"))
	require.NoError(t, e.SetEnd("B"))

	require.NoError(t, e.RenameNode("A", "S"))
	start, _ = e.Endpoints()
	assert.Equal(t, "S", start)

	require.NoError(t, e.RemoveNode("B"))
	_, end = e.Endpoints()
	assert.Equal(t, shortestpath.Unselected, end)
	assert.Zero(t, e.Graph().EdgeCount())

	require.NoError(t, e.SetEnd(shortestpath.Unselected))
	e.Clear()
	assert.Zero(t, e.Graph().VertexCount())
}

func TestGraphEditorLoadReplaces(t *testing.T) {
	src := session.NewGraphEditor()
	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, src.AddNode(n))
	}
	require.NoError(t, src.AddEdge("A", "B", "1"))
	require.NoError(t, src.AddEdge("B", "C", "2"))
	path := filepath.Join(t.TempDir(), "g.csv")
	require.NoError(t, src.Save(path))

	dst := session.NewGraphEditor()
	require.NoError(t, dst.AddNode("old"))
	require.NoError(t, dst.SetStart("old"))
	require.NoError(t, dst.Load(path))

	assert.Equal(t, []string{"A", "B", "C"}, dst.Graph().Vertices())
	assert.Equal(t, 2, dst.Graph().EdgeCount())
	start, _ := dst.Endpoints()
	assert.Equal(t, shortestpath.Unselected, start)

	require.Error(t, dst.Load(filepath.Join(t.TempDir(), "missing.csv")))
	assert.Equal(t, 3, dst.Graph().VertexCount(), "a failed load keeps the current graph")
}

func TestAllocationEditor(t *testing.T) {
	e := session.NewAllocationEditor()
	require.ErrorIs(t, e.AddCost("two"), session.ErrBadNumber)
	require.NoError(t, e.AddCost("2"))
	require.NoError(t, e.AddCost("3"))

	var mismatch *allocation.ConstraintLengthMismatchError
	require.ErrorAs(t, e.AddConstraint("1 1 1", "10"), &mismatch)
	require.ErrorIs(t, e.AddConstraint("1, x", "10"), session.ErrBadNumber)
	require.ErrorIs(t, e.AddConstraint("", "10"), session.ErrBadNumber)
	assert.Empty(t, e.Instance().Constraints)

	require.NoError(t, e.AddConstraint("1;1", "10"))
	require.NoError(t, e.SetConstraint(0, "1, 2", "12"))
	assert.Equal(t, []allocation.Row{{Coefs: []float64{1, 2}, RHS: 12}}, e.Instance().Constraints)
	require.ErrorIs(t, e.SetConstraint(3, "1, 2", "12"), allocation.ErrRowOutOfRange)

	require.NoError(t, e.SetDemand("4"))
	require.NoError(t, e.SetMaxValue("7"))
	require.ErrorIs(t, e.SetMaxValue("-1"), allocation.ErrBadMaxValue)
	assert.Equal(t, 7.0, *e.Instance().MaxValue)

	path := filepath.Join(t.TempDir(), "a.csv")
	require.NoError(t, e.Save(path))
	require.True(t, e.PopConstraint())
	require.True(t, e.PopCost())
	require.NoError(t, e.Load(path))
	assert.Equal(t, []float64{2, 3}, e.Instance().Costs)
	assert.Equal(t, 4.0, e.Instance().Demand, "demand survives a load")
	require.NotNil(t, e.Instance().MaxValue)

	require.NoError(t, e.SetMaxValue(" "))
	assert.Nil(t, e.Instance().MaxValue)
	e.Clear()
	assert.False(t, e.PopCost())
	assert.False(t, e.PopConstraint())
}

func TestLPEditor(t *testing.T) {
	e := session.NewLPEditor()
	require.NoError(t, e.AddVariable("x", "1"))
	require.NoError(t, e.AddVariable("y", "2"))
	require.ErrorIs(t, e.AddVariable("x", "3"), linprog.ErrDuplicateVariable)

	var bad *linprog.InvalidConstraintSenseError
	require.ErrorAs(t, e.AddConstraint("1 1", "=>", "4"), &bad)
	assert.Empty(t, e.Problem().Rows)
	require.NoError(t, e.AddConstraint("1 1", ">=", "4"))

	require.Error(t, e.SetObjective("upwards"))
	assert.Equal(t, model.Minimize, e.Problem().Objective)
	require.NoError(t, e.SetObjective("MAX"))
	assert.Equal(t, model.Maximize, e.Problem().Objective)

	path := filepath.Join(t.TempDir(), "lp.yaml")
	require.NoError(t, e.Save(path))
	require.NoError(t, e.RemoveConstraint(0))
	require.NoError(t, e.Load(path))
	assert.Len(t, e.Problem().Rows, 1)
	assert.Equal(t, model.Maximize, e.Problem().Objective)

	e.Clear()
	assert.Empty(t, e.Problem().Variables)
}

func TestLPEditorVariableAfterRows(t *testing.T) {
	e := session.NewLPEditor()
	require.NoError(t, e.AddVariable("x", "1"))
	require.NoError(t, e.AddConstraint("1", ">=", "2"))
	require.NoError(t, e.AddVariable("y", "3"))
	assert.Equal(t, []float64{1, 0}, e.Problem().Rows[0].Coefs)

	out := session.NewRunner().Solve(context.Background(), e.Problem())
	require.Equal(t, outcome.Optimal, out.Kind, out.Message())
	assert.InDelta(t, 2, out.Objective, 1e-6)
	y, ok := out.Value("y")
	require.True(t, ok)
	assert.InDelta(t, 0, y, 1e-6)
}

func TestBlendEditor(t *testing.T) {
	e := session.NewBlendEditor()
	assert.Len(t, e.Problem().Ingredients, 5)

	require.ErrorIs(t, e.SetIncluded("unobtainium", false), session.ErrUnknownIngredient)
	require.NoError(t, e.SetIncluded("substance B", false))
	assert.Len(t, e.Problem().Included(), 4)

	require.ErrorIs(t, e.SetStock("substance A", "-5"), blend.ErrBadIngredient)
	require.NoError(t, e.SetStock("substance A", "50"))
	require.ErrorIs(t, e.SetQuantity("0"), blend.ErrBadQuantity)
	require.NoError(t, e.SetQuantity("10"))

	dup := blend.Ingredient{Name: "substance A", Cost: 1, Stock: 1}
	require.ErrorIs(t, e.AddIngredient(dup), blend.ErrBadIngredient)
	assert.Len(t, e.Problem().Ingredients, 5)
	require.NoError(t, e.AddIngredient(blend.Ingredient{Name: "filler", Cost: 1, Bioavailability: 60, Stability: 6, Stock: 10}))
	assert.Len(t, e.Problem().Ingredients, 6)

	require.NoError(t, e.SetMinImpurity("0.2"))
	require.NotNil(t, e.Problem().Limits.MinImpurity)
	require.NoError(t, e.SetMinImpurity(""))
	assert.Nil(t, e.Problem().Limits.MinImpurity)
	require.ErrorIs(t, e.SetMinToxicity("low"), session.ErrBadNumber)

	path := filepath.Join(t.TempDir(), "blend.yaml")
	require.NoError(t, e.Save(path))
	e.Reset()
	assert.Len(t, e.Problem().Ingredients, 5)
	require.NoError(t, e.Load(path))
	assert.Len(t, e.Problem().Ingredients, 6)
	assert.Equal(t, 10.0, e.Problem().TotalQuantity)
}
