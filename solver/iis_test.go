package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvopt/model"
	"github.com/katalvlaran/lvopt/solver"
)

func TestComputeIISAllocation(t *testing.T) {
	s := solver.New()
	names, err := s.ComputeIIS(context.Background(), allocationModel(t, 15))
	require.NoError(t, err)
	assert.Equal(t, []string{"demand", "constr_0"}, names)
}

func TestComputeIISFeasibleModel(t *testing.T) {
	s := solver.New()
	_, err := s.ComputeIIS(context.Background(), allocationModel(t, 4))
	require.ErrorIs(t, err, solver.ErrNotInfeasible)

	_, err = s.ComputeIIS(context.Background(), nil)
	require.ErrorIs(t, err, solver.ErrNilModel)
}

// TestComputeIISMinimal checks irreducibility: the returned set is infeasible,
// and dropping any single member leaves a feasible subsystem.
func TestComputeIISMinimal(t *testing.T) {
	build := func(keep map[string]bool) *model.Model {
		m := model.New("iis")
		x, _ := m.AddVar("x", 0, model.Inf, model.Continuous)
		y, _ := m.AddVar("y", 0, model.Inf, model.Continuous)
		require.NoError(t, m.SetObjective(model.Expr{{Var: x, Coef: 1}}, model.Maximize))
		rows := []struct {
			name string
			expr model.Expr
			rel  model.Relation
			rhs  float64
		}{
			{"roomy", model.Expr{{Var: x, Coef: 1}, {Var: y, Coef: 1}}, model.LE, 100},
			{"x_min", model.Expr{{Var: x, Coef: 1}}, model.GE, 5},
			{"y_cap", model.Expr{{Var: y, Coef: 1}}, model.LE, 10},
			{"x_max", model.Expr{{Var: x, Coef: 1}}, model.LE, 3},
		}
		for _, r := range rows {
			if keep == nil || keep[r.name] {
				_, err := m.AddConstraint(r.name, r.expr, r.rel, r.rhs)
				require.NoError(t, err)
			}
		}

		return m
	}

	s := solver.New()
	ctx := context.Background()
	names, err := s.ComputeIIS(ctx, build(nil))
	require.NoError(t, err)
	require.Equal(t, []string{"x_min", "x_max"}, names)

	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	res, err := s.Solve(ctx, build(set))
	require.NoError(t, err)
	assert.Equal(t, solver.StatusInfeasible, res.Status)

	for _, drop := range names {
		sub := map[string]bool{}
		for _, n := range names {
			sub[n] = n != drop
		}
		res, err = s.Solve(ctx, build(sub))
		require.NoError(t, err)
		assert.Equal(t, solver.StatusOptimal, res.Status, "without %s", drop)
	}
}

func TestComputeIISHonoursIntegrality(t *testing.T) {
	// 2z == 1 has a fractional solution only.
	m := model.New("parity")
	z, _ := m.AddVar("z", 0, 10, model.Integer)
	_, err := m.AddConstraint("half", model.Expr{{Var: z, Coef: 2}}, model.EQ, 1)
	require.NoError(t, err)

	s := solver.New()
	res, err := s.Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, solver.StatusInfeasible, res.Status)

	names, err := s.ComputeIIS(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, []string{"half"}, names)
}
