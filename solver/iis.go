package solver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvopt/model"
)

// ComputeIIS returns the names of an irreducible infeasible subsystem of m:
// a set of constraints that is infeasible together with the variable bounds,
// but becomes feasible when any single member is removed.
//
// Deletion filter: every constraint is tentatively dropped in model order and
// stays dropped when the remainder is still infeasible. Feasibility is decided
// with a zero objective, so an unbounded objective never masks a feasible
// point. Names come back in model order.
//
// Errors: ErrNilModel, model validation errors, ErrNotInfeasible, ctx.Err(),
// and the solver error of any StatusOther test solve.
func (s *Simplex) ComputeIIS(ctx context.Context, m *model.Model) ([]string, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	log := s.opts.Logger.With("component", "iis", "model", m.Name())

	base := newProblem(m).feasibilityOnly()
	active := make([]bool, len(base.rows))
	for i := range active {
		active[i] = true
	}

	feasible, err := s.feasible(ctx, base.withActive(active))
	if err != nil {
		return nil, err
	}
	if feasible {
		return nil, ErrNotInfeasible
	}

	for i := range base.rows {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		active[i] = false
		trial := make([]bool, len(active))
		copy(trial, active)
		feasible, err = s.feasible(ctx, base.withActive(trial))
		if err != nil {
			return nil, err
		}
		if feasible {
			// Needed for the conflict.
			active[i] = true
		}
		log.Debug("iis step", "constraint", base.rows[i].name, "kept", active[i])
	}

	var names []string
	for i, keep := range active {
		if keep {
			names = append(names, base.rows[i].name)
		}
	}

	return names, nil
}

// feasible reports whether p admits a point, honouring integrality.
func (s *Simplex) feasible(ctx context.Context, p *problem) (bool, error) {
	res, err := s.search(ctx, p)
	if err != nil {
		return false, err
	}
	switch res.Status {
	case StatusOptimal, StatusUnbounded:
		return true, nil
	case StatusInfeasible:
		return false, nil
	default:
		return false, fmt.Errorf("solver: feasibility test failed: %w", res.Err)
	}
}
