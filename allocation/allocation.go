// Package allocation holds the resource-allocation instance and turns it into
// the LP
//
//	minimize    Σ c_i·x_i
//	subject to  Σ x_i >= Demand              (demand, only when Demand > 0)
//	            Σ a_ji·x_i <= b_j            (constr_<j>)
//	            0 <= x_i <= MaxValue         (upper bound only when MaxValue is set)
//
// Costs and constraint rows behave like stacks for interactive editing
// (AddCost/PopCost, AddConstraint/PopConstraint) and can also be replaced in
// place (SetConstraint) or wholesale (Clear, CSV load).
package allocation

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/model"
	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/solver"
)

// Kind labels this problem family in logs and metrics.
const Kind = "allocation"

// Sentinel errors for allocation instances.
var (
	// ErrNoData indicates an instance without costs or without constraints.
	ErrNoData = errors.New("allocation: add costs and constraints first")

	// ErrNotFinite indicates a NaN or infinite number.
	ErrNotFinite = errors.New("allocation: value must be a finite number")

	// ErrBadMaxValue indicates a negative shared upper bound.
	ErrBadMaxValue = errors.New("allocation: max value must be >= 0")

	// ErrRowOutOfRange indicates a constraint index outside the table.
	ErrRowOutOfRange = errors.New("allocation: constraint index out of range")
)

// ConstraintLengthMismatchError reports a constraint row whose coefficient
// count differs from the number of costs.
type ConstraintLengthMismatchError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ConstraintLengthMismatchError) Error() string {
	return fmt.Sprintf("allocation: constraint %d has %d coefficients, expected %d", e.Row, e.Actual, e.Expected)
}

// Row is one <= constraint: Σ Coefs[i]·x_i <= RHS.
type Row struct {
	Coefs []float64
	RHS   float64
}

// Instance is the editable allocation problem.
type Instance struct {
	Costs       []float64
	Constraints []Row
	Demand      float64
	MaxValue    *float64
}

// Kind implements the runner's problem contract.
func (in *Instance) Kind() string { return Kind }

// Build implements the runner's problem contract.
func (in *Instance) Build() (*model.Model, error) { return Build(in) }

// Finish labels the objective as a cost.
func (in *Instance) Finish(_ *model.Model, _ *solver.Result, out *outcome.Outcome) error {
	out.ObjectiveLabel = "Total Cost"

	return nil
}

// AddCost appends one variable cost.
func (in *Instance) AddCost(c float64) error {
	if !finite(c) {
		return ErrNotFinite
	}
	in.Costs = append(in.Costs, c)

	return nil
}

// PopCost removes the most recently added cost. ok is false when none exist.
func (in *Instance) PopCost() (c float64, ok bool) {
	n := len(in.Costs)
	if n == 0 {
		return 0, false
	}
	c = in.Costs[n-1]
	in.Costs = in.Costs[:n-1]

	return c, true
}

// AddConstraint appends a <= row. The row must have one coefficient per cost.
func (in *Instance) AddConstraint(coefs []float64, rhs float64) error {
	if err := in.checkRow(len(in.Constraints), coefs, rhs); err != nil {
		return err
	}
	in.Constraints = append(in.Constraints, Row{Coefs: clone(coefs), RHS: rhs})

	return nil
}

// PopConstraint removes the most recently added row.
func (in *Instance) PopConstraint() (Row, bool) {
	n := len(in.Constraints)
	if n == 0 {
		return Row{}, false
	}
	r := in.Constraints[n-1]
	in.Constraints = in.Constraints[:n-1]

	return r, true
}

// SetConstraint replaces row j in place.
func (in *Instance) SetConstraint(j int, coefs []float64, rhs float64) error {
	if j < 0 || j >= len(in.Constraints) {
		return ErrRowOutOfRange
	}
	if err := in.checkRow(j, coefs, rhs); err != nil {
		return err
	}
	in.Constraints[j] = Row{Coefs: clone(coefs), RHS: rhs}

	return nil
}

// SetDemand sets the demand floor; values <= 0 disable the demand row.
func (in *Instance) SetDemand(d float64) error {
	if !finite(d) {
		return ErrNotFinite
	}
	in.Demand = d

	return nil
}

// SetMaxValue sets the shared upper bound; nil removes it.
func (in *Instance) SetMaxValue(v *float64) error {
	if v != nil {
		if !finite(*v) {
			return ErrNotFinite
		}
		if *v < 0 {
			return ErrBadMaxValue
		}
		u := *v
		v = &u
	}
	in.MaxValue = v

	return nil
}

// Clear drops all data.
func (in *Instance) Clear() {
	in.Costs, in.Constraints, in.Demand, in.MaxValue = nil, nil, 0, nil
}

func (in *Instance) checkRow(j int, coefs []float64, rhs float64) error {
	if len(coefs) != len(in.Costs) {
		return &ConstraintLengthMismatchError{Row: j, Expected: len(in.Costs), Actual: len(coefs)}
	}
	for _, a := range coefs {
		if !finite(a) {
			return ErrNotFinite
		}
	}
	if !finite(rhs) {
		return ErrNotFinite
	}

	return nil
}

// Build validates in and returns its LP. Every row length is checked before
// any model object is created; the first offending row is reported.
//
// Errors: ErrNoData, *ConstraintLengthMismatchError, ErrBadMaxValue.
func Build(in *Instance) (*model.Model, error) {
	if in == nil || len(in.Costs) == 0 || len(in.Constraints) == 0 {
		return nil, ErrNoData
	}
	n := len(in.Costs)
	for j, r := range in.Constraints {
		if len(r.Coefs) != n {
			return nil, &ConstraintLengthMismatchError{Row: j, Expected: n, Actual: len(r.Coefs)}
		}
	}
	upper := math.Inf(1)
	if in.MaxValue != nil {
		if *in.MaxValue < 0 {
			return nil, ErrBadMaxValue
		}
		upper = *in.MaxValue
	}

	m := model.New(Kind)
	objective := make(model.Expr, n)
	sum := make(model.Expr, n)
	for i, c := range in.Costs {
		idx, err := m.AddVar(fmt.Sprintf("x_%d", i), 0, upper, model.Continuous)
		if err != nil {
			return nil, err
		}
		objective[i] = model.Term{Var: idx, Coef: c}
		sum[i] = model.Term{Var: idx, Coef: 1}
	}
	if err := m.SetObjective(objective, model.Minimize); err != nil {
		return nil, err
	}
	if in.Demand > 0 {
		if _, err := m.AddConstraint("demand", sum, model.GE, in.Demand); err != nil {
			return nil, err
		}
	}
	for j, r := range in.Constraints {
		expr := make(model.Expr, n)
		for i, a := range r.Coefs {
			expr[i] = model.Term{Var: i, Coef: a}
		}
		if _, err := m.AddConstraint(fmt.Sprintf("constr_%d", j), expr, model.LE, r.RHS); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
