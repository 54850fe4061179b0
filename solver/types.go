// Package solver dispatches a model.Model to the gonum standard-form simplex
// (gonum.org/v1/gonum/optimize/convex/lp) and reports the outcome as a Status.
//
// The simplex accepts only
//
//	minimize cᵀy  s.t.  A·y = b,  y ≥ 0
//
// with A of full row rank and no all-zero columns. Simplex therefore performs
// the mechanical steps needed to hand it a general model:
//
//	- bounds are folded into shifted, mirrored or split columns;
//	- <= and >= rows receive slack and surplus columns, rows with b < 0 are negated;
//	- linearly dependent rows are dropped (inconsistent ones prove infeasibility);
//	- all-zero columns are fixed at zero (or prove unboundedness);
//	- Integer and Binary columns are enforced by depth-first branch and bound
//	  over LP relaxations;
//	- ComputeIIS runs a deletion filter over the named constraints.
//
// Infeasible and unbounded models are statuses, never errors. The error return
// is reserved for nil or invalid models and cancelled contexts; any other
// failure of the black box (including a recovered panic) is StatusOther with
// Result.Err set.
//
// Errors (sentinel):
//
//	ErrNilModel       - Solve or ComputeIIS called with a nil model.
//	ErrNodeLimit      - branch and bound hit the configured node limit.
//	ErrNotInfeasible  - ComputeIIS called on a model that has a feasible point.
//	ErrNumerical      - the simplex returned a point that violates a row.
package solver

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvopt/model"
)

// Sentinel errors for the solver adapter.
var (
	// ErrNilModel indicates a nil *model.Model.
	ErrNilModel = errors.New("solver: model is nil")

	// ErrNodeLimit indicates branch and bound stopped at the node limit.
	ErrNodeLimit = errors.New("solver: branch-and-bound node limit reached")

	// ErrNotInfeasible indicates ComputeIIS was asked to explain a feasible model.
	ErrNotInfeasible = errors.New("solver: model is feasible, no IIS exists")

	// ErrNumerical indicates the simplex answer failed the feasibility re-check.
	ErrNumerical = errors.New("solver: solution violates constraints beyond tolerance")
)

// Status is the solver-agnostic termination code.
type Status int

const (
	// StatusOptimal means an optimal point was found.
	StatusOptimal Status = iota
	// StatusInfeasible means no point satisfies every constraint.
	StatusInfeasible
	// StatusUnbounded means the objective improves without limit.
	StatusUnbounded
	// StatusOther covers every other termination (numerical trouble, node limit).
	StatusOther
)

// String returns a lower-case status label.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "other"
	}
}

// Result is the answer of one Solve call.
//
// Objective and Values are meaningful only when Status is StatusOptimal;
// Values is aligned with model.Vars(). Nodes counts the LP relaxations solved.
// Err explains StatusOther.
type Result struct {
	Status    Status
	Objective float64
	Values    []float64
	Nodes     int
	Err       error
}

// Solver solves a model once, synchronously.
type Solver interface {
	Solve(ctx context.Context, m *model.Model) (*Result, error)
}

// Diagnoser names a minimal set of constraints that is infeasible on its own.
type Diagnoser interface {
	ComputeIIS(ctx context.Context, m *model.Model) ([]string, error)
}
