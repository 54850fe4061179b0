// Package outcome turns solver results and pipeline failures into one tagged
// value that a front end can render without knowing anything about models or
// solvers.
//
// An Outcome has exactly one Kind:
//
//	Optimal      - Values (and, for routing problems, Route/Total) are set.
//	Infeasible   - Conflicts names an irreducible infeasible subsystem, if one was computed.
//	Unbounded    - the objective improves without limit.
//	OtherStatus  - the solver stopped for another reason; Err explains it.
//	BuildError   - the input could not be turned into a model; Err is the validation error.
//	SolverError  - the solve itself failed; Err is the failure.
//
// Message returns a one-line headline, Report the multi-line body.
package outcome

import (
	"errors"

	"github.com/katalvlaran/lvopt/solver"
)

// ErrNoResult indicates Interpret was called without a solver result.
var ErrNoResult = errors.New("outcome: solver returned no result")

// Kind tags the variant held by an Outcome.
type Kind int

const (
	// Optimal means an optimal solution was found.
	Optimal Kind = iota
	// Infeasible means no solution satisfies every constraint.
	Infeasible
	// Unbounded means the objective has no finite optimum.
	Unbounded
	// OtherStatus means the solver stopped with a non-standard status.
	OtherStatus
	// BuildError means validation or model construction failed.
	BuildError
	// SolverError means the solver call failed.
	SolverError
)

var kindNames = [...]string{"optimal", "infeasible", "unbounded", "other", "build_error", "solver_error"}

// String returns a snake_case label, suitable as a metric label value.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Value is one named variable value of an optimal solution.
type Value struct {
	Name  string
	Value float64
}

// Step is one traversed arc of a route.
type Step struct {
	From   string
	To     string
	Weight float64
}

// Default display settings.
const (
	DefaultZeroEpsilon = 1e-6
	DefaultPrecision   = 2
	DefaultLabel       = "Objective"
)

// Outcome is the single value handed to presentation code.
type Outcome struct {
	Kind   Kind
	Status solver.Status

	// Optimal payload.
	Objective      float64
	ObjectiveLabel string
	Values         []Value
	Route          []Step
	Total          float64

	// Infeasible payload. IISErr is set when the conflict search itself failed.
	Conflicts []string
	IISErr    error

	Err error

	// Bookkeeping filled by the caller.
	RunID     string
	Problem   string
	Nodes     int
	Precision int
}

// Options tunes Interpret.
type Options struct {
	ZeroEpsilon float64
	Precision   int
	Label       string
}

// Option configures Interpret.
type Option func(*Options)

// WithZeroEpsilon sets the magnitude under which values are shown as 0.
// Negative values are ignored.
func WithZeroEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps >= 0 {
			o.ZeroEpsilon = eps
		}
	}
}

// WithPrecision sets the number of decimals in Report. Negative values are ignored.
func WithPrecision(p int) Option {
	return func(o *Options) {
		if p >= 0 {
			o.Precision = p
		}
	}
}

// WithObjectiveLabel names the objective in Report ("Total Cost", "Objective").
func WithObjectiveLabel(label string) Option {
	return func(o *Options) {
		if label != "" {
			o.Label = label
		}
	}
}
