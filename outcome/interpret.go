package outcome

import (
	"context"
	"math"

	"github.com/katalvlaran/lvopt/model"
	"github.com/katalvlaran/lvopt/solver"
)

// Interpret maps a solver Result for model m onto an Outcome.
//
// On StatusInfeasible, a non-nil diag is asked for an IIS; its failure is
// kept in IISErr and never changes the Kind. A nil res yields SolverError.
func Interpret(ctx context.Context, m *model.Model, res *solver.Result, diag solver.Diagnoser, opts ...Option) Outcome {
	o := Options{ZeroEpsilon: DefaultZeroEpsilon, Precision: DefaultPrecision, Label: DefaultLabel}
	for _, opt := range opts {
		opt(&o)
	}
	if res == nil || m == nil {
		out := FromSolverError(ErrNoResult)
		out.Precision = o.Precision

		return out
	}

	out := Outcome{
		Status:         res.Status,
		Nodes:          res.Nodes,
		ObjectiveLabel: o.Label,
		Precision:      o.Precision,
	}
	switch res.Status {
	case solver.StatusOptimal:
		out.Kind = Optimal
		out.Objective = clean(res.Objective, o.ZeroEpsilon)
		vars := m.Vars()
		out.Values = make([]Value, 0, len(vars))
		for i, v := range vars {
			var x float64
			if i < len(res.Values) {
				x = res.Values[i]
			}
			out.Values = append(out.Values, Value{Name: v.Name, Value: clean(x, o.ZeroEpsilon)})
		}
	case solver.StatusInfeasible:
		out.Kind = Infeasible
		if diag != nil {
			out.Conflicts, out.IISErr = diag.ComputeIIS(ctx, m)
		}
	case solver.StatusUnbounded:
		out.Kind = Unbounded
	default:
		out.Kind = OtherStatus
		out.Err = res.Err
	}

	return out
}

// FromBuildError wraps a validation or model construction failure.
func FromBuildError(err error) Outcome {
	return Outcome{Kind: BuildError, Status: solver.StatusOther, Err: err, Precision: DefaultPrecision}
}

// FromSolverError wraps a failure of the solve call itself.
func FromSolverError(err error) Outcome {
	return Outcome{Kind: SolverError, Status: solver.StatusOther, Err: err, Precision: DefaultPrecision}
}

// Value returns the value of the named variable.
func (o Outcome) Value(name string) (float64, bool) {
	for _, v := range o.Values {
		if v.Name == name {
			return v.Value, true
		}
	}

	return 0, false
}

// clean rounds |v| < eps to zero.
func clean(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}

	return v
}
