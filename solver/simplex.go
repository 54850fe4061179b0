package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvopt/model"
)

// Simplex is the gonum-backed Solver and Diagnoser. It holds no per-solve
// state and may be shared.
type Simplex struct {
	opts Options
}

var (
	_ Solver    = (*Simplex)(nil)
	_ Diagnoser = (*Simplex)(nil)
)

// New returns a Simplex configured by opts on top of DefaultOptions.
func New(opts ...Option) *Simplex {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Simplex{opts: o}
}

// Options returns the effective configuration.
func (s *Simplex) Options() Options { return s.opts }

// Solve optimises m. Pure LPs take one simplex call; models with Integer or
// Binary columns go through branch and bound.
//
// Errors: ErrNilModel, model validation errors, ctx.Err().
func (s *Simplex) Solve(ctx context.Context, m *model.Model) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := newProblem(m)
	res, err := s.search(ctx, p)
	if err != nil {
		return nil, err
	}
	if res.Status == StatusOptimal {
		res.Objective = m.ObjectiveValue(res.Values)
	}
	s.opts.Logger.Debug("solve finished",
		"model", m.Name(),
		"status", res.Status.String(),
		"nodes", res.Nodes,
	)

	return res, nil
}

// search dispatches p to a single relaxation or to branch and bound.
func (s *Simplex) search(ctx context.Context, p *problem) (*Result, error) {
	hasInt := false
	for _, b := range p.integral {
		if b {
			hasInt = true
			break
		}
	}
	if !hasInt {
		r := s.relax(p)
		return &Result{Status: r.status, Values: r.x, Nodes: 1, Err: r.err}, nil
	}

	return s.branchAndBound(ctx, p)
}

// relaxation is the answer of one LP solve in minimisation form.
type relaxation struct {
	status Status
	x      []float64
	obj    float64
	err    error
}

// relax solves the LP relaxation of p (integrality ignored).
func (s *Simplex) relax(p *problem) relaxation {
	for j := range p.lower {
		if p.lower[j] > p.upper[j] {
			return relaxation{status: StatusInfeasible}
		}
	}

	sf := standardize(p)
	keep, ok := independentRows(sf.a, sf.b)
	if !ok {
		return relaxation{status: StatusInfeasible}
	}

	cols := nonZeroColumns(sf.a, len(sf.c))
	used := make(map[int]bool, len(cols))
	for _, j := range cols {
		used[j] = true
	}
	for j, cj := range sf.c {
		// An unconstrained column with negative cost can grow forever.
		if !used[j] && cj < 0 {
			return relaxation{status: StatusUnbounded}
		}
	}

	y := make([]float64, len(sf.c))
	if len(keep) > 0 {
		c := make([]float64, len(cols))
		data := make([]float64, 0, len(keep)*len(cols))
		b := make([]float64, len(keep))
		for k, j := range cols {
			c[k] = sf.c[j]
		}
		for k, i := range keep {
			for _, j := range cols {
				data = append(data, sf.a[i][j])
			}
			b[k] = sf.b[i]
		}
		A := mat.NewDense(len(keep), len(cols), data)

		yc, err := s.callSimplex(c, A, b)
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return relaxation{status: StatusInfeasible}
		case errors.Is(err, lp.ErrUnbounded):
			return relaxation{status: StatusUnbounded}
		case err != nil:
			return relaxation{status: StatusOther, err: err}
		}
		for k, j := range cols {
			y[j] = yc[k]
		}
	}

	x := sf.point(y)
	if err := checkRows(p, x); err != nil {
		return relaxation{status: StatusOther, err: err}
	}

	return relaxation{status: StatusOptimal, x: x, obj: floats.Dot(p.cost, x)}
}

// callSimplex invokes the black box, turning a panic into an error.
func (s *Simplex) callSimplex(c []float64, A mat.Matrix, b []float64) (y []float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			y, err = nil, fmt.Errorf("solver: simplex panic: %v", rec)
		}
	}()
	_, y, err = lp.Simplex(c, A, b, s.opts.Tolerance, nil)

	return y, err
}

// checkRows re-verifies every active row and bound of p at x.
func checkRows(p *problem, x []float64) error {
	for j, v := range x {
		if v < p.lower[j]-feasibilityTolerance*(1+math.Abs(p.lower[j])) ||
			v > p.upper[j]+feasibilityTolerance*(1+math.Abs(p.upper[j])) {
			return fmt.Errorf("%w: bound of column %d", ErrNumerical, j)
		}
	}
	for i, r := range p.rows {
		if !p.active[i] {
			continue
		}
		lhs := floats.Dot(r.coef, x)
		tol := feasibilityTolerance * (1 + math.Abs(r.rhs))
		var ok bool
		switch r.rel {
		case model.GE:
			ok = lhs >= r.rhs-tol
		case model.EQ:
			ok = math.Abs(lhs-r.rhs) <= tol
		default:
			ok = lhs <= r.rhs+tol
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrNumerical, r.name)
		}
	}

	return nil
}
