package model

import (
	"fmt"
	"math"
)

// Model is an LP/MIP instance: variables, named constraints and an objective.
type Model struct {
	name        string
	vars        []Var
	varIndex    map[string]int
	constraints []Constraint
	consIndex   map[string]int
	objective   Expr
	sense       Sense
}

// New returns an empty minimisation model.
func New(name string) *Model {
	return &Model{
		name:      name,
		varIndex:  make(map[string]int),
		consIndex: make(map[string]int),
	}
}

// Name returns the model label.
func (m *Model) Name() string { return m.name }

// AddVar appends a variable and returns its index.
//
// Errors: ErrEmptyName, ErrDuplicateName, ErrBadBounds.
func (m *Model) AddVar(name string, lower, upper float64, kind VarKind) (int, error) {
	if name == "" {
		return -1, ErrEmptyName
	}
	if _, dup := m.varIndex[name]; dup {
		return -1, fmt.Errorf("%w: variable %q", ErrDuplicateName, name)
	}
	if kind == Binary {
		lower, upper = 0, 1
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper || math.IsInf(lower, 1) || math.IsInf(upper, -1) {
		return -1, fmt.Errorf("%w: %q [%g, %g]", ErrBadBounds, name, lower, upper)
	}
	m.vars = append(m.vars, Var{Name: name, Lower: lower, Upper: upper, Kind: kind})
	idx := len(m.vars) - 1
	m.varIndex[name] = idx

	return idx, nil
}

// AddConstraint appends the named row expr rel rhs and returns its index.
//
// Errors: ErrEmptyName, ErrDuplicateName, ErrUnknownVariable, ErrBadCoefficient.
func (m *Model) AddConstraint(name string, expr Expr, rel Relation, rhs float64) (int, error) {
	if name == "" {
		return -1, ErrEmptyName
	}
	if _, dup := m.consIndex[name]; dup {
		return -1, fmt.Errorf("%w: constraint %q", ErrDuplicateName, name)
	}
	if err := m.checkExpr(expr); err != nil {
		return -1, fmt.Errorf("constraint %q: %w", name, err)
	}
	if !finite(rhs) {
		return -1, fmt.Errorf("constraint %q: %w", name, ErrBadCoefficient)
	}
	row := make(Expr, len(expr))
	copy(row, expr)
	m.constraints = append(m.constraints, Constraint{Name: name, Expr: row, Rel: rel, RHS: rhs})
	idx := len(m.constraints) - 1
	m.consIndex[name] = idx

	return idx, nil
}

// SetObjective replaces the objective expression and sense.
func (m *Model) SetObjective(expr Expr, sense Sense) error {
	if err := m.checkExpr(expr); err != nil {
		return fmt.Errorf("objective: %w", err)
	}
	m.objective = make(Expr, len(expr))
	copy(m.objective, expr)
	m.sense = sense

	return nil
}

// Vars returns a copy of the variables in insertion order.
func (m *Model) Vars() []Var {
	out := make([]Var, len(m.vars))
	copy(out, m.vars)

	return out
}

// NumVars returns the number of variables.
func (m *Model) NumVars() int { return len(m.vars) }

// Var returns the variable at index i.
func (m *Model) Var(i int) Var { return m.vars[i] }

// VarIndex returns the index of the named variable.
func (m *Model) VarIndex(name string) (int, bool) {
	i, ok := m.varIndex[name]

	return i, ok
}

// Constraints returns the constraints in insertion order. The returned slice
// shares Expr backing arrays with the model; treat it as read-only.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.constraints))
	copy(out, m.constraints)

	return out
}

// NumConstraints returns the number of constraints.
func (m *Model) NumConstraints() int { return len(m.constraints) }

// Objective returns the objective expression (read-only) and its sense.
func (m *Model) Objective() (Expr, Sense) { return m.objective, m.sense }

// HasIntegers reports whether any variable is Integer or Binary.
func (m *Model) HasIntegers() bool {
	for _, v := range m.vars {
		if v.Integral() {
			return true
		}
	}

	return false
}

// Evaluate returns Σ coef·x for expr at point x (len(x) == NumVars()).
func (m *Model) Evaluate(expr Expr, x []float64) float64 {
	var sum float64
	for _, t := range expr {
		sum += t.Coef * x[t.Var]
	}

	return sum
}

// ObjectiveValue evaluates the objective at x.
func (m *Model) ObjectiveValue(x []float64) float64 { return m.Evaluate(m.objective, x) }

// Satisfied reports whether constraint c holds at x within tol.
func (m *Model) Satisfied(c Constraint, x []float64, tol float64) bool {
	lhs := m.Evaluate(c.Expr, x)
	switch c.Rel {
	case GE:
		return lhs >= c.RHS-tol
	case EQ:
		return math.Abs(lhs-c.RHS) <= tol
	default:
		return lhs <= c.RHS+tol
	}
}

// Validate re-checks every invariant of the model. Builders produce valid
// models by construction; solvers call Validate on foreign input.
func (m *Model) Validate() error {
	for i, v := range m.vars {
		if v.Name == "" {
			return fmt.Errorf("variable %d: %w", i, ErrEmptyName)
		}
		if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) || v.Lower > v.Upper {
			return fmt.Errorf("%w: %q", ErrBadBounds, v.Name)
		}
	}
	for _, c := range m.constraints {
		if err := m.checkExpr(c.Expr); err != nil {
			return fmt.Errorf("constraint %q: %w", c.Name, err)
		}
		if !finite(c.RHS) {
			return fmt.Errorf("constraint %q: %w", c.Name, ErrBadCoefficient)
		}
	}
	if err := m.checkExpr(m.objective); err != nil {
		return fmt.Errorf("objective: %w", err)
	}

	return nil
}

func (m *Model) checkExpr(expr Expr) error {
	for _, t := range expr {
		if t.Var < 0 || t.Var >= len(m.vars) {
			return fmt.Errorf("%w: index %d", ErrUnknownVariable, t.Var)
		}
		if !finite(t.Coef) {
			return ErrBadCoefficient
		}
	}

	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
