// Package linprog holds the generic LP instance: named non-negative decisions
// with objective coefficients, rows with a per-row sense token, and an
// explicit optimisation direction.
//
//	optimize    Σ c_j·x_j                     (Objective: Minimize or Maximize)
//	subject to  Σ a_ij·x_j  {<=,>=,==}  b_i   (constraint_<i>)
//	            x_j >= 0
package linprog

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/model"
)

// Kind labels this problem family in logs and metrics.
const Kind = "linear_program"

// Sentinel errors for generic LP instances.
var (
	// ErrNoVariables indicates an instance without decisions.
	ErrNoVariables = errors.New("linprog: add at least one variable")

	// ErrDuplicateVariable indicates an empty or repeated decision name.
	ErrDuplicateVariable = errors.New("linprog: variable names must be unique and non-empty")

	// ErrNotFinite indicates a NaN or infinite number.
	ErrNotFinite = errors.New("linprog: value must be a finite number")

	// ErrRowOutOfRange indicates a row index outside the table.
	ErrRowOutOfRange = errors.New("linprog: constraint index out of range")
)

// InvalidConstraintSenseError reports a row whose sense token is not one of
// "<=", ">=", "==". It unwraps to model.ErrInvalidSense.
type InvalidConstraintSenseError struct {
	Row   int
	Token string
}

func (e *InvalidConstraintSenseError) Error() string {
	return fmt.Sprintf("linprog: constraint %d: invalid sense %q (want <=, >= or ==)", e.Row, e.Token)
}

func (e *InvalidConstraintSenseError) Unwrap() error { return model.ErrInvalidSense }

// ConstraintLengthMismatchError reports a row whose coefficient count differs
// from the number of decisions.
type ConstraintLengthMismatchError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *ConstraintLengthMismatchError) Error() string {
	return fmt.Sprintf("linprog: constraint %d has %d coefficients, expected %d", e.Row, e.Actual, e.Expected)
}

// Decision is one named variable and its objective coefficient.
type Decision struct {
	Name string  `yaml:"name"`
	Coef float64 `yaml:"coef"`
}

// Row is Σ Coefs[j]·x_j Sense RHS.
type Row struct {
	Coefs []float64 `yaml:"coefs"`
	Sense string    `yaml:"sense"`
	RHS   float64   `yaml:"rhs"`
}

// Problem is the editable generic LP.
type Problem struct {
	Variables []Decision
	Rows      []Row
	Objective model.Sense
}

// Kind implements the runner's problem contract.
func (p *Problem) Kind() string { return Kind }

// Build implements the runner's problem contract.
func (p *Problem) Build() (*model.Model, error) { return Build(p) }

// AddVariable appends a decision. Existing rows get a 0 coefficient for it so
// every row keeps one coefficient per decision.
func (p *Problem) AddVariable(name string, coef float64) error {
	if err := checkName(p.Variables, len(p.Variables), name); err != nil {
		return err
	}
	if !finite(coef) {
		return ErrNotFinite
	}
	p.Variables = append(p.Variables, Decision{Name: name, Coef: coef})
	for i := range p.Rows {
		p.Rows[i].Coefs = append(p.Rows[i].Coefs, 0)
	}

	return nil
}

// checkName rejects an empty name or one already used by vars[:n].
func checkName(vars []Decision, n int, name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrDuplicateVariable)
	}
	for _, d := range vars[:n] {
		if d.Name == name {
			return fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
		}
	}

	return nil
}

// AddRow appends a constraint after checking length, sense and numbers.
func (p *Problem) AddRow(coefs []float64, sense string, rhs float64) error {
	r := Row{Coefs: append([]float64(nil), coefs...), Sense: sense, RHS: rhs}
	if err := p.checkRow(len(p.Rows), r); err != nil {
		return err
	}
	p.Rows = append(p.Rows, r)

	return nil
}

// RemoveRow deletes row i; later rows shift up.
func (p *Problem) RemoveRow(i int) error {
	if i < 0 || i >= len(p.Rows) {
		return ErrRowOutOfRange
	}
	p.Rows = append(p.Rows[:i], p.Rows[i+1:]...)

	return nil
}

// Clear drops every decision and row; the objective sense is kept.
func (p *Problem) Clear() {
	p.Variables, p.Rows = nil, nil
}

func (p *Problem) checkRow(i int, r Row) error {
	if len(r.Coefs) != len(p.Variables) {
		return &ConstraintLengthMismatchError{Row: i, Expected: len(p.Variables), Actual: len(r.Coefs)}
	}
	if _, err := model.ParseRelation(r.Sense); err != nil {
		return &InvalidConstraintSenseError{Row: i, Token: r.Sense}
	}
	for _, a := range r.Coefs {
		if !finite(a) {
			return ErrNotFinite
		}
	}
	if !finite(r.RHS) {
		return ErrNotFinite
	}

	return nil
}

// Build validates p and returns its model.
//
// Errors: ErrNoVariables, ErrDuplicateVariable, ErrNotFinite,
// *ConstraintLengthMismatchError, *InvalidConstraintSenseError.
func Build(p *Problem) (*model.Model, error) {
	if p == nil || len(p.Variables) == 0 {
		return nil, ErrNoVariables
	}
	for j, d := range p.Variables {
		if err := checkName(p.Variables, j, d.Name); err != nil {
			return nil, err
		}
		if !finite(d.Coef) {
			return nil, ErrNotFinite
		}
	}
	for i, r := range p.Rows {
		if err := p.checkRow(i, r); err != nil {
			return nil, err
		}
	}

	m := model.New(Kind)
	objective := make(model.Expr, len(p.Variables))
	for j, d := range p.Variables {
		idx, err := m.AddVar(d.Name, 0, math.Inf(1), model.Continuous)
		if err != nil {
			return nil, err
		}
		objective[j] = model.Term{Var: idx, Coef: d.Coef}
	}
	if err := m.SetObjective(objective, p.Objective); err != nil {
		return nil, err
	}
	for i, r := range p.Rows {
		rel, _ := model.ParseRelation(r.Sense)
		expr := make(model.Expr, len(r.Coefs))
		for j, a := range r.Coefs {
			expr[j] = model.Term{Var: j, Coef: a}
		}
		if _, err := m.AddConstraint(fmt.Sprintf("constraint_%d", i), expr, rel, r.RHS); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
