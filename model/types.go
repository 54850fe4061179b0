// Package model defines the solver-neutral linear / mixed-integer program that
// every problem builder produces and every solver consumes.
//
// A Model holds an ordered list of variables (name, bounds, kind), an ordered
// list of named linear constraints (expression, relation, right-hand side) and a
// linear objective with an explicit optimisation sense. Models are built fresh
// for each solve and are not safe for concurrent mutation.
//
// Errors (sentinel):
//
//	ErrEmptyName        - variable or constraint name is empty.
//	ErrDuplicateName    - variable or constraint name already used.
//	ErrBadBounds        - lower > upper, or a NaN bound.
//	ErrUnknownVariable  - a term references a variable not in the model.
//	ErrBadCoefficient   - coefficient or right-hand side is NaN or infinite.
//	ErrInvalidSense     - relation token outside {"<=", ">=", "=="}.
package model

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned while building or validating a Model.
var (
	// ErrEmptyName indicates a variable or constraint without a name.
	ErrEmptyName = errors.New("model: name is empty")

	// ErrDuplicateName indicates a variable or constraint name used twice.
	ErrDuplicateName = errors.New("model: duplicate name")

	// ErrBadBounds indicates lower > upper or a NaN bound.
	ErrBadBounds = errors.New("model: invalid variable bounds")

	// ErrUnknownVariable indicates a term referring to a variable index outside the model.
	ErrUnknownVariable = errors.New("model: unknown variable")

	// ErrBadCoefficient indicates a NaN or infinite coefficient or right-hand side.
	ErrBadCoefficient = errors.New("model: coefficient must be finite")

	// ErrInvalidSense indicates a relation token outside the closed set "<=", ">=", "==".
	ErrInvalidSense = errors.New("model: invalid constraint sense")
)

// Sense is the optimisation direction of the objective.
type Sense int

const (
	// Minimize selects the smallest objective value.
	Minimize Sense = iota
	// Maximize selects the largest objective value.
	Maximize
)

// String returns "minimize" or "maximize".
func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// ParseSense accepts "min", "minimize", "max", "maximize" (any case is not
// accepted; front ends normalise their labels first).
func ParseSense(token string) (Sense, error) {
	switch token {
	case "min", "minimize", "":
		return Minimize, nil
	case "max", "maximize":
		return Maximize, nil
	}

	return Minimize, fmt.Errorf("model: invalid objective sense %q", token)
}

// Relation is the comparison operator of a constraint row.
type Relation int

const (
	// LE is Σ a·x <= b.
	LE Relation = iota
	// GE is Σ a·x >= b.
	GE
	// EQ is Σ a·x == b.
	EQ
)

// String renders the relation as its input token.
func (r Relation) String() string {
	switch r {
	case GE:
		return ">="
	case EQ:
		return "=="
	default:
		return "<="
	}
}

// ParseRelation maps the closed token set {"<=", ">=", "=="} to a Relation.
// Any other token yields ErrInvalidSense.
func ParseRelation(token string) (Relation, error) {
	switch token {
	case "<=":
		return LE, nil
	case ">=":
		return GE, nil
	case "==":
		return EQ, nil
	}

	return LE, ErrInvalidSense
}

// VarKind restricts the values a variable may take.
type VarKind int

const (
	// Continuous variables take any real value within bounds.
	Continuous VarKind = iota
	// Integer variables take integral values within bounds.
	Integer
	// Binary variables take 0 or 1.
	Binary
)

// String returns the kind name.
func (k VarKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	default:
		return "continuous"
	}
}

// Var is a decision variable.
//
// Lower may be -Inf and Upper may be +Inf. Binary variables always carry
// bounds [0,1].
type Var struct {
	Name  string
	Lower float64
	Upper float64
	Kind  VarKind
}

// Integral reports whether the variable must take integer values.
func (v Var) Integral() bool { return v.Kind == Integer || v.Kind == Binary }

// Term is one coefficient·variable product; Var is the index returned by AddVar.
type Term struct {
	Var  int
	Coef float64
}

// Expr is a linear expression Σ Coef·x[Var]. Repeated variables are summed.
type Expr []Term

// Constraint is a named row Expr Rel RHS.
type Constraint struct {
	Name string
	Expr Expr
	Rel  Relation
	RHS  float64
}

// Inf is a convenience alias for an absent upper bound.
var Inf = math.Inf(1)
