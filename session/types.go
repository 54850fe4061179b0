package session

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvopt/model"
	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/solver"
)

// Sentinel errors for editors and the runner.
var (
	// ErrNilProblem indicates Solve was called without a problem.
	ErrNilProblem = errors.New("session: no problem to solve")

	// ErrPanic wraps a panic recovered during a run.
	ErrPanic = errors.New("session: run panicked")

	// ErrBadNumber indicates text that is not a finite number.
	ErrBadNumber = errors.New("session: please enter a valid number")

	// ErrUnknownIngredient indicates a blend edit naming a missing ingredient.
	ErrUnknownIngredient = errors.New("session: unknown ingredient")
)

// Problem is anything the Runner can build into a model.
type Problem interface {
	Kind() string
	Build() (*model.Model, error)
}

// Finisher is implemented by problems that enrich the interpreted outcome,
// e.g. with a route or a domain-specific objective label.
type Finisher interface {
	Finish(m *model.Model, res *solver.Result, out *outcome.Outcome) error
}

// Phase is the runner's position in a run.
type Phase int

const (
	// Idle means no run is in progress.
	Idle Phase = iota
	// Building means the problem is being turned into a model.
	Building
	// Solving means the model is with the solver or the interpreter.
	Solving
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Building:
		return "building"
	case Solving:
		return "solving"
	}

	return "unknown"
}

// parseNumber parses user text as a finite float64.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrBadNumber
	}

	return f, nil
}

// parseNumbers parses a list separated by commas, semicolons or blanks.
func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, ErrBadNumber
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseNumber(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
