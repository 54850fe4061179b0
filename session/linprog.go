package session

import (
	"strings"

	"github.com/katalvlaran/lvopt/fileio"
	"github.com/katalvlaran/lvopt/linprog"
	"github.com/katalvlaran/lvopt/model"
)

// LPEditor owns a generic LP.
type LPEditor struct {
	p *linprog.Problem
}

// NewLPEditor returns an editor over an empty minimization.
func NewLPEditor() *LPEditor {
	return &LPEditor{p: &linprog.Problem{Objective: model.Minimize}}
}

// Problem exposes the owned LP.
func (e *LPEditor) Problem() *linprog.Problem { return e.p }

// AddVariable appends a decision with its objective coefficient.
func (e *LPEditor) AddVariable(name, coef string) error {
	c, err := parseNumber(coef)
	if err != nil {
		return err
	}

	return e.p.AddVariable(strings.TrimSpace(name), c)
}

// AddConstraint appends a row; sense is one of "<=", ">=", "==".
func (e *LPEditor) AddConstraint(coefs, sense, rhs string) error {
	a, err := parseNumbers(coefs)
	if err != nil {
		return err
	}
	b, err := parseNumber(rhs)
	if err != nil {
		return err
	}

	return e.p.AddRow(a, strings.TrimSpace(sense), b)
}

// RemoveConstraint deletes row i.
func (e *LPEditor) RemoveConstraint(i int) error { return e.p.RemoveRow(i) }

// SetObjective sets the direction from "min"/"minimize"/"max"/"maximize".
func (e *LPEditor) SetObjective(sense string) error {
	s, err := model.ParseSense(strings.ToLower(strings.TrimSpace(sense)))
	if err != nil {
		return err
	}
	e.p.Objective = s

	return nil
}

// Load replaces the LP with the YAML document at path.
func (e *LPEditor) Load(path string) error {
	p, err := fileio.LoadLP(path)
	if err != nil {
		return err
	}
	e.p = p

	return nil
}

// Save writes the LP to path as YAML.
func (e *LPEditor) Save(path string) error { return fileio.SaveLP(path, e.p) }

// Clear drops decisions and rows.
func (e *LPEditor) Clear() { e.p.Clear() }
