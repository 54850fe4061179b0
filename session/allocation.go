package session

import (
	"strings"

	"github.com/katalvlaran/lvopt/allocation"
	"github.com/katalvlaran/lvopt/fileio"
)

// AllocationEditor owns a resource-allocation instance.
type AllocationEditor struct {
	in *allocation.Instance
}

// NewAllocationEditor returns an editor over an empty instance.
func NewAllocationEditor() *AllocationEditor {
	return &AllocationEditor{in: &allocation.Instance{}}
}

// Instance exposes the owned instance; it is also the solvable problem.
func (e *AllocationEditor) Instance() *allocation.Instance { return e.in }

// AddCost appends a variable cost from user text.
func (e *AllocationEditor) AddCost(text string) error {
	c, err := parseNumber(text)
	if err != nil {
		return err
	}

	return e.in.AddCost(c)
}

// AddConstraint appends a <= row. coefs is a list such as "1, 2, 3".
func (e *AllocationEditor) AddConstraint(coefs, rhs string) error {
	a, err := parseNumbers(coefs)
	if err != nil {
		return err
	}
	b, err := parseNumber(rhs)
	if err != nil {
		return err
	}

	return e.in.AddConstraint(a, b)
}

// SetConstraint replaces row j.
func (e *AllocationEditor) SetConstraint(j int, coefs, rhs string) error {
	a, err := parseNumbers(coefs)
	if err != nil {
		return err
	}
	b, err := parseNumber(rhs)
	if err != nil {
		return err
	}

	return e.in.SetConstraint(j, a, b)
}

// PopCost removes the last cost.
func (e *AllocationEditor) PopCost() bool {
	_, ok := e.in.PopCost()

	return ok
}

// PopConstraint removes the last row.
func (e *AllocationEditor) PopConstraint() bool {
	_, ok := e.in.PopConstraint()

	return ok
}

// SetDemand sets the demand floor from user text.
func (e *AllocationEditor) SetDemand(text string) error {
	d, err := parseNumber(text)
	if err != nil {
		return err
	}

	return e.in.SetDemand(d)
}

// SetMaxValue sets the shared upper bound; blank text removes it.
func (e *AllocationEditor) SetMaxValue(text string) error {
	if strings.TrimSpace(text) == "" {
		return e.in.SetMaxValue(nil)
	}
	v, err := parseNumber(text)
	if err != nil {
		return err
	}

	return e.in.SetMaxValue(&v)
}

// Load replaces costs and constraints with the CSV at path. Demand and the
// shared upper bound are kept.
func (e *AllocationEditor) Load(path string) error {
	in, err := fileio.LoadAllocation(path)
	if err != nil {
		return err
	}
	in.Demand, in.MaxValue = e.in.Demand, e.in.MaxValue
	e.in = in

	return nil
}

// Save writes costs and constraints to path as CSV.
func (e *AllocationEditor) Save(path string) error {
	return fileio.SaveAllocation(path, e.in)
}

// Clear drops all data.
func (e *AllocationEditor) Clear() { e.in.Clear() }
