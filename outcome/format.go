package outcome

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Message returns the one-line headline for o.
func (o Outcome) Message() string {
	switch o.Kind {
	case Optimal:
		return "Optimal solution found"
	case Infeasible:
		return "No feasible solution exists. Try relaxing some constraints."
	case Unbounded:
		return "The problem is unbounded. No finite optimal solution exists."
	case OtherStatus:
		if o.Err != nil {
			return fmt.Sprintf("Unexpected solution status: %s (%v)", o.Status, o.Err)
		}
		return fmt.Sprintf("Unexpected solution status: %s", o.Status)
	case BuildError:
		return fmt.Sprintf("Invalid input: %v", o.Err)
	default:
		return fmt.Sprintf("Solver error: %v", o.Err)
	}
}

// Report returns the multi-line body for o.
//
// Routes are listed as "A → B (Weight: 1)" followed by the total; other
// optimal solutions list every variable and the objective.
func (o Outcome) Report() string {
	var sb strings.Builder
	switch o.Kind {
	case Optimal:
		if o.Route != nil {
			for _, s := range o.Route {
				fmt.Fprintf(&sb, "%s → %s (Weight: %s)\n", s.From, s.To, formatPlain(s.Weight))
			}
			fmt.Fprintf(&sb, "Total: %s", formatPlain(o.Total))

			return sb.String()
		}
		for _, v := range o.Values {
			fmt.Fprintf(&sb, "%s: %s\n", v.Name, o.format(v.Value))
		}
		label := o.ObjectiveLabel
		if label == "" {
			label = DefaultLabel
		}
		fmt.Fprintf(&sb, "\n%s: %s", label, o.format(o.Objective))
	case Infeasible:
		if len(o.Conflicts) == 0 {
			return "The problem is infeasible. No solution exists."
		}
		fmt.Fprintf(&sb, "The problem is infeasible.\n\nConflicting constraints: %s", strings.Join(o.Conflicts, ", "))
	case Unbounded:
		return "The objective can improve without limit. Check for missing constraints."
	case OtherStatus:
		return "Solver couldn't find a solution. Please check your inputs."
	case BuildError:
		return "Please check your inputs and try again."
	default:
		return "An error occurred while solving the problem."
	}

	return sb.String()
}

// format renders v with the outcome's fixed precision.
func (o Outcome) format(v float64) string {
	p := o.Precision
	if p < 0 {
		p = DefaultPrecision
	}

	return strconv.FormatFloat(v, 'f', p, 64)
}

// formatPlain renders v in its shortest form ("1", "2.5") after rounding
// away float noise below 1e-9.
func formatPlain(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e9)/1e9, 'f', -1, 64)
}
