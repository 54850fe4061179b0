package solver

import (
	"context"
	"math"
)

// node is one branch-and-bound subproblem: the original rows under tightened bounds.
type node struct {
	lower []float64
	upper []float64
	depth int
}

// branchAndBound explores LP relaxations depth first, branching on the most
// fractional integral column. A relaxation whose objective cannot beat the
// incumbent is pruned.
//
// An unbounded relaxation ends the search as StatusUnbounded; reaching
// MaxNodes ends it as StatusOther with ErrNodeLimit.
func (s *Simplex) branchAndBound(ctx context.Context, p *problem) (*Result, error) {
	log := s.opts.Logger.With("component", "bnb")
	stack := []node{{lower: p.lower, upper: p.upper}}

	var (
		incumbent []float64
		best      = math.Inf(1)
		nodes     int
	)
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if nodes >= s.opts.MaxNodes {
			log.Debug("node limit", "nodes", nodes)
			return &Result{Status: StatusOther, Nodes: nodes, Err: ErrNodeLimit}, nil
		}
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		r := s.relax(p.withBounds(nd.lower, nd.upper))
		switch r.status {
		case StatusInfeasible:
			continue
		case StatusUnbounded:
			return &Result{Status: StatusUnbounded, Nodes: nodes}, nil
		case StatusOther:
			return &Result{Status: StatusOther, Nodes: nodes, Err: r.err}, nil
		}
		if r.obj >= best-s.gap(best) {
			continue
		}

		j := s.mostFractional(p, r.x)
		if j < 0 {
			incumbent, best = s.rounded(p, r.x), r.obj
			log.Debug("incumbent", "nodes", nodes, "depth", nd.depth, "objective", best)
			continue
		}

		v := r.x[j]
		down := node{lower: nd.lower, upper: clone(nd.upper), depth: nd.depth + 1}
		down.upper[j] = math.Floor(v)
		up := node{lower: clone(nd.lower), upper: nd.upper, depth: nd.depth + 1}
		up.lower[j] = math.Ceil(v)
		// Down branch is explored first.
		stack = append(stack, up, down)
	}

	if incumbent == nil {
		return &Result{Status: StatusInfeasible, Nodes: nodes}, nil
	}

	return &Result{Status: StatusOptimal, Values: incumbent, Nodes: nodes}, nil
}

// mostFractional returns the integral column farthest from an integer, or -1.
func (s *Simplex) mostFractional(p *problem, x []float64) int {
	pick, worst := -1, s.opts.IntegralityTolerance
	for j, v := range x {
		if !p.integral[j] {
			continue
		}
		if f := math.Abs(v - math.Round(v)); f > worst {
			pick, worst = j, f
		}
	}

	return pick
}

// rounded snaps integral columns of x to the nearest integer.
func (s *Simplex) rounded(p *problem, x []float64) []float64 {
	out := clone(x)
	for j := range out {
		if p.integral[j] {
			out[j] = math.Round(out[j])
		}
	}

	return out
}

// gap is the pruning margin around the incumbent objective.
func (s *Simplex) gap(best float64) float64 {
	if math.IsInf(best, 1) {
		return 0
	}

	return 1e-9 * math.Max(1, math.Abs(best))
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
