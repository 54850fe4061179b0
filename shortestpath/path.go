package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/lvopt/model"
	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/solver"
)

// selectThreshold decides when a binary arc variable counts as chosen.
const selectThreshold = 0.5

// cycleTolerance bounds the weight of selected arcs left off the route,
// relative to the route total.
const cycleTolerance = 1e-9

// Walk follows the selected arcs (values[i] > 0.5 selects arcs[i]) from start
// to end and returns the route and its total weight.
//
// The selected set is decomposed into one simple start→end path plus whatever
// is left. Zero-weight edges let an optimal flow also select closed cycles of
// weight 0 (an undirected 0 edge taken both ways); those are dropped. A
// missing route, leftover arcs that do not close into cycles, or leftover
// cycles with positive weight yield ErrNotSimplePath.
func Walk(arcs []Arc, values []float64, start, end string) ([]outcome.Step, float64, error) {
	if len(values) != len(arcs) {
		return nil, 0, fmt.Errorf("%w: %d values for %d arcs", ErrNotSimplePath, len(values), len(arcs))
	}

	var chosen []Arc
	out := make(map[string][]int)
	for i, a := range arcs {
		if values[i] <= selectThreshold {
			continue
		}
		out[a.From] = append(out[a.From], len(chosen))
		chosen = append(chosen, a)
	}

	path := findPath(chosen, out, start, end)
	if path == nil {
		return nil, 0, fmt.Errorf("%w: no selected route from %s to %s", ErrNotSimplePath, start, end)
	}

	var (
		route []outcome.Step
		total float64
	)
	used := make([]bool, len(chosen))
	for _, k := range path {
		a := chosen[k]
		used[k] = true
		route = append(route, outcome.Step{From: a.From, To: a.To, Weight: a.Weight})
		total += a.Weight
	}

	balance := make(map[string]int)
	var idle float64
	for k, a := range chosen {
		if used[k] {
			continue
		}
		balance[a.From]++
		balance[a.To]--
		idle += a.Weight
	}
	for _, b := range balance {
		if b != 0 {
			return nil, 0, fmt.Errorf("%w: %d selected arcs off the route do not close into cycles",
				ErrNotSimplePath, len(chosen)-len(path))
		}
	}
	if idle > cycleTolerance*(1+total) {
		return nil, 0, fmt.Errorf("%w: cycles off the route weigh %g", ErrNotSimplePath, idle)
	}

	return route, total, nil
}

// findPath returns indices into chosen forming a simple start→end path, or
// nil. Arcs are tried in model order.
func findPath(chosen []Arc, out map[string][]int, start, end string) []int {
	visited := map[string]bool{start: true}
	var path []int
	var dfs func(cur string) bool
	dfs = func(cur string) bool {
		if cur == end {
			return true
		}
		for _, k := range out[cur] {
			to := chosen[k].To
			if visited[to] {
				continue
			}
			visited[to] = true
			path = append(path, k)
			if dfs(to) {
				return true
			}
			path = path[:len(path)-1]
		}

		return false
	}
	if !dfs(start) {
		return nil
	}

	return path
}

// Finish attaches the route of an optimal solution to out. Other kinds are
// left untouched. It assumes the graph was not edited since Build.
func (p Problem) Finish(_ *model.Model, res *solver.Result, out *outcome.Outcome) error {
	if out.Kind != outcome.Optimal || res == nil {
		return nil
	}
	route, total, err := Walk(Arcs(p.Graph), res.Values, p.Start, p.End)
	if err != nil {
		return err
	}
	out.Route, out.Total = route, total

	return nil
}
