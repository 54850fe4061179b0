// Package shortestpath formulates the single-pair shortest path on a core.Graph
// as a unit min-cost-flow program and reads the route back from the solution.
//
// Formulation:
//
//	minimize    Σ w(u,v)·x(u,v)
//	subject to  Σ_out x − Σ_in x = +1  at Start   (flow_start_<id>)
//	            Σ_out x − Σ_in x = −1  at End     (flow_end_<id>)
//	            Σ_out x − Σ_in x =  0  elsewhere  (flow_<id>)
//	            x(u,v) ∈ {0,1}
//
// A directed edge yields one arc; an undirected edge yields both orientations.
// Self-loops never lie on a simple path and are left out.
//
// Errors (sentinel):
//
//	ErrEmptyGraph       - graph is nil or has no vertices.
//	ErrMissingEndpoints - start or end unset, unknown, or equal.
//	ErrNotSimplePath    - the selected arcs are not a simple Start→End path plus
//	                      zero-weight cycles.
package shortestpath

import (
	"errors"

	"github.com/katalvlaran/lvopt/core"
)

// Sentinel errors for shortest-path building and walking.
var (
	// ErrEmptyGraph indicates a nil graph or a graph without vertices.
	ErrEmptyGraph = errors.New("shortestpath: graph has no nodes")

	// ErrMissingEndpoints indicates an unset, unknown or coinciding start/end.
	ErrMissingEndpoints = errors.New("shortestpath: please select distinct start and end nodes")

	// ErrNotSimplePath indicates the selected arcs are not a simple path plus
	// zero-weight cycles.
	ErrNotSimplePath = errors.New("shortestpath: selected arcs do not form a simple path")
)

// Unselected is the placeholder a front end shows before an endpoint is chosen.
const Unselected = "Select node"

// Kind labels this problem family in logs and metrics.
const Kind = "shortest_path"

// Problem is a graph plus the endpoints of the requested route.
type Problem struct {
	Graph *core.Graph
	Start string
	End   string
}

// Arc is one orientation of an edge that the flow model may select.
type Arc struct {
	From   string
	To     string
	Weight float64
	EdgeID string
}
