package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/lvopt/core"
	"github.com/katalvlaran/lvopt/model"
)

// Kind implements the runner's problem contract.
func (p Problem) Kind() string { return Kind }

// Build implements the runner's problem contract.
func (p Problem) Build() (*model.Model, error) { return Build(p) }

// Validate checks the preconditions of Build in order: graph first, then endpoints.
func (p Problem) Validate() error {
	if p.Graph == nil || p.Graph.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	for _, id := range []string{p.Start, p.End} {
		if id == "" || id == Unselected || !p.Graph.HasVertex(id) {
			return ErrMissingEndpoints
		}
	}
	if p.Start == p.End {
		return ErrMissingEndpoints
	}

	return nil
}

// Arcs lists the selectable arcs of g in edge insertion order. Undirected
// edges contribute u→v then v→u. Variable i of the built model is Arcs(g)[i].
func Arcs(g *core.Graph) []Arc {
	edges := g.Edges()
	arcs := make([]Arc, 0, 2*len(edges))
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		arcs = append(arcs, Arc{From: e.From, To: e.To, Weight: e.Weight, EdgeID: e.ID})
		if !e.Directed {
			arcs = append(arcs, Arc{From: e.To, To: e.From, Weight: e.Weight, EdgeID: e.ID})
		}
	}

	return arcs
}

// Build returns the binary flow model for p.
//
// Errors: ErrEmptyGraph, ErrMissingEndpoints.
func Build(p Problem) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := model.New(Kind)
	arcs := Arcs(p.Graph)
	out := make(map[string][]int)
	in := make(map[string][]int)
	objective := make(model.Expr, 0, len(arcs))

	for _, a := range arcs {
		name := fmt.Sprintf("x(%s,%s)", a.From, a.To)
		if _, taken := m.VarIndex(name); taken {
			// Parallel edge: disambiguate by edge ID.
			name = fmt.Sprintf("x(%s,%s)[%s]", a.From, a.To, a.EdgeID)
		}
		idx, err := m.AddVar(name, 0, 1, model.Binary)
		if err != nil {
			return nil, err
		}
		out[a.From] = append(out[a.From], idx)
		in[a.To] = append(in[a.To], idx)
		objective = append(objective, model.Term{Var: idx, Coef: a.Weight})
	}
	if err := m.SetObjective(objective, model.Minimize); err != nil {
		return nil, err
	}

	for _, v := range p.Graph.Vertices() {
		expr := make(model.Expr, 0, len(out[v])+len(in[v]))
		for _, i := range out[v] {
			expr = append(expr, model.Term{Var: i, Coef: 1})
		}
		for _, i := range in[v] {
			expr = append(expr, model.Term{Var: i, Coef: -1})
		}

		name, supply := "flow_"+v, 0.0
		switch v {
		case p.Start:
			name, supply = "flow_start_"+v, 1
		case p.End:
			name, supply = "flow_end_"+v, -1
		}
		if _, err := m.AddConstraint(name, expr, model.EQ, supply); err != nil {
			return nil, err
		}
	}

	return m, nil
}
