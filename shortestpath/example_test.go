// Package shortestpath_test shows the full build → solve → interpret → walk chain.
package shortestpath_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvopt/core"
	"github.com/katalvlaran/lvopt/outcome"
	"github.com/katalvlaran/lvopt/shortestpath"
	"github.com/katalvlaran/lvopt/solver"
)

// ExampleBuild routes A to C over a directed triangle; the detour via B wins.
func ExampleBuild() {
	// 1) Directed graph; endpoints must exist before edges are added.
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	// 2) One binary variable per arc, one flow row per node.
	p := shortestpath.Problem{Graph: g, Start: "A", End: "C"}
	m, err := shortestpath.Build(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Solve, interpret, attach the route.
	s := solver.New()
	res, err := s.Solve(context.Background(), m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out := outcome.Interpret(context.Background(), m, res, s)
	if err = p.Finish(m, res, &out); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(out.Message())
	fmt.Println(out.Report())
	// Output:
	// Optimal solution found
	// A → B (Weight: 1)
	// B → C (Weight: 2)
	// Total: 3
}
