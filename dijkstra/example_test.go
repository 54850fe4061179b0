package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvopt/core"
	"github.com/katalvlaran/lvopt/dijkstra"
)

// ExampleShortestPath finds the cheapest route across a small road network.
func ExampleShortestPath() {
	// 1. Build an undirected graph; endpoints must exist before edges.
	g := core.NewGraph()
	for _, id := range []string{"depot", "north", "south", "shop"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("depot", "north", 4)
	_, _ = g.AddEdge("depot", "south", 1.5)
	_, _ = g.AddEdge("south", "north", 1)
	_, _ = g.AddEdge("north", "shop", 2)

	// 2. Ask for the route and its length.
	path, total, err := dijkstra.ShortestPath(g, "depot", "shop")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, total)
	// Output:
	// [depot south north shop] 4.5
}

// ExampleDijkstra shows the full distance map from one source.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 3)

	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	for _, id := range []string{"A", "B", "C"} {
		fmt.Printf("%s=%g\n", id, dist[id])
	}
	// Output:
	// A=0
	// B=2
	// C=5
}
