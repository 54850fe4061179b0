// Package core provides a thread-safe in-memory Graph used as the editable
// problem instance of the shortest-path tools.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Non-negative float64 weights on every edge
//   - Vertex IDs restricted to [a-zA-Z0-9_-]+ (ValidateVertexID)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Unlike a general-purpose graph store, AddEdge never creates endpoints
// implicitly: every edge must join two vertices that already exist, so an
// editor built on top of Graph can report "unknown node" before anything is
// mutated.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error               // O(1)
//	RenameVertex(oldID, newID string) error  // O(E)
//	RemoveVertex(id string) error            // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	SetEdgeWeight(edgeID string, weight float64) error                   // O(1)
//	RemoveEdge(edgeID string) error                                      // O(1)†
//	RemoveEdgeBetween(from, to string) error                             // O(k)†
//
//	// Queries
//	Vertices() []string          // sorted
//	Edges() []*Edge              // insertion order
//	Neighbors(id) ([]*Edge, error)
//	EdgeBetween(from, to) (*Edge, error)
//
//	† plus pruning of empty adjacency buckets.
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(true))
//	_ = g.AddVertex("A")
//	_ = g.AddVertex("B")
//	eid, _ := g.AddEdge("A", "B", 1.5)
//	_ = g.RenameVertex("B", "Depot")
//	e, _ := g.GetEdge(eid) // e.To == "Depot"
package core
