// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative float64 weights.
//
// It serves as a combinatorial cross-check of the LP shortest-path model: the
// session runner compares the route total read back from the solver with the
// distance found here and logs any disagreement.
//
// Behaviour:
//
//   - Directed edges are followed From → To; undirected edges in both directions.
//   - Self-loops never shorten a path and are skipped.
//   - WithMaxDistance stops expanding vertices whose distance exceeds the cap.
//   - WithInfEdgeThreshold treats edges with weight >= threshold as impassable.
//   - WithReturnPath records predecessors so PathTo can rebuild routes.
//
// Complexity: O((V + E) log V) time with a lazy-decrease-key binary heap,
// O(V + E) space.
//
// Errors:
//
//	ErrEmptySource     - no Source option given.
//	ErrNilGraph        - graph is nil.
//	ErrVertexNotFound  - source or target is not in the graph.
//	ErrBadMaxDistance  - MaxDistance is negative or NaN.
//	ErrBadInfThreshold - InfEdgeThreshold is not > 0.
//	ErrNoPath          - target is unreachable from source.
package dijkstra
