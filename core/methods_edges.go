// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetEdgeWeight/RemoveEdge/RemoveEdgeBetween,
//       HasEdge/GetEdge/EdgeBetween/Edges/EdgeCount. Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (by ID sequence number).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge between two existing vertices.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Verify both endpoints exist (endpoints are never created implicitly).
//  3. Lock muEdgeAdj, check the multi-edge constraint (both orientations when undirected).
//  4. Generate eid atomically, store the Edge and link adjacency (mirrored when undirected).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrBadWeight, ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if err := checkWeight(weight); err != nil {
		return "", err
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Undirected edges are mirrored, so a single lookup covers both orientations.
	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	e.seq = atomic.AddUint64(&g.nextEdgeID, 1)
	e.ID = formatEdgeID(e.seq)

	g.edges[e.ID] = e
	linkAdjacency(g, e)

	return e.ID, nil
}

// SetEdgeWeight replaces the weight of edge eid.
//
// Errors:
//   - ErrBadWeight: weight is negative, NaN or infinite.
//   - ErrEdgeNotFound: eid does not exist.
func (g *Graph) SetEdgeWeight(eid string, weight float64) error {
	if err := checkWeight(weight); err != nil {
		return err
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// RemoveEdge deletes one edge and its mirror.
// Complexity: O(1) removal + O(V+E) cleanup in degenerate cases.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	cleanupAdjacency(g)

	return nil
}

// RemoveEdgeBetween deletes every edge from→to (and to→from when undirected).
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdgeBetween(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	bucket := g.adjacencyList[from][to]
	if len(bucket) == 0 {
		return ErrEdgeNotFound
	}
	ids := make([]string, 0, len(bucket))
	for eid := range bucket {
		ids = append(ids, eid)
	}
	for _, eid := range ids {
		if e, ok := g.edges[eid]; ok {
			delete(g.edges, eid)
			removeAdjacency(g, e)
		}
	}
	cleanupAdjacency(g)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Works for undirected graphs as AddEdge mirrors adjacency automatically.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the oldest edge from→to (either orientation when
// undirected), or ErrEdgeNotFound.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var best *Edge
	for eid := range g.adjacencyList[from][to] {
		e := g.edges[eid]
		if e == nil {
			continue
		}
		if best == nil || e.seq < best.seq {
			best = e
		}
	}
	if best == nil {
		return nil, ErrEdgeNotFound
	}

	return best, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E) for sorting.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// checkWeight enforces finite, non-negative weights.
func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return ErrBadWeight
	}

	return nil
}

// formatEdgeID renders "e" + decimal sequence without fmt allocations.
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// sortEdges orders edges by insertion sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
