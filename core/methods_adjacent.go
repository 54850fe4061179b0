// File: methods_adjacent.go
// Role: Neighborhood API (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() returns edges in insertion order.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns the edges leaving vertex id.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge (mirrored adjacency); self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	seen := make(map[string]struct{})
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable from id over one edge,
// sorted lexicographically ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			set[e.To] = struct{}{}
		} else {
			set[e.From] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjID guarantees an outer adjacency bucket for id.
func ensureAdjID(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap guarantees the nested bucket adjacencyList[from][to].
func ensureAdjMap(g *Graph, from, to string) {
	ensureAdjID(g, from)
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// linkAdjacency registers e in the adjacency buckets, mirroring undirected edges.
func linkAdjacency(g *Graph, e *Edge) {
	ensureAdjMap(g, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjMap(g, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

// removeAdjacency unlinks e from both orientations without pruning buckets.
func removeAdjacency(g *Graph, e *Edge) {
	if inner, ok := g.adjacencyList[e.From][e.To]; ok {
		delete(inner, e.ID)
	}
	if !e.Directed {
		if inner, ok := g.adjacencyList[e.To][e.From]; ok {
			delete(inner, e.ID)
		}
	}
}

// cleanupAdjacency prunes empty nested buckets and buckets pointing at
// vertices that no longer exist. Outer per-vertex buckets of live vertices stay.
func cleanupAdjacency(g *Graph) {
	for from, tos := range g.adjacencyList {
		for to, ids := range tos {
			if len(ids) == 0 {
				delete(tos, to)
			}
		}
		if _, live := g.vertices[from]; !live {
			delete(g.adjacencyList, from)
		}
	}
}
