// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/RemoveVertex/RenameVertex,
//       Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Topology rewrites (remove, rename) hold muVert then muEdgeAdj.

package core

import "sort"

// AddVertex inserts a new vertex.
//
// Implementation:
//   - Stage 1: Validate the ID against the vertex alphabet.
//   - Stage 2: Under muVert write lock, reject duplicates and register the vertex.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID, ErrInvalidVertexID: from ValidateVertexID.
//   - ErrDuplicateVertex: if the ID is already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if err := ValidateVertexID(id); err != nil {
		return err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrDuplicateVertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	ensureAdjID(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(E) for scanning the edge catalog, Space O(1) extra.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	cleanupAdjacency(g)

	return nil
}

// RenameVertex changes the ID of vertex oldID to newID and rewrites every
// incident edge so that edge IDs, weights and orientation are preserved.
//
// Implementation:
//   - Stage 1: Validate newID; oldID == newID is a no-op once oldID is known to exist.
//   - Stage 2: Under both write locks, reject a missing oldID or an existing newID.
//   - Stage 3: Move the Vertex record, then relink every incident edge.
//
// Errors:
//   - ErrEmptyVertexID, ErrInvalidVertexID: newID is not a valid identifier.
//   - ErrVertexNotFound: oldID does not exist.
//   - ErrDuplicateVertex: newID already names another vertex.
//
// Complexity:
//   - Time O(E), Space O(deg(oldID)).
func (g *Graph) RenameVertex(oldID, newID string) error {
	if err := ValidateVertexID(newID); err != nil {
		return err
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	v, ok := g.vertices[oldID]
	if !ok {
		return ErrVertexNotFound
	}
	if oldID == newID {
		return nil
	}
	if _, taken := g.vertices[newID]; taken {
		return ErrDuplicateVertex
	}

	// Collect incident edges first, then relink them under the new name.
	var incident []*Edge
	for _, e := range g.edges {
		if e.From == oldID || e.To == oldID {
			incident = append(incident, e)
		}
	}
	for _, e := range incident {
		removeAdjacency(g, e)
	}

	delete(g.vertices, oldID)
	delete(g.adjacencyList, oldID)
	v.ID = newID
	g.vertices[newID] = v
	ensureAdjID(g, newID)

	for _, e := range incident {
		if e.From == oldID {
			e.From = newID
		}
		if e.To == oldID {
			e.To = newID
		}
		linkAdjacency(g, e)
	}
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
