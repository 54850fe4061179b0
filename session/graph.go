package session

import (
	"strings"

	"github.com/katalvlaran/lvopt/core"
	"github.com/katalvlaran/lvopt/fileio"
	"github.com/katalvlaran/lvopt/shortestpath"
)

// GraphEditor owns the graph and route endpoints of a shortest-path session.
type GraphEditor struct {
	opts  []core.GraphOption
	g     *core.Graph
	start string
	end   string
}

// NewGraphEditor returns an editor over an empty graph built with opts.
func NewGraphEditor(opts ...core.GraphOption) *GraphEditor {
	return &GraphEditor{
		opts:  opts,
		g:     core.NewGraph(opts...),
		start: shortestpath.Unselected,
		end:   shortestpath.Unselected,
	}
}

// Graph exposes the owned graph for read access.
func (e *GraphEditor) Graph() *core.Graph { return e.g }

// Problem returns the current graph and endpoints as a solvable problem.
func (e *GraphEditor) Problem() shortestpath.Problem {
	return shortestpath.Problem{Graph: e.g, Start: e.start, End: e.end}
}

// AddNode adds a node from user text.
func (e *GraphEditor) AddNode(name string) error {
	return e.g.AddVertex(strings.TrimSpace(name))
}

// RenameNode renames a node, keeping its edges and endpoint selection.
func (e *GraphEditor) RenameNode(oldName, newName string) error {
	oldName, newName = strings.TrimSpace(oldName), strings.TrimSpace(newName)
	if err := e.g.RenameVertex(oldName, newName); err != nil {
		return err
	}
	if e.start == oldName {
		e.start = newName
	}
	if e.end == oldName {
		e.end = newName
	}

	return nil
}

// RemoveNode deletes a node and its edges. A removed endpoint is unselected.
func (e *GraphEditor) RemoveNode(name string) error {
	name = strings.TrimSpace(name)
	if err := e.g.RemoveVertex(name); err != nil {
		return err
	}
	if e.start == name {
		e.start = shortestpath.Unselected
	}
	if e.end == name {
		e.end = shortestpath.Unselected
	}

	return nil
}

// AddEdge adds an edge between existing nodes; weight is user text.
func (e *GraphEditor) AddEdge(from, to, weight string) error {
	w, err := parseNumber(weight)
	if err != nil {
		return err
	}
	_, err = e.g.AddEdge(strings.TrimSpace(from), strings.TrimSpace(to), w)

	return err
}

// SetEdgeWeight changes the weight of the edge between from and to.
func (e *GraphEditor) SetEdgeWeight(from, to, weight string) error {
	w, err := parseNumber(weight)
	if err != nil {
		return err
	}
	edge, err := e.g.EdgeBetween(strings.TrimSpace(from), strings.TrimSpace(to))
	if err != nil {
		return err
	}

	return e.g.SetEdgeWeight(edge.ID, w)
}

// RemoveEdge deletes the edge between from and to.
func (e *GraphEditor) RemoveEdge(from, to string) error {
	return e.g.RemoveEdgeBetween(strings.TrimSpace(from), strings.TrimSpace(to))
}

// SetStart selects the start node. The placeholder unselects it.
func (e *GraphEditor) SetStart(name string) error {
	id, err := e.endpoint(name)
	if err != nil {
		return err
	}
	e.start = id

	return nil
}

// SetEnd selects the end node. The placeholder unselects it.
func (e *GraphEditor) SetEnd(name string) error {
	id, err := e.endpoint(name)
	if err != nil {
		return err
	}
	e.end = id

	return nil
}

func (e *GraphEditor) endpoint(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == shortestpath.Unselected {
		return shortestpath.Unselected, nil
	}
	if !e.g.HasVertex(name) {
		return "", core.ErrVertexNotFound
	}

	return name, nil
}

// Endpoints returns the selected start and end (possibly the placeholder).
func (e *GraphEditor) Endpoints() (start, end string) { return e.start, e.end }

// Load replaces the graph with the CSV at path. Endpoints are unselected.
func (e *GraphEditor) Load(path string) error {
	g, err := fileio.LoadGraph(path, e.opts...)
	if err != nil {
		return err
	}
	e.g = g
	e.start, e.end = shortestpath.Unselected, shortestpath.Unselected

	return nil
}

// Save writes the graph to path as CSV.
func (e *GraphEditor) Save(path string) error {
	return fileio.SaveGraph(path, e.g)
}

// Clear empties the graph and unselects the endpoints.
func (e *GraphEditor) Clear() {
	e.g.Clear()
	e.start, e.end = shortestpath.Unselected, shortestpath.Unselected
}
