package fileio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvopt/core"
)

// ReadGraph parses a graph CSV into a new graph built with opts.
//
// Edge rows create missing endpoints. When the graph does not allow parallel
// edges, a repeated edge row overwrites the weight of the existing edge.
func ReadGraph(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	g := core.NewGraph(opts...)
	records := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records++
		line, _ := cr.FieldPos(0)

		switch len(rec) {
		case 1:
			if err := ensureVertex(g, rec[0]); err != nil {
				return nil, fmt.Errorf("%w on line %d: %v", ErrBadRecord, line, err)
			}
		case 3:
			w, err := parseNumber(line, rec[2])
			if err != nil {
				return nil, err
			}
			if err := addEdge(g, rec[0], rec[1], w); err != nil {
				return nil, fmt.Errorf("%w on line %d: %v", ErrBadRecord, line, err)
			}
		}
	}
	if records == 0 {
		return nil, ErrEmptyFile
	}

	return g, nil
}

func ensureVertex(g *core.Graph, id string) error {
	if g.HasVertex(id) {
		return nil
	}

	return g.AddVertex(id)
}

func addEdge(g *core.Graph, from, to string, w float64) error {
	if err := ensureVertex(g, from); err != nil {
		return err
	}
	if err := ensureVertex(g, to); err != nil {
		return err
	}
	if !g.Multigraph() {
		if e, err := g.EdgeBetween(from, to); err == nil {
			return g.SetEdgeWeight(e.ID, w)
		}
	}
	_, err := g.AddEdge(from, to, w)

	return err
}

// WriteGraph writes every vertex row, sorted by ID, then every edge row in
// insertion order.
func WriteGraph(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	for _, id := range g.Vertices() {
		if err := cw.Write([]string{id}); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if err := cw.Write([]string{e.From, e.To, formatNumber(e.Weight)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// LoadGraph reads a graph CSV from path.
func LoadGraph(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadGraph(f, opts...)
}

// SaveGraph writes g to path as CSV.
func SaveGraph(path string, g *core.Graph) error {
	return create(path, func(f *os.File) error { return WriteGraph(f, g) })
}
