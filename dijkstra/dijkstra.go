package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvopt/core"
)

// Dijkstra runs single-source shortest paths from the configured Source.
//
// dist holds a distance for every vertex of g (+Inf when unreachable or beyond
// MaxDistance). prev is nil unless WithReturnPath was given; otherwise prev[v]
// is the predecessor of v on one shortest path, "" for the source and for
// unreachable vertices.
//
// Ties between equal-distance vertices are broken by vertex ID so results are
// deterministic.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(o.Source) {
		return nil, nil, ErrVertexNotFound
	}

	r := newRunner(g, o)
	if err := r.run(); err != nil {
		return nil, nil, err
	}
	if !o.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the vertex sequence and length of one shortest path
// from source to target.
func ShortestPath(g *core.Graph, source, target string) ([]string, float64, error) {
	if g != nil && !g.HasVertex(target) {
		return nil, 0, ErrVertexNotFound
	}
	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	path, err := PathTo(prev, source, target)
	if err != nil {
		return nil, 0, err
	}

	return path, dist[target], nil
}

// PathTo rebuilds the route source → target from a predecessor map.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	if source == target {
		return []string{source}, nil
	}
	if prev[target] == "" {
		return nil, ErrNoPath
	}

	var rev []string
	for v := target; v != source; v = prev[v] {
		if v == "" || len(rev) > len(prev) {
			return nil, ErrNoPath
		}
		rev = append(rev, v)
	}
	rev = append(rev, source)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

type runner struct {
	g       *core.Graph
	opts    Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, o Options) *runner {
	ids := g.Vertices()
	r := &runner{
		g:       g,
		opts:    o,
		dist:    make(map[string]float64, len(ids)),
		prev:    make(map[string]string, len(ids)),
		visited: make(map[string]bool, len(ids)),
	}
	for _, id := range ids {
		r.dist[id] = math.Inf(1)
		r.prev[id] = ""
	}
	r.dist[o.Source] = 0
	heap.Push(&r.pq, &item{id: o.Source, dist: 0})

	return r
}

func (r *runner) run() error {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item)
		if r.visited[it.id] || it.dist > r.dist[it.id] {
			continue
		}
		if it.dist > r.opts.MaxDistance {
			break
		}
		r.visited[it.id] = true
		if err := r.process(it.id); err != nil {
			return err
		}
	}
	for id, d := range r.dist {
		if d > r.opts.MaxDistance {
			r.dist[id] = math.Inf(1)
			r.prev[id] = ""
		}
	}

	return nil
}

func (r *runner) process(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return err
	}
	for _, e := range edges {
		v := e.To
		if v == u {
			v = e.From
		}
		if v == u || e.Weight >= r.opts.InfEdgeThreshold {
			continue
		}
		r.relax(u, v, e.Weight)
	}

	return nil
}

func (r *runner) relax(u, v string, w float64) {
	if r.visited[v] {
		return
	}
	nd := r.dist[u] + w
	if nd < r.dist[v] {
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &item{id: v, dist: nd})
	}
}

type item struct {
	id   string
	dist float64
}

// nodePQ is a min-heap keyed by distance, then ID. Stale entries are
// skipped on pop instead of being updated in place.
type nodePQ []*item

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
