package atomgraph

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// NewGraph creates an empty Graph and applies opts in order.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{seen: make(map[[2]int]struct{})}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PxScale returns the pixel scale the graph was built with, or 0 if unset.
func (g *Graph) PxScale() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pxScale
}

// AddNode appends n, overwriting n.ID with the assigned index, and returns
// that index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n.ID = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adjacency = append(g.adjacency, nil)
	return n.ID
}

// AddEdge joins u and v. The edge is stored as (min, max); adding an
// existing pair again is a no-op.
//
// Returns ErrNodeNotFound or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrLoopNotAllowed
	}
	if u > v {
		u, v = v, u
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if u < 0 || v >= len(g.nodes) {
		return errors.Wrapf(ErrNodeNotFound, "edge (%d,%d) in graph of %d nodes", u, v, len(g.nodes))
	}
	key := [2]int{u, v}
	if _, ok := g.seen[key]; ok {
		return nil
	}
	g.seen[key] = struct{}{}
	g.edges = append(g.edges, Edge{Src: u, Dst: v})
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	return nil
}

// HasEdge reports whether u and v are joined, in either orientation.
func (g *Graph) HasEdge(u, v int) bool {
	if u > v {
		u, v = v, u
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.seen[[2]int{u, v}]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Node returns a copy of node id.
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.nodes) {
		return Node{}, errors.Wrapf(ErrNodeNotFound, "id %d", id)
	}
	return g.nodes[id], nil
}

// Nodes returns a copy of all nodes in ID order.
// Complexity: O(N).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of the canonical edges sorted by (Src, Dst).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	g.mu.RUnlock()
	sortEdges(out)
	return out
}

// DirectedEdges returns every edge in both orientations, u→v followed by
// v→u, in canonical edge order. Bond is negated for the reverse orientation.
// Complexity: O(E log E).
func (g *Graph) DirectedEdges() []Edge {
	canon := g.Edges()
	out := make([]Edge, 0, 2*len(canon))
	for _, e := range canon {
		out = append(out, e, Edge{Src: e.Dst, Dst: e.Src, Bond: r3.Scale(-1, e.Bond)})
	}
	return out
}

// Neighbors returns the sorted IDs of nodes adjacent to id.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.nodes) {
		return nil, errors.Wrapf(ErrNodeNotFound, "id %d", id)
	}
	out := make([]int, len(g.adjacency[id]))
	copy(out, g.adjacency[id])
	sort.Ints(out)
	return out, nil
}

// NodeFeatures returns the N×2 feature block [intensity, r] in node order.
// An empty graph yields an empty (zero-value) matrix.
// Complexity: O(N).
func (g *Graph) NodeFeatures() *mat.Dense {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.nodes) == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 0, 2*len(g.nodes))
	for _, n := range g.nodes {
		data = append(data, n.Intensity, n.R)
	}
	return mat.NewDense(len(g.nodes), 2, data)
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Src != es[j].Src {
			return es[i].Src < es[j].Src
		}
		return es[i].Dst < es[j].Dst
	})
}
