package converters

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/stemgraph/atomgraph"
)

// ToGonum converts g into a weighted undirected gonum graph. Every atom
// becomes simple.Node(ID), isolated atoms included, and every edge carries
// the in-plane distance between its atoms. Missing edges weigh +Inf.
func ToGonum(g *atomgraph.Graph) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	nodes := g.Nodes()
	for _, n := range nodes {
		out.AddNode(simple.Node(int64(n.ID)))
	}
	for _, e := range g.Edges() {
		w := r3.Norm(r3.Sub(nodes[e.Dst].Pos, nodes[e.Src].Pos))
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(int64(e.Src)), simple.Node(int64(e.Dst)), w))
	}
	return out
}

// Clusters returns the connected components of g as sorted node ID lists,
// ordered by their first element.
func Clusters(g *atomgraph.Graph) [][]int {
	cc := topo.ConnectedComponents(ToGonum(g))
	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		ids := make([]int, len(comp))
		for i, n := range comp {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
