package atomgraph

import "gonum.org/v1/gonum/spatial/r3"

// ComputeBonds sets Bond = Pos(Dst) − Pos(Src) on every edge of g.
// Positions are expected in angstrom already; no scaling is applied.
// Calling it twice is harmless.
// Complexity: O(E).
func ComputeBonds(g *Graph) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.edges {
		e := &g.edges[i]
		e.Bond = r3.Sub(g.nodes[e.Dst].Pos, g.nodes[e.Src].Pos)
	}
}
