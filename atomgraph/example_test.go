package atomgraph_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stemgraph/atomgraph"
	"github.com/katalvlaran/stemgraph/mask"
)

// ExampleExtractor_Extract reconstructs a three-atom chain from a mask of
// one-pixel atoms spaced 6 px apart at 0.5 Å/px (3 Å).
func ExampleExtractor_Extract() {
	m, _ := mask.NewGrid(mask.Shape{Width: 16, Height: 3})
	for _, x := range []int{1, 7, 13} {
		m.Set(x, 1, 1)
	}
	img := mat.NewDense(3, 16, nil)
	for _, x := range []int{1, 7, 13} {
		img.Set(1, x, 1)
	}

	ex, _ := atomgraph.NewExtractor(atomgraph.DefaultExtractorConfig())
	g, _, _ := ex.Extract(m, img, 0.5)
	atomgraph.ComputeBonds(g)

	for _, n := range g.Nodes() {
		fmt.Printf("node %d at (%.1f, %.1f)\n", n.ID, n.Pos.X, n.Pos.Y)
	}
	for _, e := range g.Edges() {
		fmt.Printf("edge %d-%d bond (%.1f, %.1f)\n", e.Src, e.Dst, e.Bond.X, e.Bond.Y)
	}

	// Output:
	// node 0 at (0.5, 0.5)
	// node 1 at (3.5, 0.5)
	// node 2 at (6.5, 0.5)
	// edge 0-1 bond (3.0, 0.0)
	// edge 1-2 bond (3.0, 0.0)
}
