package atomgraph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/stemgraph/atomgraph"
)

func threeNodes(t *testing.T) *atomgraph.Graph {
	t.Helper()
	g := atomgraph.NewGraph(atomgraph.WithPixelScale(0.1))
	for i := 0; i < 3; i++ {
		id := g.AddNode(atomgraph.Node{ID: 99, Pos: r3.Vec{X: float64(i)}, Intensity: 0.5, R: float64(i)})
		require.Equal(t, i, id)
	}
	return g
}

func TestGraph_AddEdgeCanonical(t *testing.T) {
	g := threeNodes(t)
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(0, 2)) // duplicate, no-op
	require.NoError(t, g.AddEdge(1, 0))

	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, []atomgraph.Edge{{Src: 0, Dst: 1}, {Src: 0, Dst: 2}}, g.Edges())
	require.True(t, g.HasEdge(2, 0))
	require.False(t, g.HasEdge(1, 2))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, nbrs)
	require.Equal(t, 0.1, g.PxScale())
}

func TestGraph_AddEdgeErrors(t *testing.T) {
	g := threeNodes(t)
	require.ErrorIs(t, g.AddEdge(1, 1), atomgraph.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge(0, 3), atomgraph.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge(-1, 2), atomgraph.ErrNodeNotFound)

	_, err := g.Neighbors(7)
	require.ErrorIs(t, err, atomgraph.ErrNodeNotFound)
	_, err = g.Node(-1)
	require.ErrorIs(t, err, atomgraph.ErrNodeNotFound)
}

func TestGraph_NodeIDsAssigned(t *testing.T) {
	g := threeNodes(t)
	for i, n := range g.Nodes() {
		require.Equal(t, i, n.ID)
	}
	n, err := g.Node(2)
	require.NoError(t, err)
	require.Equal(t, 2.0, n.R)
}

func TestGraph_NodeFeatures(t *testing.T) {
	g := threeNodes(t)
	f := g.NodeFeatures()
	r, c := f.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, 0.5, f.At(1, 0))
	require.Equal(t, 1.0, f.At(1, 1))

	empty := atomgraph.NewGraph().NodeFeatures()
	require.True(t, empty.IsEmpty())
}

func TestGraph_DirectedEdges(t *testing.T) {
	g := threeNodes(t)
	require.NoError(t, g.AddEdge(0, 2))
	atomgraph.ComputeBonds(g)

	de := g.DirectedEdges()
	require.Len(t, de, 2)
	require.Equal(t, atomgraph.Edge{Src: 0, Dst: 2, Bond: r3.Vec{X: 2}}, de[0])
	require.Equal(t, atomgraph.Edge{Src: 2, Dst: 0, Bond: r3.Vec{X: -2}}, de[1])
}

// TestGraph_ConcurrentAddEdge adds edges from many goroutines and checks
// that each pair is stored once.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	const n = 50
	g := atomgraph.NewGraph(atomgraph.WithNodeCapacity(n))
	for i := 0; i < n; i++ {
		g.AddNode(atomgraph.Node{})
	}
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n-1; i++ {
				_ = g.AddEdge(i, i+1)
				_ = g.EdgeCount()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, n-1, g.EdgeCount())
}
