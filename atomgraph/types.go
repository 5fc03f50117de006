package atomgraph

import (
	"sync"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/stemgraph/mask"
)

// Sentinel errors for graph construction and extraction.
var (
	// ErrShapeMismatch indicates an intensity image whose size differs from the mask.
	ErrShapeMismatch = errors.New("atomgraph: image and mask shapes differ")

	// ErrBadCutoff indicates a non-positive radius-graph cutoff.
	ErrBadCutoff = errors.New("atomgraph: cutoff must be positive")

	// ErrNodeNotFound indicates an edge endpoint that is not a node of the graph.
	ErrNodeNotFound = errors.New("atomgraph: node not found")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("atomgraph: self-loop not allowed")
)

// DefaultCutoff is the default radius-graph cutoff in angstrom.
const DefaultCutoff = 4.0

// Node is one detected atom.
type Node struct {
	// ID is the node's index in the graph, assigned by AddNode.
	ID int

	// Pos is the atom position in angstrom; Z is always 0 for
	// projections.
	Pos r3.Vec

	// Intensity is the mean normalised image intensity over the component.
	Intensity float64

	// R is the equivalent radius in angstrom.
	R float64
}

// Edge joins two nodes. Src < Dst for stored edges; DirectedEdges also
// yields the reverse orientation.
type Edge struct {
	Src, Dst int

	// Bond is Pos(Dst) − Pos(Src) once ComputeBonds has run.
	Bond r3.Vec
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithPixelScale records the pixel scale (Å/px) the graph was extracted with.
func WithPixelScale(px float64) GraphOption {
	return func(g *Graph) { g.pxScale = px }
}

// WithNodeCapacity preallocates storage for n nodes.
func WithNodeCapacity(n int) GraphOption {
	return func(g *Graph) {
		g.nodes = make([]Node, 0, n)
		g.adjacency = make([][]int, 0, n)
	}
}

// Graph is an undirected atom graph.
//
// mu guards every field; all exported methods are safe for concurrent use.
// Edges are kept unique by the seen set.
type Graph struct {
	mu sync.RWMutex

	pxScale float64

	nodes     []Node
	edges     []Edge
	adjacency [][]int
	seen      map[[2]int]struct{}
}

// ExtractorConfig fixes the reconstruction parameters. Connectivity must
// match between training and inference, so it is set once here.
type ExtractorConfig struct {
	// Connectivity used to label mask components.
	Connectivity mask.Connectivity

	// CutoffAngstrom is the inclusive radius-graph cutoff.
	CutoffAngstrom float64
}

// DefaultExtractorConfig returns full connectivity and a 4 Å cutoff.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Connectivity:   mask.DefaultConnectivity,
		CutoffAngstrom: DefaultCutoff,
	}
}
