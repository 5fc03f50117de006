package atomgraph

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/stemgraph/mask"
	"github.com/katalvlaran/stemgraph/regionprops"
)

// Extractor converts masks into atom graphs with a fixed configuration.
// An Extractor is immutable and safe for concurrent use.
type Extractor struct {
	cfg ExtractorConfig
}

// NewExtractor validates cfg and returns an Extractor.
// Returns ErrBadCutoff if cfg.CutoffAngstrom is not strictly positive.
func NewExtractor(cfg ExtractorConfig) (*Extractor, error) {
	if !(cfg.CutoffAngstrom > 0) || math.IsInf(cfg.CutoffAngstrom, 1) {
		return nil, errors.Wrapf(ErrBadCutoff, "got %g", cfg.CutoffAngstrom)
	}
	return &Extractor{cfg: cfg}, nil
}

// Config returns the extractor configuration.
func (e *Extractor) Config() ExtractorConfig { return e.cfg }

// Extract reconstructs the atom graph of m. image supplies node intensities
// and must have m.Height rows and m.Width columns. pxScale is the effective
// Å/pixel of the sample and is applied exactly once.
//
// The returned regions are in pixel units and share indices with the nodes.
//
// An all-background mask returns an empty graph and no regions without
// looking at image.
//
// Errors: mask.ErrBadPixelScale, ErrShapeMismatch, regionprops.ErrEmptyIntensity.
func (e *Extractor) Extract(m *mask.Grid, image *mat.Dense, pxScale float64) (*Graph, []regionprops.Region, error) {
	if !(pxScale > 0) {
		return nil, nil, errors.Wrapf(mask.ErrBadPixelScale, "got %g", pxScale)
	}
	if r, c := image.Dims(); r != m.Height || c != m.Width {
		return nil, nil, errors.Wrapf(ErrShapeMismatch, "mask %dx%d, image %dx%d", m.Height, m.Width, r, c)
	}

	lab := m.Components(e.cfg.Connectivity)
	if lab.Count() == 0 {
		return NewGraph(WithPixelScale(pxScale)), []regionprops.Region{}, nil
	}

	norm, err := regionprops.Normalize(image)
	if err != nil {
		return nil, nil, err
	}
	regions, err := regionprops.Measure(lab, norm)
	if err != nil {
		return nil, nil, err
	}

	g := NewGraph(WithPixelScale(pxScale), WithNodeCapacity(len(regions)))
	pos := make([]r3.Vec, len(regions))
	for i, reg := range regions {
		pos[i] = r3.Vec{X: reg.CentroidCol * pxScale, Y: reg.CentroidRow * pxScale}
		g.AddNode(Node{
			Pos:       pos[i],
			Intensity: reg.MeanIntensity,
			R:         0.5 * reg.EquivalentDiameter * pxScale,
		})
	}
	for _, p := range radiusPairs(pos, e.cfg.CutoffAngstrom) {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, nil, err
		}
	}
	return g, regions, nil
}
