// Package render draws debug overlays of a sample: the intensity image as a
// heat map with the reconstructed atom graph on top.
package render

import (
	"image/color"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/stemgraph/atomgraph"
	"github.com/katalvlaran/stemgraph/mask"
)

// DefaultSize is the side length of saved overlays.
const DefaultSize = 6 * vg.Inch

// imageGrid exposes a row-major image as plotter.GridXYZ in angstrom.
type imageGrid struct {
	img *mat.Dense
	px  float64
}

func (g imageGrid) Dims() (c, r int) {
	r, c = g.img.Dims()
	return c, r
}
func (g imageGrid) Z(c, r int) float64 { return g.img.At(r, c) }
func (g imageGrid) X(c int) float64    { return float64(c) * g.px }
func (g imageGrid) Y(r int) float64    { return float64(r) * g.px }

// Overlay builds a plot of img at pxScale Å/pixel with g's bonds and atoms
// drawn on top. g may be nil.
func Overlay(title string, img *mat.Dense, pxScale float64, g *atomgraph.Graph) (*plot.Plot, error) {
	if !(pxScale > 0) {
		return nil, errors.Wrapf(mask.ErrBadPixelScale, "got %g", pxScale)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (Å)"
	p.Y.Label.Text = "y (Å)"

	hm := plotter.NewHeatMap(imageGrid{img: img, px: pxScale}, palette.Heat(64, 1))
	if !(hm.Max > hm.Min) {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	if g == nil || g.NodeCount() == 0 {
		return p, nil
	}
	nodes := g.Nodes()
	for _, e := range g.Edges() {
		a, b := nodes[e.Src].Pos, nodes[e.Dst].Pos
		l, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		if err != nil {
			return nil, errors.Wrap(err, "bond line")
		}
		l.Width = vg.Points(1)
		l.Color = color.RGBA{R: 40, G: 160, B: 255, A: 255}
		p.Add(l)
	}

	pts := make(plotter.XYs, len(nodes))
	for i, n := range nodes {
		pts[i] = plotter.XY{X: n.Pos.X, Y: n.Pos.Y}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "atom scatter")
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(3)
	sc.GlyphStyle.Color = color.White
	p.Add(sc)
	return p, nil
}

// Save writes p as a square image; the format follows the file extension.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(DefaultSize, DefaultSize, path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}
