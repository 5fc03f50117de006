package stem

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/stemgraph/atoms"
	"github.com/katalvlaran/stemgraph/mask"
)

// fwhmToSigma converts a Gaussian FWHM to its standard deviation.
const fwhmToSigma = 1 / 2.354820045030949

// probeWindow is the half-width, in standard deviations, of each rendered blob.
const probeWindow = 4.0

// Option configures a ProbeSimulator.
type Option func(*ProbeSimulator)

// WithOutputSize sets the image width and height in pixels.
func WithOutputSize(width, height int) Option {
	return func(s *ProbeSimulator) { s.width, s.height = width, height }
}

// WithContrastExponent sets the exponent n of the Z^n contrast law.
func WithContrastExponent(n float64) Option {
	return func(s *ProbeSimulator) { s.exponent = n }
}

// ProbeSimulator is the reference Simulator. It is immutable after
// construction and safe for concurrent use.
type ProbeSimulator struct {
	width, height int
	exponent      float64
}

// NewProbeSimulator returns a 256×256 simulator with Z^1.7 contrast,
// modified by opts. Returns ErrBadOutputSize for a non-positive size.
func NewProbeSimulator(opts ...Option) (*ProbeSimulator, error) {
	s := &ProbeSimulator{width: DefaultSize, height: DefaultSize, exponent: DefaultExponent}
	for _, opt := range opts {
		opt(s)
	}
	if s.width <= 0 || s.height <= 0 {
		return nil, errors.Wrapf(ErrBadOutputSize, "%dx%d", s.width, s.height)
	}
	return s, nil
}

// Size returns the output shape.
func (s *ProbeSimulator) Size() mask.Shape {
	return mask.Shape{Width: s.width, Height: s.height}
}

// Simulate renders st with parameters p.
//
// Steps: tile the a and b lattice vectors over a disk covering the rotated
// field of view (no tiling if they are degenerate), rotate every atom by
// p.RotationDegrees about the view centre, translate by p.Shift, convert to
// pixels and keep atoms whose rounded pixel lies in the image.
//
// Complexity: O(T×A + K×w²) for T tiles, A atoms per cell, K atoms in view
// and blob width w.
func (s *ProbeSimulator) Simulate(st *atoms.Structure, p Params) (*Simulation, error) {
	if !(p.PxScale > 0) {
		return nil, errors.Wrapf(mask.ErrBadPixelScale, "got %g", p.PxScale)
	}
	if !(p.Eps > 0) {
		return nil, errors.Wrapf(ErrBadProbe, "eps %g", p.Eps)
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}

	fovW, fovH := float64(s.width)*p.PxScale, float64(s.height)*p.PxScale
	centre := r3.Vec{X: fovW / 2, Y: fovH / 2}
	reach := math.Hypot(fovW, fovH)/2 + math.Hypot(p.Shift[0], p.Shift[1])

	tiles, err := tileOffsets(st.Lattice[0], st.Lattice[1], centre, reach)
	if err != nil {
		return nil, err
	}

	rot := r3.NewRotation(p.RotationDegrees*math.Pi/180, r3.Vec{Z: 1})
	shift := r3.Vec{X: p.Shift[0], Y: p.Shift[1]}

	label, err := mask.NewGrid(s.Size())
	if err != nil {
		return nil, err
	}
	sim := &Simulation{
		Image: mat.NewDense(s.height, s.width, nil),
		Label: label,
	}
	for _, off := range tiles {
		for i, pos := range st.Positions {
			v := r3.Add(pos, off)
			v.Z = 0
			v = r3.Add(r3.Add(rot.Rotate(r3.Sub(v, centre)), centre), shift)
			pt := mask.Point{X: v.X / p.PxScale, Y: v.Y / p.PxScale}
			col, row := int(math.Round(pt.X)), int(math.Round(pt.Y))
			if !label.InBounds(col, row) {
				continue
			}
			sim.Positions = append(sim.Positions, pt)
			sim.Numbers = append(sim.Numbers, st.Numbers[i])
			label.Set(col, row, st.Numbers[i])
		}
	}

	sigma := p.Eps * fwhmToSigma / p.PxScale
	for i, pt := range sim.Positions {
		s.addProbe(sim.Image, pt, sigma, math.Pow(float64(sim.Numbers[i]), s.exponent))
	}
	return sim, nil
}

// addProbe accumulates amp·exp(-d²/2σ²) around pt, truncated at probeWindow·σ.
func (s *ProbeSimulator) addProbe(img *mat.Dense, pt mask.Point, sigma, amp float64) {
	w := probeWindow * sigma
	x0 := max(int(math.Floor(pt.X-w)), 0)
	x1 := min(int(math.Ceil(pt.X+w)), s.width-1)
	y0 := max(int(math.Floor(pt.Y-w)), 0)
	y1 := min(int(math.Ceil(pt.Y+w)), s.height-1)
	inv := 1 / (2 * sigma * sigma)
	for y := y0; y <= y1; y++ {
		dy := float64(y) - pt.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) - pt.X
			img.Set(y, x, img.At(y, x)+amp*math.Exp(-(dx*dx+dy*dy)*inv))
		}
	}
}

// tileOffsets returns the lattice translations i·a + j·b whose cells can
// reach within reach of centre. A degenerate in-plane lattice yields the
// single zero offset.
func tileOffsets(a, b, centre r3.Vec, reach float64) ([]r3.Vec, error) {
	det := a.X*b.Y - a.Y*b.X
	if math.Abs(det) < 1e-9 {
		return []r3.Vec{{}}, nil
	}
	// Fractional coordinates of the centre.
	fi := (centre.X*b.Y - centre.Y*b.X) / det
	fj := (a.X*centre.Y - a.Y*centre.X) / det
	// Distance between lattice lines bounds how many cells span reach.
	area := math.Abs(det)
	ni := int(math.Ceil(reach*math.Hypot(b.X, b.Y)/area)) + 1
	nj := int(math.Ceil(reach*math.Hypot(a.X, a.Y)/area)) + 1
	if (2*ni+1)*(2*nj+1) > MaxTiles {
		return nil, errors.Wrapf(ErrLatticeTooDense, "%d×%d cells", 2*ni+1, 2*nj+1)
	}
	ci, cj := int(math.Round(fi)), int(math.Round(fj))
	out := make([]r3.Vec, 0, (2*ni+1)*(2*nj+1))
	for i := ci - ni; i <= ci+ni; i++ {
		for j := cj - nj; j <= cj+nj; j++ {
			out = append(out, r3.Vec{
				X: float64(i)*a.X + float64(j)*b.X,
				Y: float64(i)*a.Y + float64(j)*b.Y,
			})
		}
	}
	return out, nil
}
