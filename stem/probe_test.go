package stem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/stemgraph/atoms"
	"github.com/katalvlaran/stemgraph/mask"
	"github.com/katalvlaran/stemgraph/stem"
)

func newSim(t *testing.T, w, h int) *stem.ProbeSimulator {
	t.Helper()
	s, err := stem.NewProbeSimulator(stem.WithOutputSize(w, h))
	require.NoError(t, err)
	return s
}

// lone places one atom with no lattice, so nothing is tiled.
func lone(x, y float64, z int) *atoms.Structure {
	return &atoms.Structure{Positions: []r3.Vec{{X: x, Y: y, Z: 3}}, Numbers: []int{z}}
}

func defaultParams() stem.Params {
	return stem.Params{PxScale: 0.1, Eps: stem.DefaultEps}
}

func TestSimulate_SingleAtom(t *testing.T) {
	sim, err := newSim(t, 32, 32).Simulate(lone(1.6, 1.6, 42), defaultParams())
	require.NoError(t, err)

	require.Len(t, sim.Positions, 1)
	assert.InDelta(t, 16, sim.Positions[0].X, 1e-9)
	assert.InDelta(t, 16, sim.Positions[0].Y, 1e-9)
	assert.Equal(t, []int{42}, sim.Numbers)

	assert.Equal(t, 42, sim.Label.At(16, 16))
	assert.Equal(t, 1, sim.Label.Foreground())

	r, c := sim.Image.Dims()
	assert.Equal(t, [2]int{32, 32}, [2]int{r, c})
	assert.InDelta(t, math.Pow(42, stem.DefaultExponent), sim.Image.At(16, 16), 1e-6)
	assert.Equal(t, mat.Max(sim.Image), sim.Image.At(16, 16))
}

func TestSimulate_RotationAndShift(t *testing.T) {
	s := newSim(t, 32, 32)
	// One angstrom right of the view centre.
	st := lone(2.6, 1.6, 16)

	p := defaultParams()
	p.RotationDegrees = 90
	sim, err := s.Simulate(st, p)
	require.NoError(t, err)
	require.Len(t, sim.Positions, 1)
	assert.InDelta(t, 16, sim.Positions[0].X, 1e-9)
	assert.InDelta(t, 26, sim.Positions[0].Y, 1e-9)

	p = defaultParams()
	p.Shift = [2]float64{0.5, -0.3}
	sim, err = s.Simulate(st, p)
	require.NoError(t, err)
	require.Len(t, sim.Positions, 1)
	assert.InDelta(t, 31, sim.Positions[0].X, 1e-9)
	assert.InDelta(t, 13, sim.Positions[0].Y, 1e-9)
}

func TestSimulate_TilesLattice(t *testing.T) {
	st := &atoms.Structure{
		Positions: []r3.Vec{{}},
		Numbers:   []int{42},
		Lattice:   [3]r3.Vec{{X: 3}, {Y: 3}, {Z: 20}},
	}
	sim, err := newSim(t, 64, 64).Simulate(st, defaultParams())
	require.NoError(t, err)
	assert.Len(t, sim.Positions, 9)
	assert.Equal(t, 9, sim.Label.Foreground())
	for _, xy := range [][2]int{{0, 0}, {30, 30}, {60, 0}, {60, 60}} {
		assert.Equal(t, 42, sim.Label.At(xy[0], xy[1]), "pixel %v", xy)
	}

	// Rotated views stay populated and are reproducible.
	p := defaultParams()
	p.RotationDegrees = 33
	a, err := newSim(t, 64, 64).Simulate(st, p)
	require.NoError(t, err)
	b, err := newSim(t, 64, 64).Simulate(st, p)
	require.NoError(t, err)
	assert.NotEmpty(t, a.Positions)
	assert.Equal(t, a.Positions, b.Positions)
	assert.True(t, mat.Equal(a.Image, b.Image))
}

func TestSimulate_OutOfViewDropped(t *testing.T) {
	sim, err := newSim(t, 16, 16).Simulate(lone(100, 100, 42), defaultParams())
	require.NoError(t, err)
	assert.Empty(t, sim.Positions)
	assert.Zero(t, sim.Label.Foreground())
	assert.Zero(t, mat.Max(sim.Image))
}

func TestSimulate_Errors(t *testing.T) {
	s := newSim(t, 16, 16)

	_, err := s.Simulate(lone(1, 1, 42), stem.Params{PxScale: 0, Eps: 0.6})
	assert.ErrorIs(t, err, mask.ErrBadPixelScale)

	_, err = s.Simulate(lone(1, 1, 42), stem.Params{PxScale: 0.1})
	assert.ErrorIs(t, err, stem.ErrBadProbe)

	_, err = s.Simulate(&atoms.Structure{Positions: []r3.Vec{{}}}, defaultParams())
	assert.ErrorIs(t, err, atoms.ErrLengthMismatch)

	tiny := &atoms.Structure{
		Positions: []r3.Vec{{}},
		Numbers:   []int{1},
		Lattice:   [3]r3.Vec{{X: 0.001}, {Y: 0.001}},
	}
	_, err = s.Simulate(tiny, defaultParams())
	assert.ErrorIs(t, err, stem.ErrLatticeTooDense)

	_, err = stem.NewProbeSimulator(stem.WithOutputSize(0, 8))
	assert.ErrorIs(t, err, stem.ErrBadOutputSize)
}
