package stem

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stemgraph/atoms"
	"github.com/katalvlaran/stemgraph/mask"
)

// Sentinel errors for simulation.
var (
	// ErrBadProbe indicates a non-positive probe width.
	ErrBadProbe = errors.New("stem: probe width must be positive")
	// ErrLatticeTooDense indicates a lattice too small to tile the view.
	ErrLatticeTooDense = errors.New("stem: lattice tiling exceeds cell limit")
	// ErrBadOutputSize indicates a non-positive output size.
	ErrBadOutputSize = errors.New("stem: output size must be positive")
)

// Defaults of the reference simulator and of the dataset layer.
const (
	DefaultSize     = 256
	DefaultPxScale  = 0.1
	DefaultEps      = 0.6
	DefaultExponent = 1.7

	// MaxTiles bounds the number of lattice cells rendered per image.
	MaxTiles = 1 << 16
)

// Params are the per-call imaging parameters.
type Params struct {
	PxScale         float64    // Å per pixel
	Eps             float64    // probe FWHM in Å
	RotationDegrees float64    // in-plane rotation about the view centre
	Shift           [2]float64 // in-plane translation in Å (x, y)
}

// Simulation is a rendered image and its ground truth.
type Simulation struct {
	// Image has Height rows and Width columns.
	Image *mat.Dense
	// Label holds Z at each atom's rounded pixel, 0 elsewhere.
	Label *mask.Grid
	// Positions are the atoms' sub-pixel positions, aligned with Numbers.
	Positions []mask.Point
	Numbers   []int
}

// Simulator renders a structure.
type Simulator interface {
	Simulate(s *atoms.Structure, p Params) (*Simulation, error)
}

// SimulatorFunc adapts a function to Simulator.
type SimulatorFunc func(s *atoms.Structure, p Params) (*Simulation, error)

// Simulate calls f(s, p).
func (f SimulatorFunc) Simulate(s *atoms.Structure, p Params) (*Simulation, error) {
	return f(s, p)
}
