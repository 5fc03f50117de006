package atoms

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for structure validation.
var (
	// ErrLengthMismatch indicates positions and atomic numbers of different length.
	ErrLengthMismatch = errors.New("atoms: positions and atomic numbers differ in length")
	// ErrBadAtomicNumber indicates an atomic number below 1.
	ErrBadAtomicNumber = errors.New("atoms: atomic number must be at least 1")
)

// Structure is an ordered set of atoms. Positions[i] is the cartesian
// position of atom i in angstrom and Numbers[i] its atomic number.
// Lattice holds the three cell vectors as rows; the label pipeline does not
// interpret it.
type Structure struct {
	Positions []r3.Vec
	Numbers   []int
	Lattice   [3]r3.Vec
}

// Len returns the number of atoms.
func (s *Structure) Len() int { return len(s.Positions) }

// Validate checks that positions and numbers pair up and that every atomic
// number is positive.
func (s *Structure) Validate() error {
	if len(s.Positions) != len(s.Numbers) {
		return errors.Wrapf(ErrLengthMismatch, "%d positions, %d numbers", len(s.Positions), len(s.Numbers))
	}
	for i, z := range s.Numbers {
		if z < 1 {
			return errors.Wrapf(ErrBadAtomicNumber, "atom %d has Z=%d", i, z)
		}
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *Structure) Clone() *Structure {
	out := &Structure{
		Positions: make([]r3.Vec, len(s.Positions)),
		Numbers:   make([]int, len(s.Numbers)),
		Lattice:   s.Lattice,
	}
	copy(out.Positions, s.Positions)
	copy(out.Numbers, s.Numbers)
	return out
}

// Cartesian converts a fractional coordinate to cartesian angstrom using
// the lattice rows: f.X·a + f.Y·b + f.Z·c.
func (s *Structure) Cartesian(f r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(f.X, s.Lattice[0]), r3.Scale(f.Y, s.Lattice[1])), r3.Scale(f.Z, s.Lattice[2]))
}
