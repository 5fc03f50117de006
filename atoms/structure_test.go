package atoms_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/stemgraph/atoms"
)

func TestValidate(t *testing.T) {
	ok := &atoms.Structure{Positions: []r3.Vec{{}, {X: 1}}, Numbers: []int{42, 16}}
	require.NoError(t, ok.Validate())
	require.Equal(t, 2, ok.Len())

	bad := &atoms.Structure{Positions: []r3.Vec{{}}, Numbers: nil}
	require.ErrorIs(t, bad.Validate(), atoms.ErrLengthMismatch)

	zero := &atoms.Structure{Positions: []r3.Vec{{}}, Numbers: []int{0}}
	require.ErrorIs(t, zero.Validate(), atoms.ErrBadAtomicNumber)

	require.NoError(t, (&atoms.Structure{}).Validate())
}

func TestCartesianAndClone(t *testing.T) {
	s := &atoms.Structure{
		Lattice:   [3]r3.Vec{{X: 3}, {X: 1.5, Y: 2}, {Z: 10}},
		Positions: []r3.Vec{{X: 1}},
		Numbers:   []int{42},
	}
	require.Equal(t, r3.Vec{X: 2.25, Y: 1, Z: 5}, s.Cartesian(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}))

	c := s.Clone()
	c.Positions[0].X = 9
	c.Numbers[0] = 16
	require.Equal(t, 1.0, s.Positions[0].X)
	require.Equal(t, 42, s.Numbers[0])
}
