// Package mask defines core types, options, and sentinel errors
// for label-image analysis.
package mask

import "github.com/cockroachdb/errors"

// Sentinel errors for mask operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("mask: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("mask: all rows must have the same length")
	// ErrLengthMismatch indicates positions and atomic numbers of different length.
	ErrLengthMismatch = errors.New("mask: positions and atomic numbers differ in length")
	// ErrBadPixelScale indicates a non-positive pixel scale.
	ErrBadPixelScale = errors.New("mask: pixel scale must be positive")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultConnectivity is the connectivity used for atom detection. Full
// (8-neighbour) connectivity matches the reference labelling pipeline and
// must stay identical between training and inference.
const DefaultConnectivity = Conn8

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Shape is the size of a label image in pixels.
type Shape struct {
	Width, Height int
}

// Point is a sub-pixel position: X is the column, Y the row.
type Point struct {
	X, Y float64
}

// Grid is a rectangular label image stored row-major.
// Cells[y*Width+x] holds the label at column x, row y; zero is background.
type Grid struct {
	Width, Height int
	Cells         []int
}

// Labeling is the result of connected-component analysis.
// Labels has the grid's shape: 0 marks background, k ≥ 1 marks component k.
// Components[k-1] lists the row-major cell indices of component k in
// breadth-first discovery order; Values[k-1] is the source cell value.
type Labeling struct {
	Width, Height int
	Labels        []int
	Components    [][]int
	Values        []int
}
