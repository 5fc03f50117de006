package regionprops

import "github.com/cockroachdb/errors"

// Sentinel errors for region measurement.
var (
	// ErrEmptyIntensity indicates an intensity image whose maximum is zero,
	// negative or NaN, so it cannot be normalised.
	ErrEmptyIntensity = errors.New("regionprops: intensity image has no positive maximum")
	// ErrShapeMismatch indicates a label image and intensity image of different sizes.
	ErrShapeMismatch = errors.New("regionprops: label and intensity shapes differ")
)

// Region holds the measured properties of one connected component.
// Geometry is expressed in pixels.
type Region struct {
	Label int // component label, 1-based
	Value int // source mask value shared by the component's cells
	Area  int // number of cells

	CentroidRow float64 // mean row index
	CentroidCol float64 // mean column index

	// EquivalentDiameter is the diameter of a disk with the same area.
	EquivalentDiameter float64

	MinIntensity  float64
	MeanIntensity float64
	MaxIntensity  float64
}
