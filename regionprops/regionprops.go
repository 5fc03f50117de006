package regionprops

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/stemgraph/mask"
)

// Normalize returns a copy of image divided by its maximum value.
// The input is left untouched.
//
// Returns ErrEmptyIntensity if the maximum is not strictly positive.
// Complexity: O(W×H).
func Normalize(image *mat.Dense) (*mat.Dense, error) {
	hi := mat.Max(image)
	if !(hi > 0) {
		return nil, errors.Wrapf(ErrEmptyIntensity, "max = %g", hi)
	}
	var out mat.Dense
	out.Scale(1/hi, image)
	return &out, nil
}

// Measure computes one Region per component of lab, in label order.
// intensity must have lab.Height rows and lab.Width columns; it is read as
// given, callers wanting normalised intensities pass Normalize's output.
//
// Centroids are geometric (unweighted) means of cell coordinates.
//
// Returns ErrShapeMismatch if the shapes differ.
// Complexity: O(total component area).
func Measure(lab *mask.Labeling, intensity *mat.Dense) ([]Region, error) {
	r, c := intensity.Dims()
	if r != lab.Height || c != lab.Width {
		return nil, errors.Wrapf(ErrShapeMismatch, "labels %dx%d, intensity %dx%d",
			lab.Height, lab.Width, r, c)
	}

	regions := make([]Region, len(lab.Components))
	var rows, cols, vals []float64
	for k, comp := range lab.Components {
		rows, cols, vals = rows[:0], cols[:0], vals[:0]
		for _, idx := range comp {
			x, y := lab.Coordinate(idx)
			rows = append(rows, float64(y))
			cols = append(cols, float64(x))
			vals = append(vals, intensity.At(y, x))
		}
		area := len(comp)
		regions[k] = Region{
			Label:              k + 1,
			Value:              lab.Values[k],
			Area:               area,
			CentroidRow:        stat.Mean(rows, nil),
			CentroidCol:        stat.Mean(cols, nil),
			EquivalentDiameter: math.Sqrt(4 * float64(area) / math.Pi),
			MinIntensity:       floats.Min(vals),
			MeanIntensity:      stat.Mean(vals, nil),
			MaxIntensity:       floats.Max(vals),
		}
	}
	return regions, nil
}
