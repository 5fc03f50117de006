package classify

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/stemgraph/mask"
)

// Sentinel errors for classifiers.
var (
	// ErrBadFraction indicates a Threshold fraction outside (0, 1].
	ErrBadFraction = errors.New("classify: threshold fraction must be in (0, 1]")
	// ErrBadBins indicates an Otsu histogram with fewer than two bins.
	ErrBadBins = errors.New("classify: otsu needs at least two bins")
)

// DefaultBins is the Otsu histogram resolution used when Bins is zero.
const DefaultBins = 256

// Classifier predicts a binary mask (1 = atom, 0 = background) with the
// image's shape.
type Classifier interface {
	Classify(image *mat.Dense) (*mask.Grid, error)
}

// Func adapts a function to Classifier.
type Func func(image *mat.Dense) (*mask.Grid, error)

// Classify calls f(image).
func (f Func) Classify(image *mat.Dense) (*mask.Grid, error) { return f(image) }

// Threshold marks pixels at or above Fraction of the image maximum.
// An image without a positive maximum yields an empty mask.
type Threshold struct {
	Fraction float64
}

// Classify implements Classifier.
func (t Threshold) Classify(image *mat.Dense) (*mask.Grid, error) {
	if !(t.Fraction > 0 && t.Fraction <= 1) {
		return nil, errors.Wrapf(ErrBadFraction, "got %g", t.Fraction)
	}
	hi := mat.Max(image)
	if !(hi > 0) {
		return emptyLike(image)
	}
	return above(image, t.Fraction*hi)
}

// Otsu picks the global threshold that maximises between-class variance of
// a Bins-bin histogram. A flat image yields an empty mask.
type Otsu struct {
	Bins int
}

// Classify implements Classifier.
// Complexity: O(W×H log(W×H)) for the sort plus O(Bins).
func (o Otsu) Classify(image *mat.Dense) (*mask.Grid, error) {
	bins := o.Bins
	if bins == 0 {
		bins = DefaultBins
	}
	if bins < 2 {
		return nil, errors.Wrapf(ErrBadBins, "got %d", bins)
	}
	r, c := image.Dims()
	x := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		x = append(x, image.RawRowView(i)...)
	}
	sort.Float64s(x)
	lo, hi := x[0], x[len(x)-1]
	if !(hi > lo) {
		return emptyLike(image)
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, x, nil)

	centres := make([]float64, bins)
	for k := range centres {
		centres[k] = 0.5 * (dividers[k] + dividers[k+1])
	}
	total := float64(len(x))
	sumAll := floats.Dot(counts, centres)

	var (
		wB, sumB float64
		best     = -1.0
		cut      = 1
	)
	for k := 0; k < bins-1; k++ {
		wB += counts[k]
		sumB += counts[k] * centres[k]
		wF := total - wB
		if wB == 0 || wF == 0 {
			continue
		}
		mB, mF := sumB/wB, (sumAll-sumB)/wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best, cut = between, k+1
		}
	}
	return above(image, dividers[cut])
}

// above marks pixels >= level.
func above(image *mat.Dense, level float64) (*mask.Grid, error) {
	g, err := emptyLike(image)
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height; y++ {
		for x, v := range image.RawRowView(y) {
			if v >= level {
				g.Set(x, y, 1)
			}
		}
	}
	return g, nil
}

func emptyLike(image *mat.Dense) (*mask.Grid, error) {
	r, c := image.Dims()
	return mask.NewGrid(mask.Shape{Width: c, Height: r})
}
