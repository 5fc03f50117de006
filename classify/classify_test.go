package classify_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stemgraph/classify"
	"github.com/katalvlaran/stemgraph/mask"
)

func twoLevel() *mat.Dense {
	return mat.NewDense(3, 4, []float64{
		0.10, 0.12, 0.95, 1.00,
		0.08, 0.11, 0.90, 0.97,
		0.05, 0.90, 0.10, 0.12,
	})
}

var twoLevelMask = [][]int{
	{0, 0, 1, 1},
	{0, 0, 1, 1},
	{0, 1, 0, 0},
}

func TestThreshold(t *testing.T) {
	g, err := classify.Threshold{Fraction: 0.5}.Classify(twoLevel())
	require.NoError(t, err)
	if diff := cmp.Diff(twoLevelMask, g.To2D()); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}

	empty, err := classify.Threshold{Fraction: 0.5}.Classify(mat.NewDense(2, 2, nil))
	require.NoError(t, err)
	require.Zero(t, empty.Foreground())

	_, err = classify.Threshold{Fraction: 1.5}.Classify(twoLevel())
	require.ErrorIs(t, err, classify.ErrBadFraction)
}

func TestOtsu(t *testing.T) {
	g, err := classify.Otsu{}.Classify(twoLevel())
	require.NoError(t, err)
	if diff := cmp.Diff(twoLevelMask, g.To2D()); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}

	g, err = classify.Otsu{Bins: 16}.Classify(twoLevel())
	require.NoError(t, err)
	require.Equal(t, 5, g.Foreground())

	flat := mat.NewDense(2, 2, []float64{3, 3, 3, 3})
	g, err = classify.Otsu{}.Classify(flat)
	require.NoError(t, err)
	require.Zero(t, g.Foreground())

	_, err = classify.Otsu{Bins: 1}.Classify(twoLevel())
	require.ErrorIs(t, err, classify.ErrBadBins)
}

func TestFunc(t *testing.T) {
	var c classify.Classifier = classify.Func(func(img *mat.Dense) (*mask.Grid, error) {
		return mask.From2D([][]int{{1}})
	})
	g, err := c.Classify(nil)
	require.NoError(t, err)
	require.Equal(t, 1, g.Foreground())
}
