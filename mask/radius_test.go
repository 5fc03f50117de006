package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stemgraph/mask"
	"github.com/katalvlaran/stemgraph/species"
)

func testRadii(t *testing.T) species.Table {
	t.Helper()
	tbl, err := species.New(
		species.Element{Z: 8, Symbol: "O", Radius: 0.6},
		species.Element{Z: 42, Symbol: "Mo", Radius: 1.0},
	)
	require.NoError(t, err)
	return tbl
}

func TestRadiusMask_DiskFootprint(t *testing.T) {
	shape := mask.Shape{Width: 21, Height: 21}
	// Mo radius 1.0 Å at 0.1 Å/px -> disk radius 5 px.
	g, err := mask.RadiusMask(shape, []mask.Point{{X: 10, Y: 10}}, []int{42}, 0.1, testRadii(t))
	require.NoError(t, err)

	assert.Equal(t, 42, g.At(10, 10))
	assert.Equal(t, 42, g.At(14, 10))
	assert.Equal(t, 0, g.At(15, 10), "boundary is exclusive")
	assert.Equal(t, 0, g.At(14, 14))

	lab := g.Components(mask.Conn8)
	assert.Equal(t, 1, lab.Count())
}

func TestRadiusMask_ClipsToBounds(t *testing.T) {
	g, err := mask.RadiusMask(mask.Shape{Width: 6, Height: 6},
		[]mask.Point{{X: 0, Y: 0}, {X: 40, Y: 40}}, []int{42, 42}, 0.1, testRadii(t))
	require.NoError(t, err)
	assert.Equal(t, 42, g.At(0, 0))
	assert.Equal(t, 42, g.At(4, 0))
	assert.Equal(t, 0, g.At(5, 5))
}

// TestRadiusMask_LastWriteWins documents that overlapping footprints take the
// atomic number of the atom listed last.
func TestRadiusMask_LastWriteWins(t *testing.T) {
	shape := mask.Shape{Width: 30, Height: 20}
	pts := []mask.Point{{X: 10, Y: 10}, {X: 14, Y: 10}}

	ab, err := mask.RadiusMask(shape, pts, []int{42, 8}, 0.1, testRadii(t))
	require.NoError(t, err)
	ba, err := mask.RadiusMask(shape,
		[]mask.Point{pts[1], pts[0]}, []int{8, 42}, 0.1, testRadii(t))
	require.NoError(t, err)

	// (12,10) lies inside both disks.
	assert.Equal(t, 8, ab.At(12, 10))
	assert.Equal(t, 42, ba.At(12, 10))
	// Pixels covered by one atom only are unaffected by order.
	assert.Equal(t, ab.At(6, 10), ba.At(6, 10))
}

func TestRadiusMask_Errors(t *testing.T) {
	shape := mask.Shape{Width: 8, Height: 8}
	radii := testRadii(t)

	_, err := mask.RadiusMask(shape, []mask.Point{{X: 1, Y: 1}}, nil, 0.1, radii)
	assert.ErrorIs(t, err, mask.ErrLengthMismatch)

	_, err = mask.RadiusMask(shape, []mask.Point{{X: 1, Y: 1}}, []int{42}, 0, radii)
	assert.ErrorIs(t, err, mask.ErrBadPixelScale)

	_, err = mask.RadiusMask(shape, []mask.Point{{X: 1, Y: 1}}, []int{26}, 0.1, radii)
	assert.ErrorIs(t, err, species.ErrUnknownSpecies)

	_, err = mask.RadiusMask(mask.Shape{}, nil, nil, 0.1, radii)
	assert.ErrorIs(t, err, mask.ErrEmptyGrid)
}
