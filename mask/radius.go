package mask

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stemgraph/species"
)

// RadiusMask builds an atom localisation mask whose footprints scale with
// atomic radius. Atom i draws a filled disk of radius
// 0.5*radius(numbers[i])/pxScale pixels centred on points[i], clipped to the
// grid, and writes its atomic number into every covered cell.
//
// A cell (x,y) is covered when ((y-Y)/r)² + ((x-X)/r)² < 1.
//
// Atoms are painted in input order and later atoms overwrite earlier ones.
// Atoms occluding each other along the projection axis are therefore not
// masked faithfully; this is an accepted approximation, the result is not a
// multi-label mask.
//
// Errors:
//   - ErrEmptyGrid for a non-positive shape.
//   - ErrLengthMismatch if len(points) != len(numbers).
//   - ErrBadPixelScale if pxScale <= 0.
//   - species.ErrUnknownSpecies (wrapped) for an atomic number absent from radii.
//
// Complexity: O(N×r²).
func RadiusMask(shape Shape, points []Point, numbers []int, pxScale float64, radii species.Table) (*Grid, error) {
	if len(points) != len(numbers) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d positions, %d atomic numbers", len(points), len(numbers))
	}
	if !(pxScale > 0) {
		return nil, errors.Wrapf(ErrBadPixelScale, "got %g", pxScale)
	}
	g, err := NewGrid(shape)
	if err != nil {
		return nil, err
	}
	for i, p := range points {
		rad, err := radii.Radius(numbers[i])
		if err != nil {
			return nil, errors.Wrapf(err, "atom %d", i)
		}
		g.paintDisk(p, 0.5*rad/pxScale, numbers[i])
	}
	return g, nil
}

// paintDisk writes v into every in-bounds cell strictly inside the disk.
func (g *Grid) paintDisk(c Point, r float64, v int) {
	if !(r > 0) {
		return
	}
	y0 := max(int(math.Floor(c.Y-r)), 0)
	y1 := min(int(math.Ceil(c.Y+r)), g.Height-1)
	x0 := max(int(math.Floor(c.X-r)), 0)
	x1 := min(int(math.Ceil(c.X+r)), g.Width-1)
	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) - c.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) - c.X
			if dx*dx+dy*dy < r2 {
				g.Cells[g.index(x, y)] = v
			}
		}
	}
}
