package dataset

import "math/rand/v2"

// drawAugmentation samples one perturbation from r. Draw order is rotation,
// shift x, shift y, zoom; disabled knobs consume nothing.
func (c *Config) drawAugmentation(r *rand.Rand) Augmentation {
	aug := Augmentation{Zoom: 1}
	if c.RotationDegrees != nil {
		rot := *c.RotationDegrees
		aug.RotationDegrees = uniform(r, -rot, rot)
	}
	if c.ShiftAngstrom != nil {
		s := *c.ShiftAngstrom
		aug.Shift = [2]float64{uniform(r, -s, s), uniform(r, -s, s)}
	}
	if c.ZoomPct != nil {
		frac := *c.ZoomPct / 100
		aug.Zoom = 1 + uniform(r, -frac, frac)
	}
	return aug
}
