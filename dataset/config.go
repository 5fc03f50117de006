package dataset

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stemgraph/stem"
)

// LabelMode selects how the atom mask is built.
type LabelMode string

const (
	// LabelDelta uses the simulator's own label grid.
	LabelDelta LabelMode = "delta"
	// LabelRadius paints radius-scaled disks with mask.RadiusMask.
	LabelRadius LabelMode = "radius"
)

// Valid reports whether m is a supported mode.
func (m LabelMode) Valid() bool {
	return m == LabelDelta || m == LabelRadius
}

// Config controls sample assembly. Augmentation fields are optional: nil
// disables the corresponding perturbation.
type Config struct {
	PxScale   float64
	Eps       float64
	LabelMode LabelMode

	RotationDegrees *float64 // rotation ~ U(-r, r) degrees
	ShiftAngstrom   *float64 // shift x, y ~ U(-s, s) Å
	ZoomPct         *float64 // px *= 1 + U(-z/100, z/100)

	Split SplitOptions
}

// DefaultConfig returns 0.1 Å/px, a 0.6 Å probe, delta labels, no
// augmentation and the default split.
func DefaultConfig() Config {
	return Config{
		PxScale:   stem.DefaultPxScale,
		Eps:       stem.DefaultEps,
		LabelMode: LabelDelta,
		Split:     DefaultSplitOptions(),
	}
}

// GetRotationDegrees returns the rotation bound, 0 when disabled.
func (c *Config) GetRotationDegrees() float64 {
	if c.RotationDegrees == nil {
		return 0
	}
	return *c.RotationDegrees
}

// GetShiftAngstrom returns the shift bound, 0 when disabled.
func (c *Config) GetShiftAngstrom() float64 {
	if c.ShiftAngstrom == nil {
		return 0
	}
	return *c.ShiftAngstrom
}

// GetZoomPct returns the zoom bound in percent, 0 when disabled.
func (c *Config) GetZoomPct() float64 {
	if c.ZoomPct == nil {
		return 0
	}
	return *c.ZoomPct
}

// Validate checks the configuration. An unknown label mode is reported as
// ErrUnsupportedLabelMode, other problems as ErrBadConfig or ErrBadSplit.
func (c *Config) Validate() error {
	if !c.LabelMode.Valid() {
		return errors.Wrapf(ErrUnsupportedLabelMode, "%q", c.LabelMode)
	}
	if !(c.PxScale > 0) {
		return errors.Wrapf(ErrBadConfig, "px scale %g", c.PxScale)
	}
	if !(c.Eps > 0) {
		return errors.Wrapf(ErrBadConfig, "eps %g", c.Eps)
	}
	knobs := []struct {
		name string
		v    *float64
	}{
		{"rotation_degrees", c.RotationDegrees},
		{"shift_angstrom", c.ShiftAngstrom},
		{"zoom_pct", c.ZoomPct},
	}
	for _, k := range knobs {
		if k.v != nil && !(*k.v >= 0) {
			return errors.Wrapf(ErrBadConfig, "%s %g", k.name, *k.v)
		}
	}
	if c.ZoomPct != nil && *c.ZoomPct >= 100 {
		return errors.Wrapf(ErrBadConfig, "zoom_pct %g must be below 100", *c.ZoomPct)
	}
	return c.Split.Validate()
}
