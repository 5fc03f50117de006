package dataset

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/stemgraph/logging"
	"github.com/katalvlaran/stemgraph/mask"
	"github.com/katalvlaran/stemgraph/species"
	"github.com/katalvlaran/stemgraph/stem"
)

// Dataset assembles image/mask samples from a Source.
type Dataset struct {
	src   Source
	sim   stem.Simulator
	cfg   Config
	split Assignment
	radii species.Table
	log   *zap.SugaredLogger
	rng   *streamSource
}

// New validates cfg, computes the split over src.Len() entries and returns
// a Dataset.
//
// Errors: ErrNilDependency, ErrUnsupportedLabelMode, ErrBadConfig,
// ErrBadSplit, ErrSeedCollision.
func New(src Source, sim stem.Simulator, cfg Config, opts ...Option) (*Dataset, error) {
	if src == nil || sim == nil {
		return nil, ErrNilDependency
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rng := &streamSource{}
	if o.augmentSeed != nil {
		if *o.augmentSeed == cfg.Split.Seed {
			return nil, errors.Wrapf(ErrSeedCollision, "seed %d", cfg.Split.Seed)
		}
		rng.seeded, rng.seed = true, *o.augmentSeed
	}

	split, err := Split(src.Len(), cfg.Split)
	if err != nil {
		return nil, err
	}
	o.log.Debugw("dataset split",
		logging.FieldCount, src.Len(),
		"train", len(split.Train), "val", len(split.Val), "test", len(split.Test))

	return &Dataset{
		src:   src,
		sim:   sim,
		cfg:   cfg,
		split: split,
		radii: o.radii,
		log:   o.log,
		rng:   rng,
	}, nil
}

// Len returns the number of entries in the source.
func (d *Dataset) Len() int { return d.src.Len() }

// Config returns the dataset configuration.
func (d *Dataset) Config() Config { return d.cfg }

// Logger returns the logger set with WithLogger.
func (d *Dataset) Logger() *zap.SugaredLogger { return d.log }

// Split returns a copy of the train/val/test assignment.
func (d *Dataset) Split() Assignment { return d.split.clone() }

// Get assembles sample idx: draw an augmentation, simulate with the
// effective pixel scale, build the label in the configured mode and
// binarise it.
//
// Errors: ErrIndexOutOfRange, simulator errors, ErrMissingLabel in delta
// mode, species.ErrUnknownSpecies in radius mode.
func (d *Dataset) Get(idx int) (*Sample, error) {
	if idx < 0 || idx >= d.src.Len() {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "%d of %d", idx, d.src.Len())
	}
	entry, err := d.src.Entry(idx)
	if err != nil {
		return nil, err
	}

	aug := d.cfg.drawAugmentation(d.rng.rng())
	px := d.cfg.PxScale * aug.Zoom

	sim, err := d.sim.Simulate(entry.Structure, stem.Params{
		PxScale:         px,
		Eps:             d.cfg.Eps,
		RotationDegrees: aug.RotationDegrees,
		Shift:           aug.Shift,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "simulate %s", entry.ID)
	}

	label := sim.Label
	switch d.cfg.LabelMode {
	case LabelDelta:
		if label == nil {
			return nil, errors.Wrapf(ErrMissingLabel, "%s", entry.ID)
		}
	case LabelRadius:
		rows, cols := sim.Image.Dims()
		shape := mask.Shape{Width: cols, Height: rows}
		label, err = mask.RadiusMask(shape, sim.Positions, sim.Numbers, px, d.radii)
		if err != nil {
			return nil, errors.Wrapf(err, "radius mask %s", entry.ID)
		}
	}

	d.log.Debugw("sample assembled",
		logging.FieldIndex, idx,
		logging.FieldID, entry.ID,
		logging.FieldPxScale, px,
		logging.FieldAtoms, len(sim.Numbers))

	return &Sample{
		Index:        idx,
		ID:           entry.ID,
		Crystal:      entry.Crystal,
		Image:        sim.Image,
		Label:        label.Binary(),
		PxScale:      px,
		Augmentation: aug,
		Positions:    sim.Positions,
		Numbers:      sim.Numbers,
	}, nil
}
