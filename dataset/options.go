package dataset

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/stemgraph/logging"
	"github.com/katalvlaran/stemgraph/species"
)

// Option configures a Dataset or GraphDataset.
type Option func(*options)

type options struct {
	log         *zap.SugaredLogger
	radii       species.Table
	augmentSeed *uint64
}

func defaultOptions() options {
	return options{log: logging.Logger, radii: species.Default()}
}

// WithLogger sets the logger. The default is logging.Logger at construction.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRadii replaces the species table used in radius label mode.
func WithRadii(t species.Table) Option {
	return func(o *options) { o.radii = t }
}

// WithAugmentSeed makes augmentation reproducible: the n-th Get call uses a
// stream derived from seed and n. The seed must differ from the split seed.
func WithAugmentSeed(seed uint64) Option {
	return func(o *options) { o.augmentSeed = &seed }
}
