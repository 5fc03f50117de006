package dataset

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/stemgraph/atomgraph"
	"github.com/katalvlaran/stemgraph/classify"
	"github.com/katalvlaran/stemgraph/logging"
	"github.com/katalvlaran/stemgraph/stem"
)

// GraphConfig selects the mask used for graph reconstruction.
type GraphConfig struct {
	// Debug uses the ground-truth label instead of a prediction.
	Debug bool
	// Classifier predicts the mask when Debug is false.
	Classifier classify.Classifier
	// Extractor fixes connectivity and cutoff.
	Extractor atomgraph.ExtractorConfig
}

// DefaultGraphConfig returns a non-debug config with the default extractor
// and no classifier.
func DefaultGraphConfig() GraphConfig {
	return GraphConfig{Extractor: atomgraph.DefaultExtractorConfig()}
}

// GraphDataset is a Dataset whose samples also carry an atom graph.
type GraphDataset struct {
	*Dataset
	gcfg GraphConfig
	ex   *atomgraph.Extractor
}

// NewGraphDataset builds the underlying Dataset and the extractor.
// Returns ErrMissingClassifier when Debug is false and Classifier is nil,
// atomgraph.ErrBadCutoff for a bad extractor config, and any New error.
func NewGraphDataset(src Source, sim stem.Simulator, cfg Config, gcfg GraphConfig, opts ...Option) (*GraphDataset, error) {
	if !gcfg.Debug && gcfg.Classifier == nil {
		return nil, ErrMissingClassifier
	}
	ex, err := atomgraph.NewExtractor(gcfg.Extractor)
	if err != nil {
		return nil, err
	}
	ds, err := New(src, sim, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &GraphDataset{Dataset: ds, gcfg: gcfg, ex: ex}, nil
}

// GraphConfig returns the graph configuration.
func (d *GraphDataset) GraphConfig() GraphConfig { return d.gcfg }

// Get assembles the base sample, picks the mask (ground truth in debug
// mode, classifier prediction otherwise), extracts the atom graph with the
// sample's effective pixel scale and computes bond vectors.
func (d *GraphDataset) Get(idx int) (*Sample, error) {
	s, err := d.Dataset.Get(idx)
	if err != nil {
		return nil, err
	}

	m := s.Label
	if !d.gcfg.Debug {
		m, err = d.gcfg.Classifier.Classify(s.Image)
		if err != nil {
			return nil, errors.Wrapf(err, "classify %s", s.ID)
		}
		if m == nil {
			return nil, errors.Wrapf(ErrNilMask, "classify %s", s.ID)
		}
	}

	g, regions, err := d.ex.Extract(m, s.Image, s.PxScale)
	if err != nil {
		return nil, errors.Wrapf(err, "extract graph %s", s.ID)
	}
	atomgraph.ComputeBonds(g)

	s.Graph = &GraphSample{
		Graph:     g,
		Features:  g.NodeFeatures(),
		Regions:   regions,
		Predicted: !d.gcfg.Debug,
	}
	d.log.Debugw("graph assembled",
		logging.FieldIndex, idx,
		logging.FieldID, s.ID,
		logging.FieldNodes, g.NodeCount(),
		logging.FieldEdges, g.EdgeCount())
	return s, nil
}
