// Package config loads stemgraph settings from defaults, an optional file and
// STEMGRAPH_* environment variables, and converts them into the option types
// of the dataset, atomgraph, classify and stem packages.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/stemgraph/atomgraph"
	"github.com/katalvlaran/stemgraph/classify"
	"github.com/katalvlaran/stemgraph/dataset"
	"github.com/katalvlaran/stemgraph/mask"
	"github.com/katalvlaran/stemgraph/stem"
)

// EnvPrefix prefixes every environment override, e.g. STEMGRAPH_WORKERS.
const EnvPrefix = "STEMGRAPH"

// Sentinel errors for configuration.
var (
	ErrUnknownClassifier   = errors.New("config: unknown classifier")
	ErrUnknownConnectivity = errors.New("config: unknown connectivity")
	ErrBadWorkers          = errors.New("config: workers must be at least 1")
)

// Config is the full application configuration.
type Config struct {
	Dataset   DatasetSection   `mapstructure:"dataset"`
	Simulator SimulatorSection `mapstructure:"simulator"`
	Graph     GraphSection     `mapstructure:"graph"`
	Source    SourceSection    `mapstructure:"source"`
	Workers   int              `mapstructure:"workers"`
	Log       LogSection       `mapstructure:"log"`
}

// DatasetSection configures sample assembly. Nil augmentation knobs are off.
type DatasetSection struct {
	PxScale         float64      `mapstructure:"px_scale"`
	Eps             float64      `mapstructure:"eps"`
	LabelMode       string       `mapstructure:"label_mode"`
	RotationDegrees *float64     `mapstructure:"rotation_degrees"`
	ShiftAngstrom   *float64     `mapstructure:"shift_angstrom"`
	ZoomPct         *float64     `mapstructure:"zoom_pct"`
	AugmentSeed     *uint64      `mapstructure:"augment_seed"`
	Split           SplitSection `mapstructure:"split"`
}

// SplitSection configures the train/val/test split.
type SplitSection struct {
	ValFrac  float64 `mapstructure:"val_frac"`
	TestFrac float64 `mapstructure:"test_frac"`
	Seed     uint64  `mapstructure:"seed"`
}

// SimulatorSection configures the reference probe simulator.
type SimulatorSection struct {
	Width            int     `mapstructure:"width"`
	Height           int     `mapstructure:"height"`
	ContrastExponent float64 `mapstructure:"contrast_exponent"`
}

// GraphSection configures graph reconstruction.
type GraphSection struct {
	Debug             bool    `mapstructure:"debug"`
	Classifier        string  `mapstructure:"classifier"` // threshold | otsu
	ThresholdFraction float64 `mapstructure:"threshold_fraction"`
	OtsuBins          int     `mapstructure:"otsu_bins"`
	CutoffAngstrom    float64 `mapstructure:"cutoff_angstrom"`
	Connectivity      string  `mapstructure:"connectivity"` // conn4 | conn8
}

// SourceSection locates structure records.
type SourceSection struct {
	Path string `mapstructure:"path"`
}

// LogSection configures the global logger.
type LogSection struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// optionalKeys have no default; they are bound explicitly so environment
// overrides reach Unmarshal.
var optionalKeys = []string{
	"dataset.rotation_degrees",
	"dataset.shift_angstrom",
	"dataset.zoom_pct",
	"dataset.augment_seed",
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dataset.px_scale", stem.DefaultPxScale)
	v.SetDefault("dataset.eps", stem.DefaultEps)
	v.SetDefault("dataset.label_mode", string(dataset.LabelDelta))
	v.SetDefault("dataset.split.val_frac", 0.1)
	v.SetDefault("dataset.split.test_frac", 0.1)
	v.SetDefault("dataset.split.seed", 0)

	v.SetDefault("simulator.width", stem.DefaultSize)
	v.SetDefault("simulator.height", stem.DefaultSize)
	v.SetDefault("simulator.contrast_exponent", stem.DefaultExponent)

	v.SetDefault("graph.debug", false)
	v.SetDefault("graph.classifier", "threshold")
	v.SetDefault("graph.threshold_fraction", 0.5)
	v.SetDefault("graph.otsu_bins", classify.DefaultBins)
	v.SetDefault("graph.cutoff_angstrom", atomgraph.DefaultCutoff)
	v.SetDefault("graph.connectivity", mask.DefaultConnectivity.String())

	v.SetDefault("source.path", "structures.yaml")
	v.SetDefault("workers", 4)
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range optionalKeys {
		_ = v.BindEnv(k)
	}
	SetDefaults(v)
	return v
}

// Load builds the configuration. path may be empty; otherwise the file is
// read with its type taken from the extension (json, yaml, toml).
// The result is validated.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	dc := c.DatasetConfig()
	if err := dc.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrBadWorkers, "got %d", c.Workers)
	}
	if _, err := c.ExtractorConfig(); err != nil {
		return err
	}
	if _, err := c.Classifier(); err != nil {
		return err
	}
	return nil
}

// DatasetConfig converts the dataset section.
func (c *Config) DatasetConfig() dataset.Config {
	d := c.Dataset
	return dataset.Config{
		PxScale:         d.PxScale,
		Eps:             d.Eps,
		LabelMode:       dataset.LabelMode(d.LabelMode),
		RotationDegrees: d.RotationDegrees,
		ShiftAngstrom:   d.ShiftAngstrom,
		ZoomPct:         d.ZoomPct,
		Split: dataset.SplitOptions{
			ValFrac:  d.Split.ValFrac,
			TestFrac: d.Split.TestFrac,
			Seed:     d.Split.Seed,
		},
	}
}

// DatasetOptions returns the dataset options implied by the configuration.
func (c *Config) DatasetOptions() []dataset.Option {
	var opts []dataset.Option
	if c.Dataset.AugmentSeed != nil {
		opts = append(opts, dataset.WithAugmentSeed(*c.Dataset.AugmentSeed))
	}
	return opts
}

// ExtractorConfig converts the graph section's extractor settings.
func (c *Config) ExtractorConfig() (atomgraph.ExtractorConfig, error) {
	ec := atomgraph.ExtractorConfig{CutoffAngstrom: c.Graph.CutoffAngstrom}
	switch strings.ToLower(c.Graph.Connectivity) {
	case mask.Conn8.String():
		ec.Connectivity = mask.Conn8
	case mask.Conn4.String():
		ec.Connectivity = mask.Conn4
	default:
		return ec, errors.Wrapf(ErrUnknownConnectivity, "%q", c.Graph.Connectivity)
	}
	if !(ec.CutoffAngstrom > 0) {
		return ec, errors.Wrapf(atomgraph.ErrBadCutoff, "got %g", ec.CutoffAngstrom)
	}
	return ec, nil
}

// Classifier returns the configured baseline classifier.
func (c *Config) Classifier() (classify.Classifier, error) {
	switch strings.ToLower(c.Graph.Classifier) {
	case "threshold":
		f := c.Graph.ThresholdFraction
		if !(f > 0 && f <= 1) {
			return nil, errors.Wrapf(classify.ErrBadFraction, "got %g", f)
		}
		return classify.Threshold{Fraction: f}, nil
	case "otsu":
		if c.Graph.OtsuBins < 2 {
			return nil, errors.Wrapf(classify.ErrBadBins, "got %d", c.Graph.OtsuBins)
		}
		return classify.Otsu{Bins: c.Graph.OtsuBins}, nil
	}
	return nil, errors.Wrapf(ErrUnknownClassifier, "%q", c.Graph.Classifier)
}

// GraphConfig converts the graph section.
func (c *Config) GraphConfig() (dataset.GraphConfig, error) {
	ec, err := c.ExtractorConfig()
	if err != nil {
		return dataset.GraphConfig{}, err
	}
	gc := dataset.GraphConfig{Debug: c.Graph.Debug, Extractor: ec}
	if !c.Graph.Debug {
		if gc.Classifier, err = c.Classifier(); err != nil {
			return dataset.GraphConfig{}, err
		}
	}
	return gc, nil
}

// NewSimulator builds the reference simulator.
func (c *Config) NewSimulator() (*stem.ProbeSimulator, error) {
	return stem.NewProbeSimulator(
		stem.WithOutputSize(c.Simulator.Width, c.Simulator.Height),
		stem.WithContrastExponent(c.Simulator.ContrastExponent),
	)
}
