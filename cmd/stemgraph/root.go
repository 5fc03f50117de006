package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stemgraph/config"
	"github.com/katalvlaran/stemgraph/dataset"
	"github.com/katalvlaran/stemgraph/logging"
	"github.com/katalvlaran/stemgraph/source"
	"github.com/katalvlaran/stemgraph/species"
)

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	sourcePath string
	jsonLogs   bool
	logLevel   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "stemgraph",
		Short: "Simulated STEM samples and atom-graph reconstruction",
		Long: `stemgraph turns atomic structures into simulated microscopy images,
atom-location masks and attributed atom graphs.

Available commands:
  split   - Show the train/val/test assignment
  sample  - Assemble one sample and summarise it
  graph   - Reconstruct the atom graph of one sample
  batch   - Assemble a whole subset on a worker pool
  render  - Save an image/graph overlay as PNG
  import  - Copy a record file into a SQLite store

Examples:
  stemgraph split --source structures.yaml
  stemgraph graph --index 3 --debug
  stemgraph batch --subset val --workers 8`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("source") {
				cfg.Source.Path = a.sourcePath
			}
			json := cfg.Log.JSON || a.jsonLogs
			level := cfg.Log.Level
			if cmd.Flags().Changed("log-level") {
				level = a.logLevel
			}
			if err := logging.Initialize(json, level); err != nil {
				return errors.Wrap(err, "initialize logger")
			}
			a.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (json, yaml or toml)")
	pf.StringVar(&a.sourcePath, "source", "", "structure records (.json, .yaml, .db)")
	pf.BoolVar(&a.jsonLogs, "json-logs", false, "emit JSON logs")
	pf.StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(
		newSplitCmd(a),
		newSampleCmd(a),
		newGraphCmd(a),
		newBatchCmd(a),
		newRenderCmd(a),
		newImportCmd(a),
	)
	return root
}

// entries loads the configured structure source.
func (a *app) entries(cmd *cobra.Command) (dataset.Entries, error) {
	entries, err := source.Load(cmd.Context(), a.cfg.Source.Path, species.Default())
	if err != nil {
		return nil, err
	}
	logging.Logger.Debugw("source loaded",
		logging.FieldPath, a.cfg.Source.Path,
		logging.FieldCount, len(entries))
	return entries, nil
}

// dataset builds the sample dataset.
func (a *app) dataset(cmd *cobra.Command) (*dataset.Dataset, error) {
	entries, err := a.entries(cmd)
	if err != nil {
		return nil, err
	}
	sim, err := a.cfg.NewSimulator()
	if err != nil {
		return nil, err
	}
	return dataset.New(entries, sim, a.cfg.DatasetConfig(), a.cfg.DatasetOptions()...)
}

// graphDataset builds the graph dataset; debug forces ground-truth masks.
func (a *app) graphDataset(cmd *cobra.Command, debug bool) (*dataset.GraphDataset, error) {
	entries, err := a.entries(cmd)
	if err != nil {
		return nil, err
	}
	sim, err := a.cfg.NewSimulator()
	if err != nil {
		return nil, err
	}
	if debug {
		a.cfg.Graph.Debug = true
	}
	gcfg, err := a.cfg.GraphConfig()
	if err != nil {
		return nil, err
	}
	return dataset.NewGraphDataset(entries, sim, a.cfg.DatasetConfig(), gcfg, a.cfg.DatasetOptions()...)
}
