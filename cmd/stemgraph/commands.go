package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stemgraph/converters"
	"github.com/katalvlaran/stemgraph/dataset"
	"github.com/katalvlaran/stemgraph/logging"
	"github.com/katalvlaran/stemgraph/render"
	"github.com/katalvlaran/stemgraph/source"
)

func newSplitCmd(a *app) *cobra.Command {
	var showIDs bool
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Show the train/val/test assignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.dataset(cmd)
			if err != nil {
				return err
			}
			s := ds.Split()
			out := cmd.OutOrStdout()
			for _, name := range []string{"train", "val", "test"} {
				ids, _ := s.Subset(name)
				fmt.Fprintf(out, "%-5s %d\n", name, len(ids))
				if showIDs {
					fmt.Fprintf(out, "      %v\n", ids)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showIDs, "ids", false, "print the indices of each subset")
	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Assemble one sample and summarise it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.dataset(cmd)
			if err != nil {
				return err
			}
			s, err := ds.Get(index)
			if err != nil {
				return err
			}
			r, c := s.Image.Dims()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id        %s\n", s.ID)
			fmt.Fprintf(out, "crystal   %s\n", s.Crystal)
			fmt.Fprintf(out, "image     %dx%d\n", c, r)
			fmt.Fprintf(out, "px_scale  %.4f\n", s.PxScale)
			fmt.Fprintf(out, "atoms     %d\n", len(s.Numbers))
			fmt.Fprintf(out, "mask_px   %d\n", s.Label.Foreground())
			fmt.Fprintf(out, "rotation  %.2f\n", s.Augmentation.RotationDegrees)
			fmt.Fprintf(out, "shift     %.3f %.3f\n", s.Augmentation.Shift[0], s.Augmentation.Shift[1])
			return nil
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "dataset index")
	return cmd
}

func newGraphCmd(a *app) *cobra.Command {
	var (
		index int
		debug bool
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Reconstruct the atom graph of one sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.graphDataset(cmd, debug)
			if err != nil {
				return err
			}
			s, err := ds.Get(index)
			if err != nil {
				return err
			}
			g := s.Graph.Graph
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d nodes, %d edges, %d clusters\n",
				s.ID, g.NodeCount(), g.EdgeCount(), len(converters.Clusters(g)))
			fmt.Fprintln(out, "node  x        y        intensity  r")
			for _, n := range g.Nodes() {
				fmt.Fprintf(out, "%-5d %-8.3f %-8.3f %-10.4f %.3f\n", n.ID, n.Pos.X, n.Pos.Y, n.Intensity, n.R)
			}
			fmt.Fprintln(out, "edge  src  dst  bond_x   bond_y")
			for i, e := range g.Edges() {
				fmt.Fprintf(out, "%-5d %-4d %-4d %-8.3f %.3f\n", i, e.Src, e.Dst, e.Bond.X, e.Bond.Y)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "dataset index")
	cmd.Flags().BoolVar(&debug, "debug", false, "use the ground-truth mask")
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		subset  string
		workers int
		graph   bool
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Assemble a whole subset on a worker pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				getter dataset.Getter
				split  dataset.Assignment
			)
			if graph {
				ds, err := a.graphDataset(cmd, false)
				if err != nil {
					return err
				}
				getter, split = ds, ds.Split()
			} else {
				ds, err := a.dataset(cmd)
				if err != nil {
					return err
				}
				getter, split = ds, ds.Split()
			}
			ids, err := split.Subset(strings.ToLower(subset))
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			logging.Logger.Infow("batch started",
				logging.FieldSubset, subset,
				logging.FieldCount, len(ids),
				logging.FieldWorkers, workers)
			results := dataset.Collect(cmd.Context(), getter, ids, workers)
			failed := dataset.Failed(results)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d ok, %d failed\n", subset, len(results)-len(failed), len(failed))
			for _, r := range failed {
				fmt.Fprintf(out, "  %d: %v\n", r.Index, r.Err)
			}
			if len(failed) > 0 {
				return errors.Newf("%d of %d samples failed", len(failed), len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&subset, "subset", "train", "train, val or test")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent samples (default from config)")
	cmd.Flags().BoolVar(&graph, "graph", false, "also reconstruct graphs")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		index int
		debug bool
		out   string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Save an image/graph overlay as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.graphDataset(cmd, debug)
			if err != nil {
				return err
			}
			s, err := ds.Get(index)
			if err != nil {
				return err
			}
			p, err := render.Overlay(s.ID, s.Image, s.PxScale, s.Graph.Graph)
			if err != nil {
				return err
			}
			if err := render.Save(p, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "dataset index")
	cmd.Flags().BoolVar(&debug, "debug", false, "use the ground-truth mask")
	cmd.Flags().StringVar(&out, "out", "overlay.png", "output file")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <records.yaml> <store.db>",
		Short: "Copy a record file into a SQLite store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := source.ReadFile(args[0])
			if err != nil {
				return err
			}
			st, err := source.OpenSQLite(args[1])
			if err != nil {
				return err
			}
			defer st.Close()
			n, err := st.Import(cmd.Context(), recs)
			if err != nil {
				return err
			}
			total, err := st.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records, %d stored\n", n, total)
			return nil
		},
	}
}
