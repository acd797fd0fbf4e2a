package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reebtide/geom"
	"github.com/katalvlaran/reebtide/ingest"
	"github.com/katalvlaran/reebtide/reeb"
	"github.com/katalvlaran/reebtide/render"
)

var (
	flagDelta     float64
	flagStartTime int
	flagInputDir  string
	flagX         float64
	flagY         float64
	flagAlgorithm string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "reebtide",
		Short:         "Track island topology across a sequence of thresholded planar graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReebtide,
	}

	cmd.Flags().Float64VarP(&flagDelta, "delta", "d", 100.0, "weight threshold")
	cmd.Flags().IntVarP(&flagStartTime, "start-time", "s", 0, "starting layer index")
	cmd.Flags().StringVarP(&flagInputDir, "input-dir", "i", "", "directory of .txt time slices")
	cmd.Flags().Float64VarP(&flagX, "x", "x", 0.0, "seed x coordinate")
	cmd.Flags().Float64VarP(&flagY, "y", "y", 0.0, "seed y coordinate")
	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "centroid", "counting, centroid, or disk")

	return cmd
}

func runReebtide(cmd *cobra.Command, args []string) error {
	if flagInputDir == "" {
		return fmt.Errorf("reebtide: --input-dir is required")
	}

	paths, err := ingest.Directory(flagInputDir)
	if err != nil {
		return fmt.Errorf("reebtide: reading input directory: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("reebtide: no .txt time slices found in %s", flagInputDir)
	}

	switch flagAlgorithm {
	case "counting":
		return runCounting(cmd, paths)
	case "centroid":
		return runTrack(cmd, paths, reeb.MethodCentroid)
	case "disk":
		return runTrack(cmd, paths, reeb.MethodDisk)
	default:
		return fmt.Errorf("reebtide: unknown algorithm %q (want counting, centroid, or disk)", flagAlgorithm)
	}
}

func runCounting(cmd *cobra.Command, paths []string) error {
	src := newFileSource(paths, flagDelta)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "t,\tislands")
	for t := range paths {
		polys, err := src.Islands(context.Background(), t)
		if err != nil {
			return fmt.Errorf("reebtide: %w", err)
		}
		fmt.Fprintf(out, "%d,\t%d\n", t, len(polys))
	}
	return nil
}

func runTrack(cmd *cobra.Command, paths []string, method reeb.Method) error {
	src := newFileSource(paths, flagDelta)

	graph, err := reeb.Run(src, geom.New(flagX, flagY), flagStartTime, method)
	if err != nil {
		return fmt.Errorf("reebtide: %w", err)
	}

	return render.SVG(cmd.OutOrStdout(), graph)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
