package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spherelab/constellation/pkg/export"
	"github.com/spherelab/constellation/pkg/graph"
	"github.com/spherelab/constellation/pkg/layout"
	"github.com/spherelab/constellation/pkg/pipeline"
)

// layoutCommand creates the layout command for computing spherical layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		configPath string
		noCache    bool
		refresh    bool
	)
	var flagCfg layout.Config

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a spherical layout from a graph file",
		Long: `Compute a spherical constellation layout from a graph file.

The layout command takes a graph.json file (nodes and edges), detects
connected components, places them as non-overlapping caps on a sphere, and
arranges each component force-directed within its cap. The output is a
layout.json document with a 3D position for every node.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadConfigFile(configPath)
			if err != nil {
				return err
			}
			cfg := mergeLayoutConfig(fileCfg.Layout, flagCfg)

			return c.runLayout(cmd.Context(), args[0], pipeline.Options{
				Layout:  cfg,
				Refresh: refresh,
			}, output, noCache || fileCfg.Cache.Disabled)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./constellation.toml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	cmd.Flags().Float64Var(&flagCfg.SphereRadius, "sphere-radius", 0, "output sphere radius")
	cmd.Flags().Float64Var(&flagCfg.CoverageFactor, "coverage", 0, "fraction of sphere area clusters may occupy (0, 1]")
	cmd.Flags().Float64Var(&flagCfg.MinRadius, "min-radius", 0, "minimum cluster cap radius in radians")
	cmd.Flags().IntVar(&flagCfg.ForceIterations, "force-iterations", 0, "force simulation iterations per cluster")
	cmd.Flags().IntVar(&flagCfg.RefinementIterations, "refine-iterations", 0, "cap overlap refinement rounds")
	cmd.Flags().Float64Var(&flagCfg.RefinementMargin, "margin", 0, "required angular separation between caps")
	cmd.Flags().Float64Var(&flagCfg.RefinementDamping, "damping", 0, "refinement step damping (0, 1]")
	cmd.Flags().Uint64Var(&flagCfg.Seed, "seed", 0, "random seed for reproducible layouts")

	return cmd
}

// mergeLayoutConfig overlays non-zero flag values on the file config.
// Remaining zero fields take package defaults later via ApplyDefaults.
func mergeLayoutConfig(base, flags layout.Config) layout.Config {
	if flags.SphereRadius != 0 {
		base.SphereRadius = flags.SphereRadius
	}
	if flags.CoverageFactor != 0 {
		base.CoverageFactor = flags.CoverageFactor
	}
	if flags.MinRadius != 0 {
		base.MinRadius = flags.MinRadius
	}
	if flags.ForceIterations != 0 {
		base.ForceIterations = flags.ForceIterations
	}
	if flags.RefinementIterations != 0 {
		base.RefinementIterations = flags.RefinementIterations
	}
	if flags.RefinementMargin != 0 {
		base.RefinementMargin = flags.RefinementMargin
	}
	if flags.RefinementDamping != 0 {
		base.RefinementDamping = flags.RefinementDamping
	}
	if flags.Seed != 0 {
		base.Seed = flags.Seed
	}
	return base
}

// runLayout loads the graph, computes the layout, and writes the document.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	load := newProgress(logger)
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	load.done(fmt.Sprintf("Loaded %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing constellation layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, g, g.NodeIDs(), opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := export.WriteDocumentFile(outputPath, result.Document); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(result.Document.Positions), len(result.Document.Clusters), result.CacheInfo.LayoutHit)
	if !result.Document.Stats.RefinementSuccess {
		printWarning("%d cluster overlaps remain; consider lowering --coverage", result.Document.Stats.RemainingOverlaps)
	}
	printNewline()
	printNextStep("Inspect", appName+" inspect "+outputPath)

	return nil
}
