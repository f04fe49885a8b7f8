package cmd

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/sherine-k/landinggear/pkg/chart"
	"github.com/sherine-k/landinggear/pkg/config"
	"github.com/sherine-k/landinggear/pkg/logging"
	"github.com/sherine-k/landinggear/pkg/simulation"
	"github.com/spf13/cobra"
)

type options struct {
	configFile    string
	seed          int64
	variationMs   int
	sensorNoiseMs int
	showProgress  bool
	showChart     bool
	format        string
	logLevel      string
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "landing-gear",
		Short: "Landing gear extension timing simulator",
		Long: `A CLI tool that simulates the timing of a landing gear down command.

Each configuration runs through hydraulic pump spin-up, actuator extension,
down sensor detection and lock engagement with bounded random variance.
The resulting timeline is checked against the lock deadline of the
configuration. Runs are reproducible for a fixed seed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Path to configuration file (defaults to the built-in example configurations)")
	cmd.Flags().Int64Var(&opts.seed, "seed", config.DefaultSeed, "Random seed")
	cmd.Flags().IntVar(&opts.variationMs, "variation", config.DefaultRandomVariationMs, "Maximum random variation per phase in ms")
	cmd.Flags().IntVar(&opts.sensorNoiseMs, "sensor-noise", config.DefaultSensorNoiseMs, "Fixed down sensor noise in ms")
	cmd.Flags().BoolVarP(&opts.showProgress, "progress", "p", false, "Play a progress bar paced on the simulated extension time")
	cmd.Flags().BoolVar(&opts.showChart, "chart", true, "Show the phase timing chart")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or yaml")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

func runSimulation(cmd *cobra.Command, opts *options) error {
	logger := logging.NewLogger(opts.logLevel, cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	if opts.format != "text" && opts.format != "yaml" {
		return fmt.Errorf("unsupported output format %q", opts.format)
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := config.LoadConfig(opts.configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		logger.Info("loaded configuration", "file", opts.configFile, "configurations", len(cfg.Configurations))
	}

	// Explicit flags win over the file
	flags := cmd.Flags()
	if opts.configFile == "" || flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if opts.configFile == "" || flags.Changed("variation") {
		cfg.RandomVariationMs = opts.variationMs
	}
	if opts.configFile == "" || flags.Changed("sensor-noise") {
		cfg.SensorNoiseMs = opts.sensorNoiseMs
	}

	logger.Debug("starting simulation",
		"seed", cfg.Seed,
		"variationMs", cfg.RandomVariationMs,
		"sensorNoiseMs", cfg.SensorNoiseMs)

	// All configurations share one seeded source, drawn in order
	sim := simulation.NewSimulator(rand.New(rand.NewSource(cfg.Seed)), logger)

	results := make([]simulation.SimulationResult, 0, len(cfg.Configurations))
	for _, gear := range cfg.Configurations {
		result, err := sim.Run(gear, cfg.RandomVariationMs, cfg.SensorNoiseMs)
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}
		if !result.MeetsRequirement {
			logger.Warn("requirement not met", "config", gear.Name, "totalMs", result.TotalTimeMs, "requirementMs", gear.RequirementTimeMs)
		}
		results = append(results, result)
	}

	if opts.format == "yaml" {
		doc, err := chart.NewGenerator().GenerateYAML(results)
		if err != nil {
			return err
		}
		fmt.Fprint(out, doc)
		return nil
	}

	if opts.showProgress {
		for _, result := range results {
			chart.NewProgressBar().Play(out, result.TotalTimeMs)
		}
	}

	printResults(out, results, opts.showChart)
	return nil
}

func printResults(out io.Writer, results []simulation.SimulationResult, showChart bool) {
	chartGen := chart.NewGenerator()

	for _, result := range results {
		fmt.Fprint(out, chartGen.GenerateReport(result))
		if showChart {
			fmt.Fprint(out, chartGen.GeneratePhaseChart(result))
		}
	}

	if len(results) > 1 {
		fmt.Fprint(out, chartGen.GenerateComparison(results))
	}
}
