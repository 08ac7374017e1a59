package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/randnet/common"
	"github.com/katalvlaran/randnet/config"
	"github.com/katalvlaran/randnet/experiment"
	"github.com/katalvlaran/randnet/metrics"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "randnet [er|ws ...]",
		Short: "Generate Erdős–Rényi and Watts–Strogatz random graphs, report average metrics and plot degree distributions.",
		Long: "randnet runs every configured parameter set of the selected models (both when none is given), " +
			"prints the average degree, clustering coefficient and path length over all trials, " +
			"and writes a degree-distribution figure for a random sample of trials.",
		Args:         cobra.MaximumNArgs(2),
		ValidArgs:    []string{"er", "ws"},
		RunE:         newRunCommand(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVarP(&input.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().Int64Var(&input.seed, "seed", 0, "RNG seed (0 = time-based, logged)")
	rootCmd.Flags().IntVar(&input.iterations, "iterations", experiment.DefaultIterations, "override trial count")
	rootCmd.Flags().IntVar(&input.sample, "sample", experiment.DefaultSampleSize, "override sample size")
	rootCmd.Flags().StringVar(&input.onDisconnected, "on-disconnected", metrics.PolicyFail.String(), "fail|skip|largest-component|regenerate")
	rootCmd.Flags().StringVar(&input.backend, "backend", string(config.BackendCore), "core|gonum")
	rootCmd.Flags().StringVar(&input.output, "out", "", "override output directory for every model")
	rootCmd.Flags().BoolVar(&input.createDirs, "create-dirs", false, "create missing output directories")
	rootCmd.Flags().BoolVar(&input.stopOnError, "stop-on-error", false, "abort at the first failed configuration")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&input.jsonLogger, "json", false, "Output logs in json format")
	return rootCmd
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := common.NewLogger(cmd.ErrOrStderr(), input.verbose, input.jsonLogger)
		ctx := common.WithLogger(ctx, logger)

		cfg, err := loadConfig(cmd, input)
		if err != nil {
			return err
		}
		models, err := parseModels(args)
		if err != nil {
			return err
		}
		plans, err := cfg.Plans(models...)
		if err != nil {
			return err
		}

		runner := experiment.NewRunner(
			experiment.WithFactory(cfg.Factory()),
			experiment.WithOutput(cmd.OutOrStdout()),
			experiment.WithSink(input.sink),
		)
		logger.Debugf("backend %s, %d plan(s)", cfg.Backend, len(plans))

		var errs []error
		for _, plan := range plans {
			if _, err := runner.Run(ctx, plan); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", plan.Name, err))
				if plan.StopOnError || ctx.Err() != nil {
					break
				}
			}
		}
		return errors.Join(errs...)
	}
}

// loadConfig reads the configuration file, if any, and applies the flags the
// user actually set on top of it.
func loadConfig(cmd *cobra.Command, input *Input) (config.Config, error) {
	cfg := config.Default()
	if input.configPath != "" {
		loaded, err := config.Load(input.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	var err error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = applyFlag(&cfg, f, input)
	})
	if err != nil {
		return config.Config{}, err
	}

	return cfg, cfg.Validate()
}

// applyFlag copies one explicitly set flag into cfg.
func applyFlag(cfg *config.Config, f *pflag.Flag, input *Input) error {
	switch f.Name {
	case "seed":
		cfg.Seed = input.seed
	case "iterations":
		cfg.Iterations = input.iterations
	case "sample":
		cfg.SampleSize = input.sample
	case "on-disconnected":
		p, err := metrics.ParsePolicy(input.onDisconnected)
		if err != nil {
			return err
		}
		cfg.OnDisconnected = p
	case "backend":
		b, err := config.ParseBackend(input.backend)
		if err != nil {
			return err
		}
		cfg.Backend = b
	case "out":
		cfg.SetOutput(input.output)
	case "create-dirs":
		cfg.CreateDirs = input.createDirs
	case "stop-on-error":
		cfg.StopOnError = input.stopOnError
	}
	return nil
}

// parseModels maps positional arguments to models, dropping duplicates.
// No arguments selects both models.
func parseModels(args []string) ([]experiment.Model, error) {
	if len(args) == 0 {
		return []experiment.Model{experiment.ErdosRenyi, experiment.WattsStrogatz}, nil
	}
	var models []experiment.Model
	for _, a := range args {
		m, err := experiment.ParseModel(a)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(models, m) {
			models = append(models, m)
		}
	}
	return models, nil
}
