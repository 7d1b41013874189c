// Command measure benchmarks the containers against other map and list implementations.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-containers/internal/measure"
)

var (
	verbose bool
	nocolor bool
)

func main() {
	testing.Init()

	rootCmd := &cobra.Command{
		Use:   "measure",
		Short: "Benchmark the containers against other implementations",
		Long: `Benchmark TreeMap, Tree and Vector against gods, google/btree, GoLLRB,
haxmap, cornelk/hashmap and the builtin map and slice.

Examples:
  measure run --n 100000
  measure run --pattern sorted --n 5000 --suite insert,find
  measure check`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if nocolor {
				color.NoColor = true //nolint:reassign // library global
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every step")
	rootCmd.PersistentFlags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(checkCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func logger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runCmd() *cobra.Command {
	var cfg measure.Config

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suites and print a table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if cfg.N <= 0 {
				return fmt.Errorf("--n must be positive, got %d", cfg.N)
			}
			cfg.Log = logger()
			rs, err := measure.Run(cfg)
			if err != nil {
				return err
			}
			return measure.Render(os.Stdout, rs)
		},
	}

	cmd.Flags().IntVar(&cfg.N, "n", 10000, "number of keys")
	cmd.Flags().StringVar(&cfg.Pattern, "pattern", measure.Random, "key order: random, sorted or reverse")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "seed of the random key order")
	cmd.Flags().StringSliceVar(&cfg.Suites, "suite", nil, fmt.Sprintf("suites to run, any of %v", measure.SuiteNames()))
	cmd.Flags().StringSliceVar(&cfg.Subjects, "subject", nil, "implementations to measure")

	return cmd
}

func checkCmd() *cobra.Command {
	var (
		n    int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Apply the same random operations to every map and compare them",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			log := logger()
			log.Info("checking", "n", n, "seed", seed)
			if err := measure.Check(n, seed); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintln(os.Stdout, "all implementations agree")
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 10000, "number of distinct keys")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed of the operations")

	return cmd
}
