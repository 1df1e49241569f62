package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName = "qnt"
	version = "v0.3.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "NaN-aware rolling statistics and technical-analysis toolkit",
		Version: version,
		Long: `qnt computes quantiles, rolling order statistics, and technical-analysis
indicators over numeric series that use NaN as the missing-value sentinel.`,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark rolling and batch statistics on synthetic data",
		Long:  "Times each configured operation over a synthetic random walk, one warm run then median-of-repeats wall time",
		RunE:  runBench,
	}
	benchCmd.Flags().String("config", "", "Path to YAML benchmark configuration")
	benchCmd.Flags().Int("samples", 0, "Number of synthetic samples (overrides config)")
	benchCmd.Flags().Int("period", 0, "Rolling window length (overrides config)")
	benchCmd.Flags().Float64("q", -1, "Quantile for quantile operations (overrides config)")
	benchCmd.Flags().Float64("nan-fraction", -1, "Fraction of samples replaced by NaN (overrides config)")
	benchCmd.Flags().Int("repeats", 0, "Timed repeats per operation (overrides config)")
	benchCmd.Flags().StringSlice("ops", nil, "Operations to benchmark (overrides config)")
	benchCmd.Flags().Bool("json", false, "Emit results as JSON on stdout")

	rollCmd := &cobra.Command{
		Use:   "roll",
		Short: "Compute a rolling statistic over samples read from a file or stdin",
		Long:  "Reads one sample per line (empty line or 'nan' marks a missing value) and writes the rolling statistic, one value per line",
		RunE:  runRoll,
	}
	rollCmd.Flags().String("input", "-", "Input file, or '-' for stdin")
	rollCmd.Flags().String("stat", "median", "Statistic: median|quantile|mean|std|min|max|sum|zscore")
	rollCmd.Flags().Int("period", 20, "Rolling window length")
	rollCmd.Flags().Float64("q", 0.5, "Quantile in [0,1] for --stat quantile")

	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(rollCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
