package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/amahouachi/qntgo/internal/bench"
)

func runBench(cmd *cobra.Command, args []string) error {
	cfg := bench.DefaultConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := bench.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyBenchOverrides(cmd.Flags(), cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Info().
		Int("samples", cfg.Samples).
		Int("period", cfg.Period).
		Float64("nan_fraction", cfg.NaNFraction).
		Strs("operations", cfg.Operations).
		Msg("starting benchmark run")

	results, err := bench.Run(cfg)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, r := range results {
		fmt.Printf("%-14s %9.3f ms  %8.2f Msamples/s\n", r.Operation, r.MedianMillis, r.MSamplesPerS)
	}
	return nil
}

// applyBenchOverrides folds explicitly-set flags over the loaded config,
// leaving file values in place for flags the user did not touch.
func applyBenchOverrides(flags *pflag.FlagSet, cfg *bench.Config) {
	if flags.Changed("samples") {
		cfg.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("period") {
		cfg.Period, _ = flags.GetInt("period")
	}
	if flags.Changed("q") {
		cfg.Q, _ = flags.GetFloat64("q")
	}
	if flags.Changed("nan-fraction") {
		cfg.NaNFraction, _ = flags.GetFloat64("nan-fraction")
	}
	if flags.Changed("repeats") {
		cfg.Repeats, _ = flags.GetInt("repeats")
	}
	if flags.Changed("ops") {
		cfg.Operations, _ = flags.GetStringSlice("ops")
	}
}
