package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amahouachi/qntgo/internal/stats"
)

func runRoll(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	stat, _ := cmd.Flags().GetString("stat")
	period, _ := cmd.Flags().GetInt("period")
	q, _ := cmd.Flags().GetFloat64("q")

	var reader io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	source, err := readSamples(reader)
	if err != nil {
		return err
	}

	var out []float64
	switch stat {
	case "median":
		out, err = stats.RollMedian(source, period)
	case "quantile":
		out, err = stats.RollQuantile(source, period, q)
	case "mean":
		out, err = stats.RollMean(source, period)
	case "std":
		out, err = stats.RollStd(source, period)
	case "min":
		out, err = stats.RollMin(source, period)
	case "max":
		out, err = stats.RollMax(source, period)
	case "sum":
		out, err = stats.RollSum(source, period)
	case "zscore":
		out, err = stats.RollZScore(source, period)
	default:
		return fmt.Errorf("unknown statistic %q", stat)
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, v := range out {
		if math.IsNaN(v) {
			fmt.Fprintln(w, "nan")
			continue
		}
		fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return nil
}

// readSamples parses one sample per line; an empty line or the token
// "nan" (any case) marks a missing value.
func readSamples(r io.Reader) ([]float64, error) {
	var out []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.EqualFold(text, "nan") {
			out = append(out, math.NaN())
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample on line %d: %q", line, text)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	return out, nil
}
