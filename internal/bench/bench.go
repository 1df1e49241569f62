// Package bench times the library's rolling and batch statistics over
// synthetic random-walk data, mirroring the reference harness used to
// compare against NumPy/pandas/bottleneck baselines.
package bench

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/amahouachi/qntgo/internal/indicators"
	"github.com/amahouachi/qntgo/internal/series"
	"github.com/amahouachi/qntgo/internal/stats"
)

// Result summarizes the timing of one operation.
type Result struct {
	Operation    string  `json:"operation"`
	Samples      int     `json:"samples"`
	Period       int     `json:"period"`
	NaNFraction  float64 `json:"nan_fraction"`
	Repeats      int     `json:"repeats"`
	MedianMillis float64 `json:"median_ms"`
	MSamplesPerS float64 `json:"msamples_per_s"`
}

// GenerateWalk produces a synthetic random-walk price series of length n,
// seeded deterministically: two uniform step components around a base
// price of 1000, matching the reference benchmark data.
func GenerateWalk(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	price := 1000.0
	for i := 0; i < n; i++ {
		price += (rng.Float64()-0.5)*1.5 + (rng.Float64()-0.5)*0.5
		out[i] = price
	}
	return out
}

// SprinkleMissing returns a copy of source with roughly fraction of its
// positions replaced by the missing sentinel (at least one when fraction
// is positive).
func SprinkleMissing(source []float64, fraction float64, seed int64) []float64 {
	out := append([]float64(nil), source...)
	if fraction <= 0 || len(out) == 0 {
		return out
	}
	k := int(float64(len(out)) * fraction)
	if k < 1 {
		k = 1
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < k; i++ {
		out[rng.Intn(len(out))] = series.Missing
	}
	return out
}

// Run executes every configured operation with one warm run followed by
// cfg.Repeats timed runs, reporting the median wall time per operation.
func Run(cfg *Config) ([]Result, error) {
	data := GenerateWalk(cfg.Samples, cfg.Seed)
	if cfg.NaNFraction > 0 {
		data = SprinkleMissing(data, cfg.NaNFraction, cfg.Seed+1)
	}

	results := make([]Result, 0, len(cfg.Operations))
	for _, op := range cfg.Operations {
		fn, err := lookup(op, cfg)
		if err != nil {
			return nil, err
		}

		fn(data) // warm run

		times := make([]float64, cfg.Repeats)
		for r := 0; r < cfg.Repeats; r++ {
			start := time.Now()
			fn(data)
			times[r] = float64(time.Since(start).Nanoseconds()) / 1e6
		}
		med := stats.Median(times)

		res := Result{
			Operation:    op,
			Samples:      cfg.Samples,
			Period:       cfg.Period,
			NaNFraction:  cfg.NaNFraction,
			Repeats:      cfg.Repeats,
			MedianMillis: med,
			MSamplesPerS: float64(cfg.Samples) / med / 1000,
		}
		results = append(results, res)
		log.Info().
			Str("operation", op).
			Float64("median_ms", med).
			Float64("msamples_per_s", res.MSamplesPerS).
			Msg("benchmark complete")
	}
	return results, nil
}

func lookup(op string, cfg *Config) (func([]float64), error) {
	period := cfg.Period
	switch op {
	case "rollmedian":
		return func(d []float64) { stats.RollMedian(d, period) }, nil
	case "rollquantile":
		return func(d []float64) { stats.RollQuantile(d, period, cfg.Q) }, nil
	case "rollmean":
		return func(d []float64) { stats.RollMean(d, period) }, nil
	case "rollstd":
		return func(d []float64) { stats.RollStd(d, period) }, nil
	case "rollmin":
		return func(d []float64) { stats.RollMin(d, period) }, nil
	case "rollmax":
		return func(d []float64) { stats.RollMax(d, period) }, nil
	case "median":
		return func(d []float64) { stats.Median(d) }, nil
	case "quantile":
		return func(d []float64) { stats.Quantile(d, cfg.Q) }, nil
	case "percentiles":
		qs := []float64{0.05, 0.25, 0.5, 0.75, 0.95}
		return func(d []float64) { stats.Percentiles(d, qs) }, nil
	case "ema":
		return func(d []float64) { indicators.EMA(d, period) }, nil
	case "rsi":
		return func(d []float64) { indicators.RSI(d, period) }, nil
	default:
		return nil, fmt.Errorf("bench: unknown operation %q", op)
	}
}
