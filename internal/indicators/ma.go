// Package indicators provides technical-analysis indicators over
// NaN-tagged float64 series. Outputs are full-length series aligned with
// the input: positions before the indicator's warm-up, and positions
// whose input sample is missing, hold NaN.
package indicators

import (
	"fmt"
	"math"

	"github.com/amahouachi/qntgo/internal/series"
	"github.com/amahouachi/qntgo/internal/stats"
)

// SMA returns the simple moving average of source over windows of length
// period, skipping missing samples within each window.
func SMA(source []float64, period int) ([]float64, error) {
	out, err := stats.RollMean(source, period)
	if err != nil {
		return nil, fmt.Errorf("sma: %w", err)
	}
	return out, nil
}

// EMA returns the exponential moving average of source with smoothing
// factor 2/(period+1), seeded with the simple average of the first
// period valid samples. Missing samples carry the running average
// forward and emit NaN at their own position.
func EMA(source []float64, period int) ([]float64, error) {
	return smooth(source, period, 2/(float64(period)+1))
}

// RMA returns the Wilder moving average of source (smoothing factor
// 1/period), the recurrence RSI and ATR build on.
func RMA(source []float64, period int) ([]float64, error) {
	return smooth(source, period, 1/float64(period))
}

func smooth(source []float64, period int, alpha float64) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("moving average: period must be positive, got %d", period)
	}
	out := series.Filled(len(source))

	var sum, avg float64
	seen := 0
	seeded := false
	for i, v := range source {
		if math.IsNaN(v) {
			continue
		}
		if !seeded {
			sum += v
			seen++
			if seen == period {
				avg = sum / float64(period)
				seeded = true
				out[i] = avg
			}
			continue
		}
		avg += alpha * (v - avg)
		out[i] = avg
	}
	return out, nil
}
