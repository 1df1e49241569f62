package indicators

import (
	"fmt"
	"math"

	"github.com/amahouachi/qntgo/internal/series"
)

// RSI returns the Relative Strength Index of source: gains and losses of
// the lag-1 differences smoothed with Wilder averaging over period, then
// mapped to 100 - 100/(1+RS). Output positions before the warm-up and
// positions with a missing difference hold NaN; an all-gain window reads
// 100 and an all-loss window reads 0.
func RSI(source []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rsi: period must be positive, got %d", period)
	}
	out := series.Filled(len(source))
	diffs := series.Diff(source)

	var gainSum, lossSum, avgGain, avgLoss float64
	seen := 0
	seeded := false
	for i, d := range diffs {
		if math.IsNaN(d) {
			continue
		}
		gain, loss := 0.0, 0.0
		if d > 0 {
			gain = d
		} else {
			loss = -d
		}
		if !seeded {
			gainSum += gain
			lossSum += loss
			seen++
			if seen == period {
				avgGain = gainSum / float64(period)
				avgLoss = lossSum / float64(period)
				seeded = true
				out[i] = rsiValue(avgGain, avgLoss)
			}
			continue
		}
		alpha := 1 / float64(period)
		avgGain += alpha * (gain - avgGain)
		avgLoss += alpha * (loss - avgLoss)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// ROC returns the rate of change of source over period lags, in percent:
// 100*(x[i]-x[i-period])/x[i-period]. Positions where either endpoint is
// missing hold NaN.
func ROC(source []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("roc: period must be positive, got %d", period)
	}
	out := series.Filled(len(source))
	for i := period; i < len(source); i++ {
		prev, cur := source[i-period], source[i]
		if math.IsNaN(prev) || math.IsNaN(cur) || prev == 0 {
			continue
		}
		out[i] = 100 * (cur - prev) / prev
	}
	return out, nil
}
