package stats

import "math"

// floydRivestThreshold is the range size above which Select narrows the
// search window by sampling before partitioning. Below it the plain
// median-of-three quickselect wins.
const floydRivestThreshold = 600

// Select returns the value that would occupy position k (0-indexed) if
// buf[left..right] were sorted. It permutes buf in place and runs in
// expected O(n) time.
//
// Callers must guarantee 0 <= left <= k <= right < len(buf); the public
// quantile functions validate their ranks before calling here.
func Select(buf []float64, k, left, right int) float64 {
	for right > left {
		if right-left > floydRivestThreshold {
			// Floyd-Rivest sampling step: shrink [left,right] to a
			// window expected to contain rank k, then select inside it.
			n := float64(right - left + 1)
			i := float64(k - left + 1)
			z := math.Log(n)
			s := 0.5 * math.Exp(2*z/3)
			sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
			if i < n/2 {
				sd = -sd
			}
			newLeft := maxInt(left, int(math.Floor(float64(k)-i*s/n+sd)))
			newRight := minInt(right, int(math.Floor(float64(k)+(n-i)*s/n+sd)))
			Select(buf, k, newLeft, newRight)
		}

		mid := left + (right-left)/2
		medianOfThree(buf, left, mid, right)

		// Lomuto partition around buf[mid], staged at the right edge.
		buf[mid], buf[right] = buf[right], buf[mid]
		pivot := buf[right]
		store := left
		for j := left; j < right; j++ {
			if buf[j] < pivot {
				buf[j], buf[store] = buf[store], buf[j]
				store++
			}
		}
		buf[store], buf[right] = buf[right], buf[store]

		switch {
		case k < store:
			right = store - 1
		case k > store:
			left = store + 1
		default:
			return buf[k]
		}
	}
	return buf[left]
}

// medianOfThree orders buf[a], buf[b], buf[c] so buf[b] holds their median.
func medianOfThree(buf []float64, a, b, c int) {
	if buf[b] < buf[a] {
		buf[a], buf[b] = buf[b], buf[a]
	}
	if buf[c] < buf[b] {
		buf[b], buf[c] = buf[c], buf[b]
		if buf[b] < buf[a] {
			buf[a], buf[b] = buf[b], buf[a]
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
