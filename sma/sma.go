// Package sma implements simple moving average smoothing.
package sma

import "fmt"

// MovingAverage computes the simple moving average of x with the given
// window size using a rolling sum. The result has len(x)-window+1 values:
// edge positions without a full window are trimmed rather than padded, so
// result[i] is the average of x[i:i+window].
func MovingAverage(x []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("sma: window must be positive, got %d", window)
	}
	if window > len(x) {
		return nil, fmt.Errorf("sma: window %d exceeds series length %d", window, len(x))
	}

	result := make([]float64, len(x)-window+1)
	sum := 0.0
	for i := 0; i < window; i++ {
		sum += x[i]
	}
	result[0] = sum / float64(window)

	for i := window; i < len(x); i++ {
		sum = sum - x[i-window] + x[i]
		result[i-window+1] = sum / float64(window)
	}
	return result, nil
}
