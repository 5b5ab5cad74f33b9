// Package loess implements locally weighted polynomial regression.
//
// Loess fits, independently for every prediction point, a low-degree
// polynomial to the nearest window of observations, weighted by tricube
// distance falloff and optional per-observation robustness weights. The
// fitted value at the prediction point is the polynomial's value there.
//
// # Usage
//
// Smooth a noisy sequence over its index:
//
//	x := []float64{0, 1, 2, 3, 4, 5}
//	y := timeseries.Observations(values) // may contain missing entries
//	fitted, err := loess.Smooth(x, y, 5, 1, nil, x)
//
// Prediction points outside the support of x are allowed; the local
// polynomial extrapolates. This is what the STL cycle-subseries step uses
// to forecast and backcast one seasonal period beyond the observed range.
//
// The weighted least squares systems are solved by QR factorization; a
// singular local system falls back to the weighted neighborhood mean.
package loess
