// Package gostl provides STL time series decomposition (Seasonal-Trend
// decomposition using Loess).
//
// GoSTL decomposes a univariate time series, possibly containing missing
// observations, into additive seasonal, trend, and remainder components.
// The decomposition is the iterative inner/outer loop procedure of
// Cleveland et al., built on a local polynomial regression smoother, with
// optional robustness iterations that down-weight outliers.
//
// # Features
//
//   - Additive STL decomposition with configurable smoothing windows
//   - Missing observations handled throughout (explicit optional values)
//   - Robust mode with bicube residual re-weighting until convergence
//   - Optional post-smoothing of the seasonal component
//   - Local polynomial regression (loess) smoother with extrapolation
//   - Time-indexed series container with CSV loading
//
// # Quick Start
//
// Decompose a series with a seasonal period of 12:
//
//	y := timeseries.Observations(values) // NaN entries become missing
//	cfg := stl.DefaultConfig(12)
//	cfg.Seasonal = 35
//	result, err := stl.Decompose(y, 12, cfg)
//	// result.Seasonal, result.Trend, result.Remainder
//
// Or keep the time index attached:
//
//	series, _ := timeseries.NewWithTimestamps(timestamps, values)
//	result, err := stl.DecomposeSeries(series, 12, nil)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - stl: the STL decomposition core
//   - loess: locally weighted polynomial regression
//   - sma: simple moving average
//   - timeseries: time series data structures and CSV loading
//
// # References
//
//   - Cleveland, R.B., Cleveland, W.S., McRae, J.E., & Terpenning, I.
//     (1990). STL: A Seasonal-Trend Decomposition Procedure Based on Loess.
//     Journal of Official Statistics, 6(1), 3-73.
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles
//     and Practice
package gostl
