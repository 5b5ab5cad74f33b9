// Package stl implements STL: Seasonal-Trend decomposition using Loess.
//
// STL decomposes a series y with seasonal period np into additive
// components y = seasonal + trend + remainder. An inner loop alternates
// between estimating the seasonal component (smoothing each
// cycle-subseries with loess, then removing trend-scale leakage with a
// low-pass filter) and estimating the trend (loess over the
// deseasonalized series), iterating until both components stabilize. In
// robust mode an outer loop re-weights observations by a bicube falloff
// of their scaled remainders and repeats the inner loop until
// convergence, so transient outliers stop distorting the smoothing.
//
// # Usage
//
// Decompose monthly data with a yearly cycle:
//
//	cfg := stl.DefaultConfig(12)
//	cfg.Seasonal = 35 // seasonal window: odd, >= 7
//	cfg.Robust = true
//	result, err := stl.Decompose(obs, 12, cfg)
//	if err != nil {
//	    // invalid configuration: even or too-small seasonal window, ...
//	}
//	for _, w := range result.Warnings {
//	    // advisory: a component did not converge
//	}
//
// Missing observations are allowed anywhere in the input; the seasonal
// and trend components are estimated at every position, and the
// remainder is missing exactly where the input was.
//
// # Windows
//
// All smoothing windows should be odd. The seasonal window is validated
// (odd, >= 7); trend and low-pass windows default to the smallest odd
// values compatible with the period via NextOdd. Larger seasonal windows
// give a more nearly periodic seasonal component.
package stl
