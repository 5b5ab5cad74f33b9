// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data
// with explicit missing observations, the Observation optional value type
// used by the decomposition core, and functions for CSV loading.
//
// # Creating a Series
//
// Create a time series from a slice (NaN entries denote missing data):
//
//	values := []float64{100, 102, math.NaN(), 103, 108, 110}
//	series := timeseries.New(values)
//
// # Missing Observations
//
// Within a Series, missing observations are stored as NaN and skipped by
// every summary statistic. At the decomposition API boundary the explicit
// Observation type is used instead:
//
//	obs := series.Observations() // NaN -> Observation{Valid: false}
//	values := timeseries.Floats(obs)
//
// # Loading from CSV
//
// Load time series data from CSV files; cells containing "", "NA", "NaN"
// or "null" are kept in place as missing observations:
//
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
// # Basic Statistics
//
// Calculate summary statistics over the present observations:
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
//	n := series.Count()
package timeseries
