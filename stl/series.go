package stl

import "github.com/sartorproj/gostl/timeseries"

// SeriesDecomposition is a Decomposition with the input's time index
// re-attached to each component.
type SeriesDecomposition struct {
	Original  *timeseries.Series
	Seasonal  *timeseries.Series
	Trend     *timeseries.Series
	Remainder *timeseries.Series
	Period    int

	SeasonalConverged bool
	TrendConverged    bool
	Warnings          []string
}

// DecomposeSeries decomposes a time-indexed series. NaN values in the
// series are treated as missing observations. The three component series
// carry the original timestamps; the remainder holds NaN where the input
// was missing.
func DecomposeSeries(s *timeseries.Series, period int, cfg *Config) (*SeriesDecomposition, error) {
	result, err := Decompose(s.Observations(), period, cfg)
	if err != nil {
		return nil, err
	}

	return &SeriesDecomposition{
		Original: s,
		Seasonal: &timeseries.Series{
			Timestamps: s.Timestamps,
			Values:     result.Seasonal,
			Name:       "seasonal",
		},
		Trend: &timeseries.Series{
			Timestamps: s.Timestamps,
			Values:     result.Trend,
			Name:       "trend",
		},
		Remainder: &timeseries.Series{
			Timestamps: s.Timestamps,
			Values:     timeseries.Floats(result.Remainder),
			Name:       "remainder",
		},
		Period:            period,
		SeasonalConverged: result.SeasonalConverged,
		TrendConverged:    result.TrendConverged,
		Warnings:          result.Warnings,
	}, nil
}
