package timeseries

import "math"

// Observation is a single sample that is either present or missing.
// Missing observations are explicit; no sentinel value is used in the
// decomposition core.
type Observation struct {
	Value float64
	Valid bool
}

// Obs creates a present observation with the given value.
func Obs(v float64) Observation {
	return Observation{Value: v, Valid: true}
}

// Missing creates a missing observation.
func Missing() Observation {
	return Observation{}
}

// Observations converts a plain float slice to observations, mapping NaN
// entries to missing.
func Observations(values []float64) []Observation {
	obs := make([]Observation, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			obs[i] = Obs(v)
		}
	}
	return obs
}

// Floats converts observations back to a plain float slice, mapping
// missing entries to NaN.
func Floats(obs []Observation) []float64 {
	values := make([]float64, len(obs))
	for i, o := range obs {
		if o.Valid {
			values[i] = o.Value
		} else {
			values[i] = math.NaN()
		}
	}
	return values
}
