package timeseries

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}
}

func TestCount(t *testing.T) {
	s := New([]float64{1, math.NaN(), 3, math.NaN(), 5})
	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}
	if s.Count() != 3 {
		t.Errorf("Expected 3 present observations, got %d", s.Count())
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"with missing", []float64{1, math.NaN(), 3}, 2.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	result := s.Variance()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, result)
	}
}

func TestVarianceSkipsMissing(t *testing.T) {
	full := New([]float64{2, 4, 6})
	holed := New([]float64{2, math.NaN(), 4, math.NaN(), 6})
	if math.Abs(full.Variance()-holed.Variance()) > 1e-10 {
		t.Errorf("Variance should skip missing values: %f vs %f",
			full.Variance(), holed.Variance())
	}
}

func TestMinMax(t *testing.T) {
	s := New([]float64{3, math.NaN(), -1, 7, math.NaN()})
	if s.Min() != -1 {
		t.Errorf("Expected min -1, got %f", s.Min())
	}
	if s.Max() != 7 {
		t.Errorf("Expected max 7, got %f", s.Max())
	}

	empty := New([]float64{math.NaN(), math.NaN()})
	if !math.IsNaN(empty.Min()) || !math.IsNaN(empty.Max()) {
		t.Errorf("Min/Max of all-missing series should be NaN")
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"odd count", []float64{3, 1, 2}, 2},
		{"even count", []float64{4, 1, 3, 2}, 2.5},
		{"with missing", []float64{3, math.NaN(), 1, 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Median()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected median %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	sub := s.Slice(1, 4)

	if sub.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", sub.Len())
	}
	if sub.Values[0] != 2 || sub.Values[2] != 4 {
		t.Errorf("Unexpected slice values: %v", sub.Values)
	}
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	c := s.Copy()
	c.Values[0] = 99

	if s.Values[0] != 1 {
		t.Errorf("Copy should not share backing array with original")
	}
}
