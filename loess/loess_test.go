package loess

import (
	"math"
	"testing"

	"github.com/sartorproj/gostl/timeseries"
)

func line(n int, slope, intercept float64) ([]float64, []timeseries.Observation) {
	x := make([]float64, n)
	y := make([]timeseries.Observation, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = timeseries.Obs(slope*x[i] + intercept)
	}
	return x, y
}

func TestSmoothRecoversLine(t *testing.T) {
	// A degree-1 local fit reproduces collinear data exactly at any
	// prediction point.
	x, y := line(10, 2, 1)
	predict := []float64{0, 2.5, 4, 9}

	fitted, err := Smooth(x, y, 5, 1, nil, predict)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	for i, p := range predict {
		want := 2*p + 1
		if math.Abs(fitted[i]-want) > 1e-8 {
			t.Errorf("At x=%f expected %f, got %f", p, want, fitted[i])
		}
	}
}

func TestSmoothExtrapolates(t *testing.T) {
	x, y := line(10, -0.5, 3)
	predict := []float64{-2, -1, 10, 11.5}

	fitted, err := Smooth(x, y, 5, 1, nil, predict)
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	for i, p := range predict {
		want := -0.5*p + 3
		if math.Abs(fitted[i]-want) > 1e-8 {
			t.Errorf("At x=%f expected %f, got %f", p, want, fitted[i])
		}
	}
}

func TestSmoothSkipsMissing(t *testing.T) {
	x, y := line(12, 1.5, -2)
	y[3] = timeseries.Missing()
	y[7] = timeseries.Missing()

	fitted, err := Smooth(x, y, 5, 1, nil, []float64{3, 7})
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	for i, p := range []float64{3, 7} {
		want := 1.5*p - 2
		if math.Abs(fitted[i]-want) > 1e-8 {
			t.Errorf("At x=%f expected %f, got %f", p, want, fitted[i])
		}
	}
}

func TestSmoothRobustnessWeights(t *testing.T) {
	// A zero robustness weight removes the observation from every fit.
	x, y := line(10, 2, 1)
	y[4] = timeseries.Obs(100) // outlier
	weights := make([]float64, 10)
	for i := range weights {
		weights[i] = 1
	}
	weights[4] = 0

	fitted, err := Smooth(x, y, 5, 1, weights, []float64{4})
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	if math.Abs(fitted[0]-9) > 1e-8 {
		t.Errorf("Expected outlier to be ignored, got %f (want 9)", fitted[0])
	}
}

func TestSmoothDegreeZero(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []timeseries.Observation{
		timeseries.Obs(4), timeseries.Obs(4), timeseries.Obs(4),
	}
	fitted, err := Smooth(x, y, 3, 0, nil, []float64{1})
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	if math.Abs(fitted[0]-4) > 1e-12 {
		t.Errorf("Expected constant 4, got %f", fitted[0])
	}
}

func TestSmoothWindowLargerThanData(t *testing.T) {
	x, y := line(5, 1, 0)
	fitted, err := Smooth(x, y, 25, 1, nil, []float64{2})
	if err != nil {
		t.Fatalf("Smooth failed: %v", err)
	}
	if math.Abs(fitted[0]-2) > 1e-8 {
		t.Errorf("Expected 2, got %f", fitted[0])
	}
}

func TestSmoothErrors(t *testing.T) {
	x, y := line(5, 1, 0)

	if _, err := Smooth(x[:4], y, 3, 1, nil, []float64{0}); err == nil {
		t.Error("Expected error for mismatched x and y lengths")
	}
	if _, err := Smooth(x, y, 3, 3, nil, []float64{0}); err == nil {
		t.Error("Expected error for unsupported degree")
	}
	if _, err := Smooth(x, y, 1, 1, nil, []float64{0}); err == nil {
		t.Error("Expected error for window smaller than degree+1")
	}
	if _, err := Smooth(x, y, 3, 1, []float64{1}, []float64{0}); err == nil {
		t.Error("Expected error for mismatched weights length")
	}

	missing := make([]timeseries.Observation, 5)
	if _, err := Smooth(x, missing, 3, 1, nil, []float64{0}); err == nil {
		t.Error("Expected error for all-missing input")
	}
}
