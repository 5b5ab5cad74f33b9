package timeseries

import (
	"math"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	data := `ds,y
2020-01-01,10.5
2020-02-01,11.0
2020-03-01,12.5
`
	s, err := LoadCSVFromReader(strings.NewReader(data), nil)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Expected 3 values, got %d", s.Len())
	}
	if s.Values[0] != 10.5 || s.Values[2] != 12.5 {
		t.Errorf("Unexpected values: %v", s.Values)
	}
	if s.Timestamps[1].Month() != 2 {
		t.Errorf("Expected February timestamp, got %v", s.Timestamps[1])
	}
}

func TestLoadCSVMissingValues(t *testing.T) {
	data := `ds,y
2020-01-01,10.5
2020-02-01,NA
2020-03-01,
2020-04-01,12.5
`
	s, err := LoadCSVFromReader(strings.NewReader(data), nil)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("Missing rows must be kept in place, got length %d", s.Len())
	}
	if !math.IsNaN(s.Values[1]) || !math.IsNaN(s.Values[2]) {
		t.Errorf("Expected NaN at indices 1 and 2, got %v", s.Values)
	}
	if s.Count() != 2 {
		t.Errorf("Expected 2 present observations, got %d", s.Count())
	}
}

func TestLoadCSVInvalidValue(t *testing.T) {
	data := `ds,y
2020-01-01,abc
`
	if _, err := LoadCSVFromReader(strings.NewReader(data), nil); err == nil {
		t.Error("Expected error for non-numeric value")
	}
}

func TestLoadCSVAllMissing(t *testing.T) {
	data := `ds,y
2020-01-01,NA
2020-02-01,NA
`
	if _, err := LoadCSVFromReader(strings.NewReader(data), nil); err == nil {
		t.Error("Expected error when no value is present")
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	data := "2020-01-01,5\n2020-01-02,6\n"
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}
	if s.Len() != 2 || s.Values[0] != 5 {
		t.Errorf("Unexpected series: %v", s.Values)
	}
}
