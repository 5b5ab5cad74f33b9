// Package main demonstrates STL decomposition on synthetic seasonal data.
package main

import (
	"fmt"
	"math"

	"github.com/sartorproj/gostl/stl"
	"github.com/sartorproj/gostl/timeseries"
)

const period = 12

// makeSeries builds ten years of monthly-style data: a rising trend, a
// yearly cycle, light noise, a handful of outliers, and a gap of missing
// observations.
func makeSeries() []float64 {
	n := 10 * period
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i)
		trend := 50 + 0.15*t
		seasonal := 8 * math.Sin(2*math.Pi*t/period)
		noise := 0.4 * math.Sin(17.3*t+1.1)
		values[i] = trend + seasonal + noise
	}

	// Outliers
	values[23] += 25
	values[71] -= 30

	// A gap and a few scattered holes
	for i := 40; i < 44; i++ {
		values[i] = math.NaN()
	}
	values[90] = math.NaN()
	values[105] = math.NaN()

	return values
}

func summarize(name string, result *stl.Decomposition) {
	fmt.Printf("\n--- %s ---\n", name)
	fmt.Printf("Seasonal converged: %v, trend converged: %v\n",
		result.SeasonalConverged, result.TrendConverged)
	for _, w := range result.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}

	sMin, sMax := result.Seasonal[0], result.Seasonal[0]
	for _, v := range result.Seasonal {
		sMin = math.Min(sMin, v)
		sMax = math.Max(sMax, v)
	}
	fmt.Printf("Seasonal amplitude: %.2f (true 8.00)\n", (sMax-sMin)/2)
	fmt.Printf("Trend start/end: %.2f -> %.2f (true 50.00 -> %.2f)\n",
		result.Trend[0], result.Trend[len(result.Trend)-1],
		50+0.15*float64(len(result.Trend)-1))
	fmt.Printf("Weight at outlier (i=23): %.3f, at neighbor (i=22): %.3f\n",
		result.Weights[23], result.Weights[22])

	fmt.Println("First year:")
	fmt.Println("  i   seasonal     trend  remainder")
	for i := 0; i < period; i++ {
		rem := "       NA"
		if result.Remainder[i].Valid {
			rem = fmt.Sprintf("%9.3f", result.Remainder[i].Value)
		}
		fmt.Printf("%3d  %9.3f %9.3f  %s\n", i, result.Seasonal[i], result.Trend[i], rem)
	}
}

func main() {
	fmt.Println("STL Decomposition Demo")
	fmt.Println("======================")

	values := makeSeries()
	series := timeseries.New(values)
	fmt.Printf("Series: %d observations (%d present), period %d\n",
		series.Len(), series.Count(), period)

	y := series.Observations()

	cfg := stl.DefaultConfig(period)
	cfg.Seasonal = 35
	result, err := stl.Decompose(y, period, cfg)
	if err != nil {
		fmt.Println("decomposition failed:", err)
		return
	}
	summarize("Non-robust", result)

	robustCfg := stl.DefaultConfig(period)
	robustCfg.Seasonal = 35
	robustCfg.Robust = true
	robust, err := stl.Decompose(y, period, robustCfg)
	if err != nil {
		fmt.Println("robust decomposition failed:", err)
		return
	}
	summarize("Robust", robust)
}
