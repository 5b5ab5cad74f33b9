// Package stl implements Seasonal-Trend decomposition using Loess.
package stl

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gostl/loess"
	"github.com/sartorproj/gostl/sma"
	"github.com/sartorproj/gostl/timeseries"
)

// robustCycleCap bounds the number of robustness cycles when convergence
// is never reached, independent of the convergence-driven termination.
const robustCycleCap = 100

// Decomposition is the additive decomposition of a series:
// y[i] = Seasonal[i] + Trend[i] + Remainder[i] wherever y[i] is present.
type Decomposition struct {
	Seasonal []float64
	Trend    []float64

	// Remainder is missing exactly where the input was missing.
	Remainder []timeseries.Observation

	// Weights holds the final robustness weights, all 1 unless robustness
	// cycles ran.
	Weights []float64

	SeasonalConverged bool
	TrendConverged    bool

	// Warnings holds advisory non-convergence notices. The decomposition
	// itself is still usable.
	Warnings []string
}

// phase is the outer-loop progression: a run leaves running either by
// convergence (robust mode) or by exhausting its cycle budget.
type phase int

const (
	running phase = iota
	convergedPhase
	budgetExhausted
)

// Decompose splits y into seasonal, trend, and remainder components using
// the STL procedure. period is the integer seasonal period (>= 2); cfg may
// be nil for all defaults. The configuration is not mutated.
func Decompose(y []timeseries.Observation, period int, cfg *Config) (*Decomposition, error) {
	if cfg == nil {
		cfg = DefaultConfig(period)
	} else {
		c := *cfg
		c.fill(period)
		cfg = &c
	}
	if err := cfg.validate(period, len(y)); err != nil {
		return nil, err
	}

	st := newState(y, period, cfg)
	cycle := 0
	p := running
	for p == running {
		if err := st.runInner(); err != nil {
			return nil, err
		}
		st.computeRemainder()

		switch {
		case cfg.Robust && st.seasonalStable && st.trendStable:
			p = convergedPhase
		case cfg.Robust && cycle >= robustCycleCap:
			p = budgetExhausted
		case !cfg.Robust && cycle >= cfg.Outer:
			p = budgetExhausted
		default:
			st.updateWeights()
			cycle++
			st.log.Debug("robustness weights updated", zap.Int("outer_cycle", cycle))
		}
	}

	if cfg.PostSmoothSeasonal {
		if err := st.postSmoothSeasonal(); err != nil {
			return nil, err
		}
		st.computeRemainder()
	}

	result := &Decomposition{
		Seasonal:          st.seasonal,
		Trend:             st.trend,
		Remainder:         st.remainder,
		Weights:           st.weights,
		SeasonalConverged: st.seasonalStable,
		TrendConverged:    st.trendStable,
	}
	if !st.seasonalStable {
		result.Warnings = append(result.Warnings,
			"seasonal component did not converge within the cycle budget; consider robust mode")
	}
	if !st.trendStable {
		result.Warnings = append(result.Warnings,
			"trend component did not converge within the cycle budget; consider robust mode")
	}
	for _, w := range result.Warnings {
		st.log.Warn(w)
	}
	return result, nil
}

// state is the mutable loop state of one decomposition run. It is owned
// exclusively by that run.
type state struct {
	y      []timeseries.Observation
	period int
	cfg    *Config
	log    *zap.Logger

	n     int
	valid []bool

	seasonal []float64
	trend    []float64

	// Previous snapshots for the convergence ratio tests.
	prevSeasonal []float64
	prevTrend    []float64

	weights   []float64
	remainder []timeseries.Observation

	// detrended holds y - trend; positions where y is missing stay NaN.
	detrended []float64

	// cycle is the padded cycle-subseries buffer, one full period beyond
	// each end of the observed range. Rebuilt every inner iteration.
	cycle []float64

	// Centered fitting supports: the low-pass fit rounds the midpoint up,
	// the trend fit rounds it down. The opposite parities average out
	// asymmetric rounding error across the two filters.
	lowSupport   []float64
	trendSupport []float64

	scratch []timeseries.Observation

	seasonalStable bool
	trendStable    bool
}

func newState(y []timeseries.Observation, period int, cfg *Config) *state {
	n := len(y)
	st := &state{
		y:            y,
		period:       period,
		cfg:          cfg,
		log:          cfg.logger(),
		n:            n,
		valid:        make([]bool, n),
		seasonal:     make([]float64, n),
		trend:        make([]float64, n),
		prevSeasonal: make([]float64, n),
		prevTrend:    make([]float64, n),
		weights:      make([]float64, n),
		remainder:    make([]timeseries.Observation, n),
		detrended:    make([]float64, n),
		cycle:        make([]float64, n+2*period),
		lowSupport:   centeredSupport(n, true),
		trendSupport: centeredSupport(n, false),
		scratch:      make([]timeseries.Observation, n),
	}
	for i, o := range y {
		st.valid[i] = o.Valid
		st.weights[i] = 1
		st.detrended[i] = math.NaN()
	}
	return st
}

// runInner performs up to Inner seasonal/trend refinement cycles, exiting
// early once both components have stabilized.
func (st *state) runInner() error {
	for it := 1; it <= st.cfg.Inner; it++ {
		// Detrend. Missing observations propagate.
		for i := range st.detrended {
			if st.valid[i] {
				st.detrended[i] = st.y[i].Value - st.trend[i]
			}
		}

		sRatio, sOK := stabilized(st.detrended, st.prevSeasonal, st.valid, st.cfg.Threshold)
		st.seasonalStable = sOK
		copy(st.prevSeasonal, st.detrended)

		if err := st.smoothCycleSubseries(); err != nil {
			return err
		}

		low, err := st.lowPass()
		if err != nil {
			return err
		}

		// Subtracting the low-pass fit removes trend-scale power that
		// leaked into the cycle-subseries smoothing.
		for i := 0; i < st.n; i++ {
			st.seasonal[i] = st.cycle[st.period+i] - low[i]
		}

		if err := st.smoothTrend(); err != nil {
			return err
		}

		tRatio, tOK := stabilized(st.trend, st.prevTrend, nil, st.cfg.Threshold)
		st.trendStable = tOK
		copy(st.prevTrend, st.trend)

		st.log.Debug("inner cycle",
			zap.Int("iteration", it),
			zap.Float64("seasonal_ratio", sRatio),
			zap.Float64("trend_ratio", tRatio),
			zap.Bool("seasonal_stable", sOK),
			zap.Bool("trend_stable", tOK))

		if sOK && tOK {
			break
		}
	}
	return nil
}

// smoothCycleSubseries smooths each residue class of the detrended series
// independently and writes the fits, extended one period before and after
// the observed range, into the padded cycle buffer. The subseries are
// independent, so they are fitted concurrently; each goroutine writes a
// disjoint stride of the buffer and the group wait is the join point
// before the low-pass step reads it.
func (st *state) smoothCycleSubseries() error {
	np := st.period
	var g errgroup.Group
	for k := 0; k < np; k++ {
		k := k
		g.Go(func() error {
			m := (st.n - k + np - 1) / np
			xs := make([]float64, m)
			obs := make([]timeseries.Observation, m)
			w := make([]float64, m)
			for j := 0; j < m; j++ {
				i := k + j*np
				xs[j] = float64(j)
				if st.valid[i] {
					obs[j] = timeseries.Obs(st.detrended[i])
				}
				w[j] = st.weights[i]
			}
			predict := make([]float64, m+2)
			for j := range predict {
				predict[j] = float64(j - 1)
			}
			fitted, err := loess.Smooth(xs, obs, st.cfg.Seasonal, 1, w, predict)
			if err != nil {
				return fmt.Errorf("stl: cycle-subseries %d: %w", k, err)
			}
			for j, v := range fitted {
				st.cycle[k+j*np] = v
			}
			return nil
		})
	}
	return g.Wait()
}

// lowPass applies the moving-average cascade to the padded cycle buffer
// and smooths the result with loess, yielding one value per observation.
func (st *state) lowPass() ([]float64, error) {
	ma, err := sma.MovingAverage(st.cycle, st.period)
	if err == nil {
		ma, err = sma.MovingAverage(ma, st.period)
	}
	if err == nil {
		ma, err = sma.MovingAverage(ma, 3)
	}
	if err != nil {
		return nil, fmt.Errorf("stl: low-pass filter: %w", err)
	}

	fitted, err := loess.Smooth(st.lowSupport, timeseries.Observations(ma), st.cfg.LowPass, 1, st.weights, st.lowSupport)
	if err != nil {
		return nil, fmt.Errorf("stl: low-pass filter: %w", err)
	}
	return fitted, nil
}

// smoothTrend fits the trend component to the deseasonalized series.
func (st *state) smoothTrend() error {
	for i := 0; i < st.n; i++ {
		if st.valid[i] {
			st.scratch[i] = timeseries.Obs(st.y[i].Value - st.seasonal[i])
		} else {
			st.scratch[i] = timeseries.Missing()
		}
	}
	fitted, err := loess.Smooth(st.trendSupport, st.scratch, st.cfg.Trend, 1, st.weights, st.trendSupport)
	if err != nil {
		return fmt.Errorf("stl: trend smoothing: %w", err)
	}
	copy(st.trend, fitted)
	return nil
}

func (st *state) computeRemainder() {
	for i := range st.y {
		if st.valid[i] {
			st.remainder[i] = timeseries.Obs(st.y[i].Value - st.trend[i] - st.seasonal[i])
		} else {
			st.remainder[i] = timeseries.Missing()
		}
	}
}

// updateWeights recomputes the robustness weights from the remainder
// magnitudes: weights follow a bicube falloff of the remainder scaled by
// six times its median, so large-residual observations are down-weighted
// in the next round of smoothing.
func (st *state) updateWeights() {
	abs := make([]float64, 0, st.n)
	for _, r := range st.remainder {
		if r.Valid {
			abs = append(abs, math.Abs(r.Value))
		}
	}
	if len(abs) == 0 {
		return
	}
	sort.Float64s(abs)
	h := 6 * stat.Quantile(0.5, stat.Empirical, abs, nil)

	for i := range st.weights {
		switch {
		case !st.valid[i]:
			st.weights[i] = 0
		case h == 0:
			// Perfect fit; every present observation keeps full weight.
			st.weights[i] = 1
		default:
			st.weights[i] = bicube(math.Abs(st.remainder[i].Value) / h)
		}
	}
}

// postSmoothSeasonal refits the seasonal component with a short loess
// window and no robustness weights. This trades exactness of the additive
// decomposition on short timescales for a smoother seasonal.
func (st *state) postSmoothSeasonal() error {
	fitted, err := loess.Smooth(st.lowSupport, timeseries.Observations(st.seasonal),
		st.cfg.PostSmoothWindow, 1, nil, st.lowSupport)
	if err != nil {
		return fmt.Errorf("stl: seasonal post-smoothing: %w", err)
	}
	copy(st.seasonal, fitted)
	return nil
}

// stabilized computes the convergence ratio max|cur-prev| / range(prev)
// over the positions marked valid (all positions when valid is nil) and
// reports whether it is below threshold. A zero range counts as converged
// only when nothing moved; an empty valid set never converges.
func stabilized(cur, prev []float64, valid []bool, threshold float64) (float64, bool) {
	maxDiff := 0.0
	lo, hi := math.Inf(1), math.Inf(-1)
	seen := false
	for i := range cur {
		if valid != nil && !valid[i] {
			continue
		}
		seen = true
		if d := math.Abs(cur[i] - prev[i]); d > maxDiff {
			maxDiff = d
		}
		if prev[i] < lo {
			lo = prev[i]
		}
		if prev[i] > hi {
			hi = prev[i]
		}
	}
	if !seen {
		return math.NaN(), false
	}
	if hi-lo == 0 {
		if maxDiff == 0 {
			return 0, true
		}
		return math.Inf(1), false
	}
	ratio := maxDiff / (hi - lo)
	return ratio, ratio < threshold
}

// centeredSupport returns the 1-based indices 1..n shifted so that 0 sits
// at the series midpoint, rounding the midpoint up or down.
func centeredSupport(n int, roundUp bool) []float64 {
	mid := n / 2
	if roundUp {
		mid = (n + 1) / 2
	}
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i + 1 - mid)
	}
	return s
}

// bicube is the robustness weight falloff (1-u^2)^2 for u < 1, else 0.
func bicube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	t := 1 - u*u
	return t * t
}
