package stl

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// ErrInvalidConfig is returned when decomposition parameters violate
// their numeric constraints.
var ErrInvalidConfig = errors.New("stl: invalid configuration")

// Config holds STL decomposition parameters. Zero-valued fields are
// filled with defaults derived from the seasonal period when the
// decomposition runs.
type Config struct {
	// Seasonal is the loess window for cycle-subseries smoothing. It must
	// be odd and at least 7; an even or smaller window makes the seasonal
	// smoother unstable. There is no principled default: callers should
	// choose it following Cleveland et al. (1990). When left zero, 7 is
	// used.
	Seasonal int

	// Trend is the loess window for trend smoothing, odd.
	// Default: NextOdd(1.5*period / (1 - 1.5/Seasonal)).
	Trend int

	// LowPass is the loess window for the low-pass filter, odd.
	// Default: NextOdd(period).
	LowPass int

	// Inner is the number of inner (seasonal/trend refinement) cycles per
	// outer pass. Default: 1 in robust mode, 2 otherwise.
	Inner int

	// Outer is the number of robustness re-weighting cycles in
	// non-robust mode (default 0: a single pass with no re-weighting).
	// Ignored in robust mode, which re-weights until both components
	// converge.
	Outer int

	// Robust enables robustness iterations: observations with large
	// remainders are down-weighted between passes, and the outer loop
	// terminates only once both seasonal and trend have stabilized.
	Robust bool

	// Threshold is the convergence ratio threshold. Default: 0.01.
	Threshold float64

	// PostSmoothSeasonal enables an extra loess pass over the final
	// seasonal component.
	PostSmoothSeasonal bool

	// PostSmoothWindow is the loess window for seasonal post-smoothing.
	// Default: max(period/7, 2).
	PostSmoothWindow int

	// Verbose enables per-iteration progress logging.
	Verbose bool

	// Logger receives progress and convergence diagnostics. When nil, a
	// development logger is built if Verbose is set, otherwise logging is
	// disabled.
	Logger *zap.Logger
}

// DefaultConfig returns the default decomposition configuration for the
// given seasonal period.
func DefaultConfig(period int) *Config {
	cfg := &Config{Seasonal: 7}
	cfg.fill(period)
	return cfg
}

// fill derives defaults for zero-valued fields.
func (c *Config) fill(period int) {
	if c.Seasonal == 0 {
		c.Seasonal = 7
	}
	if c.LowPass == 0 {
		c.LowPass = NextOdd(float64(period))
	}
	if c.Trend == 0 {
		ns := float64(c.Seasonal)
		c.Trend = NextOdd(1.5 * float64(period) / (1 - 1.5/ns))
	}
	if c.Inner == 0 {
		if c.Robust {
			c.Inner = 1
		} else {
			c.Inner = 2
		}
	}
	if c.Threshold == 0 {
		c.Threshold = 0.01
	}
	if c.PostSmoothWindow == 0 {
		c.PostSmoothWindow = period / 7
		if c.PostSmoothWindow < 2 {
			c.PostSmoothWindow = 2
		}
	}
}

// validate checks the load-bearing parameter constraints. It runs before
// any computation.
func (c *Config) validate(period, n int) error {
	if period < 2 {
		return fmt.Errorf("%w: period must be at least 2, got %d", ErrInvalidConfig, period)
	}
	if n < 2*period {
		return fmt.Errorf("%w: series length %d is shorter than two periods (%d)", ErrInvalidConfig, n, 2*period)
	}
	if c.Seasonal < 7 {
		return fmt.Errorf("%w: seasonal window must be at least 7, got %d", ErrInvalidConfig, c.Seasonal)
	}
	if c.Seasonal%2 == 0 {
		return fmt.Errorf("%w: seasonal window must be odd, got %d", ErrInvalidConfig, c.Seasonal)
	}
	return nil
}

// logger resolves the diagnostics logger for a run.
func (c *Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if c.Verbose {
		return newDevLogger()
	}
	return zap.NewNop()
}

// NextOdd returns the smallest odd integer greater than or equal to x.
func NextOdd(x float64) int {
	n := int(math.Ceil(x))
	if n%2 == 0 {
		n++
	}
	return n
}
