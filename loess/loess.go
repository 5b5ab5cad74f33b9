package loess

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gostl/timeseries"
)

// MaxDegree is the highest supported local polynomial degree.
const MaxDegree = 2

// Smooth fits a locally weighted polynomial regression to (x, y) and
// returns predictions at predictAt.
//
// x must be strictly increasing and the same length as y. Missing
// observations in y are skipped both when selecting neighbors and when
// fitting. window is the neighborhood size in points; when it exceeds the
// number of present observations, the tricube bandwidth is inflated
// proportionally, as in classic loess. weights holds optional
// per-observation robustness multipliers aligned with y (nil means all 1).
//
// Prediction points may lie outside the support of x, in which case the
// local polynomial extrapolates.
func Smooth(x []float64, y []timeseries.Observation, window, degree int, weights []float64, predictAt []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("loess: x and y lengths differ (%d vs %d)", len(x), len(y))
	}
	if weights != nil && len(weights) != len(y) {
		return nil, fmt.Errorf("loess: weights length %d does not match y length %d", len(weights), len(y))
	}
	if degree < 0 || degree > MaxDegree {
		return nil, fmt.Errorf("loess: degree must be between 0 and %d, got %d", MaxDegree, degree)
	}
	if window < degree+1 {
		return nil, fmt.Errorf("loess: window %d too small for degree %d", window, degree)
	}

	// Compact the present observations.
	xs := make([]float64, 0, len(y))
	ys := make([]float64, 0, len(y))
	ws := make([]float64, 0, len(y))
	for i, o := range y {
		if !o.Valid {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		xs = append(xs, x[i])
		ys = append(ys, o.Value)
		ws = append(ws, w)
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("loess: no present observations")
	}

	out := make([]float64, len(predictAt))
	for i, p := range predictAt {
		out[i] = fitAt(p, xs, ys, ws, window, degree)
	}
	return out, nil
}

// fitAt fits one local polynomial centered at p and returns its value at p.
func fitAt(p float64, xs, ys, ws []float64, window, degree int) float64 {
	n := len(xs)
	q := window
	if q > n {
		q = n
	}

	// Expand outward from the insertion point to collect the q nearest
	// neighbors; xs is sorted.
	lo := sort.SearchFloat64s(xs, p)
	hi := lo
	for hi-lo < q {
		switch {
		case lo == 0:
			hi++
		case hi == n:
			lo--
		case p-xs[lo-1] <= xs[hi]-p:
			lo--
		default:
			hi++
		}
	}

	dmax := math.Max(p-xs[lo], xs[hi-1]-p)
	if window > n {
		dmax *= float64(window) / float64(n)
	}
	if dmax <= 0 {
		// All neighbors coincide with p.
		return localMean(xs[lo:hi], ys[lo:hi], nil)
	}

	lw := make([]float64, hi-lo)
	total := 0.0
	for j := lo; j < hi; j++ {
		w := tricube(math.Abs(xs[j]-p)/dmax) * ws[j]
		lw[j-lo] = w
		total += w
	}
	if total <= 0 {
		// Every neighbor was down-weighted to zero; fall back to the
		// plain neighborhood mean.
		return localMean(xs[lo:hi], ys[lo:hi], nil)
	}

	if degree == 0 {
		return localMean(xs[lo:hi], ys[lo:hi], lw)
	}
	return localPoly(p, xs[lo:hi], ys[lo:hi], lw, degree)
}

// localPoly solves the weighted least squares polynomial fit centered at p
// and returns the intercept, which is the fitted value at p.
func localPoly(p float64, xs, ys, lw []float64, degree int) float64 {
	q := len(xs)
	if q < degree+1 {
		// Too few present points for the polynomial; QR needs at least
		// as many rows as columns.
		return localMean(xs, ys, lw)
	}
	a := mat.NewDense(q, degree+1, nil)
	b := mat.NewVecDense(q, nil)
	for j := 0; j < q; j++ {
		sw := math.Sqrt(lw[j])
		dx := xs[j] - p
		c := sw
		for d := 0; d <= degree; d++ {
			a.Set(j, d, c)
			c *= dx
		}
		b.SetVec(j, sw*ys[j])
	}

	var qr mat.QR
	qr.Factorize(a)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, b); err != nil {
		// Singular neighborhood (e.g. repeated x after down-weighting).
		return localMean(xs, ys, lw)
	}
	return beta.AtVec(0)
}

func localMean(xs, ys, lw []float64) float64 {
	sum, total := 0.0, 0.0
	for j := range xs {
		w := 1.0
		if lw != nil {
			w = lw[j]
		}
		sum += w * ys[j]
		total += w
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

func tricube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	t := 1 - u*u*u
	return t * t * t
}
