// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"
)

// Truncated is a distribution conditioned on lying in [lower, upper].
//
// Probabilities are renormalized by Z, the mass of the wrapped
// distribution inside the bounds, entirely in log space:
//
//	log CDF(x) = log(F(x) - F(lower)) - log Z
//
// The differences are taken between survival values instead when
// lower lies in the upper half of the wrapped distribution.
//
// If the wrapped distribution is discrete, Truncated keeps the bins
// whose value (lower edge) lies in [lower, upper], and is itself a
// discrete distribution over those bins. Its support then extends to
// the upper edge of the last kept bin, where its CDF reaches 1.
type Truncated struct {
	d            Dist
	lower, upper float64

	// dd is d if d is discrete, else nil. For a discrete d, [a, b)
	// are the edges of the kept bins. Otherwise a, b = lower, upper.
	dd   DiscreteDist
	a, b float64

	logZ float64
	// survival is set if a lies in the upper half of d.
	survival bool
}

var _ DiscreteDist = Truncated{}

// Truncate returns d conditioned on lying in [lower, upper]. Either
// bound may be infinite. It is an error if lower >= upper or if d has
// no mass between the bounds.
func Truncate(d Dist, lower, upper float64) (Truncated, error) {
	if d == nil {
		return Truncated{}, errors.Wrap(ErrNilDist, "truncate")
	}
	if !(lower < upper) {
		return Truncated{}, errors.Wrapf(ErrInvalidBounds, "truncate to [%g, %g]", lower, upper)
	}
	t := Truncated{d: d, lower: lower, upper: upper, a: lower, b: upper}
	if dd, ok := discreteOf(d); ok {
		t.dd = dd
		if lo, hi, ok := dd.Bin(lower); ok && lo < lower {
			t.a = hi
		}
		if _, hi, ok := dd.Bin(upper); ok {
			t.b = hi
		}
	}
	t.logZ = logMass(d, t.a, t.b)
	if math.IsInf(t.logZ, -1) || math.IsNaN(t.logZ) {
		return Truncated{}, errors.Wrapf(ErrNoMass, "truncate to [%g, %g]", lower, upper)
	}
	t.survival = d.LogCDF(t.a) > -math.Ln2
	return t, nil
}

// Base returns the distribution t truncates.
func (t Truncated) Base() Dist {
	return t.d
}

// Bounds returns the truncation bounds of t.
func (t Truncated) Bounds() (lower, upper float64) {
	return t.lower, t.upper
}

func (t Truncated) LogCDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x <= t.a:
		return math.Inf(-1)
	case x >= t.b:
		return 0
	}
	var num float64
	if t.survival {
		num = logDiff(t.d.LogCCDF(t.a), t.d.LogCCDF(x))
	} else {
		num = logDiff(t.d.LogCDF(x), t.d.LogCDF(t.a))
	}
	return math.Min(num-t.logZ, 0)
}

func (t Truncated) LogCCDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x <= t.a:
		return 0
	case x >= t.b:
		return math.Inf(-1)
	}
	var num float64
	if t.survival {
		num = logDiff(t.d.LogCCDF(x), t.d.LogCCDF(t.b))
	} else {
		num = logDiff(t.d.LogCDF(t.b), t.d.LogCDF(x))
	}
	return math.Min(num-t.logZ, 0)
}

func (t Truncated) CDF(x float64) float64 {
	return math.Exp(t.LogCDF(x))
}

func (t Truncated) CCDF(x float64) float64 {
	return math.Exp(t.LogCCDF(x))
}

// inside reports whether x is in the support of t, before
// intersecting with the support of the wrapped distribution. For a
// discrete t, that is whether the value of x's bin is within bounds.
func (t Truncated) inside(x float64) bool {
	if t.dd != nil {
		lo, _, ok := t.dd.Bin(x)
		return ok && t.lower <= lo && lo <= t.upper
	}
	return t.lower <= x && x <= t.upper
}

func (t Truncated) LogPDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case !t.inside(x):
		return math.Inf(-1)
	}
	return t.d.LogPDF(x) - t.logZ
}

func (t Truncated) PDF(x float64) float64 {
	return math.Exp(t.LogPDF(x))
}

// PMF returns the renormalized mass of the bin containing x. If t is
// not discrete, it returns PDF(x).
func (t Truncated) PMF(x float64) float64 {
	return t.PDF(x)
}

func (t Truncated) LogPMF(x float64) float64 {
	return t.LogPDF(x)
}

func (t Truncated) Bin(x float64) (lo, hi float64, ok bool) {
	if t.dd == nil || !t.inside(x) {
		return nan, nan, false
	}
	return t.dd.Bin(x)
}

func (t Truncated) Support() (float64, float64) {
	min, max := t.d.Support()
	return math.Max(min, t.a), math.Min(max, t.b)
}

// Params returns the parameters of the wrapped distribution followed
// by lower and upper.
func (t Truncated) Params() []float64 {
	return append(t.d.Params(), t.lower, t.upper)
}

// rejectLogZ is the smallest log Z for which Sample uses rejection
// sampling rather than inverting the CDF.
var rejectLogZ = math.Log(0.1)

func (t Truncated) Sample(rng *rand.Rand, n int) []float64 {
	xs := make([]float64, 0, n)
	if t.logZ >= rejectLogZ {
		for try := 0; len(xs) < n && try < 100; try++ {
			for _, x := range t.d.Sample(rng, n-len(xs)) {
				if t.inside(x) {
					xs = append(xs, x)
				}
			}
		}
	}
	for len(xs) < n {
		xs = append(xs, t.quantile(rng.Float64()))
	}
	return xs
}

// quantile returns the smallest value of t whose CDF reaches u.
//
// For a discrete t, CDF jumps at the upper edge of each bin, so the
// root found by invCDF is snapped to the bin whose mass makes up the
// jump.
func (t Truncated) quantile(u float64) float64 {
	x := invCDF(t, u)
	if t.dd == nil {
		return x
	}
	lo, _, ok := t.dd.Bin(x)
	if !ok {
		// Past the last bin, e.g. at the last breakpoint.
		lo = x
	}
	if !ok || t.CDF(x) >= u {
		// x is at or past the jump, which is at lo.
		if prev, _, ok := t.dd.Bin(math.Nextafter(lo, math.Inf(-1))); ok {
			lo = prev
		}
	}
	return math.Max(lo, t.a)
}
