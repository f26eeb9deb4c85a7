// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Miscellaneous helper algorithms

import (
	"fmt"
	"math"
	"runtime"

	"github.com/aclements/go-censored/mathx"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// sign returns the sign of x: -1 if x < 0, 0 if x == 0, 1 if x > 0.
// If x is NaN, it returns NaN.
func sign(x float64) float64 {
	if x == 0 {
		return 0
	} else if x < 0 {
		return -1
	} else if x > 0 {
		return 1
	}
	return nan
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	} else if x > 1 {
		return 1
	}
	return x
}

// eachChunk is the number of points evaluated by one goroutine in
// Each. Inputs shorter than eachChunk are evaluated serially.
const eachChunk = 512

// Each returns f(x) for each x in xs.
//
// Large inputs are split across GOMAXPROCS goroutines, so f must be
// safe for concurrent use. The methods of every Dist in this package
// are. If f panics, Each panics with the same value in the calling
// goroutine once all chunks have finished.
func Each(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	if len(xs) <= eachChunk {
		for i, x := range xs {
			res[i] = f(x)
		}
		return res
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < len(xs); start += eachChunk {
		end := min(start+eachChunk, len(xs))
		g.Go(func() (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = eachPanic{v}
				}
			}()
			for i := start; i < end; i++ {
				res[i] = f(xs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err.(eachPanic).v)
	}
	return res
}

// eachPanic carries a panic out of an Each worker.
type eachPanic struct{ v any }

func (p eachPanic) Error() string {
	return fmt.Sprint("panic in Each: ", p.v)
}

// LogLikelihood returns the sum of d.LogPDF(x) over xs.
func LogLikelihood(d Dist, xs []float64) float64 {
	return floats.Sum(Each(d.LogPDF, xs))
}

// monotoneSlack is the amount, in log space, by which a CDF may
// appear to decrease before logDiff treats it as a contract
// violation rather than rounding.
const monotoneSlack = 1e-8

// logDiff returns log(exp(a) - exp(b)). It panics with an error
// wrapping ErrNotMonotone if a is meaningfully less than b.
func logDiff(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return nan
	}
	v, err := mathx.LogDiffExpChecked(a, b)
	if err != nil {
		if b-a <= monotoneSlack {
			return math.Inf(-1)
		}
		panic(err)
	}
	return v
}

// logMass returns log Pr[lo < X <= hi] for X ~ d.
//
// If lo lies in the upper half of d, the difference is taken between
// survival values, which keeps precision when both are near 1.
func logMass(d Dist, lo, hi float64) float64 {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nan
	}
	if lo >= hi {
		return math.Inf(-1)
	}
	lc := d.LogCDF(lo)
	if lc > -math.Ln2 {
		return logDiff(d.LogCCDF(lo), d.LogCCDF(hi))
	}
	return logDiff(d.LogCDF(hi), lc)
}

// bisect returns an x in [low, high] such that |f(x)| <= tolerance
// using the bisection method.
//
// f(low) and f(high) must have opposite signs.
//
// If f does not have a root in this interval (e.g., it is
// discontiguous), this returns the X of the apparent discontinuity
// and false.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	flow, fhigh := f(low), f(high)
	if -tolerance <= flow && flow <= tolerance {
		return low, true
	}
	if -tolerance <= fhigh && fhigh <= tolerance {
		return high, true
	}
	if sign(flow) == sign(fhigh) {
		panic(fmt.Sprintf("root of f is not bracketed by [low, high]; f(%g)=%g f(%g)=%g", low, flow, high, fhigh))
	}
	for {
		mid := (high + low) / 2
		fmid := f(mid)
		if -tolerance <= fmid && fmid <= tolerance {
			return mid, true
		}
		if mid == high || mid == low {
			return mid, false
		}
		if sign(fmid) == sign(flow) {
			low = mid
			flow = fmid
		} else {
			high = mid
			fhigh = fmid
		}
	}
}

// invCDF returns x such that d.CDF(x) = y, for y in [0, 1].
//
// Infinite support bounds are replaced by a bracket that is doubled
// until it contains the root.
func invCDF(d Dist, y float64) float64 {
	low, high := d.Support()
	if math.IsInf(low, -1) || math.IsInf(high, 1) {
		l, h := -1.0, 1.0
		if !math.IsInf(low, -1) {
			l, h = low, low+1
		} else if !math.IsInf(high, 1) {
			l, h = high-1, high
		}
		for i := 0; i < 1100 && d.CDF(l) > y; i++ {
			l -= h - l
		}
		for i := 0; i < 1100 && d.CDF(h) < y; i++ {
			h += h - l
		}
		low, high = l, h
	}
	// Explicitly accept discontinuities, since d may be discrete.
	x, _ := bisect(func(x float64) float64 { return d.CDF(x) - y }, low, high, 1e-14)
	return x
}
