// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
	"sort"

	"github.com/cockroachdb/errors"
)

// Discretized is an interval-censored distribution: a base
// distribution observed only up to which bin [lo, hi) a value falls
// in. All the mass of a bin is placed on its lower edge lo.
//
// The bins are either a regular grid of width interval anchored at 0,
// or the consecutive pairs of an increasing list of breakpoints. With
// breakpoints, mass of the base distribution below the first
// breakpoint is counted in the first bin and mass above the last
// breakpoint in the last bin, so the bin masses always sum to 1.
//
// PDF and LogPDF return the mass of the bin containing x, not a
// density. CDF(x) is the base CDF at the lower edge of the bin
// containing x, so it equals the base CDF at every bin edge and jumps
// at each edge by the mass of the bin ending there.
//
// Note that this makes CDF lag the distribution of Sample by one bin:
// Sample returns lower edges, so the empirical Pr[X <= x] is the base
// CDF at the upper edge of x's bin. Compare empirical distributions
// against PMF, not CDF.
type Discretized struct {
	d        Dist
	interval float64
	breaks   []float64
}

var _ DiscreteDist = Discretized{}

// Discretize returns d censored to a regular grid of width interval.
func Discretize(d Dist, interval float64) (Discretized, error) {
	if d == nil {
		return Discretized{}, errors.Wrap(ErrNilDist, "discretize")
	}
	if !(interval > 0) || math.IsInf(interval, 1) {
		return Discretized{}, errors.Wrapf(ErrInvalidInterval, "discretize with interval %g", interval)
	}
	return Discretized{d: d, interval: interval}, nil
}

// DiscretizeBreakpoints returns d censored to the bins
// [breakpoints[i], breakpoints[i+1]).
func DiscretizeBreakpoints(d Dist, breakpoints []float64) (Discretized, error) {
	if d == nil {
		return Discretized{}, errors.Wrap(ErrNilDist, "discretize")
	}
	if len(breakpoints) < 2 {
		return Discretized{}, errors.Wrapf(ErrInvalidBreakpoints, "got %d breakpoints", len(breakpoints))
	}
	for i, b := range breakpoints {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return Discretized{}, errors.Wrapf(ErrInvalidBreakpoints, "breakpoint %d is %g", i, b)
		}
		if i > 0 && !(breakpoints[i-1] < b) {
			return Discretized{}, errors.Wrapf(ErrInvalidBreakpoints, "breakpoint %d (%g) <= breakpoint %d (%g)", i, b, i-1, breakpoints[i-1])
		}
	}
	return Discretized{d: d, breaks: append([]float64(nil), breakpoints...)}, nil
}

// Base returns the distribution d discretizes.
func (d Discretized) Base() Dist {
	return d.d
}

// Interval returns the width of d's grid. ok is false if d uses
// explicit breakpoints.
func (d Discretized) Interval() (interval float64, ok bool) {
	return d.interval, d.breaks == nil
}

// Breakpoints returns a copy of d's breakpoints, or nil if d uses a
// regular grid.
func (d Discretized) Breakpoints() []float64 {
	if d.breaks == nil {
		return nil
	}
	return append([]float64(nil), d.breaks...)
}

// floor returns the lower edge of the regular-grid bin containing x.
func (d Discretized) floor(x float64) float64 {
	return math.Floor(x/d.interval) * d.interval
}

// breakIndex returns the index of the greatest breakpoint <= x, or -1
// if x is below the first.
func (d Discretized) breakIndex(x float64) int {
	return sort.Search(len(d.breaks), func(i int) bool { return d.breaks[i] > x }) - 1
}

func (d Discretized) Bin(x float64) (lo, hi float64, ok bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nan, nan, false
	}
	if d.breaks == nil {
		lo = d.floor(x)
		return lo, lo + d.interval, true
	}
	i := d.breakIndex(x)
	if i < 0 || i >= len(d.breaks)-1 {
		return nan, nan, false
	}
	return d.breaks[i], d.breaks[i+1], true
}

func (d Discretized) LogPMF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	lo, hi, ok := d.Bin(x)
	if !ok {
		return math.Inf(-1)
	}
	return d.logBinMass(lo, hi)
}

// logBinMass returns the log of the mass of the bin [lo, hi). The end
// bins of a breakpoint grid extend to infinity.
func (d Discretized) logBinMass(lo, hi float64) float64 {
	if d.breaks == nil {
		return logMass(d.d, lo, hi)
	}
	first, last := lo == d.breaks[0], hi == d.breaks[len(d.breaks)-1]
	switch {
	case first && last:
		return 0
	case first:
		return math.Min(d.d.LogCDF(hi), 0)
	case last:
		return math.Min(d.d.LogCCDF(lo), 0)
	}
	return logMass(d.d, lo, hi)
}

func (d Discretized) PMF(x float64) float64 {
	return math.Exp(d.LogPMF(x))
}

// PDF returns PMF(x).
func (d Discretized) PDF(x float64) float64 {
	return d.PMF(x)
}

// LogPDF returns LogPMF(x).
func (d Discretized) LogPDF(x float64) float64 {
	return d.LogPMF(x)
}

// edge returns the point at which the base CDF is evaluated for
// CDF(x). below and above report that CDF(x) is exactly 0 or 1: x is
// outside the support of d, or, with breakpoints, in the first bin or
// at or past the last breakpoint.
func (d Discretized) edge(x float64) (e float64, below, above bool) {
	if d.breaks != nil {
		switch i := d.breakIndex(x); {
		case i < 1:
			return 0, true, false
		case i >= len(d.breaks)-1:
			return 0, false, true
		default:
			return d.breaks[i], false, false
		}
	}
	min, max := d.Support()
	if x < min {
		return 0, true, false
	} else if x > max {
		return 0, false, true
	}
	return d.floor(x), false, false
}

func (d Discretized) CDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	e, below, above := d.edge(x)
	if below {
		return 0
	} else if above {
		return 1
	}
	return d.d.CDF(e)
}

func (d Discretized) LogCDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	e, below, above := d.edge(x)
	if below {
		return math.Inf(-1)
	} else if above {
		return 0
	}
	return d.d.LogCDF(e)
}

func (d Discretized) CCDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	e, below, above := d.edge(x)
	if below {
		return 1
	} else if above {
		return 0
	}
	return d.d.CCDF(e)
}

func (d Discretized) LogCCDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	e, below, above := d.edge(x)
	if below {
		return 0
	} else if above {
		return math.Inf(-1)
	}
	return d.d.LogCCDF(e)
}

// Support returns the first and last breakpoint, or for a regular
// grid, the smallest run of whole bins covering the support of the
// base distribution.
func (d Discretized) Support() (float64, float64) {
	if d.breaks != nil {
		return d.breaks[0], d.breaks[len(d.breaks)-1]
	}
	min, max := d.d.Support()
	return d.floor(min), math.Ceil(max/d.interval) * d.interval
}

// Params returns the base parameters followed by the interval or the
// breakpoints.
func (d Discretized) Params() []float64 {
	if d.breaks == nil {
		return append(d.d.Params(), d.interval)
	}
	return append(d.d.Params(), d.breaks...)
}

// Sample draws from the base distribution and moves each draw down to
// the lower edge of its bin. With breakpoints, draws below the grid go
// to the first bin and draws at or above the last breakpoint go to the
// last bin.
func (d Discretized) Sample(rng *rand.Rand, n int) []float64 {
	xs := d.d.Sample(rng, n)
	for i, x := range xs {
		if d.breaks == nil {
			xs[i] = d.floor(x)
			continue
		}
		j := min(max(d.breakIndex(x), 0), len(d.breaks)-2)
		xs[i] = d.breaks[j]
	}
	return xs
}
