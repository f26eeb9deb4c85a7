// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math/rand"

// A Dist is a univariate statistical distribution.
//
// Implementations must return exact boundary values outside their
// support: CDF 0 and LogPDF -Inf below the minimum, CDF 1 and CCDF 0
// above the maximum. NaN inputs produce NaN outputs.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// LogPDF returns log(PDF(x)).
	LogPDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x, Pr[X <= x].
	CDF(x float64) float64

	// LogCDF returns log(CDF(x)), computed without passing
	// through the linear domain where that loses precision.
	LogCDF(x float64) float64

	// CCDF returns the complementary cumulative distribution
	// function 1 - CDF(x), Pr[X > x].
	CCDF(x float64) float64

	// LogCCDF returns log(CCDF(x)).
	LogCCDF(x float64) float64

	// Support returns the bounds of the support of this
	// distribution. Either may be infinite.
	Support() (min, max float64)

	// Params returns the parameters of this distribution, in a
	// fixed, type-specific order.
	Params() []float64

	// Sample returns n independent draws from this distribution
	// using rng.
	Sample(rng *rand.Rand, n int) []float64
}

// A DiscreteDist is a Dist whose mass is concentrated on a set of
// points, each of which represents an interval [lo, hi).
//
// The PDF and LogPDF of a DiscreteDist return the probability mass
// of the bin containing x rather than a density.
type DiscreteDist interface {
	Dist

	// PMF returns the probability mass of the bin containing x.
	PMF(x float64) float64

	// LogPMF returns log(PMF(x)).
	LogPMF(x float64) float64

	// Bin returns the bounds of the bin containing x. If x is not
	// in any bin, ok is false.
	Bin(x float64) (lo, hi float64, ok bool)
}

// discreteOf returns d as a DiscreteDist if its mass lies on bins.
// Wrappers that implement DiscreteDist for any wrapped distribution are
// discrete only if what they wrap is.
func discreteOf(d Dist) (DiscreteDist, bool) {
	switch d := d.(type) {
	case DoubleIntervalCensored:
		if _, ok := discreteOf(d.pipeline); ok {
			return d, true
		}
		return nil, false
	case Truncated:
		if d.dd != nil {
			return d, true
		}
		return nil, false
	case DiscreteDist:
		return d, true
	}
	return nil, false
}
