// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"
)

// ExpGrowth is a distribution on [Min, Max] with density
// proportional to exp(R·x).
//
// It models a primary event window during an epidemic growing (R > 0)
// or declining (R < 0) at rate R. With R = 0 it is Uniform{Min, Max}.
type ExpGrowth struct {
	Min, Max, R float64
}

func (e ExpGrowth) width() float64 {
	return e.Max - e.Min
}

// logNorm returns log ∫ exp(R·(x-Min)) dx over the support.
func (e ExpGrowth) logNorm() float64 {
	if e.R == 0 {
		return math.Log(e.width())
	}
	return math.Log(math.Expm1(e.R*e.width()) / e.R)
}

func (e ExpGrowth) LogPDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x < e.Min || x > e.Max:
		return math.Inf(-1)
	}
	return e.R*(x-e.Min) - e.logNorm()
}

func (e ExpGrowth) PDF(x float64) float64 {
	return math.Exp(e.LogPDF(x))
}

func (e ExpGrowth) CDF(x float64) float64 {
	switch {
	case x <= e.Min:
		return 0
	case x >= e.Max:
		return 1
	case e.R == 0:
		return (x - e.Min) / e.width()
	}
	return math.Expm1(e.R*(x-e.Min)) / math.Expm1(e.R*e.width())
}

func (e ExpGrowth) LogCDF(x float64) float64 {
	return math.Log(e.CDF(x))
}

func (e ExpGrowth) CCDF(x float64) float64 {
	switch {
	case x <= e.Min:
		return 1
	case x >= e.Max:
		return 0
	case e.R == 0:
		return (e.Max - x) / e.width()
	}
	// Mirror image: mass above x under rate -R measured from Max.
	return math.Expm1(-e.R*(e.Max-x)) / math.Expm1(-e.R*e.width())
}

func (e ExpGrowth) LogCCDF(x float64) float64 {
	return math.Log(e.CCDF(x))
}

func (e ExpGrowth) Support() (float64, float64) {
	return e.Min, e.Max
}

func (e ExpGrowth) Params() []float64 {
	return []float64{e.Min, e.Max, e.R}
}

func (e ExpGrowth) Sample(rng *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		u := rng.Float64()
		if e.R == 0 {
			xs[i] = e.Min + u*e.width()
		} else {
			xs[i] = e.Min + math.Log1p(u*math.Expm1(e.R*e.width()))/e.R
		}
	}
	return xs
}
