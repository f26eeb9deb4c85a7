// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is a continuous uniform distribution on [Min, Max].
//
// This is the usual model for a primary event known only to have
// happened somewhere in a window.
type Uniform struct {
	Min, Max float64
}

func (u Uniform) PDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	return distuv.Uniform{Min: u.Min, Max: u.Max}.Prob(x)
}

func (u Uniform) LogPDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x < u.Min || x > u.Max {
		return math.Inf(-1)
	}
	return -math.Log(u.Max - u.Min)
}

func (u Uniform) CDF(x float64) float64 {
	if x <= u.Min {
		return 0
	} else if x >= u.Max {
		return 1
	}
	return (x - u.Min) / (u.Max - u.Min)
}

func (u Uniform) LogCDF(x float64) float64 {
	return math.Log(u.CDF(x))
}

func (u Uniform) CCDF(x float64) float64 {
	if x <= u.Min {
		return 1
	} else if x >= u.Max {
		return 0
	}
	return (u.Max - x) / (u.Max - u.Min)
}

func (u Uniform) LogCCDF(x float64) float64 {
	return math.Log(u.CCDF(x))
}

func (u Uniform) Support() (float64, float64) {
	return u.Min, u.Max
}

func (u Uniform) Params() []float64 {
	return []float64{u.Min, u.Max}
}

func (u Uniform) Sample(rng *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = u.Min + (u.Max-u.Min)*rng.Float64()
	}
	return xs
}
