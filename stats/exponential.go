// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/aclements/go-censored/mathx"
	"gonum.org/v1/gonum/stat/distuv"
)

// Exponential is an exponential distribution with rate parameter
// Rate (mean 1/Rate).
type Exponential struct {
	Rate float64
}

func (e Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return distuv.Exponential{Rate: e.Rate}.Prob(x)
}

func (e Exponential) LogPDF(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}
	return distuv.Exponential{Rate: e.Rate}.LogProb(x)
}

func (e Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-e.Rate * x)
}

func (e Exponential) LogCDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return mathx.Log1mExp(-e.Rate * x)
}

func (e Exponential) CCDF(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-e.Rate * x)
}

func (e Exponential) LogCCDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -e.Rate * x
}

func (e Exponential) Support() (float64, float64) {
	return 0, inf
}

func (e Exponential) Params() []float64 {
	return []float64{e.Rate}
}

func (e Exponential) Sample(rng *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.ExpFloat64() / e.Rate
	}
	return xs
}
