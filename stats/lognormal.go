// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormal is a log-normal distribution: log(X) is normally
// distributed with mean Mu and standard deviation Sigma.
type LogNormal struct {
	Mu, Sigma float64
}

func (l LogNormal) normal() Normal {
	return Normal{l.Mu, l.Sigma}
}

func (l LogNormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return distuv.LogNormal{Mu: l.Mu, Sigma: l.Sigma}.Prob(x)
}

func (l LogNormal) LogPDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return distuv.LogNormal{Mu: l.Mu, Sigma: l.Sigma}.LogProb(x)
}

func (l LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.normal().CDF(math.Log(x))
}

func (l LogNormal) LogCDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return l.normal().LogCDF(math.Log(x))
}

func (l LogNormal) CCDF(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return l.normal().CCDF(math.Log(x))
}

func (l LogNormal) LogCCDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.normal().LogCCDF(math.Log(x))
}

func (l LogNormal) Support() (float64, float64) {
	return 0, inf
}

func (l LogNormal) Params() []float64 {
	return []float64{l.Mu, l.Sigma}
}

func (l LogNormal) Sample(rng *rand.Rand, n int) []float64 {
	xs := l.normal().Sample(rng, n)
	for i, x := range xs {
		xs[i] = math.Exp(x)
	}
	return xs
}

// intCDF and intCCDF implement cdfIntegrator using the partial
// expectation of the log-normal,
//
//	∫₀ʸ s f(s) ds = exp(μ + σ²/2)·Φ((log y - μ - σ²)/σ).
func (l LogNormal) intCDF(y float64) (pos, neg float64) {
	if y <= 0 {
		return 0, 0
	}
	shifted := Normal{l.Mu + l.Sigma*l.Sigma, l.Sigma}
	return y * l.CDF(y), l.mean() * shifted.CDF(math.Log(y))
}

func (l LogNormal) intCCDF(y float64) (pos, neg float64) {
	if y <= 0 {
		return l.mean() - y, 0
	}
	shifted := Normal{l.Mu + l.Sigma*l.Sigma, l.Sigma}
	return l.mean() * shifted.CCDF(math.Log(y)), y * l.CCDF(y)
}

func (l LogNormal) mean() float64 {
	return math.Exp(l.Mu + l.Sigma*l.Sigma/2)
}
