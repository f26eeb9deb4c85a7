// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = Normal{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (n Normal) uv() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n Normal) PDF(x float64) float64 {
	return n.uv().Prob(x)
}

func (n Normal) LogPDF(x float64) float64 {
	return n.uv().LogProb(x)
}

func (n Normal) CDF(x float64) float64 {
	return math.Erfc(-(x-n.Mu)/(n.Sigma*math.Sqrt2)) / 2
}

func (n Normal) LogCDF(x float64) float64 {
	return logPhi((x - n.Mu) / n.Sigma)
}

func (n Normal) CCDF(x float64) float64 {
	return math.Erfc((x-n.Mu)/(n.Sigma*math.Sqrt2)) / 2
}

func (n Normal) LogCCDF(x float64) float64 {
	return logPhi(-(x - n.Mu) / n.Sigma)
}

func (n Normal) Support() (float64, float64) {
	return math.Inf(-1), inf
}

func (n Normal) Params() []float64 {
	return []float64{n.Mu, n.Sigma}
}

func (n Normal) Sample(rng *rand.Rand, count int) []float64 {
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = n.Mu + n.Sigma*rng.NormFloat64()
	}
	return xs
}

// intCDF and intCCDF implement cdfIntegrator.
func (n Normal) intCDF(y float64) (pos, neg float64) {
	z := (y - n.Mu) / n.Sigma
	phi := math.Exp(-z*z/2) * invSqrt2Pi
	if z < 0 {
		return n.Sigma * phi, -(y - n.Mu) * n.CDF(y)
	}
	return (y-n.Mu)*n.CDF(y) + n.Sigma*phi, 0
}

func (n Normal) intCCDF(y float64) (pos, neg float64) {
	z := (y - n.Mu) / n.Sigma
	phi := math.Exp(-z*z/2) * invSqrt2Pi
	if z > 0 {
		return n.Sigma * phi, (y - n.Mu) * n.CCDF(y)
	}
	return n.Sigma*phi - (y-n.Mu)*n.CCDF(y), 0
}

// logPhi returns the log of the standard normal CDF at z.
//
// Below z = -37, Φ(z) is too close to the underflow threshold to be
// computed directly, so logPhi uses the asymptotic expansion of the
// Mills ratio instead.
func logPhi(z float64) float64 {
	if z > -37 || math.IsNaN(z) {
		return math.Log(math.Erfc(-z/math.Sqrt2) / 2)
	}
	z2 := z * z
	s := 1 - (1-(3-(15-(105-945/z2)/z2)/z2)/z2)/z2
	return -z2/2 - math.Log(-z) + math.Log(invSqrt2Pi) + math.Log(s)
}
