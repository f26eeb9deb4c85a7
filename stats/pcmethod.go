// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
)

// A pcMethod evaluates the CDF of a primary-censored distribution at
// a point strictly inside its support.
type pcMethod interface {
	// logTail returns the log of the smaller of CDF(x) and
	// CCDF(x). upper reports whether it returned the CCDF.
	//
	// Deriving both tails from one value keeps CDF + CCDF = 1 to
	// within rounding.
	logTail(x float64) (lp float64, upper bool)
}

// A cdfIntegrator is a distribution with closed forms for the
// integrals of its CDF and survival function,
//
//	intCDF(y)  = ∫_{-∞}^y F(s) ds
//	intCCDF(y) = ∫_y^∞ S(s) ds
//
// Each is returned as pos - neg with pos, neg >= 0, so callers can
// detect cancellation.
type cdfIntegrator interface {
	intCDF(y float64) (pos, neg float64)
	intCCDF(y float64) (pos, neg float64)
}

func newPCMethod(delay, primary Dist) pcMethod {
	q := quadrature{delay: delay, primary: primary}
	q.dmin, q.dmax = delay.Support()
	q.pmin, q.pmax = primary.Support()

	u, ok := primary.(Uniform)
	if !ok {
		return q
	}
	switch d := delay.(type) {
	case Exponential:
		return expUniform{rate: d.Rate, a: u.Min, b: u.Max}
	case cdfIntegrator:
		return integratedUniform{ic: d, a: u.Min, b: u.Max, fallback: q}
	}
	return q
}

func logTailOf(cdf, ccdf float64) (float64, bool) {
	if cdf <= ccdf {
		return math.Log(cdf), false
	}
	return math.Log(ccdf), true
}

// expUniform is an exponential delay with rate λ and a primary event
// uniform on [a, b]. With w = b - a and z = λ(x-a), for a < x < b
//
//	λw·F(x) = z - (1 - e^{-z})
//	λw·S(x) = λ(b-x) + (1 - e^{-z})
//
// and for x >= b, with u = λ(x-b) and v = λw,
//
//	λw·F(x) = g(v) + (1 - e^{-u})(1 - e^{-v})
//	λw·S(x) = e^{-u}(1 - e^{-v})
//
// where g(z) = z - (1 - e^{-z}). Every term is non-negative, so
// neither tail suffers cancellation.
type expUniform struct {
	rate, a, b float64
}

func (m expUniform) logTail(x float64) (float64, bool) {
	v := m.rate * (m.b - m.a)
	lv := math.Log(v)
	if x < m.b {
		z := m.rate * (x - m.a)
		cdf := expG(z)
		ccdf := m.rate*(m.b-x) - math.Expm1(-z)
		lp, upper := logTailOf(cdf, ccdf)
		return lp - lv, upper
	}
	u := m.rate * (x - m.b)
	lccdf := -u + math.Log(-math.Expm1(-v)) - lv
	if lccdf < -math.Ln2 {
		return lccdf, true
	}
	cdf := expG(v) + math.Expm1(-u)*math.Expm1(-v)
	return math.Log(cdf) - lv, false
}

// expG returns z - (1 - e^{-z}) for z >= 0, using its Taylor series
// near 0 where the subtraction cancels.
func expG(z float64) float64 {
	if z < 1e-2 {
		return z * z * (1.0/2 - z*(1.0/6-z*(1.0/24-z*(1.0/120-z*(1.0/720-z/5040)))))
	}
	return z + math.Expm1(-z)
}

// condTol is the smallest ratio of result to operand magnitude for
// which integratedUniform trusts its closed form.
const condTol = 1e-4

// integratedUniform is a delay D with a closed-form integrated CDF
// and a primary event uniform on [a, b]:
//
//	F(x) = (I(x-a) - I(x-b)) / (b-a),   I(y) = ∫ F_D
//	S(x) = (J(x-b) - J(x-a)) / (b-a),   J(y) = ∫ S_D
//
// When the difference cancels too much to be trusted it defers to
// quadrature.
type integratedUniform struct {
	ic       cdfIntegrator
	a, b     float64
	fallback quadrature
}

func (m integratedUniform) logTail(x float64) (float64, bool) {
	w := m.b - m.a
	hp, hn := m.ic.intCDF(x - m.a)
	lp, ln := m.ic.intCDF(x - m.b)
	cdf := ((hp - hn) - (lp - ln)) / w
	if cdf <= 0.5 {
		if cdf*w > condTol*(hp+hn+lp+ln) && !math.IsInf(cdf, 0) {
			return math.Log(cdf), false
		}
		return m.fallback.logTail(x)
	}

	lp, ln = m.ic.intCCDF(x - m.b)
	hp, hn = m.ic.intCCDF(x - m.a)
	ccdf := ((lp - ln) - (hp - hn)) / w
	if ccdf*w > condTol*(hp+hn+lp+ln) && !math.IsInf(ccdf, 0) && ccdf < 0.5 {
		return math.Log(ccdf), true
	}
	return m.fallback.logTail(x)
}

// quadrature evaluates the convolution integral numerically. It works
// for any delay and any primary event distribution with bounded
// support.
type quadrature struct {
	delay, primary Dist
	dmin, dmax     float64
	pmin, pmax     float64
}

func (m quadrature) logTail(x float64) (float64, bool) {
	cdf := m.cdf(x)
	if cdf <= 0.5 {
		return math.Log(cdf), false
	}
	return math.Log(m.ccdf(x)), true
}

// cdf returns Pr[T + D <= x]. For t > x - dmin the delay CDF is 0,
// and for t < x - dmax it is 1, so only the band between is
// integrated.
func (m quadrature) cdf(x float64) float64 {
	hi := math.Min(m.pmax, x-m.dmin)
	if hi <= m.pmin {
		return 0
	}
	lo, mass := m.pmin, 0.0
	if split := x - m.dmax; split > lo {
		lo = math.Min(split, hi)
		mass = m.primary.CDF(lo)
	}
	v := integrate(func(t float64) float64 {
		return math.Exp(m.primary.LogPDF(t) + math.Min(m.delay.LogCDF(x-t), 0))
	}, lo, hi)
	return clamp01(mass + v)
}

// ccdf returns Pr[T + D > x], integrating the delay survival function
// over the same band as cdf.
func (m quadrature) ccdf(x float64) float64 {
	hi := math.Min(m.pmax, x-m.dmin)
	if hi <= m.pmin {
		return 1
	}
	mass := m.primary.CCDF(hi)
	lo := math.Max(m.pmin, x-m.dmax)
	v := integrate(func(t float64) float64 {
		return math.Exp(m.primary.LogPDF(t) + math.Min(m.delay.LogCCDF(x-t), 0))
	}, lo, hi)
	return clamp01(mass + v)
}
