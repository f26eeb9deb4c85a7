// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand"

	"github.com/aclements/go-censored/mathx"
	"github.com/cockroachdb/errors"
)

// FiniteDiffStep is the relative step used to approximate the density
// of a PrimaryCensored distribution by differencing its CDF, when no
// closed form is available. The step at x is
// FiniteDiffStep*max(1, |x|).
const FiniteDiffStep = 1e-4

// PrimaryCensored is the distribution of T + D, where T is the time of
// an unobserved primary event drawn from a bounded distribution and D
// is the delay from that event to the observed one.
//
// Its CDF is the expectation of the delay CDF over the primary event
// time,
//
//	F(x) = ∫ f_T(t) F_D(x - t) dt,
//
// evaluated in closed form for common (delay, primary) pairs and by
// adaptive quadrature otherwise.
type PrimaryCensored struct {
	delay, primary Dist
	min, max       float64
	method         pcMethod

	// uniform is set if primary is a Uniform, in which case the
	// density has the closed form (F_D(x-a) - F_D(x-b)) / (b-a).
	uniform *Uniform
}

// NewPrimaryCensored returns the primary-censored distribution of
// delay with primary event distribution primary. primary must have
// finite support.
func NewPrimaryCensored(delay, primary Dist) (PrimaryCensored, error) {
	if delay == nil || primary == nil {
		return PrimaryCensored{}, errors.Wrap(ErrNilDist, "primary censored")
	}
	pmin, pmax := primary.Support()
	if math.IsInf(pmin, 0) || math.IsInf(pmax, 0) || math.IsNaN(pmin) || math.IsNaN(pmax) {
		return PrimaryCensored{}, errors.Wrapf(ErrUnboundedPrimary, "primary event support [%g, %g]", pmin, pmax)
	}
	dmin, dmax := delay.Support()
	p := PrimaryCensored{
		delay:   delay,
		primary: primary,
		min:     dmin + pmin,
		max:     dmax + pmax,
		method:  newPCMethod(delay, primary),
	}
	if u, ok := primary.(Uniform); ok {
		p.uniform = &u
	}
	return p, nil
}

// Delay returns the delay distribution of p.
func (p PrimaryCensored) Delay() Dist {
	return p.delay
}

// Primary returns the primary event distribution of p.
func (p PrimaryCensored) Primary() Dist {
	return p.primary
}

func (p PrimaryCensored) LogCDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x <= p.min:
		return math.Inf(-1)
	case x >= p.max:
		return 0
	}
	lp, upper := p.method.logTail(x)
	if upper {
		return mathx.Log1mExp(math.Min(lp, 0))
	}
	return math.Min(lp, 0)
}

func (p PrimaryCensored) LogCCDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x <= p.min:
		return 0
	case x >= p.max:
		return math.Inf(-1)
	}
	lp, upper := p.method.logTail(x)
	if upper {
		return math.Min(lp, 0)
	}
	return mathx.Log1mExp(math.Min(lp, 0))
}

func (p PrimaryCensored) CDF(x float64) float64 {
	return math.Exp(p.LogCDF(x))
}

func (p PrimaryCensored) CCDF(x float64) float64 {
	return math.Exp(p.LogCCDF(x))
}

func (p PrimaryCensored) PDF(x float64) float64 {
	return math.Exp(p.LogPDF(x))
}

// LogPDF returns the log density of p at x.
//
// If the primary event is uniform on [a, b] this is exact. Otherwise
// it is a centered finite difference of the CDF with step
// FiniteDiffStep, made one-sided at the edges of the support.
func (p PrimaryCensored) LogPDF(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x < p.min || x > p.max || math.IsInf(x, 0):
		return math.Inf(-1)
	}
	if u := p.uniform; u != nil {
		return logMass(p.delay, x-u.Max, x-u.Min) - math.Log(u.Max-u.Min)
	}
	h := FiniteDiffStep * math.Max(1, math.Abs(x))
	lo, hi := math.Max(x-h, p.min), math.Min(x+h, p.max)
	return logMass(p, lo, hi) - math.Log(hi-lo)
}

func (p PrimaryCensored) Support() (float64, float64) {
	return p.min, p.max
}

// Params returns the delay parameters followed by the primary event
// parameters.
func (p PrimaryCensored) Params() []float64 {
	return append(p.delay.Params(), p.primary.Params()...)
}

func (p PrimaryCensored) Sample(rng *rand.Rand, n int) []float64 {
	xs := p.primary.Sample(rng, n)
	for i, d := range p.delay.Sample(rng, n) {
		xs[i] += d
	}
	return xs
}
