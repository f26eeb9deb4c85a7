// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func mustPC(t *testing.T, delay, primary Dist) PrimaryCensored {
	t.Helper()
	p, err := NewPrimaryCensored(delay, primary)
	require.NoError(t, err)
	return p
}

func TestPrimaryCensoredExpUniform(t *testing.T) {
	p := mustPC(t, Exponential{1}, Uniform{0, 1})

	// With a unit window, F(x) = x - (1 - e^-x) for x <= 1.
	if got, want := p.CDF(1), math.Exp(-1); math.Abs(got-want) > 1e-8 {
		t.Errorf("CDF(1) = %v, want %v", got, want)
	}
	testFunc(t, "CDF", p.CDF, map[float64]float64{
		-1:  0,
		0:   0,
		0.5: 0.5 - (1 - math.Exp(-0.5)),
		2:   1 - (math.Exp(-1)-math.Exp(-2))/1,
	})
	// Density is (1 - e^-x) inside the window, then decays.
	testFunc(t, "PDF", p.PDF, map[float64]float64{
		-1:  0,
		0.5: 1 - math.Exp(-0.5),
		3:   math.Exp(-2) - math.Exp(-3),
	})
	// Tiny x, where x - (1 - e^-x) cancels.
	if got, want := p.LogCDF(1e-6), math.Log(1e-12/2-1e-18/6); !scalar.EqualWithinRel(got, want, 1e-10) {
		t.Errorf("LogCDF(1e-6) = %v, want %v", got, want)
	}
	// Far upper tail.
	if got, want := p.LogCCDF(500), -499+math.Log(-math.Expm1(-1)); !scalar.EqualWithinRel(got, want, 1e-12) {
		t.Errorf("LogCCDF(500) = %v, want %v", got, want)
	}
}

func TestPrimaryCensoredProperties(t *testing.T) {
	for _, tc := range []struct{ delay, primary Dist }{
		{Exponential{1}, Uniform{0, 1}},
		{Exponential{0.2}, Uniform{1, 3}},
		{Gamma{2, 1}, Uniform{0, 1}},
		{Gamma{0.8, 0.5}, Uniform{0, 2}},
		{LogNormal{0, 0.5}, Uniform{0, 1}},
		{LogNormal{1.5, 0.75}, Uniform{0, 7}},
		{Weibull{1.5, 2}, Uniform{0, 1}},
		{Gamma{2, 1}, ExpGrowth{0, 1, 0.5}},
		{Exponential{1}, ExpGrowth{0, 1, -1}},
	} {
		p := mustPC(t, tc.delay, tc.primary)
		testDist(t, fmt.Sprintf("PrimaryCensored(%v, %v)", tc.delay, tc.primary), p, testXs)
	}
}

// TestPrimaryCensoredQuadrature compares the closed forms against the
// quadrature path, which is selected for any non-Uniform primary.
func TestPrimaryCensoredQuadrature(t *testing.T) {
	flat := ExpGrowth{0, 1, 0}
	for _, delay := range []Dist{
		Exponential{1},
		Gamma{2, 1},
		Gamma{0.8, 0.5},
		LogNormal{0, 0.5},
		Weibull{1.5, 2},
		Normal{5, 1},
	} {
		exact := mustPC(t, delay, Uniform{0, 1})
		numeric := mustPC(t, delay, flat)
		if _, ok := numeric.method.(quadrature); !ok {
			t.Fatalf("%v: expected quadrature, got %T", delay, numeric.method)
		}
		for _, x := range []float64{0.01, 0.3, 1, 2.5, 6, 15, 40} {
			if a, b := exact.LogCDF(x), numeric.LogCDF(x); !scalar.EqualWithinAbs(a, b, 1e-8) {
				t.Errorf("%v: LogCDF(%v): closed form %v, quadrature %v", delay, x, a, b)
			}
			if a, b := exact.LogCCDF(x), numeric.LogCCDF(x); !scalar.EqualWithinAbs(a, b, 1e-8) {
				t.Errorf("%v: LogCCDF(%v): closed form %v, quadrature %v", delay, x, a, b)
			}
		}
		// The quadrature path differentiates numerically.
		for _, x := range []float64{0.5, 2, 3.5} {
			if a, b := exact.PDF(x), numeric.PDF(x); !scalar.EqualWithinRel(a, b, 1e-4) {
				t.Errorf("%v: PDF(%v): closed form %v, finite difference %v", delay, x, a, b)
			}
		}
	}
}

func TestPrimaryCensoredMethods(t *testing.T) {
	check := func(delay, primary Dist, want pcMethod) {
		t.Helper()
		p := mustPC(t, delay, primary)
		if fmt.Sprintf("%T", p.method) != fmt.Sprintf("%T", want) {
			t.Errorf("PrimaryCensored(%v, %v) uses %T, want %T", delay, primary, p.method, want)
		}
	}
	check(Exponential{1}, Uniform{0, 1}, expUniform{})
	check(Gamma{2, 1}, Uniform{0, 1}, integratedUniform{})
	check(LogNormal{0, 1}, Uniform{0, 1}, integratedUniform{})
	check(Weibull{2, 1}, Uniform{0, 1}, integratedUniform{})
	check(Gamma{2, 1}, ExpGrowth{0, 1, 1}, quadrature{})
	check(Uniform{0, 3}, Uniform{0, 1}, quadrature{})
}

func TestPrimaryCensoredSupport(t *testing.T) {
	p := mustPC(t, Gamma{2, 1}, Uniform{1, 3})
	min, max := p.Support()
	if min != 1 || !math.IsInf(max, 1) {
		t.Errorf("Support() = %v, %v, want 1, +Inf", min, max)
	}
	if got := p.LogPDF(0.5); !math.IsInf(got, -1) {
		t.Errorf("LogPDF below support = %v", got)
	}

	// A bounded delay gives a bounded result.
	p = mustPC(t, Uniform{0, 2}, Uniform{0, 1})
	if min, max := p.Support(); min != 0 || max != 3 {
		t.Errorf("Support() = %v, %v, want 0, 3", min, max)
	}
	testFunc(t, "CDF", p.CDF, map[float64]float64{
		0:   0,
		1.5: 0.5,
		3:   1,
		4:   1,
	})
	if got := p.CCDF(3.5); got != 0 {
		t.Errorf("CCDF above support = %v", got)
	}
}

func TestPrimaryCensoredParams(t *testing.T) {
	p := mustPC(t, Gamma{2, 1}, Uniform{0, 1})
	require.Equal(t, []float64{2, 1, 0, 1}, p.Params())
}

func TestPrimaryCensoredErrors(t *testing.T) {
	_, err := NewPrimaryCensored(Gamma{2, 1}, Exponential{1})
	require.ErrorIs(t, err, ErrUnboundedPrimary)
	_, err = NewPrimaryCensored(nil, Uniform{0, 1})
	require.ErrorIs(t, err, ErrNilDist)
}

func TestPrimaryCensoredSample(t *testing.T) {
	p := mustPC(t, Gamma{2, 1}, Uniform{0, 1})
	rng := rand.New(rand.NewSource(1))
	xs := p.Sample(rng, 50000)
	sum := 0.0
	for _, x := range xs {
		if x < 0 {
			t.Fatalf("sample %v below support", x)
		}
		sum += x
	}
	if mean := sum / float64(len(xs)); math.Abs(mean-2.5) > 0.05 {
		t.Errorf("sample mean %v, want 2.5", mean)
	}
}

func TestPrimaryCensoredInfinite(t *testing.T) {
	for _, delay := range []Dist{Gamma{2, 1}, Normal{0, 1}, Weibull{1.5, 2}} {
		for _, primary := range []Dist{Uniform{0, 1}, ExpGrowth{0, 1, 1}} {
			p := mustPC(t, delay, primary)
			for _, x := range []float64{math.Inf(-1), math.Inf(1)} {
				if got := p.LogPDF(x); !math.IsInf(got, -1) {
					t.Errorf("PrimaryCensored(%v, %v).LogPDF(%v) = %v, want -Inf", delay, primary, x, got)
				}
				if got := p.PDF(x); got != 0 {
					t.Errorf("PrimaryCensored(%v, %v).PDF(%v) = %v, want 0", delay, primary, x, got)
				}
			}
			if lc, lcc := p.LogCDF(math.Inf(1)), p.LogCCDF(math.Inf(-1)); lc != 0 || lcc != 0 {
				t.Errorf("PrimaryCensored(%v, %v): LogCDF(+Inf) = %v, LogCCDF(-Inf) = %v", delay, primary, lc, lcc)
			}
		}
	}
}
