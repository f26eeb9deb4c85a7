// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || want == got || aeq(want, got) {
			continue
		}
		t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
	}
}

// testDist checks the invariants every Dist must satisfy at each of
// xs, which must be sorted.
func testDist(t *testing.T, name string, d Dist, xs []float64) {
	t.Helper()
	min, max := d.Support()
	_, discrete := discreteOf(d)
	prevLC, prevLCC := math.Inf(-1), 0.0
	for _, x := range xs {
		at := fmt.Sprintf("%s at %v", name, x)
		lc, lcc, lp := d.LogCDF(x), d.LogCCDF(x), d.LogPDF(x)
		if math.IsNaN(lc) || math.IsNaN(lcc) || math.IsNaN(lp) {
			t.Errorf("%s: NaN: LogCDF %v LogCCDF %v LogPDF %v", at, lc, lcc, lp)
			continue
		}
		if lc > 0 || lcc > 0 {
			t.Errorf("%s: LogCDF %v, LogCCDF %v > 0", at, lc, lcc)
		}
		if discrete && lp > 0 {
			t.Errorf("%s: LogPMF %v > 0", at, lp)
		}
		if !math.IsInf(lc, 0) && !math.IsInf(lcc, 0) {
			if sum := math.Exp(lc) + math.Exp(lcc); !scalar.EqualWithinRel(sum, 1, 1e-10) {
				t.Errorf("%s: CDF + CCDF = %v", at, sum)
			}
		}
		if c := d.CDF(x); c >= 1e-300 {
			if !scalar.EqualWithinAbsOrRel(lc, math.Log(c), 1e-12, 1e-12) {
				t.Errorf("%s: LogCDF %v, log(CDF) %v", at, lc, math.Log(c))
			}
		}
		if c := d.CCDF(x); c >= 1e-300 {
			if !scalar.EqualWithinAbsOrRel(lcc, math.Log(c), 1e-12, 1e-12) {
				t.Errorf("%s: LogCCDF %v, log(CCDF) %v", at, lcc, math.Log(c))
			}
		}
		if lc < prevLC-1e-9 || lcc > prevLCC+1e-9 {
			t.Errorf("%s: not monotone: LogCDF %v after %v, LogCCDF %v after %v", at, lc, prevLC, lcc, prevLCC)
		}
		prevLC, prevLCC = lc, lcc

		if x < min {
			if d.CDF(x) != 0 || !math.IsInf(lp, -1) {
				t.Errorf("%s: below support: CDF %v, LogPDF %v", at, d.CDF(x), lp)
			}
		}
		if x > max {
			if d.CDF(x) != 1 || d.CCDF(x) != 0 {
				t.Errorf("%s: above support: CDF %v, CCDF %v", at, d.CDF(x), d.CCDF(x))
			}
		}
	}

	nan := math.NaN()
	for _, f := range []func(float64) float64{d.PDF, d.LogPDF, d.CDF, d.LogCDF, d.CCDF, d.LogCCDF} {
		if v := f(nan); !math.IsNaN(v) {
			t.Errorf("%s: got %v for NaN input", name, v)
		}
	}
}

var testXs = []float64{math.Inf(-1), -10, -1, 0, 1e-3, 0.1, 0.5, 1, 1.5, 2, 3, 5, 8, 13, 21, 34, 55, 100, math.Inf(1)}
