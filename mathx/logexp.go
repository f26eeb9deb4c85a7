// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements log-domain arithmetic used to evaluate
// probabilities that are too close to 0 or 1 to represent directly.
package mathx // import "github.com/aclements/go-censored/mathx"

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrNotMonotone is returned by LogDiffExpChecked when the minuend is
// smaller than the subtrahend. In a probability computation this
// means some CDF was observed to decrease.
var ErrNotMonotone = errors.New("log difference of decreasing values")

// LogAddExp returns log(exp(a) + exp(b)).
func LogAddExp(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	if a < b {
		a, b = b, a
	}
	if math.IsInf(b, -1) || math.IsInf(a, 1) {
		return a
	}
	return a + math.Log1p(math.Exp(b-a))
}

// Log1mExp returns log(1 - exp(a)) for a <= 0.
//
// It returns -Inf for a == 0, 0 for a == -Inf, and NaN for a > 0.
//
// See Mächler, M. (2012). "Accurately Computing log(1 - exp(-|a|))".
func Log1mExp(a float64) float64 {
	switch {
	case a > 0 || math.IsNaN(a):
		return math.NaN()
	case a == 0:
		return math.Inf(-1)
	case a > -math.Ln2:
		return math.Log(-math.Expm1(a))
	}
	return math.Log1p(-math.Exp(a))
}

// LogDiffExp returns log(exp(a) - exp(b)) for a >= b.
//
// If a == b (including when both are -Inf), the difference is 0 and
// LogDiffExp returns -Inf. If a < b, the result would be the log of a
// negative number and LogDiffExp returns NaN.
func LogDiffExp(a, b float64) float64 {
	switch {
	case math.IsNaN(a) || math.IsNaN(b) || a < b:
		return math.NaN()
	case a == b:
		return math.Inf(-1)
	case math.IsInf(b, -1):
		return a
	}
	return a + Log1mExp(b-a)
}

// LogDiffExpChecked is like LogDiffExp, but reports a < b as an error
// wrapping ErrNotMonotone instead of returning NaN.
func LogDiffExpChecked(a, b float64) (float64, error) {
	if a < b {
		return math.NaN(), errors.Wrapf(ErrNotMonotone, "log(exp(%g) - exp(%g))", a, b)
	}
	return LogDiffExp(a, b), nil
}
