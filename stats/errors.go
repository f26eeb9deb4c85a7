// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-censored/mathx"
	"github.com/cockroachdb/errors"
)

// Construction errors. Constructors wrap these with the offending
// values; use errors.Is to test for them.
var (
	ErrInvalidInterval    = errors.New("interval must be positive and finite")
	ErrInvalidBreakpoints = errors.New("breakpoints must be finite, strictly increasing and at least 2 long")
	ErrConflictingGrid    = errors.New("at most one of interval and breakpoints may be given")
	ErrInvalidBounds      = errors.New("lower bound must be less than upper bound")
	ErrNoMass             = errors.New("distribution has no mass between bounds")
	ErrUnboundedPrimary   = errors.New("primary event distribution must have finite support")
	ErrNilDist            = errors.New("nil distribution")
)

// ErrNotMonotone indicates that a wrapped distribution reported a
// decreasing CDF. Evaluation panics with an error wrapping it.
var ErrNotMonotone = mathx.ErrNotMonotone
