// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements distributions that model censoring,
// discretization and truncation of time-to-event data.
//
// A base distribution (Gamma, LogNormal, ...) describes the true delay
// between two events. PrimaryCensored models not knowing exactly when
// the first event happened, Discretized models only observing which
// interval an event fell in, and Truncated models only observing
// events inside a window. DoubleIntervalCensored combines all three.
// Every one of these is itself a Dist, so they compose freely.
//
// All Dist values are immutable and safe for concurrent use. Sample
// is the only method with side effects, and those are confined to the
// caller's *rand.Rand.
package stats // import "github.com/aclements/go-censored/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
