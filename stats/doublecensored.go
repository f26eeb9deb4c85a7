// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math/rand"

	"github.com/cockroachdb/errors"
)

// DoubleCensorOptions configures NewDoubleIntervalCensored.
//
// The default (zero) value is a primary event uniform on [0, 1] with
// no truncation and no discretization.
type DoubleCensorOptions struct {
	// Primary is the distribution of the primary event time. It
	// must have finite support. If nil, Uniform{0, 1} is used.
	Primary Dist

	// [Lower, Upper] is the observation window. If both are 0
	// (their default values), there is no truncation.
	//
	// To truncate on one side only, set Lower to math.Inf(-1) or
	// Upper to math.Inf(1).
	Lower, Upper float64

	// Interval is the width of a regular discretization grid. If
	// it is 0, the grid is given by Breakpoints.
	Interval float64

	// Breakpoints are the edges of an arbitrary discretization
	// grid. At most one of Interval and Breakpoints may be set.
	// If neither is set, the result is not discretized.
	Breakpoints []float64
}

// DoubleIntervalCensored is the end-to-end censoring model for a delay
// between two events that are both observed only to within an
// interval: the delay is primary censored, then truncated to the
// observation window, then discretized.
//
// The order matters. Truncation renormalizes the continuous
// primary-censored distribution, and discretization then divides the
// renormalized mass among bins.
type DoubleIntervalCensored struct {
	event, primary Dist
	opts           DoubleCensorOptions
	pipeline       Dist
}

var _ DiscreteDist = DoubleIntervalCensored{}

// NewDoubleIntervalCensored returns the double interval censored
// distribution of event.
func NewDoubleIntervalCensored(event Dist, opts DoubleCensorOptions) (DoubleIntervalCensored, error) {
	if event == nil {
		return DoubleIntervalCensored{}, errors.Wrap(ErrNilDist, "double interval censored")
	}
	if opts.Interval != 0 && opts.Breakpoints != nil {
		return DoubleIntervalCensored{}, errors.Wrapf(ErrConflictingGrid,
			"interval %g and %d breakpoints", opts.Interval, len(opts.Breakpoints))
	}
	if opts.Primary == nil {
		opts.Primary = Uniform{0, 1}
	}
	if opts.Breakpoints != nil {
		opts.Breakpoints = append([]float64{}, opts.Breakpoints...)
	}

	pc, err := NewPrimaryCensored(event, opts.Primary)
	if err != nil {
		return DoubleIntervalCensored{}, err
	}
	var d Dist = pc

	if opts.Lower != 0 || opts.Upper != 0 {
		t, err := Truncate(d, opts.Lower, opts.Upper)
		if err != nil {
			return DoubleIntervalCensored{}, errors.Wrap(err, "double interval censored")
		}
		d = t
	}

	switch {
	case opts.Interval != 0:
		d, err = Discretize(d, opts.Interval)
	case opts.Breakpoints != nil:
		d, err = DiscretizeBreakpoints(d, opts.Breakpoints)
	}
	if err != nil {
		return DoubleIntervalCensored{}, errors.Wrap(err, "double interval censored")
	}

	return DoubleIntervalCensored{
		event:    event,
		primary:  opts.Primary,
		opts:     opts,
		pipeline: d,
	}, nil
}

// Event returns the underlying event time distribution.
func (c DoubleIntervalCensored) Event() Dist {
	return c.event
}

// Primary returns the primary event distribution.
func (c DoubleIntervalCensored) Primary() Dist {
	return c.primary
}

// Options returns the options c was built with, with defaults
// filled in.
func (c DoubleIntervalCensored) Options() DoubleCensorOptions {
	opts := c.opts
	if opts.Breakpoints != nil {
		opts.Breakpoints = append([]float64{}, opts.Breakpoints...)
	}
	return opts
}

// Pipeline returns the composed distribution c delegates to.
func (c DoubleIntervalCensored) Pipeline() Dist {
	return c.pipeline
}

func (c DoubleIntervalCensored) PDF(x float64) float64     { return c.pipeline.PDF(x) }
func (c DoubleIntervalCensored) LogPDF(x float64) float64  { return c.pipeline.LogPDF(x) }
func (c DoubleIntervalCensored) CDF(x float64) float64     { return c.pipeline.CDF(x) }
func (c DoubleIntervalCensored) LogCDF(x float64) float64  { return c.pipeline.LogCDF(x) }
func (c DoubleIntervalCensored) CCDF(x float64) float64    { return c.pipeline.CCDF(x) }
func (c DoubleIntervalCensored) LogCCDF(x float64) float64 { return c.pipeline.LogCCDF(x) }

func (c DoubleIntervalCensored) Support() (float64, float64) {
	return c.pipeline.Support()
}

func (c DoubleIntervalCensored) Sample(rng *rand.Rand, n int) []float64 {
	return c.pipeline.Sample(rng, n)
}

// PMF returns the mass of the bin containing x. If c is not
// discretized, it returns PDF(x).
func (c DoubleIntervalCensored) PMF(x float64) float64 {
	if dd, ok := c.pipeline.(DiscreteDist); ok {
		return dd.PMF(x)
	}
	return c.pipeline.PDF(x)
}

func (c DoubleIntervalCensored) LogPMF(x float64) float64 {
	if dd, ok := c.pipeline.(DiscreteDist); ok {
		return dd.LogPMF(x)
	}
	return c.pipeline.LogPDF(x)
}

func (c DoubleIntervalCensored) Bin(x float64) (lo, hi float64, ok bool) {
	if dd, ok := c.pipeline.(DiscreteDist); ok {
		return dd.Bin(x)
	}
	return nan, nan, false
}

// Params returns the event parameters, then the primary event
// parameters, then the interval or breakpoints if c is discretized.
// The truncation bounds are available from Options.
func (c DoubleIntervalCensored) Params() []float64 {
	ps := append(c.event.Params(), c.primary.Params()...)
	if c.opts.Interval != 0 {
		return append(ps, c.opts.Interval)
	}
	return append(ps, c.opts.Breakpoints...)
}
