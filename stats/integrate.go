// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// quadRelTol is the relative error target of integrate.
	quadRelTol = 1e-10

	// quadMaxPanels bounds the number of subintervals integrate
	// will split [a, b] into.
	quadMaxPanels = 256
)

type panel struct {
	a, b     float64
	val, err float64
}

func newPanel(f func(float64) float64, a, b float64) panel {
	fine := quad.Fixed(f, a, b, 16, quad.Legendre{}, 1)
	coarse := quad.Fixed(f, a, b, 8, quad.Legendre{}, 1)
	return panel{a, b, fine, math.Abs(fine - coarse)}
}

// integrate returns the integral of f over the finite interval [a, b].
//
// It is globally adaptive: the panel with the largest error estimate
// is bisected until the total estimated error is below quadRelTol of
// the result or quadMaxPanels is reached. In the latter case it logs
// a warning and returns the best estimate it has.
func integrate(f func(float64) float64, a, b float64) float64 {
	if !(a < b) {
		return 0
	}
	panels := []panel{newPanel(f, a, b)}
	for {
		var total, errSum float64
		worst := 0
		for i, p := range panels {
			total += p.val
			errSum += p.err
			if p.err > panels[worst].err {
				worst = i
			}
		}
		if errSum <= quadRelTol*math.Abs(total) || errSum < 1e-300 {
			return total
		}

		p := panels[worst]
		mid := p.a + (p.b-p.a)/2
		if len(panels) >= quadMaxPanels || mid <= p.a || mid >= p.b {
			diag().Warn().
				Float64("a", a).Float64("b", b).
				Float64("integral", total).Float64("error", errSum).
				Int("panels", len(panels)).
				Msg("quadrature did not converge")
			return total
		}
		panels[worst] = newPanel(f, p.a, mid)
		panels = append(panels, newPanel(f, mid, p.b))
	}
}
