// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import "github.com/cpmech/ellopt/calc"

// Ball is a feasibility oracle parameterized by a squared radius t:
// xc is feasible when ||xc||^2 <= t. It implements oracle.Feas2, so it
// can drive cutplane.BSearchAdaptor over t (whether some point exists
// within the ball is monotone in t).
type Ball struct {
	t float64
}

// Update sets the squared radius probed by the next AssessFeas call.
func (b *Ball) Update(t float64) { b.t = t }

// AssessFeas returns a deep cut along xc whenever ||xc||^2 exceeds t.
func (b *Ball) AssessFeas(xc []float64) (calc.Cut, bool) {
	normSq := 0.0
	for _, v := range xc {
		normSq += v * v
	}
	if fj := normSq - b.t; fj > 0.0 {
		grad := make([]float64, len(xc))
		for i, v := range xc {
			grad[i] = 2.0 * v
		}
		return calc.NewDeepCut(grad, fj), true
	}
	return calc.Cut{}, false
}
