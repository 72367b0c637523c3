// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo collects small worked oracles used by cmd/ellopt-demo
// and by the cutplane package tests to exercise the full driver
// loops end to end.
package demo

import "github.com/cpmech/ellopt/calc"

// Wedge is the linear feasibility/optimization example: maximize x+y
// subject to x+y <= 3 and x-y >= 1. It implements oracle.Optim.
type Wedge struct{}

// assessFeas checks the two linear constraints, returning the first
// violated one as a cut, or ok=false when both hold.
func (Wedge) assessFeas(xc []float64) (calc.Cut, bool) {
	x, y := xc[0], xc[1]

	if fj := x + y - 3.0; fj > 0.0 {
		return calc.NewDeepCut([]float64{1.0, 1.0}, fj), true
	}
	if fj := -x + y + 1.0; fj > 0.0 {
		return calc.NewDeepCut([]float64{-1.0, 1.0}, fj), true
	}
	return calc.Cut{}, false
}

// AssessFeas exposes the constraint check alone, for cutplane.Feas.
func (w Wedge) AssessFeas(xc []float64) (calc.Cut, bool) {
	return w.assessFeas(xc)
}

// AssessOptim assesses feasibility first; once xc clears both
// constraints, it assesses the objective x+y against the best-so-far t.
func (w Wedge) AssessOptim(xc []float64, t float64) (calc.Cut, float64, bool) {
	if cut, infeasible := w.assessFeas(xc); infeasible {
		return cut, t, false
	}
	x, y := xc[0], xc[1]
	f0 := x + y
	fj := t - f0
	if fj < 0.0 {
		return calc.NewDeepCut([]float64{-1.0, -1.0}, 0.0), f0, true
	}
	return calc.NewDeepCut([]float64{-1.0, -1.0}, fj), t, false
}
