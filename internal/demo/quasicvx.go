// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"math"

	"github.com/cpmech/ellopt/calc"
)

// Quasicvx minimizes -sqrt(x)/y over x>0, y>0, exp(x)<=y: a quasiconvex
// (not convex) objective handled by recasting "-sqrt(x)/y <= gamma" as
// the deep cut the driver already knows how to apply.
type Quasicvx struct{}

// AssessOptim checks the constraints exp(x)<=y, y>0 and x>0, then the
// objective; an
// improving xc reports a new best gamma = -sqrt(x)/y with a zero-slack
// cut through the current center.
func (Quasicvx) AssessOptim(xc []float64, gamma float64) (calc.Cut, float64, bool) {
	x, y := xc[0], xc[1]

	tmp := math.Exp(x)
	if fj := tmp - y; fj > 0.0 {
		return calc.NewDeepCut([]float64{tmp, -1.0}, fj), gamma, false
	}
	if y <= 0.0 {
		return calc.NewDeepCut([]float64{0.0, -1.0}, -y), gamma, false
	}
	if x <= 0.0 {
		return calc.NewDeepCut([]float64{-1.0, 0.0}, -x), gamma, false
	}

	tmp2 := math.Sqrt(x)
	if fj := -tmp2 - gamma*y; fj >= 0.0 {
		return calc.NewDeepCut([]float64{-0.5 / tmp2, -gamma}, fj), gamma, false
	}
	gammaNew := -tmp2 / y
	return calc.NewDeepCut([]float64{-0.5 / tmp2, -gammaNew}, 0.0), gammaNew, true
}
