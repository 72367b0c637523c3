// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// CheckDeepCutDeriv cross-checks the closed-form ∂ρ/∂β = n/(n+1) of
// CalcDeepCut against a central-difference estimate. It is a debug
// aid, not part of the update path: a driver never calls it during
// normal operation.
func (o *EllCalc) CheckDeepCutDeriv(beta, tsq, tol float64, verbose bool) error {
	ana := o.cst3
	dnum := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
		r := o.CalcDeepCut(x, tsq)
		if r.Status != Success {
			return ana * x // keep the probe well-behaved outside the success region
		}
		return r.Rho
	}, beta)
	return utl.AnaNum(utl.Sf("drho/dbeta @ beta=%g", beta), tol, ana, dnum, verbose)
}
