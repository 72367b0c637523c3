// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ell implements the ellipsoidal search-space state objects
// (Ell, EllStable, Ell1D) that own a center and a scaled shape, and
// shrink in response to cuts by delegating the scalar arithmetic to
// calc.EllCalc and applying the resulting rank-one update.
package ell

import (
	"github.com/cpmech/ellopt/calc"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Verbose enables diagnostic tracing of every update, following the
// same opt-in convention as calc.Verbose.
var Verbose = false

// Ell represents the ellipsoid {x : (x-xc)'(kappa*M)^-1(x-xc) <= 1}
// holding the shape matrix M explicitly.
type Ell struct {
	// NoDeferTrick, when true, folds kappa into M after every update
	// instead of deferring the scalar multiplication.
	NoDeferTrick bool

	calc *calc.EllCalc
	xc   []float64
	mq   [][]float64
	kap  float64
	tsq  float64
}

// NewEll builds an ellipsoid of scale kappa (identity shape M = I)
// centered at xc.
func NewEll(kappa float64, xc []float64) *Ell {
	n := len(xc)
	o := &Ell{
		calc: calc.NewEllCalc(n),
		xc:   append([]float64(nil), xc...),
		mq:   la.MatAlloc(n, n),
		kap:  kappa,
	}
	for i := 0; i < n; i++ {
		o.mq[i][i] = 1.0
	}
	return o
}

// NewEllDiag builds an ellipsoid with kappa=1 and diagonal shape
// M = diag(d), centered at xc.
func NewEllDiag(d, xc []float64) *Ell {
	n := len(xc)
	if len(d) != n {
		panic(io.Sf("ell: diagonal length %d does not match xc length %d", len(d), n))
	}
	o := &Ell{
		calc: calc.NewEllCalc(n),
		xc:   append([]float64(nil), xc...),
		mq:   la.MatAlloc(n, n),
		kap:  1.0,
	}
	for i := 0; i < n; i++ {
		o.mq[i][i] = d[i]
	}
	return o
}

// Xc returns the current center. The caller must not mutate the
// returned slice; use Clone or SetXc instead.
func (o *Ell) Xc() []float64 { return o.xc }

// SetXc overwrites the center (oracle.SearchSpace2).
func (o *Ell) SetXc(xc []float64) {
	copy(o.xc, xc)
}

// Tsq returns the last computed tau-squared = kappa * g'Mg.
func (o *Ell) Tsq() float64 { return o.tsq }

// Calc exposes the dimension-parameterized kernel backing this
// ellipsoid, so callers can tune UseParallelCut.
func (o *Ell) Calc() *calc.EllCalc { return o.calc }

// Clone returns a deep, independent copy: no aliasing of xc or M. Used
// by cutplane.BSearchAdaptor to probe without perturbing the caller's
// search space.
func (o *Ell) Clone() *Ell {
	n := len(o.xc)
	c := &Ell{
		calc:         o.calc,
		xc:           make([]float64, n),
		mq:           la.MatAlloc(n, n),
		kap:          o.kap,
		tsq:          o.tsq,
		NoDeferTrick: o.NoDeferTrick,
	}
	la.VecCopy(c.xc, 1.0, o.xc)
	for i := 0; i < n; i++ {
		la.VecCopy(c.mq[i], 1.0, o.mq[i])
	}
	return c
}

// UpdateDeepCut applies a single deep (or central, beta=0) cut, or a
// parallel cut when calc.UseParallelCut is set (oracle.SearchSpace).
func (o *Ell) UpdateDeepCut(cut calc.Cut) calc.CutStatus {
	return o.updateCore(cut, o.calc.Calc)
}

// UpdateCentralCut applies a cut through the current center
// (oracle.SearchSpace), used by cutplane.Optim when the oracle
// reports a strictly improving incumbent.
func (o *Ell) UpdateCentralCut(cut calc.Cut) calc.CutStatus {
	return o.updateCore(cut, o.calc.CalcCentral)
}

// UpdateQ applies the discrete-lattice variant of the cut
// (oracle.SearchSpaceQ).
func (o *Ell) UpdateQ(cut calc.Cut) calc.CutStatus {
	return o.updateCore(cut, o.calc.CalcQ)
}

// updateCore is the shared rank-one update: compute tau-squared for
// this cut direction, dispatch to the chosen kernel, and on Success
// shift the center and downdate the shape.
func (o *Ell) updateCore(cut calc.Cut, dispatch func(calc.Cut, float64) calc.Result) calc.CutStatus {
	if la.VecNorm(cut.Grad) == 0.0 {
		panic(io.Sf("ell.Ell.update: cut gradient must be non-zero"))
	}
	n := len(o.xc)
	gt := make([]float64, n)
	la.MatVecMul(gt, 1.0, o.mq, cut.Grad) // gt = M*g
	omega := la.VecDot(cut.Grad, gt)      // omega = g'*gt
	o.tsq = o.kap * omega

	res := dispatch(cut, o.tsq)
	if res.Status != calc.Success {
		if Verbose {
			io.Pfred("ell.Ell.update: %v (tsq=%g)\n", res.Status, o.tsq)
		}
		return res.Status
	}

	la.VecAdd(o.xc, -res.Rho/omega, gt) // xc -= (rho/omega)*gt

	// M -= (sigma/omega) * gt*gt', a symmetric rank-one downdate, kept
	// explicitly symmetric by construction rather than computed as a
	// non-symmetric in-place subtraction.
	s := res.Sigma / omega
	for i := 0; i < n; i++ {
		gti := gt[i]
		for j := i; j < n; j++ {
			d := s * gti * gt[j]
			o.mq[i][j] -= d
			if j != i {
				o.mq[j][i] -= d
			}
		}
	}

	o.kap *= res.Delta
	if o.NoDeferTrick {
		la.MatCopy(o.mq, o.kap, o.mq)
		if Verbose {
			io.Pfyel("ell.Ell: flushed kappa into M, max|M|=%g\n", la.MatLargest(o.mq, 1.0))
		}
		o.kap = 1.0
	}
	if Verbose {
		io.Pforan("ell.Ell.update: tsq=%g kappa=%g\n", o.tsq, o.kap)
	}
	return calc.Success
}
