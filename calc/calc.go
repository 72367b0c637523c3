// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc implements the ellipsoid-method's pure numerical kernel:
// translating a normalized cut (β, τ²) into the update scalars (ρ, σ, δ)
// that drive the rank-one shrink of the search space, for single deep
// cuts, central cuts and parallel (two-sided) cuts, in both continuous
// and discrete flavors.
package calc

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Verbose enables diagnostic tracing of every Calc* call (ρ, σ, δ, and
// the resulting status), following the opt-in colour-coded logging
// convention a Newton-loop solver might use to trace its residual.
var Verbose = false

// Result bundles a CutStatus with the three update scalars. On any
// status other than Success, (Rho, Sigma, Delta) are the zero value,
// matching the zero value for any non-success status.
type Result struct {
	Status CutStatus
	Rho    float64
	Sigma  float64
	Delta  float64
}

func noSoln() Result   { return Result{Status: NoSoln} }
func noEffect() Result { return Result{Status: NoEffect} }

// EllCalc pre-computes the dimension-dependent constants shared by all
// cut formulas, so a SearchSpace need only hold one instance per n.
type EllCalc struct {
	// UseParallelCut, when false, routes every parallel-cut dispatcher
	// to its single-cut counterpart. Exists to support benchmarking and
	// oracles that supply degenerate β pairs.
	UseParallelCut bool

	n     int
	nF    float64
	halfN float64
	cst0  float64 // 1/(n+1)
	cst1  float64 // n^2/(n^2-1)
	cst2  float64 // 2/(n+1)
	cst3  float64 // n/(n+1)
}

// NewEllCalc pre-computes the dimension-dependent constants for dimension n.
func NewEllCalc(n int) *EllCalc {
	if n <= 0 {
		panic(io.Sf("calc: dimension must be positive, got %d", n))
	}
	nF := float64(n)
	o := &EllCalc{
		UseParallelCut: true,
		n:              n,
		nF:             nF,
		halfN:          nF / 2.0,
	}
	o.cst0 = 1.0 / (nF + 1.0)
	o.cst1 = nF * nF / (nF*nF - 1.0)
	o.cst2 = 2.0 * o.cst0
	o.cst3 = nF * o.cst0
	return o
}

// N returns the dimension this calculator was built for.
func (o *EllCalc) N() int { return o.n }

func (o *EllCalc) trace(name string, beta, tsq float64, r Result) {
	if !Verbose {
		return
	}
	if r.Status == Success {
		io.Pfyel("calc.%s(beta=%g, tsq=%g) -> %s rho=%g sigma=%g delta=%g\n",
			name, beta, tsq, r.Status, r.Rho, r.Sigma, r.Delta)
	} else {
		io.Pfred("calc.%s(beta=%g, tsq=%g) -> %s\n", name, beta, tsq, r.Status)
	}
}

// CalcDeepCut computes (ρ, σ, δ) for a single deep cut with β >= 0
// β must be non-negative: this is a caller contract, not a runtime
// condition, and a violation panics.
func (o *EllCalc) CalcDeepCut(beta, tsq float64) Result {
	if beta < 0.0 {
		panic(io.Sf("calc: CalcDeepCut requires beta >= 0, got %g", beta))
	}
	bsq := beta * beta
	if tsq < bsq {
		r := noSoln()
		o.trace("CalcDeepCut", beta, tsq, r)
		return r
	}
	tau := math.Sqrt(tsq)
	r := o.calcDeepCutCore(beta, tau, tau+o.nF*beta)
	o.trace("CalcDeepCut", beta, tsq, r)
	return r
}

// calcDeepCutCore shares the (ρ, σ, δ) formula between CalcDeepCut and
// CalcDeepCutQ once γ = τ + n·β has been established.
func (o *EllCalc) calcDeepCutCore(beta, tau, gamma float64) Result {
	rho := o.cst0 * gamma
	sigma := o.cst2 * gamma / (tau + beta)
	ratio := beta / tau
	delta := o.cst1 * (1.0 - ratio*ratio)
	return Result{Status: Success, Rho: rho, Sigma: sigma, Delta: delta}
}

// CalcCentralCut computes (ρ, σ, δ) for a central cut (β = 0), the
// limit of CalcDeepCut as β -> 0.
func (o *EllCalc) CalcCentralCut(tsq float64) Result {
	r := Result{
		Status: Success,
		Rho:    o.cst0 * math.Sqrt(tsq),
		Sigma:  o.cst2,
		Delta:  o.cst1,
	}
	o.trace("CalcCentralCut", 0, tsq, r)
	return r
}

// CalcParallelCut computes (ρ, σ, δ) for a parallel deep cut with
// β0 <= β1. β1 < β0 is reported as NoSoln per the Cut invariant.
func (o *EllCalc) CalcParallelCut(beta0, beta1, tsq float64) Result {
	if beta1 < beta0 {
		r := noSoln()
		o.trace("CalcParallelCut", beta0, tsq, r)
		return r
	}
	b1sq := beta1 * beta1
	if beta1 > 0.0 && tsq < b1sq {
		// the outer hyperplane lies outside the ellipsoid; only the
		// inner one bites.
		r := o.CalcDeepCut(beta0, tsq)
		o.trace("CalcParallelCut", beta0, tsq, r)
		return r
	}
	if beta0 == beta1 && beta0 >= 0.0 {
		// the slab has collapsed onto a single hyperplane: this is the
		// single deep cut at that β.
		r := o.CalcDeepCut(beta0, tsq)
		o.trace("CalcParallelCut", beta0, tsq, r)
		return r
	}
	b0b1 := beta0 * beta1
	r := o.calcParallelCutCore(beta0, beta1, b1sq, b0b1, tsq)
	o.trace("CalcParallelCut", beta0, tsq, r)
	return r
}

// calcParallelCutCore is the shared ζ/ξ arithmetic used by both
// CalcParallelCut and CalcParallelCutQ once neither early-exit fires.
func (o *EllCalc) calcParallelCutCore(b0, b1, b1sq, b0b1, tsq float64) Result {
	b0sq := b0 * b0
	zeta0 := tsq - b0sq
	zeta1 := tsq - b1sq
	half := o.halfN * (b1sq - b0sq)
	xi := math.Sqrt(zeta0*zeta1 + half*half)
	bsumsq := b0sq + 2.0*b0b1 + b1sq
	sigma := o.cst3 + o.cst2*(tsq+b0b1-xi)/bsumsq
	rho := sigma * (b0 + b1) / 2.0
	delta := o.cst1 * ((zeta0+zeta1)/2.0+xi/o.nF) / tsq
	return Result{Status: Success, Rho: rho, Sigma: sigma, Delta: delta}
}

// CalcParallelCentralCut computes (ρ, σ, δ) for a parallel cut whose
// inner hyperplane is central (β0 = 0).
func (o *EllCalc) CalcParallelCentralCut(beta1, tsq float64) Result {
	if beta1 < 0.0 {
		r := noSoln()
		o.trace("CalcParallelCentralCut", beta1, tsq, r)
		return r
	}
	b1sq := beta1 * beta1
	if tsq < b1sq || !o.UseParallelCut {
		r := o.CalcCentralCut(tsq)
		o.trace("CalcParallelCentralCut", beta1, tsq, r)
		return r
	}
	a1sq := b1sq / tsq
	tmp := o.halfN * a1sq
	xi := math.Sqrt(1.0 - a1sq + tmp*tmp)
	sigma := o.cst3 + o.cst2*(1.0-xi)/a1sq
	rho := sigma * beta1 / 2.0
	delta := o.cst1 * (1.0 - a1sq/2.0 + xi/o.nF)
	r := Result{Status: Success, Rho: rho, Sigma: sigma, Delta: delta}
	o.trace("CalcParallelCentralCut", beta1, tsq, r)
	return r
}

// CalcDeepCutQ is the discrete counterpart of CalcDeepCut: it returns
// NoEffect rather than applying a vanishing update when the cut is too
// shallow to reliably tighten an integer lattice. Unlike
// CalcDeepCut, negative β is a legitimate discrete input, not a
// contract violation.
func (o *EllCalc) CalcDeepCutQ(beta, tsq float64) Result {
	tau := math.Sqrt(tsq)
	if tau < beta {
		r := noSoln()
		o.trace("CalcDeepCutQ", beta, tsq, r)
		return r
	}
	gamma := tau + o.nF*beta
	if gamma <= 0.0 {
		r := noEffect()
		o.trace("CalcDeepCutQ", beta, tsq, r)
		return r
	}
	r := o.calcDeepCutCore(beta, tau, gamma)
	o.trace("CalcDeepCutQ", beta, tsq, r)
	return r
}

// CalcParallelCutQ is the discrete counterpart of CalcParallelCut.
func (o *EllCalc) CalcParallelCutQ(beta0, beta1, tsq float64) Result {
	if beta1 < beta0 {
		r := noSoln()
		o.trace("CalcParallelCutQ", beta0, tsq, r)
		return r
	}
	b1sq := beta1 * beta1
	if beta1 > 0.0 && tsq < b1sq {
		r := o.CalcDeepCutQ(beta0, tsq)
		o.trace("CalcParallelCutQ", beta0, tsq, r)
		return r
	}
	b0b1 := beta0 * beta1
	if o.nF*b0b1 < -tsq {
		r := noEffect()
		o.trace("CalcParallelCutQ", beta0, tsq, r)
		return r
	}
	r := o.calcParallelCutCore(beta0, beta1, b1sq, b0b1, tsq)
	o.trace("CalcParallelCutQ", beta0, tsq, r)
	return r
}

// Calc dispatches a cut to CalcDeepCut or CalcParallelCut depending on
// whether it is a single or parallel cut, honouring UseParallelCut.
func (o *EllCalc) Calc(cut Cut, tsq float64) Result {
	if !cut.HasUpper || !o.UseParallelCut {
		return o.CalcDeepCut(cut.Beta0, tsq)
	}
	return o.CalcParallelCut(cut.Beta0, cut.Beta1, tsq)
}

// CalcCentral dispatches a cut to CalcCentralCut or
// CalcParallelCentralCut. Unlike Calc, the single-cut fallback ignores
// Beta0 entirely: a central-cut update always passes through the
// current center.
func (o *EllCalc) CalcCentral(cut Cut, tsq float64) Result {
	if !cut.HasUpper || !o.UseParallelCut {
		return o.CalcCentralCut(tsq)
	}
	return o.CalcParallelCentralCut(cut.Beta1, tsq)
}

// CalcQ dispatches a cut to the discrete kernels.
func (o *EllCalc) CalcQ(cut Cut, tsq float64) Result {
	if !cut.HasUpper || !o.UseParallelCut {
		return o.CalcDeepCutQ(cut.Beta0, tsq)
	}
	return o.CalcParallelCutQ(cut.Beta0, cut.Beta1, tsq)
}
