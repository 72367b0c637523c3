// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ell

import (
	"math"

	"github.com/cpmech/ellopt/calc"
)

// Ell1D is the one-dimensional specialization: interval bisection with
// a deep or central cut. UpdateDeepCut/UpdateCentralCut/UpdateQ all
// funnel into the single update formula below (a 1-D lattice has no
// separate discrete arithmetic), and Tsq exposes the last computed
// tau-squared, so Ell1D satisfies the same SearchSpace shape as
// Ell/EllStable despite its scalar internals.
//
// A cut here is represented with calc.Cut's Grad holding a single
// entry (the scalar gradient) and Beta0 the scalar beta; parallel cuts
// are not supported.
type Ell1D struct {
	xc  float64
	rd  float64
	tsq float64
}

// NewEll1D builds the interval [lower, upper] as an Ell1D.
func NewEll1D(lower, upper float64) *Ell1D {
	rd := (upper - lower) / 2.0
	return &Ell1D{xc: lower + rd, rd: rd}
}

// Xc returns the current center wrapped as a length-1 slice, so Ell1D
// satisfies the same SearchSpace shape as Ell/EllStable.
func (o *Ell1D) Xc() []float64 { return []float64{o.xc} }

// XcScalar returns the current center as a plain float64, convenient
// for 1-D oracles that would rather not unwrap a slice.
func (o *Ell1D) XcScalar() float64 { return o.xc }

// SetXc overwrites the center from a length-1 slice (oracle.SearchSpace2).
func (o *Ell1D) SetXc(xc []float64) { o.xc = xc[0] }

// Tsq returns the last computed tau-squared.
func (o *Ell1D) Tsq() float64 { return o.tsq }

// Clone returns an independent copy (oracle.SearchSpace2 / BSearchAdaptor).
func (o *Ell1D) Clone() *Ell1D {
	return &Ell1D{xc: o.xc, rd: o.rd, tsq: o.tsq}
}

// UpdateDeepCut applies a single deep (beta>0) or central (beta=0) cut.
func (o *Ell1D) UpdateDeepCut(cut calc.Cut) calc.CutStatus {
	return o.update(cut.Beta0, cut.Grad[0])
}

// UpdateCentralCut always bisects toward the side opposite sign(grad).
func (o *Ell1D) UpdateCentralCut(cut calc.Cut) calc.CutStatus {
	return o.update(0.0, cut.Grad[0])
}

// UpdateQ delegates to the same arithmetic: a 1-D lattice has no
// separate discrete update in the source.
func (o *Ell1D) UpdateQ(cut calc.Cut) calc.CutStatus {
	return o.update(cut.Beta0, cut.Grad[0])
}

func (o *Ell1D) update(beta, grad float64) calc.CutStatus {
	tau := math.Abs(o.rd * grad)
	o.tsq = tau * tau

	if beta == 0.0 {
		o.rd /= 2.0
		if grad > 0.0 {
			o.xc -= o.rd
		} else {
			o.xc += o.rd
		}
		return calc.Success
	}
	if beta > tau {
		return calc.NoSoln
	}
	if beta < -tau {
		return calc.NoEffect
	}

	bound := o.xc - beta/grad
	var upper, lower float64
	if grad > 0.0 {
		upper = bound
		lower = o.xc - o.rd
	} else {
		upper = o.xc + o.rd
		lower = bound
	}
	o.rd = (upper - lower) / 2.0
	o.xc = lower + o.rd
	return calc.Success
}
