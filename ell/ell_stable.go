// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ell

import (
	"github.com/cpmech/ellopt/calc"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// EllStable is mathematically equivalent to Ell but stores the
// factorization inv(M) = L*D*L' implicitly (so M = inv(L')*inv(D)*inv(L)):
// the strict lower triangle of mq holds L's sub-diagonal entries, the
// diagonal holds D's reciprocals, and the strict upper triangle is
// scratch used by the inv(L)*g forward substitution.
// Preferred for n large or ill-conditioned problems, since the
// rank-one update preserves positive-definiteness in finite precision
// better than Ell's explicit M.
type EllStable struct {
	NoDeferTrick bool

	calc *calc.EllCalc
	xc   []float64
	mq   [][]float64
	kap  float64
	tsq  float64
	n    int
}

// NewEllStable builds a factored ellipsoid of scale kappa (L=I, D=I),
// centered at xc.
func NewEllStable(kappa float64, xc []float64) *EllStable {
	n := len(xc)
	o := &EllStable{
		calc: calc.NewEllCalc(n),
		xc:   append([]float64(nil), xc...),
		mq:   la.MatAlloc(n, n),
		kap:  kappa,
		n:    n,
	}
	for i := 0; i < n; i++ {
		o.mq[i][i] = 1.0
	}
	return o
}

// NewEllStableDiag builds a factored ellipsoid with kappa=1 and
// diagonal shape diag(d) (so L=I and the stored diagonal inv(D) is d),
// centered at xc.
func NewEllStableDiag(d, xc []float64) *EllStable {
	n := len(xc)
	if len(d) != n {
		panic(io.Sf("ell: diagonal length %d does not match xc length %d", len(d), n))
	}
	o := &EllStable{
		calc: calc.NewEllCalc(n),
		xc:   append([]float64(nil), xc...),
		mq:   la.MatAlloc(n, n),
		kap:  1.0,
		n:    n,
	}
	for i := 0; i < n; i++ {
		o.mq[i][i] = d[i]
	}
	return o
}

func (o *EllStable) Xc() []float64 { return o.xc }
func (o *EllStable) SetXc(xc []float64) {
	copy(o.xc, xc)
}
func (o *EllStable) Tsq() float64         { return o.tsq }
func (o *EllStable) Calc() *calc.EllCalc { return o.calc }

// Clone returns a deep, independent copy (no aliasing), used by
// cutplane.BSearchAdaptor.
func (o *EllStable) Clone() *EllStable {
	n := o.n
	kernel := *o.calc
	c := &EllStable{
		calc:         &kernel,
		xc:           make([]float64, n),
		mq:           la.MatAlloc(n, n),
		kap:          o.kap,
		tsq:          o.tsq,
		n:            n,
		NoDeferTrick: o.NoDeferTrick,
	}
	la.VecCopy(c.xc, 1.0, o.xc)
	for i := 0; i < n; i++ {
		la.VecCopy(c.mq[i], 1.0, o.mq[i])
	}
	return c
}

func (o *EllStable) UpdateDeepCut(cut calc.Cut) calc.CutStatus {
	return o.updateCore(cut, o.calc.Calc)
}
func (o *EllStable) UpdateCentralCut(cut calc.Cut) calc.CutStatus {
	return o.updateCore(cut, o.calc.CalcCentral)
}
func (o *EllStable) UpdateQ(cut calc.Cut) calc.CutStatus {
	return o.updateCore(cut, o.calc.CalcQ)
}

// updateCore implements the Gill-Murray-Wright (Practical Optimization,
// p.43) stable rank-one update: forward-solve, scale, dispatch to the
// kernel, back-solve the center shift, then downdate the factorization
// column by column.
func (o *EllStable) updateCore(cut calc.Cut, dispatch func(calc.Cut, float64) calc.Result) calc.CutStatus {
	if la.VecNorm(cut.Grad) == 0.0 {
		panic(io.Sf("ell.EllStable.update: cut gradient must be non-zero"))
	}
	n := o.n
	g := cut.Grad

	// forward solve: invLg = inv(L)*g, using the strict upper triangle
	// of mq as scratch to remember the multipliers for the downdate.
	invLg := append([]float64(nil), g...)
	for j := 0; j < n-1; j++ {
		for i := j + 1; i < n; i++ {
			o.mq[j][i] = o.mq[i][j] * invLg[j]
			invLg[i] -= o.mq[j][i]
		}
	}

	// scale: invDinvLg = inv(D)*invLg (the diagonal holds inv(D)).
	invDinvLg := append([]float64(nil), invLg...)
	for i := 0; i < n; i++ {
		invDinvLg[i] *= o.mq[i][i]
	}

	omega := 0.0
	for i := 0; i < n; i++ {
		omega += invLg[i] * invDinvLg[i]
	}
	o.tsq = o.kap * omega

	res := dispatch(cut, o.tsq)
	if res.Status != calc.Success {
		if Verbose {
			io.Pfred("ell.EllStable.update: %v (tsq=%g)\n", res.Status, o.tsq)
		}
		return res.Status
	}

	// back solve: gt = inv(L')*inv(D)*inv(L)*g
	gt := append([]float64(nil), invDinvLg...)
	for i := n - 1; i > 0; i-- {
		for j := i; j < n; j++ {
			gt[i-1] -= o.mq[j][i-1] * gt[j]
		}
	}
	la.VecAdd(o.xc, -res.Rho/omega, gt) // xc -= (rho/omega)*gt

	// rank-one update of inv(M) = L*D*L' by (mu/omega)*g*g' with
	// mu = sigma/(1-sigma), which is the downdate of M itself.
	mu := res.Sigma / (1.0 - res.Sigma)
	oldT := omega / mu
	v := append([]float64(nil), g...)
	for j := 0; j < n; j++ {
		p := v[j]
		temp := invDinvLg[j]
		newT := oldT + p*temp
		beta2 := temp / newT
		o.mq[j][j] *= oldT / newT // update inv(D)
		for k := j + 1; k < n; k++ {
			v[k] -= o.mq[j][k]
			o.mq[k][j] += beta2 * v[k]
		}
		oldT = newT
	}

	o.kap *= res.Delta
	if o.NoDeferTrick {
		o.flushKappa()
	}
	if Verbose {
		io.Pforan("ell.EllStable.update: tsq=%g kappa=%g\n", o.tsq, o.kap)
	}
	return calc.Success
}

// flushKappa folds kappa into the factorization's D component
// (kappa*M = inv(L')*(kappa*inv(D))*inv(L), and inv(D) is stored on the
// diagonal, so folding kappa multiplies the diagonal by kappa) and
// resets kappa to 1, implementing the deferred-scalar trick's flush
// path for the factored representation.
func (o *EllStable) flushKappa() {
	for i := 0; i < o.n; i++ {
		o.mq[i][i] *= o.kap
	}
	if Verbose {
		io.Pfyel("ell.EllStable: flushed kappa into D, max|D^-1|=%g\n", la.MatLargest(o.mq, 1.0))
	}
	o.kap = 1.0
}
