// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle declares the capability contracts that the cutplane
// drivers consume: separation oracles on one side, and search-space
// state objects (ell.Ell, ell.EllStable, ell.Ell1D, or a caller's own
// implementation) on the other. Neither side depends on a concrete
// implementation of the other, so drivers are generic over whatever
// satisfies these interfaces.
package oracle

import "github.com/cpmech/ellopt/calc"

// Num is the parameter type of a binary search. bsearch preserves the
// concrete numeric type of the search interval's upper bound; see
// cutplane.BSearch.
type Num = float64

// Feas asserts feasibility of xc, or returns a cut separating xc from
// the feasible region. ok is true when a cut is returned (xc is not
// yet known feasible); ok is false when xc is itself feasible and cut
// is the zero value.
type Feas interface {
	AssessFeas(xc []float64) (cut calc.Cut, ok bool)
}

// Feas2 extends Feas with an external parameter update, used by
// cutplane.BSearchAdaptor to turn a feasibility oracle parameterized
// by t into a monotone predicate.
type Feas2 interface {
	Feas
	Update(t Num)
}

// Optim assesses optimality of xc against the best-so-far value t: it
// always returns a cut, and optionally a strictly improved t.
type Optim interface {
	AssessOptim(xc []float64, t float64) (cut calc.Cut, tNew float64, improved bool)
}

// FeasQ is the discrete counterpart of Feas. retry signals that the
// driver is re-probing the same center after a NoEffect cut; ok=false
// means the rounded candidate xq is itself feasible.
type FeasQ interface {
	AssessFeasQ(xc []float64, retry bool) (cut calc.Cut, xq []float64, moreAlt bool, ok bool)
}

// OptimQ is the discrete counterpart of Optim.
type OptimQ interface {
	AssessOptimQ(xc []float64, t float64, retry bool) (cut calc.Cut, xq []float64, tNew float64, moreAlt bool, improved bool)
}

// BS is a monotone boolean predicate over a scalar parameter, probed
// by cutplane.BSearch.
type BS interface {
	AssessBS(t Num) bool
}

// SearchSpace is the state object the continuous drivers (Feas, Optim)
// mutate: ell.Ell, ell.EllStable and ell.Ell1D all implement it.
type SearchSpace interface {
	UpdateDeepCut(cut calc.Cut) calc.CutStatus
	UpdateCentralCut(cut calc.Cut) calc.CutStatus
	Xc() []float64
	Tsq() float64
}

// SearchSpaceQ is the state object the discrete drivers (FeasQ, OptimQ)
// mutate.
type SearchSpaceQ interface {
	UpdateQ(cut calc.Cut) calc.CutStatus
	Xc() []float64
	Tsq() float64
}

// SearchSpace2 extends SearchSpace with SetXc, required by
// cutplane.BSearchAdaptor to write a feasible probe back into the
// outer search space.
type SearchSpace2 interface {
	SearchSpace
	SetXc(xc []float64)
}
