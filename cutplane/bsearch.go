// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutplane

import (
	"github.com/cpmech/ellopt/calc"
	"github.com/cpmech/ellopt/oracle"
	"github.com/cpmech/gosl/io"
)

// Number is the constraint BSearch preserves: a search interval with
// an int upper bound narrows in integer steps and returns an int;
// float64 narrows continuously.
type Number interface {
	~int | ~float64
}

// BSearch narrows [lo, hi] toward the smallest t for which omega.AssessBS(t)
// is true, assuming AssessBS is monotone (false, false, ..., true, true, ...)
// over the interval. The returned bound's type matches T, so an int
// search never drifts into fractional territory.
func BSearch[T Number](omega oracle.BS, lo, hi T, opts calc.Options) (T, int) {
	niter := 0
	for ; niter < opts.MaxIters; niter++ {
		if done(lo, hi, opts.Tol) {
			break
		}
		mid := midpoint(lo, hi)
		if omega.AssessBS(oracle.Num(mid)) {
			hi = mid
		} else {
			lo = mid
		}
	}
	if Verbose {
		io.Pforan("cutplane.BSearch: [%v, %v] after %d iters\n", lo, hi, niter)
	}
	return hi, niter
}

func midpoint[T Number](lo, hi T) T {
	return lo + (hi-lo)/2
}

func done[T Number](lo, hi T, tol float64) bool {
	if l, ok := any(lo).(int); ok {
		h := any(hi).(int)
		return h-l <= 1
	}
	return float64(hi-lo) <= tol
}

// cloneableSpace is a SearchSpace2 that can produce an independent
// deep copy of itself, the capability BSearchAdaptor needs to probe a
// candidate t without perturbing the caller's actual search space.
type cloneableSpace[T any] interface {
	oracle.SearchSpace2
	Clone() T
}

// BSearchAdaptor turns a feasibility oracle parameterized by an
// external scalar t into a monotone oracle.BS predicate: each probe
// clones the outer search space, updates the oracle's parameter, and
// runs Feas to completion against the clone. The clone is essential,
// since the outer space (and its caller-visible center) must be
// untouched by a probe that turns out infeasible.
type BSearchAdaptor[T cloneableSpace[T]] struct {
	omega oracle.Feas2
	space T
	opts  calc.Options
}

// NewBSearchAdaptor builds an adaptor probing omega over clones of space.
func NewBSearchAdaptor[T cloneableSpace[T]](omega oracle.Feas2, space T, opts calc.Options) *BSearchAdaptor[T] {
	return &BSearchAdaptor[T]{omega: omega, space: space, opts: withDefaults(opts)}
}

// XBest returns the outer search space's center, last written by the
// most recent probe that found a feasible point.
func (o *BSearchAdaptor[T]) XBest() []float64 { return o.space.Xc() }

// AssessBS probes whether t admits a feasible point against a clone of
// the outer search space; only a successful probe writes back into it.
func (o *BSearchAdaptor[T]) AssessBS(t oracle.Num) bool {
	probe := o.space.Clone()
	o.omega.Update(t)
	x, _ := Feas(o.omega, probe, o.opts)
	if x == nil {
		return false
	}
	o.space.SetXc(x)
	return true
}
