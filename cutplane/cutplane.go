// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cutplane implements the driver loops that orchestrate
// oracle <-> search-space interaction: feasibility, optimization,
// their discrete counterparts, and binary search over a scalar
// parameter. Every driver is generic over whatever satisfies oracle's
// capability interfaces, so a caller's own SearchSpace implementation
// drives the same loops ell.Ell and ell.EllStable do.
package cutplane

import (
	"github.com/cpmech/ellopt/calc"
	"github.com/cpmech/ellopt/oracle"
	"github.com/cpmech/gosl/io"
)

// Verbose enables per-iteration tracing of every driver loop.
var Verbose = false

func withDefaults(opts calc.Options) calc.Options {
	d := calc.NewOptions()
	if opts.MaxIters <= 0 {
		opts.MaxIters = d.MaxIters
	}
	if opts.Tol <= 0 {
		opts.Tol = d.Tol
	}
	return opts
}

// Feas finds a point in a convex set defined through a cutting-plane
// oracle. It returns the feasible point and the iteration at which it
// was found, or nil and the iteration at which the search terminated
// (exhausted, infeasible, or budget all collapse into the nil case).
func Feas(omega oracle.Feas, space oracle.SearchSpace, opts calc.Options) ([]float64, int) {
	opts = withDefaults(opts)
	for niter := 0; niter < opts.MaxIters; niter++ {
		cut, hasCut := omega.AssessFeas(space.Xc())
		if !hasCut {
			if Verbose {
				io.Pfgreen("cutplane.Feas: feasible at iter %d\n", niter)
			}
			return space.Xc(), niter
		}
		status := space.UpdateDeepCut(cut)
		if status != calc.Success || space.Tsq() < opts.Tol {
			if Verbose {
				io.Pfred("cutplane.Feas: terminated at iter %d, status=%v, tsq=%g\n", niter, status, space.Tsq())
			}
			return nil, niter
		}
	}
	return nil, opts.MaxIters
}

// Optim solves a convex optimization problem via the cutting-plane
// method. t is the initial best-so-far objective value; the oracle reports a strictly better
// incumbent by returning improved=true with tNew. Central cuts are
// applied on an improvement (the new cut passes through the current
// center, a "feasibility-to-improvement" cut); deep cuts otherwise.
// Returns the best x found, the best t found, and the iteration count.
func Optim(omega oracle.Optim, space oracle.SearchSpace, t float64, opts calc.Options) ([]float64, float64, int) {
	opts = withDefaults(opts)
	var xBest []float64
	for niter := 0; niter < opts.MaxIters; niter++ {
		cut, tNew, improved := omega.AssessOptim(space.Xc(), t)
		var status calc.CutStatus
		if improved {
			t = tNew
			xBest = append([]float64(nil), space.Xc()...)
			status = space.UpdateCentralCut(cut)
		} else {
			status = space.UpdateDeepCut(cut)
		}
		if Verbose {
			io.Pforan("cutplane.Optim: iter %d, t=%g, status=%v, tsq=%g\n", niter, t, status, space.Tsq())
		}
		if status != calc.Success || space.Tsq() < opts.Tol {
			return xBest, t, niter
		}
	}
	return xBest, t, opts.MaxIters
}

// FeasQ is the discrete counterpart of Feas. The oracle additionally returns a rounded
// candidate xq and moreAlt, signalling whether an alternate cut
// exists at the same center; FeasQ requests it via retry rather than
// advancing the center on a NoEffect status.
func FeasQ(omega oracle.FeasQ, space oracle.SearchSpaceQ, opts calc.Options) ([]float64, int) {
	opts = withDefaults(opts)
	retry := false
	for niter := 0; niter < opts.MaxIters; niter++ {
		cut, xq, moreAlt, hasCut := omega.AssessFeasQ(space.Xc(), retry)
		if !hasCut {
			return xq, niter
		}
		status := space.UpdateQ(cut)
		switch status {
		case calc.Success:
			retry = false
		case calc.NoSoln:
			return nil, niter
		case calc.NoEffect:
			if !moreAlt {
				return nil, niter
			}
			retry = true
		}
		if space.Tsq() < opts.Tol {
			return nil, niter
		}
	}
	return nil, opts.MaxIters
}

// OptimQ is the discrete counterpart of Optim. Unlike Optim, it
// always applies UpdateQ: there is no central/deep split on the
// discrete path.
func OptimQ(omega oracle.OptimQ, space oracle.SearchSpaceQ, t float64, opts calc.Options) ([]float64, float64, int) {
	opts = withDefaults(opts)
	var xBest []float64
	retry := false
	for niter := 0; niter < opts.MaxIters; niter++ {
		cut, xq, tNew, moreAlt, improved := omega.AssessOptimQ(space.Xc(), t, retry)
		if improved {
			t = tNew
			xBest = xq
		}
		status := space.UpdateQ(cut)
		switch status {
		case calc.Success:
			retry = false
		case calc.NoSoln:
			return xBest, t, niter
		case calc.NoEffect:
			if !moreAlt {
				return xBest, t, niter
			}
			retry = true
		}
		if space.Tsq() < opts.Tol {
			return xBest, t, niter
		}
	}
	return xBest, t, opts.MaxIters
}
