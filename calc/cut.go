// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

// Cut is the affine half-space (or, with HasUpper, the parallel slab)
// returned by a separation oracle: g'*(x - xc) + beta <= 0.
//
// A single deep cut (or central cut, when Beta0 is zero) sets HasUpper
// to false and leaves Beta1 unused. A parallel cut brackets the
// feasible slab between two co-linear hyperplanes Beta0 <= Beta1 and
// sets HasUpper to true; a pair with only one usable bound degrades to
// the single-cut path via HasUpper==false rather than a variable-length
// sequence.
type Cut struct {
	Grad     []float64
	Beta0    float64
	Beta1    float64
	HasUpper bool
}

// NewDeepCut builds a single deep (or, when beta==0, central) cut.
func NewDeepCut(grad []float64, beta float64) Cut {
	return Cut{Grad: grad, Beta0: beta}
}

// NewParallelCut builds a parallel cut bracketing [beta0, beta1].
func NewParallelCut(grad []float64, beta0, beta1 float64) Cut {
	return Cut{Grad: grad, Beta0: beta0, Beta1: beta1, HasUpper: true}
}
