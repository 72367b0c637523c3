// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

// CutStatus reports the outcome of translating a cut into the ellipsoid
// update scalars (ρ, σ, δ). It is a normal return value, not an error:
// a driver inspects it to decide whether to apply the update, declare
// the problem infeasible, or request an alternate cut.
type CutStatus int

const (
	// Success means the cut reduced the ellipsoid; the update applies.
	Success CutStatus = iota
	// NoSoln means the cut proves the current ellipsoid contains no
	// feasible point.
	NoSoln
	// NoEffect means the cut is too shallow to tighten the current
	// ellipsoid. The calc kernels return it only on the discrete *Q
	// paths; ell.Ell1D also returns it for a cut with beta < -tau.
	NoEffect
)

func (s CutStatus) String() string {
	switch s {
	case Success:
		return "Success"
	case NoSoln:
		return "NoSoln"
	case NoEffect:
		return "NoEffect"
	default:
		return "CutStatus(?)"
	}
}
