// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

// Options configures a driver loop (cutplane.Feas, cutplane.Optim, ...).
type Options struct {
	MaxIters int     // maximum driver iterations
	Tol      float64 // lower bound on tsq; below this the search space is exhausted
}

// NewOptions returns the documented defaults: 2000 iterations, and a
// tolerance tight enough that it only trips once the ellipsoid has
// genuinely collapsed.
func NewOptions() Options {
	return Options{MaxIters: 2000, Tol: 1e-10}
}
