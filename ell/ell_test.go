// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ell

import (
	"math"
	"testing"

	"github.com/cpmech/ellopt/calc"
	"github.com/cpmech/gosl/chk"
)

func Test_new_ell_identity(tst *testing.T) {
	chk.PrintTitle("Ell: identity construction")
	e := NewEll(0.5, []float64{1.0, 2.0, 3.0})
	chk.Vector(tst, "xc", 1e-15, e.Xc(), []float64{1.0, 2.0, 3.0})
	chk.Scalar(tst, "kap", 1e-15, e.kap, 0.5)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			chk.Scalar(tst, "mq[i][j]", 1e-15, e.mq[i][j], want)
		}
	}
}

func Test_new_ell_diag_length_mismatch_panics(tst *testing.T) {
	chk.PrintTitle("NewEllDiag: length mismatch panics")
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("expected a panic but none occurred")
		}
	}()
	NewEllDiag([]float64{1.0, 2.0}, []float64{0.0, 0.0, 0.0})
}

// a single deep cut on a 2-D ball shifts the center toward the cut's
// half-space and shrinks the scaled shape kappa*M along the cut
// direction (kappa itself grows by n^2/(n^2-1) on a central cut).
func Test_update_deep_cut_shrinks(tst *testing.T) {
	chk.PrintTitle("Ell: deep cut shrinks and shifts")
	e := NewEll(1.0, []float64{0.0, 0.0})
	cut := calc.NewDeepCut([]float64{1.0, 0.0}, 0.0)
	status := e.UpdateDeepCut(cut)
	if status != calc.Success {
		tst.Fatalf("expected Success, got %v", status)
	}
	if e.Xc()[0] >= 0.0 {
		tst.Errorf("xc[0]=%g should have moved negative (central cut along +x)", e.Xc()[0])
	}
	if e.kap*e.mq[0][0] >= 1.0 {
		tst.Errorf("kap*M[0][0]=%g should have shrunk below 1", e.kap*e.mq[0][0])
	}
}

func Test_update_infeasible_cut_returns_nosoln(tst *testing.T) {
	chk.PrintTitle("Ell: far cut is NoSoln")
	e := NewEll(0.01, []float64{0.0, 0.0})
	cut := calc.NewDeepCut([]float64{1.0, 0.0}, 10.0)
	status := e.UpdateDeepCut(cut)
	if status != calc.NoSoln {
		tst.Fatalf("expected NoSoln, got %v", status)
	}
}

func Test_clone_isolation(tst *testing.T) {
	chk.PrintTitle("Ell: Clone isolation")
	e := NewEll(1.0, []float64{0.0, 0.0})
	c := e.Clone()
	c.UpdateDeepCut(calc.NewDeepCut([]float64{1.0, 0.0}, 0.0))
	if e.Xc()[0] != 0.0 {
		tst.Errorf("original xc mutated by clone's update: %v", e.Xc())
	}
	if math.Abs(c.Xc()[0]-e.Xc()[0]) < 1e-12 {
		tst.Errorf("clone should have diverged from the original")
	}
}

func Test_no_defer_trick_invariance(tst *testing.T) {
	chk.PrintTitle("Ell: NoDeferTrick does not change xc trajectory")
	a := NewEll(1.0, []float64{0.0, 0.0})
	b := NewEll(1.0, []float64{0.0, 0.0})
	b.NoDeferTrick = true

	cuts := []calc.Cut{
		calc.NewDeepCut([]float64{1.0, 0.0}, 0.0),
		calc.NewDeepCut([]float64{0.0, 1.0}, 0.1),
		calc.NewDeepCut([]float64{1.0, 1.0}, 0.0),
	}
	for _, cut := range cuts {
		sa := a.UpdateDeepCut(cut)
		sb := b.UpdateDeepCut(cut)
		if sa != sb {
			tst.Fatalf("status diverged: %v vs %v", sa, sb)
		}
	}
	chk.Vector(tst, "xc", 1e-9, a.Xc(), b.Xc())
}
