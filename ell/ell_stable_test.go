// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ell

import (
	"testing"

	"github.com/cpmech/ellopt/calc"
	"github.com/cpmech/gosl/chk"
)

// invariant 8: EllStable must track Ell exactly on the same cut sequence.
func Test_stable_matches_explicit(tst *testing.T) {
	chk.PrintTitle("EllStable == Ell on the same cut sequence")
	a := NewEll(10.0, []float64{0.0, 0.0, 0.0})
	b := NewEllStable(10.0, []float64{0.0, 0.0, 0.0})

	cuts := []calc.Cut{
		calc.NewDeepCut([]float64{1.0, 0.0, 0.0}, 0.1),
		calc.NewDeepCut([]float64{0.0, 1.0, 0.0}, 0.0),
		calc.NewDeepCut([]float64{1.0, 1.0, 1.0}, 0.05),
		calc.NewDeepCut([]float64{0.0, 0.0, 1.0}, 0.2),
	}
	for i, cut := range cuts {
		sa := a.UpdateDeepCut(cut)
		sb := b.UpdateDeepCut(cut)
		if sa != sb {
			tst.Fatalf("iter %d: status diverged: %v vs %v", i, sa, sb)
		}
		if sa != calc.Success {
			break
		}
		chk.Vector(tst, "xc", 1e-8, a.Xc(), b.Xc())
		chk.Scalar(tst, "tsq", 1e-8, a.Tsq(), b.Tsq())
	}
}

func Test_stable_clone_isolation(tst *testing.T) {
	chk.PrintTitle("EllStable: Clone isolation")
	e := NewEllStable(1.0, []float64{0.0, 0.0})
	c := e.Clone()
	c.UpdateDeepCut(calc.NewDeepCut([]float64{1.0, 0.0}, 0.0))
	if e.Xc()[0] != 0.0 {
		tst.Errorf("original xc mutated by clone's update: %v", e.Xc())
	}
}

func Test_stable_no_defer_trick_invariance(tst *testing.T) {
	chk.PrintTitle("EllStable: NoDeferTrick does not change xc trajectory")
	a := NewEllStable(1.0, []float64{0.0, 0.0})
	b := NewEllStable(1.0, []float64{0.0, 0.0})
	b.NoDeferTrick = true

	cuts := []calc.Cut{
		calc.NewDeepCut([]float64{1.0, 0.0}, 0.0),
		calc.NewDeepCut([]float64{0.0, 1.0}, 0.1),
	}
	for _, cut := range cuts {
		sa := a.UpdateDeepCut(cut)
		sb := b.UpdateDeepCut(cut)
		if sa != sb {
			tst.Fatalf("status diverged: %v vs %v", sa, sb)
		}
	}
	chk.Vector(tst, "xc", 1e-8, a.Xc(), b.Xc())
}

func Test_stable_diag_length_mismatch_panics(tst *testing.T) {
	chk.PrintTitle("NewEllStableDiag: length mismatch panics")
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("expected a panic but none occurred")
		}
	}()
	NewEllStableDiag([]float64{1.0}, []float64{0.0, 0.0})
}
