// Copyright 2024 The Ellopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"math"

	"github.com/cpmech/ellopt/calc"
	"github.com/cpmech/ellopt/cutplane"
	"github.com/cpmech/ellopt/ell"
	"github.com/cpmech/ellopt/internal/demo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 6; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nEllopt demo -- ellipsoid method with cutting planes\n\n")

	example := flag.String("example", "wedge", "which worked example to run: wedge | quasicvx")
	verbose := flag.Bool("v", false, "trace every driver iteration")
	flag.Parse()

	cutplane.Verbose = *verbose
	ell.Verbose = *verbose
	calc.Verbose = *verbose

	switch *example {
	case "wedge":
		runWedge()
	case "quasicvx":
		runQuasicvx()
	default:
		chk.Panic("unknown -example %q: want wedge or quasicvx", *example)
	}
}

func runWedge() {
	space := ell.NewEllStable(10.0, []float64{0.0, 0.0})
	omega := demo.Wedge{}
	xbest, fbest, niter := cutplane.Optim(omega, space, math.Inf(-1), calc.NewOptions())
	if xbest == nil {
		io.Pfred("wedge: infeasible after %d iterations\n", niter)
		return
	}
	io.Pfgreen("wedge: x=%v f=%g after %d iterations\n", xbest, fbest, niter)
}

func runQuasicvx() {
	space := ell.NewEll(10.0, []float64{1.0, 1.0})
	omega := demo.Quasicvx{}
	xbest, fbest, niter := cutplane.Optim(omega, space, 0.0, calc.NewOptions())
	if xbest == nil {
		io.Pfred("quasicvx: infeasible after %d iterations\n", niter)
		return
	}
	io.Pfgreen("quasicvx: x=%v f=%g after %d iterations\n", xbest, fbest, niter)
}
