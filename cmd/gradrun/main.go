// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gradrun drives Riemannian gradient descent on a small built-in
// Euclidean demo problem (spec §8 scenario S1), printing its progress the
// way gofem's front door prints a simulation's.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/manifold/euclidean"
	"github.com/cpmech/riemanopt/objective"
	"github.com/cpmech/riemanopt/problem"
	"github.com/cpmech/riemanopt/solver"
)

func main() {
	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	n := flag.Int("n", 4, "dimension of the demo Euclidean problem")
	x0val := flag.Float64("x0", 2, "initial value of every coordinate")
	tol := flag.Float64("tol", 1e-10, "gradient-norm stopping tolerance")
	maxit := flag.Int("maxit", 100, "iteration cap alongside the gradient-norm criterion")
	step := flag.Float64("step", 0.5, "constant stepsize")
	verbose := flag.Bool("v", true, "print per-iteration debug output")
	flag.Parse()

	defer utl.DoProf(false)()

	io.PfWhite("\nriemanopt gradrun -- Riemannian gradient descent demo\n\n")

	m := euclidean.New(*n)
	cost := func(mm manifold.Manifold, p manifold.Point) (float64, error) {
		x := p.([]float64)
		sum := 0.0
		for _, xi := range x {
			sum += 0.5 * xi * xi
		}
		return sum, nil
	}
	grad := func(mm manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
		x := p.([]float64)
		out := make([]float64, len(x))
		copy(out, x)
		return out, nil
	}
	prob := problem.New(m, objective.New(cost, grad))

	x0 := make([]float64, *n)
	for i := range x0 {
		x0[i] = *x0val
	}

	crit := solver.StopWhenAny(
		solver.NewStopWhenGradientNormLess(*tol),
		solver.NewStopAfterIteration(*maxit),
	)

	opts := solver.GradientDescentOptions{
		Stepsize:  solver.NewConstantStepsize(*step),
		Criterion: crit,
	}
	if *verbose {
		opts.Debug = []solver.DebugAction{
			solver.DebugIteration{},
			solver.DebugCost{},
			solver.DebugGradientNorm{},
			solver.DebugDivider{Text: "\n"},
		}
	}

	result, err := solver.GradientDescent(prob, x0, opts)
	if err != nil {
		chk.Panic("gradrun: solve failed: %v\n", err)
	}

	x := solver.GetSolverResult(result).([]float64)
	io.Pf("\nreason: %s\n", result.GetReason())
	io.Pf("converged to: %v\n", x)
}
