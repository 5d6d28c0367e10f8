// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver_test

import (
	"testing"

	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/manifold/euclidean"
	"github.com/cpmech/riemanopt/objective"
	"github.com/cpmech/riemanopt/problem"
	"github.com/cpmech/riemanopt/solver"
)

type countingDebug struct{ n int }

func (c *countingDebug) Execute(p *problem.Problem, s solver.State, i int) { c.n++ }

func TestDebugStateRunsIterationHookEveryStep(t *testing.T) {
	m := euclidean.New(1)
	cost := func(mm manifold.Manifold, p manifold.Point) (float64, error) {
		x := p.([]float64)
		return 0.5 * x[0] * x[0], nil
	}
	grad := func(mm manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
		x := p.([]float64)
		return []float64{x[0]}, nil
	}
	prob := problem.New(m, objective.New(cost, grad))

	start := &countingDebug{}
	iter := &countingDebug{}
	stop := &countingDebug{}

	base := solver.NewGradientDescentState([]float64{2}, solver.NewConstantStepsize(0.1), solver.NewStopAfterIteration(5))
	debugged := solver.NewDebugState(base, iter)
	debugged.AddStartAction(start)
	debugged.AddStopAction(stop)

	_, err := solver.Solve(prob, debugged)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.n != 1 {
		t.Fatalf("start action should run exactly once, ran %d", start.n)
	}
	if stop.n != 1 {
		t.Fatalf("stop action should run exactly once, ran %d", stop.n)
	}
	if iter.n != 5 {
		t.Fatalf("iteration action should run once per iteration, ran %d", iter.n)
	}
}

func TestDebugEveryGatesIterationCount(t *testing.T) {
	inner := &countingDebug{}
	every := solver.DebugEvery{Action: inner, K: 2}

	for i := 0; i <= 6; i++ {
		every.Execute(nil, nil, i)
	}
	// fires at i=0,2,4,6 -> 4 times
	if inner.n != 4 {
		t.Fatalf("expected 4 firings, got %d", inner.n)
	}
}
