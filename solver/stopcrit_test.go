// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver_test

import (
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/manifold/euclidean"
	"github.com/cpmech/riemanopt/objective"
	"github.com/cpmech/riemanopt/problem"
	"github.com/cpmech/riemanopt/solver"
)

func quadraticProblem() *problem.Problem {
	m := euclidean.New(1)
	cost := func(mm manifold.Manifold, p manifold.Point) (float64, error) {
		x := p.([]float64)
		return 0.5 * x[0] * x[0], nil
	}
	grad := func(mm manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
		x := p.([]float64)
		return []float64{x[0]}, nil
	}
	return problem.New(m, objective.New(cost, grad))
}

func dummyState(p manifold.Point, crit solver.StoppingCriterion) *solver.GradientDescentState {
	return solver.NewGradientDescentState(p, solver.NewConstantStepsize(0.1), crit)
}

func TestStopAfterIterationResetAndTrigger(t *testing.T) {
	p := quadraticProblem()
	c := solver.NewStopAfterIteration(3)
	s := dummyState([]float64{1}, c)

	for i := 0; i < 3; i++ {
		if c.Evaluate(p, s, i) {
			t.Fatalf("criterion must not trigger before iteration 3, got true at i=%d", i)
		}
	}
	if !c.Evaluate(p, s, 3) {
		t.Fatalf("criterion must trigger at i=3")
	}
	if c.AtIteration() != 3 {
		t.Fatalf("AtIteration should be 3, got %d", c.AtIteration())
	}

	// reset at i==0 clears the triggered state (property: invariant a)
	if c.Evaluate(p, s, 0) {
		t.Fatalf("evaluating at i=0 must reset, not re-trigger")
	}
	if c.Reason() != "" {
		t.Fatalf("reason must be cleared after reset")
	}
}

func TestStopWhenAllNeverShortCircuits(t *testing.T) {
	p := quadraticProblem()
	a := solver.NewStopAfterIteration(5)
	b := solver.NewStopAfterIteration(2)
	all := solver.StopWhenAll(a, b)
	s := dummyState([]float64{1}, all)

	// at i=2, b has triggered but a has not: AND must not trigger yet, but
	// b's own internal triggered flag must persist (never short-circuited).
	if all.Evaluate(p, s, 2) {
		t.Fatalf("AND must not trigger while one child is unmet")
	}
	if b.AtIteration() != 2 {
		t.Fatalf("child b must still record its own trigger even though AND hasn't fired")
	}

	if !all.Evaluate(p, s, 5) {
		t.Fatalf("AND must trigger once every child has")
	}
}

func TestStopWhenAnyFlattensNesting(t *testing.T) {
	a := solver.NewStopAfterIteration(10)
	b := solver.NewStopAfterIteration(20)
	c := solver.NewStopAfterIteration(30)
	nested := solver.StopWhenAny(solver.StopWhenAny(a, b), c)
	chk.IntAssert(len(solver.Children(nested)), 3)
}

func TestUpdateStoppingCriterionPropagatesThroughTree(t *testing.T) {
	a := solver.NewStopAfterIteration(100)
	b := solver.NewStopWhenGradientNormLess(1e-6)
	tree := solver.StopWhenAny(a, b)

	solver.UpdateStoppingCriterion(tree, "MaxIteration", 7)
	solver.UpdateStoppingCriterion(tree, "MinGradNorm", 1e-3)
	solver.UpdateStoppingCriterion(tree, "NoSuchKey", 42) // silently ignored

	chk.IntAssert(a.N, 7)
	chk.Scalar(t, "epsilon", 1e-15, b.Epsilon, 1e-3)
}

func TestIndicatesConvergence(t *testing.T) {
	p := quadraticProblem()
	iterCap := solver.NewStopAfterIteration(5)
	gradTol := solver.NewStopWhenGradientNormLess(10) // will trigger immediately
	tree := solver.StopWhenAny(iterCap, gradTol)
	s := dummyState([]float64{0.01}, tree)
	s.Gradient = []float64{0.01}

	if tree.Evaluate(p, s, 1) == false {
		t.Fatalf("expected gradTol to trigger the OR")
	}
	if !solver.IndicatesConvergence(tree) {
		t.Fatalf("gradient-norm trigger must indicate convergence")
	}
}

func TestIndicatesConvergenceAndNodeNeedsOnlyOneWitness(t *testing.T) {
	p := quadraticProblem()
	iterCap := solver.NewStopAfterIteration(10)
	gradTol := solver.NewStopWhenGradientNormLess(1e-3)
	tree := solver.StopWhenAll(iterCap, gradTol)
	s := dummyState([]float64{0}, tree)
	s.Gradient = []float64{0}

	// both children trigger simultaneously at i=10 (S4, §8): iterCap on
	// the iteration count, gradTol because the gradient is already ~0.
	if !tree.Evaluate(p, s, 10) {
		t.Fatalf("AND must trigger once every child has")
	}
	if !solver.IndicatesConvergence(tree) {
		t.Fatalf("gradTol is a convergence witness even though its sibling iterCap is not")
	}
}

func TestStopAfterWithFakeClock(t *testing.T) {
	p := quadraticProblem()
	fc := &fakeClock{t: time.Unix(0, 0)}
	c := solver.NewStopAfterWithClock(5*time.Second, fc)
	s := dummyState([]float64{1}, c)

	if c.Evaluate(p, s, 0) {
		t.Fatalf("must not trigger immediately")
	}
	fc.t = fc.t.Add(10 * time.Second)
	if !c.Evaluate(p, s, 1) {
		t.Fatalf("must trigger once the fake clock has advanced past Delta")
	}
}

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time { return f.t }
