// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/manifold/euclidean"
	"github.com/cpmech/riemanopt/objective"
	"github.com/cpmech/riemanopt/problem"
	"github.com/cpmech/riemanopt/solver"
)

func TestConstantStepsize(t *testing.T) {
	c := solver.NewConstantStepsize(0.25)
	p := quadraticProblem()
	s := dummyState([]float64{1}, solver.NewStopAfterIteration(1))
	got, err := c.GetStepsize(p, s, 0, []float64{-1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "stepsize", 1e-15, got, 0.25)
}

func TestArmijoBacktrackingShrinksUntilDecrease(t *testing.T) {
	m := euclidean.New(1)
	cost := func(mm manifold.Manifold, p manifold.Point) (float64, error) {
		x := p.([]float64)
		return x[0] * x[0], nil
	}
	grad := func(mm manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
		x := p.([]float64)
		return []float64{2 * x[0]}, nil
	}
	prob := problem.New(m, objective.New(cost, grad))

	armijo := solver.NewArmijoBacktracking(10) // deliberately too large a first guess
	s := dummyState([]float64{1}, solver.NewStopAfterIteration(1))
	s.Gradient = []float64{2}
	direction := []float64{-2} // negative gradient

	t_, err := armijo.GetStepsize(prob, s, 1, direction)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if t_ >= 10 {
		t.Fatalf("expected backtracking to shrink below the initial guess, got %v", t_)
	}
	chk.Scalar(t, "last stepsize cached", 1e-15, armijo.GetLastStepsize(), t_)
}
