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

// TestGradientDescentConvergesOnQuadratic is scenario S1 (spec §8):
// minimize 0.5‖x‖² on ℝ¹ from x0=2 and confirm the solver lands near 0.
func TestGradientDescentConvergesOnQuadratic(t *testing.T) {
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

	result, err := solver.GradientDescent(prob, []float64{2}, solver.GradientDescentOptions{
		Stepsize:  solver.NewConstantStepsize(0.1),
		Criterion: solver.NewStopWhenGradientNormLess(1e-8),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x := solver.GetSolverResult(result).([]float64)
	chk.Scalar(t, "x[0]", 1e-4, x[0], 0)
}

func TestGradientDescentStopsAtMaxIteration(t *testing.T) {
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

	result, err := solver.GradientDescent(prob, []float64{2}, solver.GradientDescentOptions{
		Stepsize:  solver.NewConstantStepsize(1e-6),
		Criterion: solver.NewStopAfterIteration(3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.GetReason() == "" {
		t.Fatalf("expected a non-empty stop reason")
	}
}
