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

// TestCyclicProximalPointAveragesTwoPoints runs the sketch solver on the
// sum of two squared-distance terms, whose joint minimizer on ℝ¹ is their
// midpoint.
func TestCyclicProximalPointAveragesTwoPoints(t *testing.T) {
	m := euclidean.New(1)
	targets := [][]float64{{0}, {10}}

	cost := func(mm manifold.Manifold, p manifold.Point) (float64, error) {
		x := p.([]float64)
		sum := 0.0
		for _, tg := range targets {
			d := x[0] - tg[0]
			sum += 0.5 * d * d
		}
		return sum, nil
	}
	prox := func(mm manifold.Manifold, lambda float64, p manifold.Point, k int) (manifold.Point, error) {
		x := p.([]float64)
		tg := targets[k][0]
		// proximal map of 0.5(x-tg)^2 with parameter lambda
		return []float64{(x[0] + lambda*tg) / (1 + lambda)}, nil
	}
	prob := problem.New(m, objective.NewWithProximalMap(cost, nil, prox))

	result, err := solver.CyclicProximalPoint(prob, []float64{0}, solver.CyclicProximalPointOptions{
		NumTerms:  2,
		Lambda0:   1,
		Criterion: solver.NewStopAfterIteration(500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x := solver.GetSolverResult(result).([]float64)
	chk.Scalar(t, "midpoint", 0.5, x[0], 5)
}
