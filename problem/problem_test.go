// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/manifold/euclidean"
	"github.com/cpmech/riemanopt/objective"
	"github.com/cpmech/riemanopt/problem"
)

func TestProblemForwarding(t *testing.T) {
	m := euclidean.New(1)
	cost := func(mm manifold.Manifold, p manifold.Point) (float64, error) {
		x := p.([]float64)
		return 0.5 * x[0] * x[0], nil
	}
	grad := func(mm manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
		x := p.([]float64)
		return []float64{x[0]}, nil
	}
	o := objective.New(cost, grad)
	p := problem.New(m, o)

	c, err := p.GetCost([]float64{2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "cost", 1e-15, c, 2)

	g, err := p.GetGradient([]float64{2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Array(t, "grad", 1e-15, g.([]float64), []float64{2})

	if p.GetManifold() != m {
		t.Fatalf("GetManifold should return the bound manifold")
	}
}
