// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapter_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riemanopt/adapter"
	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/manifold/euclidean"
	"github.com/cpmech/riemanopt/solver"
)

func TestModelOptimizeMinimizesQuadratic(t *testing.T) {
	vm := adapter.NewVectorizedManifold(euclidean.New(2))
	cost := func(x []float64) (float64, error) {
		return 0.5 * (x[0]*x[0] + x[1]*x[1]), nil
	}
	grad := func(x []float64) ([]float64, error) {
		return []float64{x[0], x[1]}, nil
	}
	m := adapter.NewModel(vm, cost, grad)
	m.SetOption("stepsize", solver.NewConstantStepsize(0.1))
	m.SetOption("stopping_criterion", solver.NewStopWhenGradientNormLess(1e-8))

	if m.GetStatus() != adapter.OptimizeNotCalled {
		t.Fatalf("status must start as OptimizeNotCalled")
	}

	err := m.Optimize([]float64{3, -4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.GetStatus() != adapter.LocallySolved {
		t.Fatalf("expected LocallySolved, got %v", m.GetStatus())
	}
	if m.GetPrimalStatus() != adapter.FeasiblePoint {
		t.Fatalf("expected FeasiblePoint")
	}
	if m.GetDualStatus() != adapter.DualNoSolution {
		t.Fatalf("dual status must always be NoSolution")
	}

	result := m.GetResult()
	chk.Scalar(t, "x0", 1e-3, result[0], 0)
	chk.Scalar(t, "x1", 1e-3, result[1], 0)

	if m.GetReason() == "" {
		t.Fatalf("expected a non-empty reason after solving")
	}
}

func TestModelMaximizeInvertsSign(t *testing.T) {
	vm := adapter.NewVectorizedManifold(euclidean.New(1))
	// f(x) = -0.5x^2 has a maximum at x=0; minimizing -f converges there too.
	cost := func(x []float64) (float64, error) { return -0.5 * x[0] * x[0], nil }
	grad := func(x []float64) ([]float64, error) { return []float64{-x[0]}, nil }

	m := adapter.NewModel(vm, cost, grad)
	m.SetMaximize(true)
	m.SetOption("stepsize", solver.NewConstantStepsize(0.1))
	m.SetOption("stopping_criterion", solver.NewStopWhenGradientNormLess(1e-8))

	if err := m.Optimize([]float64{2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "x0", 1e-3, m.GetResult()[0], 0)
}

func TestModelRejectsNonVectorizableManifold(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic wrapping a non-Vectorizable manifold")
		}
	}()
	adapter.NewVectorizedManifold(nonVectorizable{})
}

// nonVectorizable implements manifold.Manifold but not
// manifold.Vectorizable, to exercise NewVectorizedManifold's guard.
type nonVectorizable struct{}

func (nonVectorizable) Dim() int                                                  { return 1 }
func (nonVectorizable) Inner(p manifold.Point, x, y manifold.Tangent) float64      { return 0 }
func (nonVectorizable) Norm(p manifold.Point, x manifold.Tangent) float64          { return 0 }
func (nonVectorizable) Distance(p, q manifold.Point, method manifold.Method) float64 { return 0 }
func (nonVectorizable) Retract(p manifold.Point, x manifold.Tangent, t float64, method manifold.Method) manifold.Point {
	return p
}
func (nonVectorizable) InverseRetract(p, q manifold.Point, method manifold.Method) manifold.Tangent {
	return nil
}
func (nonVectorizable) VectorTransportTo(p manifold.Point, x manifold.Tangent, q manifold.Point, method manifold.Method) manifold.Tangent {
	return x
}
func (nonVectorizable) RiemannianGradient(p manifold.Point, euclideanGrad manifold.Tangent) manifold.Tangent {
	return euclideanGrad
}
func (nonVectorizable) ZeroVector(p manifold.Point) manifold.Tangent { return nil }
func (nonVectorizable) Scale(p manifold.Point, a float64, x manifold.Tangent) manifold.Tangent {
	return x
}
func (nonVectorizable) Add(p manifold.Point, x, y manifold.Tangent) manifold.Tangent { return x }
func (nonVectorizable) Copy(p manifold.Point) manifold.Point                         { return p }
func (nonVectorizable) DefaultRetraction() manifold.Method                           { return "" }
func (nonVectorizable) DefaultInverseRetraction() manifold.Method                    { return "" }
func (nonVectorizable) DefaultVectorTransport() manifold.Method                      { return "" }
