// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapter implements the modeling-layer adapter of §6: the
// narrow boundary a third-party algebraic-modeling front end uses to
// drive the solver engine without ever importing solver/problem/manifold
// types itself. It vectorizes a manifold's points into flat variable
// arrays and back, the way an AMPL/JuMP-style front end expects.
package adapter

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/objective"
	"github.com/cpmech/riemanopt/problem"
	"github.com/cpmech/riemanopt/solver"
)

// Status mirrors a MOI-style termination status: OptimizeNotCalled until
// Optimize runs, then LocallySolved once the engine returns (§6).
type Status int

const (
	OptimizeNotCalled Status = iota
	LocallySolved
	NoSolution
)

func (s Status) String() string {
	switch s {
	case OptimizeNotCalled:
		return "OPTIMIZE_NOT_CALLED"
	case LocallySolved:
		return "LOCALLY_SOLVED"
	case NoSolution:
		return "NO_SOLUTION"
	default:
		return "UNKNOWN"
	}
}

// PrimalStatus is FeasiblePoint iff a result exists, NoSolution otherwise.
type PrimalStatus int

const (
	PrimalNoSolution PrimalStatus = iota
	FeasiblePoint
)

func (s PrimalStatus) String() string {
	if s == FeasiblePoint {
		return "FEASIBLE_POINT"
	}
	return "NO_SOLUTION"
}

// DualStatus is always NoSolution: the engine never produces a dual
// certificate (§6).
type DualStatus int

const DualNoSolution DualStatus = 0

func (DualStatus) String() string { return "NO_SOLUTION" }

// VectorizedManifold wraps a manifold.Manifold that also implements
// manifold.Vectorizable, exposing it as a flat variable set of dimension
// Dim() the way a modeling front end's variable bookkeeping expects.
type VectorizedManifold struct {
	M manifold.Manifold
	V manifold.Vectorizable
}

// NewVectorizedManifold requires m to implement manifold.Vectorizable;
// it panics via chk.Panic otherwise, mirroring a configuration error
// caught at setup (§7).
func NewVectorizedManifold(m manifold.Manifold) *VectorizedManifold {
	v, ok := m.(manifold.Vectorizable)
	if !ok {
		chk.Panic("adapter: manifold %T does not implement Vectorizable", m)
	}
	return &VectorizedManifold{M: m, V: v}
}

// Dim returns the flat variable count.
func (vm *VectorizedManifold) Dim() int { return vm.M.Dim() }

// VectorCostFunc is a user cost expressed over the flat variable array,
// the shape an algebraic-modeling layer actually has on hand.
type VectorCostFunc func(x []float64) (float64, error)

// VectorGradFunc is the corresponding Euclidean gradient, over the same
// flat array, before any Riemannian correction.
type VectorGradFunc func(x []float64) ([]float64, error)

// Model is the vectorized, modeling-facing entry point: build one, call
// SetOption as needed, then Optimize.
type Model struct {
	vm            *VectorizedManifold
	cost          VectorCostFunc
	grad          VectorGradFunc
	maximize      bool
	options       map[string]interface{}
	status        Status
	result        []float64
	resultState   solver.State
}

// NewModel binds a vectorized manifold with a vectorized cost and
// (Euclidean, pre-Riemannian-correction) gradient.
func NewModel(vm *VectorizedManifold, cost VectorCostFunc, grad VectorGradFunc) *Model {
	return &Model{
		vm:      vm,
		cost:    cost,
		grad:    grad,
		options: make(map[string]interface{}),
		status:  OptimizeNotCalled,
	}
}

// SetOption records an opaque configuration key/value (§6). Optimize
// reads three keys: "descent_state_type" (selects the solver family),
// "stepsize" (a solver.Stepsize) and "stopping_criterion" (a
// solver.StoppingCriterion), the latter two copied into the solver's
// options. Any other key is stored but not passed on to the solver.
func (m *Model) SetOption(key string, value interface{}) {
	m.options[key] = value
}

// SetMaximize flips the adapter to maximize instead of minimize, by
// inverting the sign of cost and gradient before handing them to the
// engine (§6).
func (m *Model) SetMaximize(maximize bool) {
	m.maximize = maximize
}

// Optimize reshapes x0 onto the manifold (§9: "reshape first, then call
// riemannian_gradient"), builds a Problem, runs the solver family named
// by "descent_state_type" (gradient_descent by default), and records the
// result.
func (m *Model) Optimize(x0 []float64) error {
	sign := 1.0
	if m.maximize {
		sign = -1.0
	}

	cost := func(mm manifold.Manifold, p manifold.Point) (float64, error) {
		x := m.vm.V.Flatten(p)
		c, err := m.cost(x)
		if err != nil {
			return 0, err
		}
		return sign * c, nil
	}
	grad := func(mm manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
		x := m.vm.V.Flatten(p)
		g, err := m.grad(x)
		if err != nil {
			return nil, err
		}
		if sign < 0 {
			for i := range g {
				g[i] *= sign
			}
		}
		euclideanGrad := m.vm.V.Reshape(g)
		return mm.RiemannianGradient(p, euclideanGrad), nil
	}

	p0 := m.vm.V.Reshape(x0)
	prob := problem.New(m.vm.M, objective.New(cost, grad))

	kind, _ := m.options["descent_state_type"].(string)
	var (
		result solver.State
		err    error
	)
	switch kind {
	case "", "gradient_descent":
		opts := solver.GradientDescentOptions{}
		if s, ok := m.options["stepsize"].(solver.Stepsize); ok {
			opts.Stepsize = s
		}
		if c, ok := m.options["stopping_criterion"].(solver.StoppingCriterion); ok {
			opts.Criterion = c
		}
		result, err = solver.GradientDescent(prob, p0, opts)
	default:
		return chk.Err("adapter: unrecognized descent_state_type %q", kind)
	}
	if err != nil {
		m.status = NoSolution
		return err
	}

	m.status = LocallySolved
	m.resultState = result
	m.result = m.vm.V.Flatten(solver.GetSolverResult(result))
	return nil
}

// GetStatus returns the termination status (§6).
func (m *Model) GetStatus() Status { return m.status }

// GetPrimalStatus returns FeasiblePoint iff a result exists.
func (m *Model) GetPrimalStatus() PrimalStatus {
	if m.result != nil {
		return FeasiblePoint
	}
	return PrimalNoSolution
}

// GetDualStatus is always NoSolution (§6).
func (m *Model) GetDualStatus() DualStatus { return DualNoSolution }

// GetResult returns the flat vectorized solution, or nil if Optimize has
// not been called or failed.
func (m *Model) GetResult() []float64 { return m.result }

// GetReason returns the post-solve stop reason with leading and trailing
// whitespace removed (§9: expose the stripped form, not the raw "TODO"
// stub variant the source has). The ";" that ends each criterion's reason
// is kept; only the space after it is trimmed.
func (m *Model) GetReason() string {
	if m.resultState == nil {
		return ""
	}
	return strings.TrimSpace(m.resultState.GetReason())
}
