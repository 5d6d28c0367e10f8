// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/problem"
)

// Stepsize computes the step length used to move from the current
// iterate along a descent direction (§4.5).
type Stepsize interface {
	// GetStepsize returns the step length for the current iteration.
	// direction is the tangent vector the solver is about to retract
	// along; typically the negative Riemannian gradient.
	GetStepsize(p *problem.Problem, s State, i int, direction manifold.Tangent) (float64, error)
}

// ---------------------------------------------------------------------
// ConstantStepsize
// ---------------------------------------------------------------------

// ConstantStepsize always returns the same step length (§4.5).
type ConstantStepsize struct {
	Length float64
}

// NewConstantStepsize returns a Stepsize rule fixed at length.
func NewConstantStepsize(length float64) *ConstantStepsize {
	return &ConstantStepsize{Length: length}
}

func (c *ConstantStepsize) GetStepsize(p *problem.Problem, s State, i int, direction manifold.Tangent) (float64, error) {
	return c.Length, nil
}

// ---------------------------------------------------------------------
// ArmijoBacktracking
// ---------------------------------------------------------------------

// ArmijoBacktracking implements Armijo backtracking line search along a
// retraction (§4.5): starting from InitialStepsize, shrink by Contraction
// until the sufficient-decrease condition holds or MaxSteps is hit.
//
//	f(R_p(t·d)) <= f(p) + SufficientDecrease * t * <grad f(p), d>_p
type ArmijoBacktracking struct {
	InitialStepsize   float64
	Contraction       float64
	SufficientDecrease float64
	MaxSteps          int
	Retraction        manifold.Method

	lastStepsize float64
}

// NewArmijoBacktracking returns an Armijo backtracking rule with the
// conventional defaults (contraction 0.5, sufficient decrease 1e-4).
func NewArmijoBacktracking(initialStepsize float64) *ArmijoBacktracking {
	return &ArmijoBacktracking{
		InitialStepsize:    initialStepsize,
		Contraction:        0.5,
		SufficientDecrease: 1e-4,
		MaxSteps:           50,
	}
}

func (a *ArmijoBacktracking) GetStepsize(p *problem.Problem, s State, i int, direction manifold.Tangent) (float64, error) {
	m := p.GetManifold()
	point := s.GetIterate()
	grad := s.GetGradient()

	f0, err := p.GetCost(point)
	if err != nil {
		return 0, err
	}
	slope := m.Inner(point, grad, direction)

	t := a.InitialStepsize
	for k := 0; k < a.MaxSteps; k++ {
		candidate := m.Retract(point, direction, t, a.Retraction)
		fc, err := p.GetCost(candidate)
		if err != nil {
			return 0, err
		}
		if fc <= f0+a.SufficientDecrease*t*slope {
			break
		}
		t *= a.Contraction
	}
	a.lastStepsize = t
	return t, nil
}

// GetLastStepsize returns the stepsize chosen on the most recent call to
// GetStepsize, satisfying StepsizeAware for states that delegate to it.
func (a *ArmijoBacktracking) GetLastStepsize() float64 { return a.lastStepsize }
