// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/problem"
)

// DirectionUpdate computes the descent direction from the state's current
// iterate and freshly-computed gradient (§4.4 step 2: d ← direction_update
// (S, X)). The default, used when a state's DirectionUpdate is nil, is the
// negative gradient.
type DirectionUpdate func(p *problem.Problem, s *GradientDescentState, i int, grad manifold.Tangent) manifold.Tangent

func defaultDirectionUpdate(p *problem.Problem, s *GradientDescentState, i int, grad manifold.Tangent) manifold.Tangent {
	return p.GetManifold().Scale(s.Iterate, -1, grad)
}

// GradientDescentState is the concrete per-run state of the gradient
// descent solver (§4.4): current iterate, last gradient, descent
// direction, the stepsize rule, the stopping criterion driving the loop,
// an overridable direction_update (§3), and the retraction handle the
// final update moves along (§6 retraction_method).
type GradientDescentState struct {
	Iterate          manifold.Point
	Gradient         manifold.Tangent
	Direction        manifold.Tangent
	Stepsize         Stepsize
	Criterion        StoppingCriterion
	DirectionUpdate  DirectionUpdate
	RetractionMethod manifold.Method

	lastStepsize float64
}

// NewGradientDescentState builds the initial state for a gradient descent
// run starting at p0, using step as the stepsize rule and crit as the
// stopping criterion. DirectionUpdate defaults to the negative gradient;
// RetractionMethod defaults to "" (the manifold's own default).
func NewGradientDescentState(p0 manifold.Point, step Stepsize, crit StoppingCriterion) *GradientDescentState {
	return &GradientDescentState{
		Iterate:         p0,
		Stepsize:        step,
		Criterion:       crit,
		DirectionUpdate: defaultDirectionUpdate,
	}
}

func (s *GradientDescentState) GetIterate() manifold.Point              { return s.Iterate }
func (s *GradientDescentState) SetIterate(p manifold.Point)              { s.Iterate = p }
func (s *GradientDescentState) GetGradient() manifold.Tangent            { return s.Gradient }
func (s *GradientDescentState) SetGradient(x manifold.Tangent)           { s.Gradient = x }
func (s *GradientDescentState) GetStoppingCriterion() StoppingCriterion { return s.Criterion }
func (s *GradientDescentState) GetReason() string                       { return s.Criterion.Reason() }
func (s *GradientDescentState) GetLastStepsize() float64                { return s.lastStepsize }

// gradientDescentStep performs one iteration: compute the Riemannian
// gradient, apply direction_update to get a descent direction, move along
// it by the stepsize rule's chosen length, retract along the state's own
// RetractionMethod, and store the result (§4.4). The stepsize rule is
// threaded the same direction and (when it is an ArmijoBacktracking with
// no retraction of its own) the same RetractionMethod, so the line
// search's trial evaluations and the actual update move along the same
// retraction (testable property 4).
func gradientDescentStep(p *problem.Problem, s *GradientDescentState, i int) error {
	m := p.GetManifold()
	grad, err := p.GetGradient(s.Iterate)
	if err != nil {
		return err
	}
	s.Gradient = grad

	du := s.DirectionUpdate
	if du == nil {
		du = defaultDirectionUpdate
	}
	s.Direction = du(p, s, i, grad)

	if a, ok := s.Stepsize.(*ArmijoBacktracking); ok && a.Retraction == "" {
		a.Retraction = s.RetractionMethod
	}

	t, err := s.Stepsize.GetStepsize(p, s, i, s.Direction)
	if err != nil {
		return err
	}
	s.lastStepsize = t

	s.Iterate = m.Retract(s.Iterate, s.Direction, t, s.RetractionMethod)
	return nil
}

// GradientDescentOptions configures GradientDescent (§6, the high-level
// convenience entry point analogous to gofem's driver-options struct).
type GradientDescentOptions struct {
	Stepsize         Stepsize
	Criterion        StoppingCriterion
	DirectionUpdate  DirectionUpdate
	RetractionMethod manifold.Method
	Debug            []DebugAction
	Record           []RecordAction
}

// GradientDescent runs gradient descent on p starting from p0 and returns
// the final state after Solve returns (§4.4, §6).
func GradientDescent(p *problem.Problem, p0 manifold.Point, opts GradientDescentOptions) (State, error) {
	step := opts.Stepsize
	if step == nil {
		step = NewConstantStepsize(1e-2)
	}
	crit := opts.Criterion
	if crit == nil {
		crit = NewStopAfterIteration(1000)
	}

	gds := NewGradientDescentState(p0, step, crit)
	gds.RetractionMethod = opts.RetractionMethod
	if opts.DirectionUpdate != nil {
		gds.DirectionUpdate = opts.DirectionUpdate
	}
	if a, ok := step.(*ArmijoBacktracking); ok && a.Retraction == "" {
		a.Retraction = opts.RetractionMethod
	}

	var s State = gds
	if len(opts.Debug) > 0 {
		s = NewDebugState(s, opts.Debug...)
	}
	if len(opts.Record) > 0 {
		s = NewRecordState(s, opts.Record...)
	}

	return Solve(p, s)
}
