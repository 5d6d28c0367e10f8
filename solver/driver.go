// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/riemanopt/problem"
)

// stepper is implemented by every concrete solver state; Solve dispatches
// to it after unwrapping decorators (§4.4). It mirrors the type-switch
// dispatch fem's FEsolver interface uses internally, but keyed off the
// concrete state type instead of a registered name.
type stepper interface {
	step(p *problem.Problem, i int) error
}

func (s *GradientDescentState) step(p *problem.Problem, i int) error {
	return gradientDescentStep(p, s, i)
}

func (s *CyclicProximalPointState) step(p *problem.Problem, i int) error {
	return cyclicProximalPointStep(p, s, i)
}

// StartHook, IterationHook and StopHook are optional capabilities a state
// decorator chain may implement to be notified at the three points in a
// solve (§4.7): once before iteration 0, once per iteration, and once
// when the stopping criterion has triggered.
type StartHook interface {
	RunStart(p *problem.Problem)
}

type IterationHook interface {
	RunIteration(p *problem.Problem, i int)
}

type StopHook interface {
	RunStop(p *problem.Problem, i int)
}

func (d *DebugState) RunStart(p *problem.Problem)          { d.Run(HookStart, p, 0) }
func (d *DebugState) RunIteration(p *problem.Problem, i int) { d.Run(HookIteration, p, i) }
func (d *DebugState) RunStop(p *problem.Problem, i int)      { d.Run(HookStop, p, i) }

func (r *RecordState) RunStart(p *problem.Problem)            { r.Run(HookStart, p, 0) }
func (r *RecordState) RunIteration(p *problem.Problem, i int) { r.Run(HookIteration, p, i) }
func (r *RecordState) RunStop(p *problem.Problem, i int)      { r.Run(HookStop, p, i) }

// Solve drives s against p until its stopping criterion triggers,
// stepping the concrete, solver-specific state each iteration and
// forwarding to any hooks the decorator chain implements (§4.4, §4.7).
//
// The original specification returns the bare post-solve state; this
// port returns (State, error) instead, since a stepper's step can fail
// (e.g. a line search exhausting its budget) and idiomatic Go surfaces
// that through an explicit error rather than a panic or a sentinel
// state field.
func Solve(p *problem.Problem, s State) (State, error) {
	cs := concreteState(s)
	st, ok := cs.(stepper)
	if !ok {
		return s, &UnsupportedStateError{State: cs}
	}

	runStart(p, s)

	crit := cs.GetStoppingCriterion()
	i := 0
	for !crit.Evaluate(p, s, i) {
		i++
		if err := st.step(p, i); err != nil {
			return s, err
		}
		runIteration(p, s, i)
	}
	runStop(p, s, i)

	return s, nil
}

func runStart(p *problem.Problem, s State) {
	for cur := s; ; {
		if h, ok := cur.(StartHook); ok {
			h.RunStart(p)
		}
		u, ok := cur.(unwrapper)
		if !ok {
			return
		}
		cur = u.InnerState()
	}
}

func runIteration(p *problem.Problem, s State, i int) {
	for cur := s; ; {
		if h, ok := cur.(IterationHook); ok {
			h.RunIteration(p, i)
		}
		u, ok := cur.(unwrapper)
		if !ok {
			return
		}
		cur = u.InnerState()
	}
}

func runStop(p *problem.Problem, s State, i int) {
	for cur := s; ; {
		if h, ok := cur.(StopHook); ok {
			h.RunStop(p, i)
		}
		u, ok := cur.(unwrapper)
		if !ok {
			return
		}
		cur = u.InnerState()
	}
}

// UnsupportedStateError reports that a concrete state does not implement
// the stepper a solver needs (§7).
type UnsupportedStateError struct {
	State State
}

func (e *UnsupportedStateError) Error() string {
	return "solver: state does not implement a known step function"
}
