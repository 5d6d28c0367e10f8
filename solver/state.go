// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the engine core: the generic state/driver
// abstraction (§4.4), the stopping-criterion algebra (§4.6), the stepsize
// rules (§4.5), the debug/record/return state decorators (§4.7), storage
// actions (§4.8), and the concrete gradient-descent (§4.4) and
// cyclic-proximal-point (sketch, §9) solvers.
package solver

import "github.com/cpmech/riemanopt/manifold"

// State is the capability bundle every solver's mutable per-run data must
// satisfy (§3, §4.4). The driver never inspects anything beyond this
// interface; concrete solver steps recover solver-specific fields by type
// switching on the unwrapped concrete state (see concreteState).
type State interface {
	// GetIterate returns the current iterate.
	GetIterate() manifold.Point

	// SetIterate replaces the current iterate.
	SetIterate(p manifold.Point)

	// GetGradient returns the most recently computed gradient.
	GetGradient() manifold.Tangent

	// SetGradient replaces the stored gradient.
	SetGradient(x manifold.Tangent)

	// GetStoppingCriterion returns the criterion this state is evaluated
	// against every iteration.
	GetStoppingCriterion() StoppingCriterion

	// GetReason returns the human-readable reason the stopping criterion
	// triggered, or "" if it has not (§6 get_reason).
	GetReason() string
}

// unwrapper is implemented by every state decorator (§4.7) so the driver
// and helpers can walk back to the concrete, solver-specific state.
type unwrapper interface {
	InnerState() State
}

// concreteState walks a decorator chain down to the innermost state: the
// one actually holding solver-specific fields (direction, stepsize rule,
// etc). Property 5 (decorator transparency) relies on every decorator
// forwarding GetIterate/SetIterate to this same inner state.
func concreteState(s State) State {
	for {
		u, ok := s.(unwrapper)
		if !ok {
			return s
		}
		s = u.InnerState()
	}
}

// NumericField is an optional capability a concrete state may implement so
// that StopWhenSmallerOrEqual (§4.6) can read an arbitrary named numeric
// field without the stopping-criterion package knowing the state's
// concrete type.
type NumericField interface {
	// NumericField returns the named field's value, and whether the name
	// was recognized.
	NumericField(name string) (float64, bool)
}

// StepsizeAware is an optional capability exposing the most recently used
// stepsize, read by StopWhenStepsizeLess and get_last_stepsize (§4.5, §4.6).
type StepsizeAware interface {
	GetLastStepsize() float64
}
