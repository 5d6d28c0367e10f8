// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/cpmech/riemanopt/manifold"

// ReturnState marks a state as one the caller wants back whole (§4.7),
// mirroring objective.Return. Solve does not read the marker: it returns
// the full decorator chain whether or not a ReturnState is present;
// WantsStateReturn reports the marker.
type ReturnState struct {
	inner State
}

// NewReturnState wraps inner so WantsStateReturn recognizes it.
func NewReturnState(inner State) *ReturnState {
	return &ReturnState{inner: inner}
}

func (r *ReturnState) InnerState() State { return r.inner }

// MarksReturn reports true unconditionally; its presence is what
// WantsStateReturn looks for.
func (r *ReturnState) MarksReturn() bool { return true }

func (r *ReturnState) GetIterate() manifold.Point          { return r.inner.GetIterate() }
func (r *ReturnState) SetIterate(p manifold.Point)         { r.inner.SetIterate(p) }
func (r *ReturnState) GetGradient() manifold.Tangent        { return r.inner.GetGradient() }
func (r *ReturnState) SetGradient(x manifold.Tangent)       { r.inner.SetGradient(x) }
func (r *ReturnState) GetStoppingCriterion() StoppingCriterion { return r.inner.GetStoppingCriterion() }
func (r *ReturnState) GetReason() string                   { return r.inner.GetReason() }

type returnStateMarker interface {
	MarksReturn() bool
}

// WantsStateReturn walks s's decorator chain looking for a ReturnState
// marker, without fully unwrapping to the concrete state.
func WantsStateReturn(s State) bool {
	for {
		if m, ok := s.(returnStateMarker); ok && m.MarksReturn() {
			return true
		}
		u, ok := s.(unwrapper)
		if !ok {
			return false
		}
		s = u.InnerState()
	}
}

// GetSolverResult returns the point a caller should treat as the solve's
// answer: the concrete state's iterate, after walking past every
// decorator (§4.7). Solve itself always returns the full decorator
// chain unchanged; GetSolverResult is the convenience most callers want.
// WantsStateReturn tells a caller that discarding the decorators (as
// GetSolverResult does) would lose information the caller asked to keep.
func GetSolverResult(s State) manifold.Point {
	return concreteState(s).GetIterate()
}
