// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/problem"
)

// RecordAction appends one value to an in-memory log every time it runs
// (§4.7), independent of any debug printing.
type RecordAction interface {
	Record(p *problem.Problem, s State, i int)
	// Values returns the recorded log, in call order.
	Values() []interface{}
}

// RecordState decorates a State with a dictionary of hook -> actions
// (§4.7, §6): actions run at :Start once, at :Iteration every step, and at
// :Stop once the stopping criterion triggers. It forwards everything else
// to the inner state (Property 5, decorator transparency).
type RecordState struct {
	inner   State
	actions map[Hook][]RecordAction
}

// NewRecordState wraps inner with actions run every iteration. Use
// AddStartAction/AddStopAction to register actions for the other hooks.
func NewRecordState(inner State, actions ...RecordAction) *RecordState {
	r := &RecordState{inner: inner, actions: make(map[Hook][]RecordAction)}
	r.actions[HookIteration] = actions
	return r
}

// AddStartAction registers an action run once, before the first iteration.
func (r *RecordState) AddStartAction(a RecordAction) *RecordState {
	r.actions[HookStart] = append(r.actions[HookStart], a)
	return r
}

// AddStopAction registers an action run once, after the stopping criterion
// triggers.
func (r *RecordState) AddStopAction(a RecordAction) *RecordState {
	r.actions[HookStop] = append(r.actions[HookStop], a)
	return r
}

// Run invokes every action registered at hook for iteration i.
func (r *RecordState) Run(hook Hook, p *problem.Problem, i int) {
	for _, a := range r.actions[hook] {
		a.Record(p, r, i)
	}
}

// Actions returns the actions registered at hook, in registration order.
func (r *RecordState) Actions(hook Hook) []RecordAction { return r.actions[hook] }

func (r *RecordState) InnerState() State { return r.inner }

func (r *RecordState) GetIterate() manifold.Point              { return r.inner.GetIterate() }
func (r *RecordState) SetIterate(p manifold.Point)              { r.inner.SetIterate(p) }
func (r *RecordState) GetGradient() manifold.Tangent            { return r.inner.GetGradient() }
func (r *RecordState) SetGradient(x manifold.Tangent)           { r.inner.SetGradient(x) }
func (r *RecordState) GetStoppingCriterion() StoppingCriterion { return r.inner.GetStoppingCriterion() }
func (r *RecordState) GetReason() string                       { return r.inner.GetReason() }

// GetRecordAction returns the k-th action registered at hook on the first
// RecordState found while walking s's decorator chain, or nil if no
// RecordState decorates s or k is out of range (§6 get_record_action).
func GetRecordAction(s State, hook Hook, k int) RecordAction {
	rs := findRecordState(s)
	if rs == nil {
		return nil
	}
	actions := rs.actions[hook]
	if k < 0 || k >= len(actions) {
		return nil
	}
	return actions[k]
}

// GetRecord returns the recorded log of the k-th action at hook, or nil if
// none is registered (§6 get_record).
func GetRecord(s State, hook Hook, k int) []interface{} {
	a := GetRecordAction(s, hook, k)
	if a == nil {
		return nil
	}
	return a.Values()
}

func findRecordState(s State) *RecordState {
	for {
		if rs, ok := s.(*RecordState); ok {
			return rs
		}
		u, ok := s.(unwrapper)
		if !ok {
			return nil
		}
		s = u.InnerState()
	}
}

// ---------------------------------------------------------------------
// concrete record actions
// ---------------------------------------------------------------------

// RecordCost logs the cost at the current iterate.
type RecordCost struct {
	log []interface{}
}

func (r *RecordCost) Record(p *problem.Problem, s State, i int) {
	c, err := p.GetCost(concreteState(s).GetIterate())
	if err != nil {
		r.log = append(r.log, err)
		return
	}
	r.log = append(r.log, c)
}

func (r *RecordCost) Values() []interface{} { return r.log }

// RecordIterate logs a copy of the current iterate.
type RecordIterate struct {
	log []interface{}
}

func (r *RecordIterate) Record(p *problem.Problem, s State, i int) {
	cs := concreteState(s)
	r.log = append(r.log, p.GetManifold().Copy(cs.GetIterate()))
}

func (r *RecordIterate) Values() []interface{} { return r.log }

// RecordIteration logs the iteration number.
type RecordIteration struct {
	log []interface{}
}

func (r *RecordIteration) Record(p *problem.Problem, s State, i int) {
	r.log = append(r.log, i)
}

func (r *RecordIteration) Values() []interface{} { return r.log }

// RecordGroup bundles several actions so they run together on every call
// (§4.7). Each member keeps its own log; the group does not assemble the
// members' values into tuples.
type RecordGroup struct {
	Actions []RecordAction
}

func (g *RecordGroup) Record(p *problem.Problem, s State, i int) {
	for _, a := range g.Actions {
		a.Record(p, s, i)
	}
}

// Values always returns nil: callers read each member's Values()
// independently, since the tuple shape is caller-defined.
func (g *RecordGroup) Values() []interface{} { return nil }

// RecordEvery wraps another action so it only records every K-th call
// (K ≤ 0 never records), and always at i==0.
type RecordEvery struct {
	Action RecordAction
	K      int
}

func (e *RecordEvery) Record(p *problem.Problem, s State, i int) {
	if e.K <= 0 {
		return
	}
	if i == 0 || i%e.K == 0 {
		e.Action.Record(p, s, i)
	}
}

func (e *RecordEvery) Values() []interface{} { return e.Action.Values() }
