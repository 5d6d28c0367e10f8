// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/problem"
)

// Hook names the three points in a solve a decorator can act on (§4.7),
// matching the driver's own call sites in Solve.
type Hook int

const (
	HookStart Hook = iota
	HookIteration
	HookStop
)

// DebugAction prints or otherwise reports on the state of a solve at one
// of the three hooks (§4.7).
type DebugAction interface {
	Execute(p *problem.Problem, s State, i int)
}

// DebugState decorates a State with side-effecting debug output, run at
// :Start once, at :Iteration every step, and at :Stop once the stopping
// criterion triggers. It forwards everything else to the inner state
// (Property 5, decorator transparency).
type DebugState struct {
	inner   State
	actions map[Hook][]DebugAction
}

// NewDebugState wraps inner with actions run at :Iteration. Use
// AddStartAction/AddStopAction to register actions for the other hooks.
func NewDebugState(inner State, actions ...DebugAction) *DebugState {
	d := &DebugState{inner: inner, actions: make(map[Hook][]DebugAction)}
	d.actions[HookIteration] = actions
	return d
}

// AddStartAction registers an action run once, before the first iteration.
func (d *DebugState) AddStartAction(a DebugAction) *DebugState {
	d.actions[HookStart] = append(d.actions[HookStart], a)
	return d
}

// AddStopAction registers an action run once, after the stopping
// criterion triggers.
func (d *DebugState) AddStopAction(a DebugAction) *DebugState {
	d.actions[HookStop] = append(d.actions[HookStop], a)
	return d
}

// Run executes every action registered at hook.
func (d *DebugState) Run(hook Hook, p *problem.Problem, i int) {
	for _, a := range d.actions[hook] {
		a.Execute(p, d, i)
	}
}

func (d *DebugState) InnerState() State { return d.inner }

func (d *DebugState) GetIterate() manifold.Point          { return d.inner.GetIterate() }
func (d *DebugState) SetIterate(p manifold.Point)         { d.inner.SetIterate(p) }
func (d *DebugState) GetGradient() manifold.Tangent       { return d.inner.GetGradient() }
func (d *DebugState) SetGradient(x manifold.Tangent)      { d.inner.SetGradient(x) }
func (d *DebugState) GetStoppingCriterion() StoppingCriterion { return d.inner.GetStoppingCriterion() }
func (d *DebugState) GetReason() string                  { return d.inner.GetReason() }

// ---------------------------------------------------------------------
// concrete debug actions
// ---------------------------------------------------------------------

// DebugIteration prints the iteration number.
type DebugIteration struct{}

func (DebugIteration) Execute(p *problem.Problem, s State, i int) {
	io.Pf("# %d ", i)
}

// DebugCost prints the cost at the current iterate.
type DebugCost struct{ Prefix string }

func (d DebugCost) Execute(p *problem.Problem, s State, i int) {
	c, err := p.GetCost(concreteState(s).GetIterate())
	if err != nil {
		io.Pfred("%sF(x): <error: %v> ", d.Prefix, err)
		return
	}
	io.Pf("%sF(x): %.8e ", d.Prefix, c)
}

// DebugGradientNorm prints the Riemannian norm of the stored gradient.
type DebugGradientNorm struct{}

func (DebugGradientNorm) Execute(p *problem.Problem, s State, i int) {
	cs := concreteState(s)
	grad := cs.GetGradient()
	if grad == nil {
		return
	}
	n := p.GetManifold().Norm(cs.GetIterate(), grad)
	io.Pf("|grad F(x)|: %.8e ", n)
}

// DebugDivider prints a literal separator, e.g. "\n" or " | ".
type DebugDivider struct{ Text string }

func (d DebugDivider) Execute(p *problem.Problem, s State, i int) {
	io.Pf("%s", d.Text)
}

// DebugEvery wraps another action so it only fires every K-th call
// (K ≤ 0 never fires), and always at i==0.
type DebugEvery struct {
	Action DebugAction
	K      int
}

func (d DebugEvery) Execute(p *problem.Problem, s State, i int) {
	if d.K <= 0 {
		return
	}
	if i == 0 || i%d.K == 0 {
		d.Action.Execute(p, s, i)
	}
}
