// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/problem"
)

// StoppingCriterion is the callable contract of §3/§4.6: a predicate
// evaluated every iteration with two observable side-effect fields.
//
// Invariants (§3):
//
//	(a) Evaluate(·,·,0) resets Reason()="" and AtIteration()=0.
//	(b) once triggered, Reason()/AtIteration() persist until the next
//	    reset at i=0.
type StoppingCriterion interface {
	Evaluate(p *problem.Problem, s State, i int) bool
	Reason() string
	AtIteration() int
}

// Updatable is implemented by leaf criteria that recognize one or more
// symbol keys for update_stopping_criterion (§4.6). Unrecognized keys are
// silently ignored (§7) — UpdateField reports whether the key was
// recognized so the leaf, not the combinator, makes that call.
type Updatable interface {
	UpdateField(key string, value float64) bool
}

// ConvergenceIndicator is implemented by leaf criteria that semantically
// mean "near a stationary point" (§4.6 indicates_convergence).
type ConvergenceIndicator interface {
	IndicatesConvergence() bool
}

// Clock abstracts the time source StopAfter polls, so it can be faked in
// tests (§9 design notes: "inject a clock for testability").
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock is the default, wall-clock Clock.
var RealClock Clock = realClock{}

// leaf holds the bookkeeping every concrete criterion shares: the
// triggered/reason/at-iteration bundle and the i==0 reset rule.
type leaf struct {
	triggered   bool
	reason      string
	atIteration int
}

func (l *leaf) Reason() string    { return l.reason }
func (l *leaf) AtIteration() int  { return l.atIteration }
func (l *leaf) resetIfStart(i int) {
	if i == 0 {
		l.triggered = false
		l.reason = ""
		l.atIteration = 0
	}
}

func (l *leaf) fire(i int, reason string) {
	l.triggered = true
	l.reason = reason
	l.atIteration = i
}

// ---------------------------------------------------------------------
// StopAfterIteration
// ---------------------------------------------------------------------

// StopAfterIteration triggers when i ≥ N.
type StopAfterIteration struct {
	leaf
	N int
}

// NewStopAfterIteration returns a criterion that stops once i reaches n.
func NewStopAfterIteration(n int) *StopAfterIteration {
	return &StopAfterIteration{N: n}
}

func (c *StopAfterIteration) Evaluate(p *problem.Problem, s State, i int) bool {
	c.resetIfStart(i)
	if c.triggered {
		return true
	}
	if i >= c.N {
		c.fire(i, io.Sf("max iteration %d reached (i=%d); ", c.N, i))
	}
	return c.triggered
}

func (c *StopAfterIteration) UpdateField(key string, value float64) bool {
	if key != "MaxIteration" {
		return false
	}
	c.N = int(value)
	return true
}

func (c *StopAfterIteration) IndicatesConvergence() bool { return false }

// ---------------------------------------------------------------------
// StopAfter (wall clock)
// ---------------------------------------------------------------------

// StopAfter triggers once the wall-clock time since its first Evaluate
// call (after the last i==0 reset) reaches Δt.
type StopAfter struct {
	leaf
	Delta     time.Duration
	clock     Clock
	started   bool
	startTime time.Time
}

// NewStopAfter returns a criterion that stops once delta has elapsed,
// using the real wall clock.
func NewStopAfter(delta time.Duration) *StopAfter {
	return &StopAfter{Delta: delta, clock: RealClock}
}

// NewStopAfterWithClock is NewStopAfter with an injectable Clock, for
// deterministic tests.
func NewStopAfterWithClock(delta time.Duration, clock Clock) *StopAfter {
	return &StopAfter{Delta: delta, clock: clock}
}

func (c *StopAfter) Evaluate(p *problem.Problem, s State, i int) bool {
	if i == 0 {
		c.resetIfStart(i)
		c.started = false
	}
	if c.triggered {
		return true
	}
	if !c.started {
		c.started = true
		c.startTime = c.clock.Now()
	}
	elapsed := c.clock.Now().Sub(c.startTime)
	if elapsed >= c.Delta {
		c.fire(i, io.Sf("max time %v reached (elapsed=%v); ", c.Delta, elapsed))
	}
	return c.triggered
}

func (c *StopAfter) UpdateField(key string, value float64) bool {
	if key != "MaxTime" {
		return false
	}
	c.Delta = time.Duration(value)
	return true
}

func (c *StopAfter) IndicatesConvergence() bool { return false }

// ---------------------------------------------------------------------
// StopWhenCostLess
// ---------------------------------------------------------------------

// StopWhenCostLess triggers when i>0 and f(iterate) < Epsilon.
type StopWhenCostLess struct {
	leaf
	Epsilon float64
}

func NewStopWhenCostLess(epsilon float64) *StopWhenCostLess {
	return &StopWhenCostLess{Epsilon: epsilon}
}

func (c *StopWhenCostLess) Evaluate(p *problem.Problem, s State, i int) bool {
	c.resetIfStart(i)
	if c.triggered {
		return true
	}
	if i > 0 {
		cost, err := p.GetCost(s.GetIterate())
		if err == nil && cost < c.Epsilon {
			c.fire(i, io.Sf("cost %.6e < %.6e; ", cost, c.Epsilon))
		}
	}
	return c.triggered
}

func (c *StopWhenCostLess) UpdateField(key string, value float64) bool {
	if key != "MinCost" {
		return false
	}
	c.Epsilon = value
	return true
}

func (c *StopWhenCostLess) IndicatesConvergence() bool { return false }

// ---------------------------------------------------------------------
// StopWhenGradientNormLess
// ---------------------------------------------------------------------

// StopWhenGradientNormLess triggers when i>0 and ‖grad‖ < Epsilon.
type StopWhenGradientNormLess struct {
	leaf
	Epsilon float64
}

func NewStopWhenGradientNormLess(epsilon float64) *StopWhenGradientNormLess {
	return &StopWhenGradientNormLess{Epsilon: epsilon}
}

func (c *StopWhenGradientNormLess) Evaluate(p *problem.Problem, s State, i int) bool {
	c.resetIfStart(i)
	if c.triggered {
		return true
	}
	if i > 0 {
		grad := s.GetGradient()
		if grad != nil {
			n := p.GetManifold().Norm(s.GetIterate(), grad)
			if n < c.Epsilon {
				c.fire(i, io.Sf("gradient norm %.6e < %.6e; ", n, c.Epsilon))
			}
		}
	}
	return c.triggered
}

func (c *StopWhenGradientNormLess) UpdateField(key string, value float64) bool {
	if key != "MinGradNorm" {
		return false
	}
	c.Epsilon = value
	return true
}

func (c *StopWhenGradientNormLess) IndicatesConvergence() bool { return true }

// ---------------------------------------------------------------------
// StopWhenChangeLess
// ---------------------------------------------------------------------

// StopWhenChangeLess triggers when i>0 and distance(p_old, p) < Epsilon,
// with p_old taken from a StoreStateAction(:Iterate) this criterion owns
// (§4.6). The action is invoked AFTER the comparison, so the first
// iteration it runs at cannot trigger (§8 property 8): there is nothing to
// compare against yet.
type StopWhenChangeLess struct {
	leaf
	Epsilon         float64
	InverseRetract  manifold.Method
	storage         *StoreStateAction
}

func NewStopWhenChangeLess(epsilon float64) *StopWhenChangeLess {
	return &StopWhenChangeLess{Epsilon: epsilon, storage: NewStoreStateAction()}
}

func (c *StopWhenChangeLess) Evaluate(p *problem.Problem, s State, i int) bool {
	if i == 0 {
		c.resetIfStart(i)
		c.storage.Reset()
	}
	if c.triggered {
		return true
	}
	m := p.GetManifold()
	cur := s.GetIterate()
	if i > 0 && c.storage.HasPoint("Iterate") {
		prev := c.storage.GetPoint("Iterate")
		d := m.Distance(prev, cur, c.InverseRetract)
		if d < c.Epsilon {
			c.fire(i, io.Sf("iterate change %.6e < %.6e; ", d, c.Epsilon))
		}
	}
	c.storage.StorePoint(m, "Iterate", cur)
	return c.triggered
}

func (c *StopWhenChangeLess) UpdateField(key string, value float64) bool {
	if key != "MinIterateChange" {
		return false
	}
	c.Epsilon = value
	return true
}

func (c *StopWhenChangeLess) IndicatesConvergence() bool { return true }

// ---------------------------------------------------------------------
// StopWhenGradientChangeLess
// ---------------------------------------------------------------------

// StopWhenGradientChangeLess triggers when i>0 and
// ‖vector_transport_to(p_old, X_old, p) - X‖ < Epsilon, reading p_old/X_old
// from a StoreStateAction(:Iterate, :Gradient) this criterion owns, again
// updated AFTER the comparison (§4.6, §8 property 8).
type StopWhenGradientChangeLess struct {
	leaf
	Epsilon   float64
	Transport manifold.Method
	storage   *StoreStateAction
}

func NewStopWhenGradientChangeLess(epsilon float64) *StopWhenGradientChangeLess {
	return &StopWhenGradientChangeLess{Epsilon: epsilon, storage: NewStoreStateAction()}
}

func (c *StopWhenGradientChangeLess) Evaluate(p *problem.Problem, s State, i int) bool {
	if i == 0 {
		c.resetIfStart(i)
		c.storage.Reset()
	}
	if c.triggered {
		return true
	}
	m := p.GetManifold()
	cur := s.GetIterate()
	grad := s.GetGradient()
	if i > 0 && c.storage.HasPoint("Iterate") && c.storage.HasVector("Gradient") && grad != nil {
		prevPoint := c.storage.GetPoint("Iterate")
		prevGrad := c.storage.GetVector("Gradient")
		transported := m.VectorTransportTo(prevPoint, prevGrad, cur, c.Transport)
		diff := manifold.Subtract(m, cur, transported, grad)
		n := m.Norm(cur, diff)
		if n < c.Epsilon {
			c.fire(i, io.Sf("gradient change %.6e < %.6e; ", n, c.Epsilon))
		}
	}
	c.storage.StorePoint(m, "Iterate", cur)
	if grad != nil {
		c.storage.StoreVector(m, cur, "Gradient", grad)
	}
	return c.triggered
}

func (c *StopWhenGradientChangeLess) UpdateField(key string, value float64) bool {
	if key != "MinGradientChange" {
		return false
	}
	c.Epsilon = value
	return true
}

func (c *StopWhenGradientChangeLess) IndicatesConvergence() bool { return true }

// ---------------------------------------------------------------------
// StopWhenStepsizeLess
// ---------------------------------------------------------------------

// StopWhenStepsizeLess triggers when i>0 and the last stepsize used is
// less than Epsilon (§4.5 get_last_stepsize, §4.6).
type StopWhenStepsizeLess struct {
	leaf
	Epsilon float64
}

func NewStopWhenStepsizeLess(epsilon float64) *StopWhenStepsizeLess {
	return &StopWhenStepsizeLess{Epsilon: epsilon}
}

func (c *StopWhenStepsizeLess) Evaluate(p *problem.Problem, s State, i int) bool {
	c.resetIfStart(i)
	if c.triggered {
		return true
	}
	if i > 0 {
		if sa, ok := concreteState(s).(StepsizeAware); ok {
			t := sa.GetLastStepsize()
			if t < c.Epsilon {
				c.fire(i, io.Sf("stepsize %.6e < %.6e; ", t, c.Epsilon))
			}
		}
	}
	return c.triggered
}

func (c *StopWhenStepsizeLess) UpdateField(key string, value float64) bool {
	if key != "MinStepsize" {
		return false
	}
	c.Epsilon = value
	return true
}

func (c *StopWhenStepsizeLess) IndicatesConvergence() bool { return false }

// ---------------------------------------------------------------------
// StopWhenSmallerOrEqual
// ---------------------------------------------------------------------

// StopWhenSmallerOrEqual triggers when a named numeric field of the state
// is ≤ V (§4.6), read through the optional NumericField capability.
type StopWhenSmallerOrEqual struct {
	leaf
	Field string
	V     float64
}

func NewStopWhenSmallerOrEqual(field string, v float64) *StopWhenSmallerOrEqual {
	return &StopWhenSmallerOrEqual{Field: field, V: v}
}

func (c *StopWhenSmallerOrEqual) Evaluate(p *problem.Problem, s State, i int) bool {
	c.resetIfStart(i)
	if c.triggered {
		return true
	}
	if nf, ok := concreteState(s).(NumericField); ok {
		if v, known := nf.NumericField(c.Field); known && v <= c.V {
			c.fire(i, io.Sf("field %s = %.6e <= %.6e; ", c.Field, v, c.V))
		}
	}
	return c.triggered
}

func (c *StopWhenSmallerOrEqual) IndicatesConvergence() bool { return false }

// ---------------------------------------------------------------------
// combinators
// ---------------------------------------------------------------------

// andCriterion triggers once every child has triggered. Every child is
// evaluated on every call — never short-circuited — so side effects like
// StoreStateAction inside StopWhenChangeLess still run each iteration
// (§3 invariant, §8 property 3).
type andCriterion struct {
	leaf
	children []StoppingCriterion
}

// StopWhenAll combines criteria with AND, flattening any child that is
// itself an andCriterion so nested StopWhenAll calls build one flat list
// (§4.6).
func StopWhenAll(criteria ...StoppingCriterion) StoppingCriterion {
	var flat []StoppingCriterion
	for _, c := range criteria {
		if a, ok := c.(*andCriterion); ok {
			flat = append(flat, a.children...)
		} else {
			flat = append(flat, c)
		}
	}
	return &andCriterion{children: flat}
}

func (c *andCriterion) Evaluate(p *problem.Problem, s State, i int) bool {
	c.resetIfStart(i)
	all := true
	var reason string
	for _, child := range c.children {
		if !child.Evaluate(p, s, i) {
			all = false
		} else {
			reason += child.Reason()
		}
	}
	if all && !c.triggered {
		c.fire(i, reason)
	}
	return c.triggered
}

// orCriterion triggers once any child has triggered. Every child is
// evaluated on every call — never short-circuited (§3 invariant, §8
// property 1/2).
type orCriterion struct {
	leaf
	children []StoppingCriterion
}

// StopWhenAny combines criteria with OR, flattening any child that is
// itself an orCriterion so nested StopWhenAny calls build one flat list
// (§4.6).
func StopWhenAny(criteria ...StoppingCriterion) StoppingCriterion {
	var flat []StoppingCriterion
	for _, c := range criteria {
		if o, ok := c.(*orCriterion); ok {
			flat = append(flat, o.children...)
		} else {
			flat = append(flat, c)
		}
	}
	return &orCriterion{children: flat}
}

func (c *orCriterion) Evaluate(p *problem.Problem, s State, i int) bool {
	c.resetIfStart(i)
	if c.triggered {
		for _, child := range c.children {
			child.Evaluate(p, s, i)
		}
		return true
	}
	var reason string
	any := false
	for _, child := range c.children {
		if child.Evaluate(p, s, i) {
			any = true
			reason += child.Reason()
		}
	}
	if any {
		c.fire(i, reason)
	}
	return c.triggered
}

// Children returns the flattened child list of an AND/OR combinator, or
// nil for a leaf criterion. Used by GetActiveStoppingCriteria and
// UpdateStoppingCriterion to walk the tree.
func Children(c StoppingCriterion) []StoppingCriterion {
	switch v := c.(type) {
	case *andCriterion:
		return v.children
	case *orCriterion:
		return v.children
	default:
		return nil
	}
}

// UpdateStoppingCriterion walks c's tree (descending through AND/OR
// combinators) and applies key/value to every Updatable leaf that
// recognizes key. Unrecognized keys are silently ignored at each leaf
// (§4.6, §7); the function itself never errors.
func UpdateStoppingCriterion(c StoppingCriterion, key string, value float64) {
	if children := Children(c); children != nil {
		for _, child := range children {
			UpdateStoppingCriterion(child, key, value)
		}
		return
	}
	if u, ok := c.(Updatable); ok {
		u.UpdateField(key, value)
	}
}

// IndicatesConvergence reports whether c's tree semantically means
// "converged" rather than e.g. an iteration or time budget being exhausted
// (§4.6). The combination rule differs by node type: an AND node indicates
// convergence if ANY of its children does — one convergence witness
// suffices even though every child had to trigger for the AND itself to
// fire; an OR node indicates convergence if ANY of its currently-active
// (triggered) children does, ignoring children that never fired. A leaf
// indicates convergence iff it has triggered and implements
// ConvergenceIndicator reporting true.
func IndicatesConvergence(c StoppingCriterion) bool {
	switch v := c.(type) {
	case *andCriterion:
		if !v.triggered {
			return false
		}
		for _, child := range v.children {
			if IndicatesConvergence(child) {
				return true
			}
		}
		return false
	case *orCriterion:
		if !v.triggered {
			return false
		}
		for _, child := range v.children {
			if !isActiveNode(child) {
				continue
			}
			if IndicatesConvergence(child) {
				return true
			}
		}
		return false
	default:
		if c.Reason() == "" {
			return false
		}
		ci, ok := c.(ConvergenceIndicator)
		return ok && ci.IndicatesConvergence()
	}
}

// isActiveNode reports whether c has triggered since its last reset: for a
// combinator this is its own triggered flag, for a leaf it is Reason()!="".
func isActiveNode(c StoppingCriterion) bool {
	switch v := c.(type) {
	case *andCriterion:
		return v.triggered
	case *orCriterion:
		return v.triggered
	default:
		return c.Reason() != ""
	}
}

// GetActiveStoppingCriteria returns every leaf in c's tree whose
// Reason() is non-empty (i.e. has triggered at least once since its last
// reset), in tree order (§4.6).
func GetActiveStoppingCriteria(c StoppingCriterion) []StoppingCriterion {
	if children := Children(c); children != nil {
		var out []StoppingCriterion
		for _, child := range children {
			out = append(out, GetActiveStoppingCriteria(child)...)
		}
		return out
	}
	if c.Reason() != "" {
		return []StoppingCriterion{c}
	}
	return nil
}
