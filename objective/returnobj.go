// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import "github.com/cpmech/riemanopt/manifold"

// Return decorates an Objective purely as a marker (§4.7 "Return"): its
// presence anywhere in the decorator stack is reported by WantsReturn.
// The solver entry points (solver.Solve, solver.GradientDescent) do not
// read the marker; they return only the final State, never the Objective.
type Return struct {
	inner Objective
}

// NewReturn marks inner to be returned alongside the minimizer.
func NewReturn(inner Objective) *Return {
	return &Return{inner: inner}
}

func (o *Return) InnerObjective() Objective { return o.inner }

// MarksReturn reports that this decorator requests the objective be
// returned. It exists so WantsReturn can detect the marker without caring
// which concrete decorator type implements it.
func (o *Return) MarksReturn() bool { return true }

type returnMarker interface {
	MarksReturn() bool
}

// WantsReturn reports whether any decorator in o's chain marks the
// objective to be returned alongside the minimizer.
func WantsReturn(o Objective) bool {
	for {
		if m, ok := o.(returnMarker); ok && m.MarksReturn() {
			return true
		}
		u, ok := o.(unwrapper)
		if !ok {
			return false
		}
		o = u.InnerObjective()
	}
}

func (o *Return) GetCost(m manifold.Manifold, p manifold.Point) (float64, error) {
	return o.inner.GetCost(m, p)
}

func (o *Return) GetGradient(m manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
	return o.inner.GetGradient(m, p)
}

func (o *Return) HasGradient() bool { return o.inner.HasGradient() }

func (o *Return) GetProximalMap(m manifold.Manifold, lambda float64, p manifold.Point, k int) (manifold.Point, error) {
	return o.inner.GetProximalMap(m, lambda, p, k)
}

func (o *Return) HasProximalMap() bool { return o.inner.HasProximalMap() }
