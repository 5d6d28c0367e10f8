// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package problem implements §4.3: the thin, immutable binder of a
// manifold and an objective. It never caches or counts — those concerns
// live in objective decorators (§4.7); Problem only forwards.
package problem

import (
	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/objective"
)

// Problem binds a Manifold with an Objective. It is immutable during a
// solve and may be shared between concurrently-running solves on separate
// states (§5 "Shared-resource policy").
type Problem struct {
	m manifold.Manifold
	o objective.Objective
}

// New binds m and o into a Problem.
func New(m manifold.Manifold, o objective.Objective) *Problem {
	return &Problem{m: m, o: o}
}

// GetManifold returns the bound manifold.
func (p *Problem) GetManifold() manifold.Manifold { return p.m }

// GetObjective returns the bound objective (possibly a decorator stack).
func (p *Problem) GetObjective() objective.Objective { return p.o }

// GetCost evaluates the objective's cost at p.
func (p *Problem) GetCost(point manifold.Point) (float64, error) {
	return p.o.GetCost(p.m, point)
}

// GetGradient evaluates the objective's gradient at point.
func (p *Problem) GetGradient(point manifold.Point) (manifold.Tangent, error) {
	return p.o.GetGradient(p.m, point)
}

// GetProximalMap evaluates the k-th proximal map at point with parameter λ.
func (p *Problem) GetProximalMap(lambda float64, point manifold.Point, k int) (manifold.Point, error) {
	return p.o.GetProximalMap(p.m, lambda, point, k)
}
