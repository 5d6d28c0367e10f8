// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objective implements §4.2: the cost/gradient/proximal-map bundle
// the engine optimizes, and the decorator stack (count, cache, return) that
// wraps it transparently (§4.7).
package objective

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riemanopt/manifold"
)

// CostFunc evaluates f(p).
type CostFunc func(m manifold.Manifold, p manifold.Point) (float64, error)

// GradFunc evaluates the (allocating) gradient ∇f(p), a tangent at p.
type GradFunc func(m manifold.Manifold, p manifold.Point) (manifold.Tangent, error)

// GradFuncInPlace evaluates ∇f(p) into the caller-supplied tangent x.
type GradFuncInPlace func(m manifold.Manifold, p manifold.Point, x manifold.Tangent) error

// ProximalFunc evaluates the proximal map of f at p with parameter λ for
// the k-th summand of a (possibly split) nonsmooth objective.
type ProximalFunc func(m manifold.Manifold, lambda float64, p manifold.Point, k int) (manifold.Point, error)

// Objective is the capability bundle of §4.2.
type Objective interface {
	// GetCost evaluates f(p).
	GetCost(m manifold.Manifold, p manifold.Point) (float64, error)

	// GetGradient evaluates ∇f(p).
	GetGradient(m manifold.Manifold, p manifold.Point) (manifold.Tangent, error)

	// HasGradient reports whether GetGradient can be called.
	HasGradient() bool

	// GetProximalMap evaluates the k-th proximal map at p with parameter λ.
	GetProximalMap(m manifold.Manifold, lambda float64, p manifold.Point, k int) (manifold.Point, error)

	// HasProximalMap reports whether GetProximalMap can be called.
	HasProximalMap() bool
}

// unwrapper is implemented by every decorator in this package so the
// engine and tests can walk back to the innermost Objective (mirrors
// solver.unwrapper for State decorators).
type unwrapper interface {
	InnerObjective() Objective
}

// Unwrap walks a decorator chain down to the innermost, non-decorating
// Objective.
func Unwrap(o Objective) Objective {
	for {
		u, ok := o.(unwrapper)
		if !ok {
			return o
		}
		o = u.InnerObjective()
	}
}

// simple is the base Objective built directly from callables.
type simple struct {
	cost CostFunc
	grad GradFunc
	prox ProximalFunc
}

// New builds an Objective from a cost and an (optional, may be nil)
// gradient callable.
func New(cost CostFunc, grad GradFunc) Objective {
	if cost == nil {
		chk.Panic("objective: New requires a non-nil cost function")
	}
	return &simple{cost: cost, grad: grad}
}

// NewWithProximalMap builds an Objective from a cost, an optional gradient,
// and an optional proximal-map callable (for nonsmooth solvers, §4.2).
func NewWithProximalMap(cost CostFunc, grad GradFunc, prox ProximalFunc) Objective {
	if cost == nil {
		chk.Panic("objective: NewWithProximalMap requires a non-nil cost function")
	}
	return &simple{cost: cost, grad: grad, prox: prox}
}

// NewFromInPlace builds an Objective whose gradient is computed in place
// and then copied out, for callers who only have a GradFuncInPlace.
func NewFromInPlace(cost CostFunc, gradInPlace GradFuncInPlace) Objective {
	if cost == nil {
		chk.Panic("objective: NewFromInPlace requires a non-nil cost function")
	}
	grad := func(m manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
		x := m.ZeroVector(p)
		if err := gradInPlace(m, p, x); err != nil {
			return nil, err
		}
		return x, nil
	}
	return &simple{cost: cost, grad: grad}
}

func (o *simple) GetCost(m manifold.Manifold, p manifold.Point) (float64, error) {
	return o.cost(m, p)
}

func (o *simple) GetGradient(m manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
	if o.grad == nil {
		return nil, &UnsupportedOperationError{Op: "get_gradient"}
	}
	return o.grad(m, p)
}

func (o *simple) HasGradient() bool { return o.grad != nil }

func (o *simple) GetProximalMap(m manifold.Manifold, lambda float64, p manifold.Point, k int) (manifold.Point, error) {
	if o.prox == nil {
		return nil, &UnsupportedOperationError{Op: "get_proximal_map"}
	}
	return o.prox(m, lambda, p, k)
}

func (o *simple) HasProximalMap() bool { return o.prox != nil }

// UnsupportedOperationError is returned when a solver requests a callable
// the Objective was not built with (§7 "Unsupported operation").
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return chk.Err("objective: unsupported operation %q", e.Op).Error()
}
