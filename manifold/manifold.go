// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifold declares the narrow capability bundle the solver engine
// needs from a Riemannian manifold. It never looks past this interface: no
// concrete manifold lives in this package, only the contract and the
// product-manifold combinator (which is a pure lift of the contract and
// therefore belongs here rather than with a specific manifold).
package manifold

// Point is an element of a manifold's representation. It is opaque to the
// engine: only the Manifold operations below may inspect or construct one.
type Point = interface{}

// Tangent is an element of the tangent space at a specific (unstated) base
// point. Like Point it is opaque outside of Manifold operations.
type Tangent = interface{}

// Method names a retraction, inverse retraction or vector transport
// algorithm a manifold supports. The zero value Method("") means "use the
// manifold's declared default" (Manifold.DefaultRetraction and friends).
// Manifolds are free to accept manifold-specific method names; the engine
// never inspects the string itself, only threads it through.
type Method string

// Manifold is the capability bundle of §4.1: every operation is total on
// its declared domain and free of hidden global state. Implementations
// MUST be immutable after construction so a Problem built on one can be
// shared across concurrently-running solves (§5).
type Manifold interface {
	// Dim returns the representation size (ambient dimension of Point).
	Dim() int

	// Inner is the Riemannian inner product of two tangents at p.
	Inner(p Point, x, y Tangent) float64

	// Norm is the norm induced by Inner: sqrt(Inner(p, x, x)).
	Norm(p Point, x Tangent) float64

	// Distance is the geodesic (or retraction-induced) distance between p
	// and q. method selects the inverse retraction used, "" for the
	// manifold default.
	Distance(p, q Point, method Method) float64

	// Retract maps (p, x, t) to a point: a first-order approximation of
	// the exponential map (or the exponential map itself). method
	// selects the retraction algorithm, "" for the manifold default.
	Retract(p Point, x Tangent, t float64, method Method) Point

	// InverseRetract maps (p, q) to a tangent at p: the local inverse of
	// Retract at fixed base p. method selects the algorithm, "" for the
	// manifold default.
	InverseRetract(p, q Point, method Method) Tangent

	// VectorTransportTo moves tangent x, attached at p, to the tangent
	// space at q. method selects the transport algorithm, "" for the
	// manifold default.
	VectorTransportTo(p Point, x Tangent, q Point, method Method) Tangent

	// RiemannianGradient converts a Euclidean gradient at p (as returned
	// by a cost function differentiated in the ambient/embedding space)
	// into the Riemannian gradient: a tangent vector at p.
	RiemannianGradient(p Point, euclideanGrad Tangent) Tangent

	// ZeroVector returns the zero tangent at p.
	ZeroVector(p Point) Tangent

	// Scale returns a*x, the tangent x at p scaled by a. This and Add are
	// the "arithmetic (addition, scaling)" capability named in §3's
	// Tangent vector definition.
	Scale(p Point, a float64, x Tangent) Tangent

	// Add returns x+y, both tangents at p.
	Add(p Point, x, y Tangent) Tangent

	// Copy returns a deep copy of p, used by storage actions (§4.8) to
	// take defensive snapshots.
	Copy(p Point) Point

	// DefaultRetraction, DefaultInverseRetraction and
	// DefaultVectorTransport name the methods the engine threads through
	// when a state does not override them (§4.1).
	DefaultRetraction() Method
	DefaultInverseRetraction() Method
	DefaultVectorTransport() Method
}

// Subtract returns x-y, both tangents at p. It is a small convenience built
// from Scale and Add rather than a new primitive, since every manifold
// already supplies those two.
func Subtract(m Manifold, p Point, x, y Tangent) Tangent {
	return m.Add(p, x, m.Scale(p, -1, y))
}
