// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sphere implements the unit sphere Sⁿ⁻¹ embedded in ℝⁿ: the
// collaborator the Karcher-mean test scenario (spec §8 S2) runs against.
//
// Points are unit-norm []float64 of length N; tangents at p are vectors in
// ℝⁿ orthogonal to p. Retraction is the exact exponential map (geodesic
// walk along the great circle through p in direction x); vector transport
// is the standard sphere parallel transport obtained by rotating x within
// the plane spanned by p and the destination.
package sphere

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/riemanopt/manifold"
)

// Sphere is the unit sphere in ℝⁿ.
type Sphere struct {
	n int
}

// New returns the unit sphere embedded in ℝⁿ.
func New(n int) *Sphere {
	if n < 2 {
		panic("sphere: dimension must be at least 2")
	}
	return &Sphere{n: n}
}

func (o *Sphere) Dim() int { return o.n }

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Project removes the component of v along p, returning a tangent at p.
func (o *Sphere) Project(p manifold.Point, v []float64) manifold.Tangent {
	a := p.([]float64)
	c := dot(a, v)
	out := make([]float64, o.n)
	la.VecAdd2(out, 1, v, -c, a)
	return out
}

func (o *Sphere) Inner(p manifold.Point, x, y manifold.Tangent) float64 {
	return dot(x.([]float64), y.([]float64))
}

func (o *Sphere) Norm(p manifold.Point, x manifold.Tangent) float64 {
	return la.VecNorm(x.([]float64))
}

// Distance is the geodesic distance arccos(⟨p,q⟩), clamped against
// round-off pushing the argument outside [-1,1].
func (o *Sphere) Distance(p, q manifold.Point, method manifold.Method) float64 {
	c := dot(p.([]float64), q.([]float64))
	if c > 1 {
		c = 1
	}
	if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Retract is the exact exponential map: walk along the great circle
// through p in direction x for arc-length t·‖x‖.
func (o *Sphere) Retract(p manifold.Point, x manifold.Tangent, t float64, method manifold.Method) manifold.Point {
	a, v := p.([]float64), x.([]float64)
	theta := t * la.VecNorm(v)
	out := make([]float64, o.n)
	if theta < 1e-15 {
		copy(out, a)
		return normalize(out)
	}
	dir := make([]float64, o.n)
	la.VecAdd2(dir, 1/la.VecNorm(v), v, 0, v)
	la.VecAdd2(out, math.Cos(theta), a, math.Sin(theta), dir)
	return normalize(out)
}

// InverseRetract is the exact logarithmic map.
func (o *Sphere) InverseRetract(p, q manifold.Point, method manifold.Method) manifold.Tangent {
	a, b := p.([]float64), q.([]float64)
	c := dot(a, b)
	if c > 1 {
		c = 1
	}
	if c < -1 {
		c = -1
	}
	theta := math.Acos(c)
	proj := make([]float64, o.n)
	la.VecAdd2(proj, 1, b, -c, a)
	n := la.VecNorm(proj)
	if n < 1e-15 || theta < 1e-15 {
		return make([]float64, o.n)
	}
	out := make([]float64, o.n)
	la.VecAdd2(out, theta/n, proj, 0, proj)
	return out
}

// VectorTransportTo implements the sphere's exact parallel transport of a
// tangent at p along the geodesic to q.
func (o *Sphere) VectorTransportTo(p manifold.Point, x manifold.Tangent, q manifold.Point, method manifold.Method) manifold.Tangent {
	a, b, v := p.([]float64), q.([]float64), x.([]float64)
	theta := o.Distance(a, b, method)
	if theta < 1e-15 {
		out := make([]float64, o.n)
		copy(out, v)
		return out
	}
	u := make([]float64, o.n) // unit initial velocity of the geodesic p->q
	c := dot(a, b)
	la.VecAdd2(u, 1/math.Sin(theta), b, -c/math.Sin(theta), a)
	alpha := dot(u, v)
	out := make([]float64, o.n)
	// out = v - alpha*(sin(theta)*a + (1-cos(theta))*u)
	tmp := make([]float64, o.n)
	la.VecAdd2(tmp, math.Sin(theta), a, 1-math.Cos(theta), u)
	la.VecAdd2(out, 1, v, -alpha, tmp)
	return out
}

// RiemannianGradient projects a Euclidean gradient onto the tangent space.
func (o *Sphere) RiemannianGradient(p manifold.Point, euclideanGrad manifold.Tangent) manifold.Tangent {
	return o.Project(p, euclideanGrad.([]float64))
}

func (o *Sphere) ZeroVector(p manifold.Point) manifold.Tangent {
	return make([]float64, o.n)
}

func (o *Sphere) Scale(p manifold.Point, a float64, x manifold.Tangent) manifold.Tangent {
	v := x.([]float64)
	out := make([]float64, o.n)
	la.VecAdd2(out, a, v, 0, v)
	return out
}

func (o *Sphere) Add(p manifold.Point, x, y manifold.Tangent) manifold.Tangent {
	a, b := x.([]float64), y.([]float64)
	out := make([]float64, o.n)
	la.VecAdd2(out, 1, a, 1, b)
	return out
}

func (o *Sphere) Copy(p manifold.Point) manifold.Point {
	a := p.([]float64)
	out := make([]float64, o.n)
	copy(out, a)
	return out
}

func (o *Sphere) DefaultRetraction() manifold.Method        { return "" }
func (o *Sphere) DefaultInverseRetraction() manifold.Method { return "" }
func (o *Sphere) DefaultVectorTransport() manifold.Method   { return "" }

func normalize(v []float64) []float64 {
	n := la.VecNorm(v)
	if n < 1e-300 {
		chk.Panic("sphere: cannot normalize a near-zero vector")
	}
	out := make([]float64, len(v))
	la.VecAdd2(out, 1/n, v, 0, v)
	return out
}

// Flatten and Reshape implement manifold.Vectorizable. Reshape normalizes
// its input onto the sphere, since a vectorized modeling layer has no
// other place to enforce the unit-norm constraint.
func (o *Sphere) Flatten(p manifold.Point) []float64 {
	a := p.([]float64)
	out := make([]float64, o.n)
	copy(out, a)
	return out
}

func (o *Sphere) Reshape(v []float64) manifold.Point {
	out := make([]float64, o.n)
	copy(out, v)
	return normalize(out)
}
