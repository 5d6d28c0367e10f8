// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package euclidean implements the flat manifold ℝⁿ: the simplest possible
// collaborator for the solver engine's Manifold capability bundle, and the
// one the Euclidean-sanity test scenario (spec §8 S1) runs against.
//
// Points and tangents are both []float64 of length N. Retraction and the
// exponential map coincide (p + t·x); the default vector transport is the
// identity re-expressed at the new base point, since parallel transport in
// a flat space changes nothing about a vector's components.
package euclidean

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/riemanopt/manifold"
)

// Euclidean is ℝⁿ with the standard inner product.
type Euclidean struct {
	n int
}

// New returns ℝⁿ for the given dimension n.
func New(n int) *Euclidean {
	if n <= 0 {
		panic("euclidean: dimension must be positive")
	}
	return &Euclidean{n: n}
}

func (o *Euclidean) Dim() int { return o.n }

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func (o *Euclidean) Inner(p manifold.Point, x, y manifold.Tangent) float64 {
	return dot(x.([]float64), y.([]float64))
}

func (o *Euclidean) Norm(p manifold.Point, x manifold.Tangent) float64 {
	return la.VecNorm(x.([]float64))
}

func (o *Euclidean) Distance(p, q manifold.Point, method manifold.Method) float64 {
	a, b := p.([]float64), q.([]float64)
	d := make([]float64, o.n)
	la.VecAdd2(d, 1, a, -1, b)
	return la.VecNorm(d)
}

func (o *Euclidean) Retract(p manifold.Point, x manifold.Tangent, t float64, method manifold.Method) manifold.Point {
	a, v := p.([]float64), x.([]float64)
	out := make([]float64, o.n)
	la.VecAdd2(out, 1, a, t, v)
	return out
}

func (o *Euclidean) InverseRetract(p, q manifold.Point, method manifold.Method) manifold.Tangent {
	a, b := p.([]float64), q.([]float64)
	out := make([]float64, o.n)
	la.VecAdd2(out, -1, a, 1, b)
	return out
}

func (o *Euclidean) VectorTransportTo(p manifold.Point, x manifold.Tangent, q manifold.Point, method manifold.Method) manifold.Tangent {
	v := x.([]float64)
	out := make([]float64, o.n)
	copy(out, v)
	return out
}

func (o *Euclidean) RiemannianGradient(p manifold.Point, euclideanGrad manifold.Tangent) manifold.Tangent {
	g := euclideanGrad.([]float64)
	out := make([]float64, o.n)
	copy(out, g)
	return out
}

func (o *Euclidean) ZeroVector(p manifold.Point) manifold.Tangent {
	out := make([]float64, o.n)
	la.VecFill(out, 0)
	return out
}

func (o *Euclidean) Scale(p manifold.Point, a float64, x manifold.Tangent) manifold.Tangent {
	v := x.([]float64)
	out := make([]float64, o.n)
	la.VecAdd2(out, a, v, 0, v)
	return out
}

func (o *Euclidean) Add(p manifold.Point, x, y manifold.Tangent) manifold.Tangent {
	a, b := x.([]float64), y.([]float64)
	out := make([]float64, o.n)
	la.VecAdd2(out, 1, a, 1, b)
	return out
}

func (o *Euclidean) Copy(p manifold.Point) manifold.Point {
	a := p.([]float64)
	out := make([]float64, o.n)
	copy(out, a)
	return out
}

func (o *Euclidean) DefaultRetraction() manifold.Method        { return "" }
func (o *Euclidean) DefaultInverseRetraction() manifold.Method { return "" }
func (o *Euclidean) DefaultVectorTransport() manifold.Method   { return "" }

// Flatten and Reshape implement manifold.Vectorizable: on ℝⁿ the manifold
// representation already is the flat vector.
func (o *Euclidean) Flatten(p manifold.Point) []float64 {
	a := p.([]float64)
	out := make([]float64, o.n)
	copy(out, a)
	return out
}

func (o *Euclidean) Reshape(v []float64) manifold.Point {
	out := make([]float64, o.n)
	copy(out, v)
	return out
}
