// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

import "math"

// ProductPoint and ProductTangent are the tuple representations a Product
// manifold's points/tangents take: one component per factor, in the order
// the factors were given to NewProduct.
type ProductPoint []Point
type ProductTangent []Tangent

// Product is a manifold whose points and tangents are tuples of component
// points/tangents (§4.1): every capability is the componentwise lift of the
// factors', distance² = Σ distanceᵢ², inner = Σ innerᵢ, dimension = Σ dimᵢ.
type Product struct {
	factors []Manifold
}

// NewProduct builds a product manifold out of two or more factors.
func NewProduct(factors ...Manifold) *Product {
	if len(factors) < 2 {
		panic("manifold: NewProduct needs at least two factors")
	}
	return &Product{factors: factors}
}

// Factors returns the underlying component manifolds, in order.
func (o *Product) Factors() []Manifold { return o.factors }

func (o *Product) Dim() int {
	sum := 0
	for _, f := range o.factors {
		sum += f.Dim()
	}
	return sum
}

func (o *Product) Inner(p Point, x, y Tangent) float64 {
	pp, xx, yy := p.(ProductPoint), x.(ProductTangent), y.(ProductTangent)
	sum := 0.0
	for i, f := range o.factors {
		sum += f.Inner(pp[i], xx[i], yy[i])
	}
	return sum
}

func (o *Product) Norm(p Point, x Tangent) float64 {
	return math.Sqrt(o.Inner(p, x, x))
}

func (o *Product) Distance(p, q Point, method Method) float64 {
	pp, qq := p.(ProductPoint), q.(ProductPoint)
	sum := 0.0
	for i, f := range o.factors {
		d := f.Distance(pp[i], qq[i], method)
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (o *Product) Retract(p Point, x Tangent, t float64, method Method) Point {
	pp, xx := p.(ProductPoint), x.(ProductTangent)
	out := make(ProductPoint, len(o.factors))
	for i, f := range o.factors {
		out[i] = f.Retract(pp[i], xx[i], t, method)
	}
	return out
}

func (o *Product) InverseRetract(p, q Point, method Method) Tangent {
	pp, qq := p.(ProductPoint), q.(ProductPoint)
	out := make(ProductTangent, len(o.factors))
	for i, f := range o.factors {
		out[i] = f.InverseRetract(pp[i], qq[i], method)
	}
	return out
}

func (o *Product) VectorTransportTo(p Point, x Tangent, q Point, method Method) Tangent {
	pp, xx, qq := p.(ProductPoint), x.(ProductTangent), q.(ProductPoint)
	out := make(ProductTangent, len(o.factors))
	for i, f := range o.factors {
		out[i] = f.VectorTransportTo(pp[i], xx[i], qq[i], method)
	}
	return out
}

func (o *Product) RiemannianGradient(p Point, euclideanGrad Tangent) Tangent {
	pp, gg := p.(ProductPoint), euclideanGrad.(ProductTangent)
	out := make(ProductTangent, len(o.factors))
	for i, f := range o.factors {
		out[i] = f.RiemannianGradient(pp[i], gg[i])
	}
	return out
}

func (o *Product) ZeroVector(p Point) Tangent {
	pp := p.(ProductPoint)
	out := make(ProductTangent, len(o.factors))
	for i, f := range o.factors {
		out[i] = f.ZeroVector(pp[i])
	}
	return out
}

func (o *Product) Scale(p Point, a float64, x Tangent) Tangent {
	pp, xx := p.(ProductPoint), x.(ProductTangent)
	out := make(ProductTangent, len(o.factors))
	for i, f := range o.factors {
		out[i] = f.Scale(pp[i], a, xx[i])
	}
	return out
}

func (o *Product) Add(p Point, x, y Tangent) Tangent {
	pp, xx, yy := p.(ProductPoint), x.(ProductTangent), y.(ProductTangent)
	out := make(ProductTangent, len(o.factors))
	for i, f := range o.factors {
		out[i] = f.Add(pp[i], xx[i], yy[i])
	}
	return out
}

func (o *Product) Copy(p Point) Point {
	pp := p.(ProductPoint)
	out := make(ProductPoint, len(o.factors))
	for i, f := range o.factors {
		out[i] = f.Copy(pp[i])
	}
	return out
}

func (o *Product) DefaultRetraction() Method        { return "" }
func (o *Product) DefaultInverseRetraction() Method { return "" }
func (o *Product) DefaultVectorTransport() Method   { return "" }
