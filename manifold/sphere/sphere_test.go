// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere_test

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riemanopt/manifold/sphere"
)

func TestSphereRetractStaysOnSphere(t *testing.T) {
	m := sphere.New(3)
	p := []float64{1, 0, 0}
	x := m.Project(p, []float64{0, 1, 1})
	q := m.Retract(p, x, 0.3, "")
	qv := q.([]float64)
	n := math.Sqrt(qv[0]*qv[0] + qv[1]*qv[1] + qv[2]*qv[2])
	chk.Scalar(t, "||q||", 1e-12, n, 1)
}

func TestSphereLogExpRoundTrip(t *testing.T) {
	m := sphere.New(3)
	p := []float64{1, 0, 0}
	q := []float64{0, 1, 0}
	x := m.InverseRetract(p, q, "")
	back := m.Retract(p, x, 1, "")
	chk.Array(t, "back", 1e-10, back.([]float64), q)
}

func TestSphereDistanceMatchesGeodesicArcLength(t *testing.T) {
	m := sphere.New(3)
	p := []float64{1, 0, 0}
	q := []float64{0, 1, 0}
	chk.Scalar(t, "distance", 1e-12, m.Distance(p, q, ""), math.Pi/2)
}

func TestSphereTransportPreservesNorm(t *testing.T) {
	m := sphere.New(3)
	p := []float64{1, 0, 0}
	q := []float64{0, 1, 0}
	x := m.Project(p, []float64{0, 0.2, 1})
	xt := m.VectorTransportTo(p, x, q, "")
	chk.Scalar(t, "||x||", 1e-10, m.Norm(p, x), m.Norm(q, xt))
}
