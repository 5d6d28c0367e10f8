// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package euclidean_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riemanopt/manifold/euclidean"
)

func TestEuclideanRetractAndDistance(t *testing.T) {
	m := euclidean.New(2)
	p := []float64{1, 1}
	x := []float64{1, -1}
	q := m.Retract(p, x, 0.5, "")
	chk.Array(t, "q", 1e-15, q.([]float64), []float64{1.5, 0.5})

	d := m.Distance(p, q, "")
	chk.Scalar(t, "distance", 1e-12, d, m.Norm(p, m.Scale(p, 0.5, x)))
}

func TestEuclideanInverseRetractRoundTrip(t *testing.T) {
	m := euclidean.New(3)
	p := []float64{0, 0, 0}
	q := []float64{1, 2, 3}
	x := m.InverseRetract(p, q, "")
	back := m.Retract(p, x, 1, "")
	chk.Array(t, "back", 1e-15, back.([]float64), q)
}

func TestEuclideanVectorizable(t *testing.T) {
	m := euclidean.New(2)
	p := []float64{3, 4}
	v := m.Flatten(p)
	chk.Array(t, "flatten", 1e-15, v, p)
	q := m.Reshape([]float64{5, 6})
	chk.Array(t, "reshape", 1e-15, q.([]float64), []float64{5, 6})
}
