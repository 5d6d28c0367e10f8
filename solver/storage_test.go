// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/riemanopt/manifold/euclidean"
	"github.com/cpmech/riemanopt/solver"
)

func TestStoreStateAction(t *testing.T) {
	m := euclidean.New(2)
	a := solver.NewStoreStateAction()

	if a.HasPoint("Iterate") {
		t.Fatalf("fresh action must not have a stored point")
	}

	p := []float64{1, 2}
	a.StorePoint(m, "Iterate", p)
	p[0] = 99 // mutate the original; the stored copy must be unaffected

	got := a.GetPoint("Iterate").([]float64)
	chk.Array(t, "stored point", 1e-15, got, []float64{1, 2})

	a.Reset()
	if a.HasPoint("Iterate") {
		t.Fatalf("Reset must clear stored points")
	}
}
