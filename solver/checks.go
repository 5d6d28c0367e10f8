// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// checks.go implements a debugging helper analogous to msolid.Driver's
// CheckD: verify an analytic gradient against a centered finite
// difference of the cost function, one coordinate at a time, after
// flattening the point onto a vector via the manifold's Vectorizable
// capability.
package solver

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/problem"
)

// CheckGradient compares the analytic Riemannian gradient at point
// against a centered finite-difference approximation of the cost
// restricted to the tangent space's flattened coordinates, and panics
// (via chk.Panic) if they disagree beyond tol. p's manifold must
// implement manifold.Vectorizable.
func CheckGradient(p *problem.Problem, point manifold.Point, tol float64, verbose bool) {
	v, ok := p.GetManifold().(manifold.Vectorizable)
	if !ok {
		chk.Panic("CheckGradient requires a manifold.Vectorizable manifold")
	}

	x0 := v.Flatten(point)
	n := len(x0)

	grad, err := p.GetGradient(point)
	if err != nil {
		chk.Panic("CheckGradient: GetGradient failed: %v", err)
	}
	analytic := v.Flatten(grad)

	costAt := func(x []float64) float64 {
		c, err := p.GetCost(v.Reshape(x))
		if err != nil {
			chk.Panic("CheckGradient: GetCost failed: %v", err)
		}
		return c
	}

	for i := 0; i < n; i++ {
		fd := num.DerivCen(func(xi float64, args ...interface{}) (res float64) {
			xc := make([]float64, n)
			copy(xc, x0)
			xc[i] = xi
			res = costAt(xc)
			return
		}, x0[i])

		diff := fd - analytic[i]
		if diff < 0 {
			diff = -diff
		}
		if verbose {
			io.Pfgreen("coord %d: analytic=%.8e fd=%.8e diff=%.3e\n", i, analytic[i], fd, diff)
		}
		if diff > tol {
			chk.Panic("CheckGradient: coordinate %d mismatch: analytic=%.8e fd=%.8e diff=%.3e > tol=%.3e", i, analytic[i], fd, diff, tol)
		}
	}
}
