// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifold

// Vectorizable is an optional capability a manifold may offer so that an
// external modeling layer can bookkeep points as a flat slice of scalar
// variables (§6, "Modeling-layer adapter"). It is not part of the core
// §4.1 capability bundle the engine itself calls on: the solver engine
// never requires it, only adapter.VectorizedManifold does.
type Vectorizable interface {
	// Flatten writes p's representation out as a length-Dim() slice.
	Flatten(p Point) []float64

	// Reshape builds a Point from a length-Dim() slice of scalars, the
	// inverse of Flatten.
	Reshape(v []float64) Point
}
