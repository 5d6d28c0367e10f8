// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import "github.com/cpmech/riemanopt/manifold"

// StoreStateAction keeps deep copies of named points and tangent vectors
// across iterations (§4.8), so that change-based stopping criteria
// (StopWhenChangeLess, StopWhenGradientChangeLess) can compare the
// current iterate against the previous one without the driver or the
// criterion algebra knowing about storage directly.
type StoreStateAction struct {
	points  map[string]manifold.Point
	vectors map[string]manifold.Tangent
}

// NewStoreStateAction returns an empty action ready to store under any
// key passed to StorePoint/StoreVector.
func NewStoreStateAction() *StoreStateAction {
	return &StoreStateAction{
		points:  make(map[string]manifold.Point),
		vectors: make(map[string]manifold.Tangent),
	}
}

// Reset discards every stored point and vector, mirroring the i==0 reset
// rule leaf criteria apply to themselves (§3 invariant a).
func (a *StoreStateAction) Reset() {
	a.points = make(map[string]manifold.Point)
	a.vectors = make(map[string]manifold.Tangent)
}

// StorePoint deep-copies p (via the manifold's Copy) under key.
func (a *StoreStateAction) StorePoint(m manifold.Manifold, key string, p manifold.Point) {
	a.points[key] = m.Copy(p)
}

// HasPoint reports whether a point was ever stored under key.
func (a *StoreStateAction) HasPoint(key string) bool {
	_, ok := a.points[key]
	return ok
}

// GetPoint returns the point stored under key, or nil if none.
func (a *StoreStateAction) GetPoint(key string) manifold.Point {
	return a.points[key]
}

// StoreVector deep-copies x (via Scale by 1, which every manifold must
// support) under key, anchored at the point it lives on.
func (a *StoreStateAction) StoreVector(m manifold.Manifold, at manifold.Point, key string, x manifold.Tangent) {
	a.vectors[key] = m.Scale(at, 1, x)
}

// HasVector reports whether a tangent vector was ever stored under key.
func (a *StoreStateAction) HasVector(key string) bool {
	_, ok := a.vectors[key]
	return ok
}

// GetVector returns the tangent vector stored under key, or nil if none.
func (a *StoreStateAction) GetVector(key string) manifold.Tangent {
	return a.vectors[key]
}
