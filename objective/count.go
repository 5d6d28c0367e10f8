// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import "github.com/cpmech/riemanopt/manifold"

// Count decorates an Objective, incrementing a per-operation counter on
// every call (§4.7 "Count"). Where it sits in a decorator stack determines
// what it measures: wrapped around a Cache it counts every call; wrapped
// directly around the raw Objective with a Cache outside it, it counts
// only cache misses, since the cache never forwards a hit (§8 scenario S5,
// testable property 6).
type Count struct {
	inner  Objective
	counts map[string]int
}

// NewCount wraps inner with call counters.
func NewCount(inner Objective) *Count {
	return &Count{inner: inner, counts: map[string]int{}}
}

func (o *Count) InnerObjective() Objective { return o.inner }

// Counts returns a snapshot of the per-operation call counts, keyed by
// "cost", "gradient" and "proximal_map".
func (o *Count) Counts() map[string]int {
	out := make(map[string]int, len(o.counts))
	for k, v := range o.counts {
		out[k] = v
	}
	return out
}

// Reset zeroes every counter.
func (o *Count) Reset() { o.counts = map[string]int{} }

func (o *Count) GetCost(m manifold.Manifold, p manifold.Point) (float64, error) {
	o.counts["cost"]++
	return o.inner.GetCost(m, p)
}

func (o *Count) GetGradient(m manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
	o.counts["gradient"]++
	return o.inner.GetGradient(m, p)
}

func (o *Count) HasGradient() bool { return o.inner.HasGradient() }

func (o *Count) GetProximalMap(m manifold.Manifold, lambda float64, p manifold.Point, k int) (manifold.Point, error) {
	o.counts["proximal_map"]++
	return o.inner.GetProximalMap(m, lambda, p, k)
}

func (o *Count) HasProximalMap() bool { return o.inner.HasProximalMap() }
