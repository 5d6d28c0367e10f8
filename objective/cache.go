// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objective

import (
	"container/list"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/riemanopt/manifold"
)

// KeyFunc turns a Point into a content-based cache key. The default,
// DefaultKeyFunc, formats the point the way gofem's model registry keys
// its allocated-model database (io.Sf("%s_%s_%s", ...) in
// msolid.GetModel): a deterministic, readable string built from the
// value's own representation.
type KeyFunc func(p manifold.Point) string

// DefaultKeyFunc formats p with io.Sf("%v", p). It is adequate for the
// slice- and tuple-shaped points every manifold in this module uses; a
// caller with a more exotic Point representation may supply its own
// KeyFunc to NewSimpleCache / NewLRUCache.
func DefaultKeyFunc(p manifold.Point) string {
	return io.Sf("%v", p)
}

// entry holds whichever of cost/gradient have been computed for one point.
type entry struct {
	key      string
	haveCost bool
	cost     float64
	haveGrad bool
	grad     manifold.Tangent
}

// SimpleCache memoizes cost and gradient for the single most recently
// queried point only (§4.7 "Simple cache stores the last entry only").
type SimpleCache struct {
	inner  Objective
	keyFn  KeyFunc
	last   *entry
	Which  CacheWhich
}

// CacheWhich selects which operations a cache memoizes.
type CacheWhich struct {
	Cost     bool
	Gradient bool
}

// CacheAll memoizes both cost and gradient.
var CacheAll = CacheWhich{Cost: true, Gradient: true}

// NewSimpleCache wraps inner with a last-entry-only cache.
func NewSimpleCache(inner Objective, which CacheWhich) *SimpleCache {
	return &SimpleCache{inner: inner, keyFn: DefaultKeyFunc, Which: which}
}

// SetKeyFunc overrides the point-keying function.
func (o *SimpleCache) SetKeyFunc(fn KeyFunc) { o.keyFn = fn }

func (o *SimpleCache) InnerObjective() Objective { return o.inner }

func (o *SimpleCache) lookup(p manifold.Point) *entry {
	key := o.keyFn(p)
	if o.last != nil && o.last.key == key {
		return o.last
	}
	e := &entry{key: key}
	o.last = e
	return e
}

func (o *SimpleCache) GetCost(m manifold.Manifold, p manifold.Point) (float64, error) {
	if !o.Which.Cost {
		return o.inner.GetCost(m, p)
	}
	e := o.lookup(p)
	if e.haveCost {
		return e.cost, nil
	}
	c, err := o.inner.GetCost(m, p)
	if err != nil {
		return 0, err
	}
	e.cost, e.haveCost = c, true
	return c, nil
}

func (o *SimpleCache) GetGradient(m manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
	if !o.Which.Gradient {
		return o.inner.GetGradient(m, p)
	}
	e := o.lookup(p)
	if e.haveGrad {
		return e.grad, nil
	}
	x, err := o.inner.GetGradient(m, p)
	if err != nil {
		return nil, err
	}
	e.grad, e.haveGrad = x, true
	return x, nil
}

func (o *SimpleCache) HasGradient() bool { return o.inner.HasGradient() }

func (o *SimpleCache) GetProximalMap(m manifold.Manifold, lambda float64, p manifold.Point, k int) (manifold.Point, error) {
	return o.inner.GetProximalMap(m, lambda, p, k)
}

func (o *SimpleCache) HasProximalMap() bool { return o.inner.HasProximalMap() }

// LRUCache memoizes cost and gradient for up to Capacity most-recently-used
// points, keyed by a content-based key (§4.7 "LRU cache stores up to N
// entries keyed by a content-based point key").
type LRUCache struct {
	inner    Objective
	keyFn    KeyFunc
	Which    CacheWhich
	capacity int
	order    *list.List               // front = most recently used
	elements map[string]*list.Element // key -> element holding *entry
}

// NewLRUCache wraps inner with an LRU cache of the given capacity.
func NewLRUCache(inner Objective, capacity int, which CacheWhich) *LRUCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCache{
		inner:    inner,
		keyFn:    DefaultKeyFunc,
		Which:    which,
		capacity: capacity,
		order:    list.New(),
		elements: map[string]*list.Element{},
	}
}

// SetKeyFunc overrides the point-keying function.
func (o *LRUCache) SetKeyFunc(fn KeyFunc) { o.keyFn = fn }

func (o *LRUCache) InnerObjective() Objective { return o.inner }

func (o *LRUCache) touch(key string) *entry {
	if el, ok := o.elements[key]; ok {
		o.order.MoveToFront(el)
		return el.Value.(*entry)
	}
	e := &entry{key: key}
	el := o.order.PushFront(e)
	o.elements[key] = el
	for o.order.Len() > o.capacity {
		oldest := o.order.Back()
		if oldest == nil {
			break
		}
		o.order.Remove(oldest)
		delete(o.elements, oldest.Value.(*entry).key)
	}
	return e
}

func (o *LRUCache) GetCost(m manifold.Manifold, p manifold.Point) (float64, error) {
	if !o.Which.Cost {
		return o.inner.GetCost(m, p)
	}
	e := o.touch(o.keyFn(p))
	if e.haveCost {
		return e.cost, nil
	}
	c, err := o.inner.GetCost(m, p)
	if err != nil {
		return 0, err
	}
	e.cost, e.haveCost = c, true
	return c, nil
}

func (o *LRUCache) GetGradient(m manifold.Manifold, p manifold.Point) (manifold.Tangent, error) {
	if !o.Which.Gradient {
		return o.inner.GetGradient(m, p)
	}
	e := o.touch(o.keyFn(p))
	if e.haveGrad {
		return e.grad, nil
	}
	x, err := o.inner.GetGradient(m, p)
	if err != nil {
		return nil, err
	}
	e.grad, e.haveGrad = x, true
	return x, nil
}

func (o *LRUCache) HasGradient() bool { return o.inner.HasGradient() }

func (o *LRUCache) GetProximalMap(m manifold.Manifold, lambda float64, p manifold.Point, k int) (manifold.Point, error) {
	return o.inner.GetProximalMap(m, lambda, p, k)
}

func (o *LRUCache) HasProximalMap() bool { return o.inner.HasProximalMap() }
