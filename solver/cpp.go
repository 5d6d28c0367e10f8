// Copyright 2016 The Riemanopt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/riemanopt/manifold"
	"github.com/cpmech/riemanopt/problem"
)

// CyclicProximalPointState is a sketch of the cyclic proximal point
// method (§9 open question: included as a second concrete solver to
// exercise the proximal-map side of Objective, not fully tuned). Each
// iteration applies the proximal maps of every summand objective in
// turn, at a shrinking parameter λ_i = λ0/i.
type CyclicProximalPointState struct {
	Iterate   manifold.Point
	Gradient  manifold.Tangent
	NumTerms  int
	Lambda0   float64
	Criterion StoppingCriterion
}

// NewCyclicProximalPointState builds the initial state for a cyclic
// proximal point run with numTerms summand objectives (indexed 0..n-1
// via Problem.GetProximalMap's k parameter) and initial parameter λ0.
func NewCyclicProximalPointState(p0 manifold.Point, numTerms int, lambda0 float64, crit StoppingCriterion) *CyclicProximalPointState {
	return &CyclicProximalPointState{Iterate: p0, NumTerms: numTerms, Lambda0: lambda0, Criterion: crit}
}

func (s *CyclicProximalPointState) GetIterate() manifold.Point          { return s.Iterate }
func (s *CyclicProximalPointState) SetIterate(p manifold.Point)         { s.Iterate = p }
func (s *CyclicProximalPointState) GetGradient() manifold.Tangent       { return s.Gradient }
func (s *CyclicProximalPointState) SetGradient(x manifold.Tangent)      { s.Gradient = x }
func (s *CyclicProximalPointState) GetStoppingCriterion() StoppingCriterion { return s.Criterion }
func (s *CyclicProximalPointState) GetReason() string                  { return s.Criterion.Reason() }

// cyclicProximalPointStep applies each summand's proximal map in turn at
// parameter λ_i = λ0/i.
func cyclicProximalPointStep(p *problem.Problem, s *CyclicProximalPointState, i int) error {
	lambda := s.Lambda0 / float64(i)
	for k := 0; k < s.NumTerms; k++ {
		next, err := p.GetProximalMap(lambda, s.Iterate, k)
		if err != nil {
			return err
		}
		s.Iterate = next
	}
	return nil
}

// CyclicProximalPointOptions configures CyclicProximalPoint.
type CyclicProximalPointOptions struct {
	NumTerms  int
	Lambda0   float64
	Criterion StoppingCriterion
}

// CyclicProximalPoint runs the cyclic proximal point method on p starting
// from p0 (§9).
func CyclicProximalPoint(p *problem.Problem, p0 manifold.Point, opts CyclicProximalPointOptions) (State, error) {
	crit := opts.Criterion
	if crit == nil {
		crit = NewStopAfterIteration(1000)
	}
	lambda0 := opts.Lambda0
	if lambda0 <= 0 {
		lambda0 = 1
	}
	s := NewCyclicProximalPointState(p0, opts.NumTerms, lambda0, crit)
	return Solve(p, s)
}
