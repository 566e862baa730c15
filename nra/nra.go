// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package nra implements the interval-constraint-propagation engine of
// spec §4.3 for non-linear real arithmetic: monomials of degree two or
// higher are linearized behind fresh auxiliary variables, and a lazy,
// weighted worklist repeatedly contracts variable domains until an empty
// domain (UNSAT) or an iteration bound is reached. Every popped
// candidate is reinserted, so the loop does not stop early at a fixed
// point.
package nra

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/go-air/smtcore/interval"
	"github.com/go-air/smtcore/lra"
	"github.com/go-air/smtcore/poly"
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

var log = logrus.WithField("component", "nra")

// Constraint is a polynomial constraint: Poly `Rel` Bound (spec §4.3).
type Constraint struct {
	Poly  *poly.Polynomial
	Rel   lra.Relation
	Bound *rational.Rat
}

// Domains maps every variable of interest to its current interval union
// (spec §3's NRA Assignment: variable -> IntervalUnion). A union lets a
// variable's domain hold two disjoint components at once, as an even-k
// root inversion produces.
type Domains map[z.Var]interval.Union

// Clone returns a shallow copy (Union is treated as immutable).
func (d Domains) Clone() Domains {
	out := make(Domains, len(d))
	for v, i := range d {
		out[v] = i
	}
	return out
}

// Option configures an Engine (spec §4.3's WithMaxIterations).
type Option func(*Engine)

// WithMaxIterations bounds the number of worklist pops the engine will
// perform before giving up with Undetermined results. Default 10.
func WithMaxIterations(n int) Option {
	return func(e *Engine) { e.maxIterations = n }
}

// Engine runs bounded interval constraint propagation over a set of
// polynomial constraints (spec §4.3, §9).
type Engine struct {
	maxIterations int
	domains       Domains
	shells        []lra.Constraint
	defs          []auxDef
	// Undetermined lists variables whose domain has a non-zero diameter
	// when the engine stopped, populated by Run; a domain made only of
	// isolated points is not listed.
	Undetermined []z.Var
}

// NewEngine linearizes constraints (spec §4.3's preprocessing step) and
// builds an engine ready to contract the given initial domains.
func NewEngine(constraints []Constraint, initial Domains, opts ...Option) *Engine {
	e := &Engine{maxIterations: 10, domains: initial.Clone()}
	e.shells, e.defs = linearize(constraints)
	for _, d := range e.defs {
		if _, ok := e.domains[d.aux]; !ok {
			e.domains[d.aux] = interval.FromInterval(interval.Full())
		}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Domains returns the current, possibly-contracted domain map.
func (e *Engine) Domains() Domains { return e.domains }

// Run executes the bounded ICP loop of spec §3/§4.3/§9: pop the
// highest-weight (constraint, variable) candidate, contract that one
// variable, reinsert the candidate at a weight equal to the relative
// contraction it just achieved, wake up sibling candidates that read
// the changed variable, and stop on emptiness (UNSAT) or the iteration
// bound.
func (e *Engine) Run() bool {
	q := newCandidateQueue(e.shells, e.defs)
	iterations := 0
	for iterations < e.maxIterations {
		cand, ok := q.next()
		if !ok {
			break
		}
		iterations++
		oldD, newD, empty := e.contractOne(cand)
		if empty {
			log.WithField("candidate", cand.describe()).Debug("domain emptied")
			return false
		}
		q.reinsert(cand, relativeContraction(oldD, newD))
		if newD.Cmp(oldD) != 0 {
			q.requeueDependents(cand)
		}
	}
	e.Undetermined = e.undeterminedVars()
	return true
}

// relativeContraction is spec §9's reweighting formula: (old-new)/old,
// 0 when old is zero, and the natural limits when either side is
// infinite (an infinite domain that becomes finite made maximal
// progress; one that stays infinite made none).
func relativeContraction(oldD, newD interval.Extended) float64 {
	switch {
	case oldD == 0:
		return 0
	case oldD.IsInf():
		if newD.IsInf() {
			return 0
		}
		return 1
	}
	ratio := (oldD.Float64() - newD.Float64()) / oldD.Float64()
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}

func (e *Engine) undeterminedVars() []z.Var {
	var out []z.Var
	for v, d := range e.domains {
		if d.Diameter() != 0 {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
