// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package gen generates CNF problems used to exercise the SAT engines
// (spec §4.1, §8): random 3-CNF, pigeonhole, graph coloring, and the
// boolean Pythagorean triples problem. It has no generators for
// arithmetic constraints.
package gen

import (
	"math/rand"

	"github.com/go-air/smtcore/sat"
	"github.com/go-air/smtcore/z"
)

// Rand3CNF generates a random 3-CNF with n variables and m clauses, no
// clause containing a repeated variable.
func Rand3CNF(rng *rand.Rand, n, m int) sat.CNF {
	cnf := make(sat.CNF, 0, m)
	ms := make([]z.Lit, 3)
	for i := 0; i < m; i++ {
		for j := 0; j < 3; j++ {
			m := z.Lit(rng.Intn(2*n) + 2)
			ms[j] = m
			for j == 1 && ms[0].Var() == ms[1].Var() {
				ms[j] = z.Lit(rng.Intn(2*n) + 2)
			}
			for j == 2 && (ms[0].Var() == ms[2].Var() || ms[1].Var() == ms[2].Var()) {
				ms[j] = z.Lit(rng.Intn(2*n) + 2)
			}
		}
		cnf = append(cnf, sat.NewClause(ms[0], ms[1], ms[2]))
	}
	return cnf
}

// HardRand3CNF generates a random 3-CNF at a 4 clause-to-var ratio,
// close to the roughly 4.2 believed to be the satisfiability phase
// transition.
func HardRand3CNF(rng *rand.Rand, n int) sat.CNF {
	return Rand3CNF(rng, n, 4*n)
}

// partVar returns the variable meaning "pigeon i occupies hole j" for P
// pigeons.
func partVar(i, j, p int) z.Lit {
	return z.Var(j*p+i+1).Pos()
}

// Php generates the classical pigeonhole problem: can P pigeons be
// placed into H holes with at most one pigeon per hole. It is
// unsatisfiable whenever P > H and is a standard hard instance for
// resolution-based solvers, useful for exercising CDCL's clause-learning
// budget.
func Php(P, H int) sat.CNF {
	var cnf sat.CNF
	for i := 0; i < P; i++ {
		lits := make([]z.Lit, H)
		for j := 0; j < H; j++ {
			lits[j] = partVar(i, j, P)
		}
		cnf = append(cnf, sat.NewClause(lits...))
	}
	for i := 0; i < P; i++ {
		for j := 0; j < i; j++ {
			for h := 0; h < H; h++ {
				cnf = append(cnf, sat.NewClause(partVar(i, h, P).Not(), partVar(j, h, P).Not()))
			}
		}
	}
	return cnf
}
