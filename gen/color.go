// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package gen

import (
	"math/rand"

	"github.com/go-air/smtcore/sat"
	"github.com/go-air/smtcore/z"
)

// RandGraph builds a random simple graph with n nodes and m edges,
// represented as an adjacency list.
func RandGraph(rng *rand.Rand, n, m int) [][]int {
	adj := make([][]int, n)
	seen := make(map[[2]int]bool, m)
	added := 0
	for added < m && added < n*(n-1)/2 {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if seen[key] {
			continue
		}
		seen[key] = true
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
		added++
	}
	return adj
}

// RandColor generates a CNF asking whether a random graph with n nodes
// and m edges can be colored with k colors: every node has some color,
// and no two adjacent nodes share one.
func RandColor(rng *rand.Rand, n, m, k int) sat.CNF {
	g := RandGraph(rng, n, m)
	var cnf sat.CNF
	colorVar := func(node, color int) z.Var { return z.Var(node*k + color + 1) }
	for i := range g {
		lits := make([]z.Lit, k)
		for c := 0; c < k; c++ {
			lits[c] = colorVar(i, c).Pos()
		}
		cnf = append(cnf, sat.NewClause(lits...))
	}
	for a, es := range g {
		for _, b := range es {
			if b >= a {
				continue
			}
			for c := 0; c < k; c++ {
				cnf = append(cnf, sat.NewClause(colorVar(a, c).Neg(), colorVar(b, c).Neg()))
			}
		}
	}
	return cnf
}
