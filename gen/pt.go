// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package gen

import (
	"sort"

	"github.com/go-air/smtcore/sat"
	"github.com/go-air/smtcore/z"
)

// PartVar returns the variable meaning "element i is in partition k" for
// a set of n elements.
func PartVar(i, k, n int) z.Lit {
	return z.Var(k*n + i + 1).Pos()
}

// Partition generates constraints stating that there exists a partition
// of n elements into k parts: every model has PartVar(i, j, n) true iff
// element i is in partition j.
func Partition(n, k int) sat.CNF {
	var cnf sat.CNF
	for i := 0; i < n; i++ {
		lits := make([]z.Lit, k)
		for j := 0; j < k; j++ {
			lits[j] = PartVar(i, j, n)
		}
		cnf = append(cnf, sat.NewClause(lits...))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			for h := 0; h < j; h++ {
				cnf = append(cnf, sat.NewClause(PartVar(i, j, n).Not(), PartVar(i, h, n).Not()))
			}
		}
	}
	return cnf
}

// PyTriples generates the boolean Pythagorean triples problem over the
// first n Pythagorean triples (in pytriples order): is there a
// k-partition of the numbers occurring in those triples such that no
// triple (a,b,c) with a^2+b^2=c^2 is monochromatic in one part.
func PyTriples(n, k int) sat.CNF {
	in, ts := pytriples(n)
	m := len(in)
	cnf := Partition(m, k)
	for _, t := range ts {
		for p := 0; p < k; p++ {
			a := PartVar(in[t.a], p, m)
			b := PartVar(in[t.b], p, m)
			c := PartVar(in[t.c], p, m)
			cnf = append(cnf, sat.NewClause(a.Not(), b.Not(), c.Not()))
		}
	}
	return cnf
}

type squares struct{ d []int }

func (s *squares) get(i int) int {
	for len(s.d) <= i {
		s.d = append(s.d, len(s.d)*len(s.d))
	}
	return s.d[i]
}

func (s *squares) root(v int) int {
	for len(s.d)*len(s.d) < v {
		s.d = append(s.d, len(s.d)*len(s.d))
	}
	if s.d[len(s.d)-1] == v {
		return len(s.d) - 1
	}
	i := sort.Search(len(s.d), func(i int) bool { return s.d[i] >= v })
	if i < len(s.d) && s.d[i] == v {
		return i
	}
	return -1
}

type triple struct{ a, b, c int }

// pytriples enumerates the first n Pythagorean triples with legs and
// hypotenuse drawn by increasing generator pair (ai, bi).
func pytriples(n int) (map[int]int, []triple) {
	ai, bi := 1, 2
	res := make([]triple, 0, n)
	sqrs := &squares{make([]int, 0, n)}
	in := make(map[int]int, n)
	for len(res) < n {
		a2, b2 := sqrs.get(ai), sqrs.get(bi)
		ci := sqrs.root(a2 + b2)
		if ci != -1 {
			in[ai], in[bi], in[ci] = 0, 0, 0
			res = append(res, triple{ai, bi, ci})
		}
		ai++
		if ai == bi {
			ai = 1
			bi++
		}
	}
	ins := make([]int, 0, len(in))
	for k := range in {
		ins = append(ins, k)
	}
	sort.Ints(ins)
	for i, v := range ins {
		in[v] = i
	}
	return in, res
}
