package nra

import (
	"math"

	"github.com/go-air/smtcore/lra"
	"github.com/go-air/smtcore/z"
)

type candKind int

const (
	kindShell candKind = iota
	kindDef
)

// candidate identifies one contractable (constraint, variable) pair
// (spec §3/§9): either a linear shell constraint isolated for v, or a
// monomial definition narrowed toward v (forward if v is the auxiliary,
// backward through NthRootUnion otherwise).
type candidate struct {
	kind  candKind
	index int
	v     z.Var
}

func (c candidate) describe() string {
	if c.kind == kindShell {
		return "shell"
	}
	return "def"
}

// initialWeight is the starting priority spec §9 assigns to every
// candidate before it has ever been contracted.
const initialWeight = 0.1

// candidateQueue is the lazy, weighted worklist of spec §9: candidates
// live in a weight -> list map, the highest-weight bucket is popped
// from directly (never materializing lower buckets), and a popped
// candidate is reinserted at a weight equal to the relative contraction
// it just achieved -- so a pair currently making progress keeps
// floating back to the top.
type candidateQueue struct {
	buckets map[float64][]candidate
	inQueue map[candidate]bool
	byVar   map[z.Var][]candidate
}

func newCandidateQueue(shells []lra.Constraint, defs []auxDef) *candidateQueue {
	q := &candidateQueue{
		buckets: map[float64][]candidate{},
		inQueue: map[candidate]bool{},
		byVar:   map[z.Var][]candidate{},
	}
	for i, s := range shells {
		for v := range s.Term {
			c := candidate{kind: kindShell, index: i, v: v}
			q.insert(c, initialWeight)
			for other := range s.Term {
				if other != v {
					q.addDependency(other, c)
				}
			}
		}
	}
	for i, d := range defs {
		fwd := candidate{kind: kindDef, index: i, v: d.aux}
		q.insert(fwd, initialWeight)
		for v := range d.monomial {
			bwd := candidate{kind: kindDef, index: i, v: v}
			q.insert(bwd, initialWeight)
			q.addDependency(v, fwd)
			q.addDependency(d.aux, bwd)
			for other := range d.monomial {
				if other != v {
					q.addDependency(other, bwd)
				}
			}
		}
	}
	return q
}

// addDependency records that dep's contraction should be reconsidered
// whenever u's domain changes.
func (q *candidateQueue) addDependency(u z.Var, dep candidate) {
	q.byVar[u] = append(q.byVar[u], dep)
}

func (q *candidateQueue) insert(c candidate, w float64) {
	q.buckets[w] = append(q.buckets[w], c)
	q.inQueue[c] = true
}

// next pops the first (oldest) candidate from the highest-weight
// non-empty bucket.
func (q *candidateQueue) next() (candidate, bool) {
	best := math.Inf(-1)
	found := false
	for w, list := range q.buckets {
		if len(list) == 0 {
			continue
		}
		if !found || w > best {
			best, found = w, true
		}
	}
	if !found {
		return candidate{}, false
	}
	list := q.buckets[best]
	c := list[0]
	if len(list) == 1 {
		delete(q.buckets, best)
	} else {
		q.buckets[best] = list[1:]
	}
	delete(q.inQueue, c)
	return c, true
}

// reinsert schedules c at the weight it just earned by its own
// contraction (spec §9).
func (q *candidateQueue) reinsert(c candidate, weight float64) {
	q.insert(c, weight)
}

// requeueDependents wakes every candidate that reads the just-contracted
// candidate's variable and is not currently scheduled, at the initial
// weight -- it deserves another look soon, but its own achieved
// contraction, once it runs, sets its real priority.
func (q *candidateQueue) requeueDependents(c candidate) {
	for _, dep := range q.byVar[c.v] {
		if dep == c || q.inQueue[dep] {
			continue
		}
		q.insert(dep, initialWeight)
	}
}
