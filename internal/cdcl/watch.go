// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package cdcl

import "github.com/go-air/smtcore/z"

// WatchIndex maps each literal to the clauses currently watching it
// (spec §4.1: "for each literal L the set of clauses where L is watched").
type WatchIndex struct {
	byLit map[z.Lit][]*Clause
	units []*Clause // unit clauses (asserted directly, nothing to watch)
}

func NewWatchIndex() *WatchIndex {
	return &WatchIndex{byLit: map[z.Lit][]*Clause{}}
}

// Add indexes c under its watched literals (its first two, by convention).
func (w *WatchIndex) Add(c *Clause) {
	if len(c.Lits) == 0 {
		return
	}
	if len(c.Lits) == 1 {
		w.units = append(w.units, c)
		return
	}
	w.watch(c.Lits[0], c)
	w.watch(c.Lits[1], c)
}

func (w *WatchIndex) watch(m z.Lit, c *Clause) {
	w.byLit[m] = append(w.byLit[m], c)
}

func (w *WatchIndex) unwatch(m z.Lit, c *Clause) {
	lst := w.byLit[m]
	for i, o := range lst {
		if o == c {
			lst[i] = lst[len(lst)-1]
			w.byLit[m] = lst[:len(lst)-1]
			return
		}
	}
}

// Units returns clauses that were unit at insertion time.
func (w *WatchIndex) Units() []*Clause { return w.units }

// PropagateFalsified processes the falsification of literal m.Not() (i.e.
// m has just become true): for every clause watching m.Not(), find a
// replacement watch, or assert/derive a conflict per spec §4.1. Newly
// asserted literals are appended to the trail; the caller is responsible
// for continuing to drain the trail until this returns nil with nothing
// left to process.
func (w *WatchIndex) PropagateFalsified(trail *Trail, m z.Lit) *Clause {
	falsified := m.Not()
	watchers := append([]*Clause(nil), w.byLit[falsified]...)
	for _, c := range watchers {
		if !w.reWatch(trail, c, falsified) {
			continue
		}
		other := otherWatch(c, falsified)
		switch trail.Value(other) {
		case 1:
			continue // already satisfied by its other watch
		case -1:
			return c // both watches falsified: conflict
		default:
			trail.Assign(other, c)
		}
	}
	return nil
}

// reWatch tries to find a new literal for c to watch in place of
// falsified. Returns false if c needs no further action: either its
// other watch is already true (c keeps watching falsified) or a
// replacement was found (c no longer watches falsified). Returns true
// if c must remain watching falsified because no replacement was found
// (i.e. c is now unit or conflicting).
func (w *WatchIndex) reWatch(trail *Trail, c *Clause, falsified z.Lit) bool {
	at := 0
	if c.Lits[0] != falsified {
		at = 1
	}
	other := c.Lits[1-at]
	if trail.Value(other) == 1 {
		return false // clause already satisfied via its other watch
	}
	for i := 2; i < len(c.Lits); i++ {
		cand := c.Lits[i]
		if trail.Value(cand) != -1 {
			c.Lits[i], c.Lits[at] = c.Lits[at], c.Lits[i]
			w.unwatch(falsified, c)
			w.watch(cand, c)
			return false
		}
	}
	return true
}

func otherWatch(c *Clause, m z.Lit) z.Lit {
	if c.Lits[0] == m {
		return c.Lits[1]
	}
	return c.Lits[0]
}
