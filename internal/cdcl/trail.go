// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package cdcl

import "github.com/go-air/smtcore/z"

// value is a variable's current truth assignment: unset, true, or false.
type value int8

const (
	unset value = 0
	vTrue value = 1
	vFalse value = -1
)

// entry annotates one trail position, spec §3 "Assignment (Boolean)":
// "each annotated with a decision level and either 'decision' or
// 'propagated by clause C'".
type entry struct {
	lit    z.Lit
	level  int
	reason *Clause // nil for a decision
}

// Trail records the ordered history of assignments.
type Trail struct {
	entries []entry
	vals    map[z.Var]value
	levelOf map[z.Var]int
	reason  map[z.Var]*Clause
	level   int
}

func NewTrail() *Trail {
	return &Trail{
		vals:    map[z.Var]value{},
		levelOf: map[z.Var]int{},
		reason:  map[z.Var]*Clause{},
	}
}

// Value returns the current value of literal m: 1 true, -1 false, 0 unset.
func (t *Trail) Value(m z.Lit) int {
	v, ok := t.vals[m.Var()]
	if !ok {
		return 0
	}
	if m.IsPos() {
		return int(v)
	}
	return -int(v)
}

func (t *Trail) IsAssigned(v z.Var) bool { return t.vals[v] != unset }

func (t *Trail) LevelOf(v z.Var) int { return t.levelOf[v] }

func (t *Trail) ReasonOf(v z.Var) *Clause { return t.reason[v] }

// Assign pushes m as true onto the trail at the current level, with reason
// (nil for a decision).
func (t *Trail) Assign(m z.Lit, reason *Clause) {
	v := vTrue
	if !m.IsPos() {
		v = vFalse
	}
	t.vals[m.Var()] = v
	t.levelOf[m.Var()] = t.level
	t.reason[m.Var()] = reason
	t.entries = append(t.entries, entry{lit: m, level: t.level, reason: reason})
}

// Decide bumps the decision level and assigns m as a decision literal.
func (t *Trail) Decide(m z.Lit) {
	t.level++
	t.Assign(m, nil)
}

// Level returns the current decision level.
func (t *Trail) Level() int { return t.level }

// Len returns the number of assigned literals.
func (t *Trail) Len() int { return len(t.entries) }

// At returns the i'th trail entry's literal.
func (t *Trail) At(i int) z.Lit { return t.entries[i].lit }

// Backjump undoes every assignment made above level, restoring t.level to
// level. Non-chronological: level may be far below t.level - 1.
func (t *Trail) Backjump(level int) {
	i := len(t.entries)
	for i > 0 && t.entries[i-1].level > level {
		i--
		v := t.entries[i].lit.Var()
		delete(t.vals, v)
		delete(t.levelOf, v)
		delete(t.reason, v)
	}
	t.entries = t.entries[:i]
	t.level = level
}

// LiteralsAtLevel returns, in trail order, the literals assigned at
// exactly the given level.
func (t *Trail) LiteralsAtLevel(level int) []z.Lit {
	var out []z.Lit
	for _, e := range t.entries {
		if e.level == level {
			out = append(out, e.lit)
		}
	}
	return out
}
