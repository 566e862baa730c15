// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package cdcl

import "github.com/go-air/smtcore/z"

// DecayFactor and BumpAmount parameterize the VSIDS-like heuristic
// (spec §4.1 "Decision"). Grounded on gini's Cdb.Decay/Guess.Decay, driven
// once per conflict from Engine.Solve.
const (
	DecayFactor = 0.95
	BumpAmount  = 1.0
)

// Activity tracks a per-variable score used to pick the next decision
// variable: highest activity, ties broken by lowest id (spec §4.1).
type Activity struct {
	score map[z.Var]float64
	nvars z.Var
}

func NewActivity() *Activity {
	return &Activity{score: map[z.Var]float64{}}
}

func (a *Activity) Track(v z.Var) {
	if _, ok := a.score[v]; !ok {
		a.score[v] = 0
	}
	if v > a.nvars {
		a.nvars = v
	}
}

// Bump increases v's activity.
func (a *Activity) Bump(v z.Var) {
	a.score[v] += BumpAmount
}

// Decay scales down every tracked activity, applied periodically (spec
// §4.1: "global decay is applied periodically").
func (a *Activity) Decay() {
	for v := range a.score {
		a.score[v] *= DecayFactor
	}
}

// Best returns the unassigned variable with highest activity, ties broken
// by lowest id, or (0, false) if every id from 1 up to the largest
// tracked id is assigned.
func (a *Activity) Best(trail *Trail) (z.Var, bool) {
	var best z.Var
	bestScore := -1.0
	found := false
	for v := z.Var(1); v <= a.nvars; v++ {
		if trail.IsAssigned(v) {
			continue
		}
		s := a.score[v]
		if !found || s > bestScore {
			best, bestScore, found = v, s, true
		}
	}
	return best, found
}
