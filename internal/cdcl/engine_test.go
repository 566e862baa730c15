package cdcl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/smtcore/z"
)

func lit(n int) z.Lit { return z.Dimacs2Lit(n) }

func TestEngineUnsatScenario(t *testing.T) {
	// spec §8 scenario 1: {{+0,+1},{-0,+1},{-1}} -> UNSAT
	// (0-based ids here map to vars 1,2 to keep Dimacs2Lit happy with n!=0)
	cnf := [][]z.Lit{
		{lit(1), lit(2)},
		{lit(-1), lit(2)},
		{lit(-2)},
	}
	_, sat := New(cnf).Solve()
	assert.False(t, sat)
}

func TestEngineSatScenario(t *testing.T) {
	// spec §8 scenario 2: {{+0,+1},{-0,-1}} -> SAT
	cnf := [][]z.Lit{
		{lit(1), lit(2)},
		{lit(-1), lit(-2)},
	}
	model, sat := New(cnf).Solve()
	require.True(t, sat)
	for _, c := range cnf {
		satisfied := false
		for _, m := range c {
			if model[m.Var()] == (m.IsPos()) {
				satisfied = true
			}
		}
		assert.True(t, satisfied, "every clause must have a satisfied literal")
	}
}

func TestEngineUnsatByPropagationAtLevelZero(t *testing.T) {
	// (a|b|c) & (-a|d) & (-b|d) & (-c|d) & -d: the unit -d propagates
	// -a, -b and -c, which falsifies (a|b|c) at level 0 before any
	// decision, so the formula is refuted without learning.
	cnf := [][]z.Lit{
		{lit(1), lit(2), lit(3)},
		{lit(-1), lit(4)},
		{lit(-2), lit(4)},
		{lit(-3), lit(4)},
		{lit(-4)},
	}
	model, sat := New(cnf).Solve()
	require.False(t, sat)
	assert.Nil(t, model)
}

func TestEngineEmptyClauseIsUnsat(t *testing.T) {
	cnf := [][]z.Lit{{}}
	_, sat := New(cnf).Solve()
	assert.False(t, sat)
}

func TestEngineTautologyDropped(t *testing.T) {
	cnf := [][]z.Lit{
		{lit(1), lit(-1)}, // tautology, must be ignored
		{lit(2)},
	}
	model, sat := New(cnf).Solve()
	require.True(t, sat)
	assert.True(t, model[z.Var(2)])
}
