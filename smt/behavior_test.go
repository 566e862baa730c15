package smt_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-air/smtcore/lra"
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/smt"
	"github.com/go-air/smtcore/z"
)

func lit(n int) z.Lit { return z.Dimacs2Lit(n) }

var _ = Describe("CDCL(T) over linear arithmetic", func() {

	It("finds a boolean model when no arithmetic atom is ever asserted", func() {
		p := smt.NewProblem()
		p.AddClause(lit(1), lit(2))
		p.AddClause(lit(-1), lit(-2))
		model, ok := p.Solve()
		Expect(ok).To(BeTrue())
		xorSat := (model.Bool[z.Var(1)] || model.Bool[z.Var(2)]) && (!model.Bool[z.Var(1)] || !model.Bool[z.Var(2)])
		Expect(xorSat).To(BeTrue())
	})

	It("reports UNSAT when two asserted atoms contradict in the theory", func() {
		p := smt.NewProblem()
		x := z.Var(1)
		hi := lit(10)
		lo := lit(11)
		p.AddAtom(hi, lra.LinearTerm{x: rational.One()}, lra.GE, rational.FromInt64(5))
		p.AddAtom(lo, lra.LinearTerm{x: rational.One()}, lra.LE, rational.FromInt64(3))
		p.AddClause(hi)
		p.AddClause(lo)

		_, ok := p.Solve()
		Expect(ok).To(BeFalse())
	})

	It("finds a rational witness satisfying every asserted atom", func() {
		p := smt.NewProblem()
		x := z.Var(1)
		hi := lit(10)
		p.AddAtom(hi, lra.LinearTerm{x: rational.One()}, lra.GE, rational.FromInt64(5))
		p.AddClause(hi)

		model, ok := p.Solve()
		Expect(ok).To(BeTrue())
		Expect(model.Real[x].Cmp(rational.FromInt64(5))).To(BeNumerically(">=", 0))
	})

	It("respects an integer-only atom via branch-and-bound", func() {
		p := smt.NewProblem()
		x := z.Var(1)
		eq := lit(10)
		p.AddAtom(eq, lra.LinearTerm{x: rational.FromInt64(2)}, lra.EQ, rational.FromInt64(3))
		p.AddClause(eq)
		p.MarkInteger(x)

		_, ok := p.Solve()
		Expect(ok).To(BeFalse())
	})
})
