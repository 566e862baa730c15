package gen

import (
	"math/rand"
	"testing"

	"github.com/go-air/smtcore/sat"
)

func TestPhpIsUnsat(t *testing.T) {
	cnf := Php(5, 4)
	if _, ok := sat.NewCDCL(cnf).Solve(); ok {
		t.Fatal("5 pigeons in 4 holes reported satisfiable")
	}
}

func TestPhpFewerPigeonsIsSat(t *testing.T) {
	cnf := Php(3, 4)
	m, ok := sat.NewCDCL(cnf).Solve()
	if !ok {
		t.Fatal("3 pigeons in 4 holes reported unsatisfiable")
	}
	if !m.Satisfies(cnf) {
		t.Fatal("model does not satisfy the pigeonhole encoding")
	}
}

func TestRand3CNFSolverAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		cnf := Rand3CNF(rng, 12, 40)
		cdclModel, cdclOK := sat.NewCDCL(cnf).Solve()
		dpllModel, dpllOK := sat.DPLL(cnf)
		if cdclOK != dpllOK {
			t.Fatalf("CDCL and DPLL disagree on satisfiability: %v vs %v", cdclOK, dpllOK)
		}
		if cdclOK && !cdclModel.Satisfies(cnf) {
			t.Fatal("CDCL model does not satisfy its own formula")
		}
		if dpllOK && !dpllModel.Satisfies(cnf) {
			t.Fatal("DPLL model does not satisfy its own formula")
		}
	}
}

func TestRandColorSparseGraphThreeColorable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cnf := RandColor(rng, 8, 10, 3)
	m, ok := sat.NewCDCL(cnf).Solve()
	if !ok {
		t.Fatal("3-coloring a sparse 8-node graph reported unsatisfiable")
	}
	if !m.Satisfies(cnf) {
		t.Fatal("coloring model does not satisfy the encoding")
	}
}

func TestPartitionIsSatisfiable(t *testing.T) {
	cnf := Partition(6, 3)
	m, ok := sat.NewCDCL(cnf).Solve()
	if !ok {
		t.Fatal("trivial partition encoding reported unsatisfiable")
	}
	if !m.Satisfies(cnf) {
		t.Fatal("partition model does not satisfy the encoding")
	}
}

func TestPyTriplesSmallIsSatisfiable(t *testing.T) {
	// The first 20 triples only involve numbers far below 7825, the
	// smallest n for which {1,...,n} has no 2-coloring, so k=2 is
	// satisfiable.
	cnf := PyTriples(20, 2)
	m, ok := sat.NewCDCL(cnf).Solve()
	if !ok {
		t.Fatal("small boolean Pythagorean triples instance reported unsatisfiable")
	}
	if !m.Satisfies(cnf) {
		t.Fatal("model does not satisfy the Pythagorean triples encoding")
	}
}
