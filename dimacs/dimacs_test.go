package dimacs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-air/smtcore/sat"
)

const sample = `c a trivial 3-variable formula
p cnf 3 2
1 -2 0
2 3 0
`

func TestReadCNF(t *testing.T) {
	cnf, err := ReadCNF(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadCNF: %s", err)
	}
	if len(cnf) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(cnf))
	}
	m, ok := sat.NewCDCL(cnf).Solve()
	if !ok {
		t.Fatal("expected sample formula to be satisfiable")
	}
	if !m.Satisfies(cnf) {
		t.Fatal("model does not satisfy parsed formula")
	}
}

func TestReadCNFRejectsMissingHeader(t *testing.T) {
	_, err := ReadCNF(strings.NewReader("1 -2 0\n"))
	if err == nil {
		t.Fatal("expected an error for a missing problem line")
	}
}

func TestReadCNFRejectsTrailingClause(t *testing.T) {
	_, err := ReadCNF(strings.NewReader("p cnf 2 1\n1 2"))
	if err == nil {
		t.Fatal("expected an error for a clause missing its terminating 0")
	}
}

func TestWriteModelRoundTrips(t *testing.T) {
	cnf, err := ReadCNF(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadCNF: %s", err)
	}
	m, ok := sat.NewCDCL(cnf).Solve()
	if !ok {
		t.Fatal("expected sample formula to be satisfiable")
	}
	var buf bytes.Buffer
	if err := WriteModel(&buf, m, 3); err != nil {
		t.Fatalf("WriteModel: %s", err)
	}
	if !strings.HasPrefix(buf.String(), "v ") || !strings.HasSuffix(buf.String(), " 0\n") {
		t.Fatalf("unexpected model line: %q", buf.String())
	}
}
