package z

import "testing"

func TestPosNegRoundTrip(t *testing.T) {
	v := Var(17)
	if v.Pos().Var() != v || v.Neg().Var() != v {
		t.Fatal("Pos/Neg must preserve the underlying variable")
	}
	if !v.Pos().IsPos() {
		t.Fatal("Pos() must be positive")
	}
	if v.Neg().IsPos() {
		t.Fatal("Neg() must be negative")
	}
}

func TestNotIsInvolutive(t *testing.T) {
	m := Var(3).Pos()
	if m.Not().Not() != m {
		t.Fatal("Not(Not(m)) must equal m")
	}
	if m.Not().IsPos() == m.IsPos() {
		t.Fatal("Not(m) must flip polarity")
	}
}

func TestSign(t *testing.T) {
	if Var(1).Pos().Sign() != 1 {
		t.Fatal("positive literal must have sign +1")
	}
	if Var(1).Neg().Sign() != -1 {
		t.Fatal("negative literal must have sign -1")
	}
}

func TestDimacsRoundTrip(t *testing.T) {
	for _, n := range []int{1, -1, 42, -42} {
		m := Dimacs2Lit(n)
		if got := m.Dimacs(); got != n {
			t.Fatalf("Dimacs2Lit(%d).Dimacs() = %d", n, got)
		}
	}
}

func TestDimacs2LitPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for Dimacs2Lit(0)")
		}
	}()
	Dimacs2Lit(0)
}
